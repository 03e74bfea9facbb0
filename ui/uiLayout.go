package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"moodscape/config"
	"moodscape/mood"
)

// BuildMainLayout constructs the complete application UI.
//
// The layout structure is:
// - Background: vertical 3-stop gradient derived from the current mood
// - Header: current mood title and subtitle (top)
// - Content Area, vertical:
//   - Mood image (user asset or generated placeholder)
//   - Picker card: one button per mood, Random, theme toggle
//   - Stats card and History card side by side
//
// - Footer: version text (bottom)
//
// Every piece re-renders from the mood containers when they notify; nothing
// holds derived state of its own.
//
// The returned AppState is handed back so main can wire keyboard shortcuts
// and menu items to the same containers.
func BuildMainLayout(window fyne.Window, settings config.Settings) (fyne.CanvasObject, *AppState) {
	// Initialize the application state
	// This centralized state allows all UI components to communicate
	state := NewAppState(window, settings)

	background := newGradientBackground(state)
	header := NewHeader(state)
	moodImage := NewMoodImageView(state)
	picker := NewMoodPickerView(state)
	stats := NewStatsView(state)
	history := NewHistoryView(state)
	footer := NewFooter()

	contentArea := container.NewVBox(
		container.NewCenter(moodImage.Image),
		picker.Card,
		container.NewGridWithColumns(2,
			container.NewPadded(stats.Card),
			container.NewPadded(history.Card),
		),
	)

	mainLayout := container.NewBorder(
		container.NewPadded(header.Box), // Top: Header with padding
		container.NewPadded(footer),     // Bottom: Footer with padding
		nil,                             // Left: None
		nil,                             // Right: None
		container.NewPadded(contentArea),
	)

	// Stack the gradient behind all content
	content := container.NewStack(background.box, mainLayout)

	return content, state
}

// gradientBackground renders the mood's 3-stop gradient as two stacked
// vertical linear gradients sharing the middle stop.
type gradientBackground struct {
	top    *canvas.LinearGradient
	bottom *canvas.LinearGradient
	box    fyne.CanvasObject
}

func newGradientBackground(state *AppState) *gradientBackground {
	stops := mood.Gradient(state.Mood.Current())

	bg := &gradientBackground{
		top:    canvas.NewVerticalGradient(stops[0], stops[1]),
		bottom: canvas.NewVerticalGradient(stops[1], stops[2]),
	}
	bg.box = container.NewGridWithRows(2, bg.top, bg.bottom)

	state.Mood.OnChange(func() {
		bg.refresh(mood.Gradient(state.Mood.Current()))
	})
	return bg
}

func (bg *gradientBackground) refresh(stops [3]color.RGBA) {
	bg.top.StartColor = stops[0]
	bg.top.EndColor = stops[1]
	bg.bottom.StartColor = stops[1]
	bg.bottom.EndColor = stops[2]
	bg.top.Refresh()
	bg.bottom.Refresh()
}
