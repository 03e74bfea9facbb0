package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"moodscape/mood"
)

// HeaderView shows the current mood's title and subtitle over the gradient.
// Both labels re-render whenever the mood changes.
type HeaderView struct {
	Box      fyne.CanvasObject
	title    *canvas.Text
	subtitle *canvas.Text
	state    *AppState
}

// NewHeader creates the application header bound to the mood state.
//
// The header includes:
// - Large, bold title with the current mood's name
// - Smaller subtitle with the mood's one-line description
func NewHeader(state *AppState) *HeaderView {
	v := &HeaderView{state: state}

	v.title = canvas.NewText("", TextColorLight)
	v.title.TextSize = TitleTextSize
	v.title.TextStyle = fyne.TextStyle{Bold: true}
	v.title.Alignment = fyne.TextAlignCenter

	v.subtitle = canvas.NewText("", TextColorLight)
	v.subtitle.TextSize = SubtitleTextSize
	v.subtitle.Alignment = fyne.TextAlignCenter

	v.Box = container.NewVBox(v.title, v.subtitle)

	v.refresh()
	state.Mood.OnChange(v.refresh)

	return v
}

func (v *HeaderView) refresh() {
	current := v.state.Mood.Current()
	v.title.Text = mood.Title(current)
	v.subtitle.Text = mood.Subtitle(current)
	v.title.Refresh()
	v.subtitle.Refresh()
}
