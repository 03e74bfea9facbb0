package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// NewCard wraps content in a card-like container whose background follows
// the active theme. Cards provide visual separation between sections of the
// UI against the gradient background.
//
// The card uses a stacked layout where:
// 1. A theme-colored rectangle forms the background
// 2. The content is placed on top with padding
func NewCard(state *AppState, content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(CardColor(state.Theme.Dark()))

	// Set minimum size to ensure the card is always visible
	// even when content is very small
	bg.SetMinSize(fyne.NewSize(CardMinWidth, CardMinHeight))

	// Re-tint when the theme toggles.
	state.Theme.OnChange(func() {
		bg.FillColor = CardColor(state.Theme.Dark())
		bg.Refresh()
	})

	return container.NewStack(bg, container.NewPadded(content))
}

// NewCardWithHeader creates a card with a title header and separator.
// This is a convenience function for the common pattern of cards with titles.
func NewCardWithHeader(state *AppState, title string, content fyne.CanvasObject) fyne.CanvasObject {
	header := container.NewVBox(
		NewBoldLabel(title),
		NewSeparator(),
	)

	cardContent := container.NewBorder(
		header, // Top border
		nil,    // Bottom border
		nil,    // Left border
		nil,    // Right border
		content,
	)

	return NewCard(state, cardContent)
}
