package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NewBoldLabel creates a label with bold text styling, used for card
// headers.
func NewBoldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(
		text,
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)
}

// NewSeparator creates a horizontal separator line.
// This is just a thin wrapper around widget.NewSeparator for consistency.
func NewSeparator() *widget.Separator {
	return widget.NewSeparator()
}
