package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"moodscape/config"
)

// NewFooter creates the application footer with the version string.
func NewFooter() fyne.CanvasObject {
	footerText := canvas.NewText("moodscape "+config.Version, TextColorLight)
	footerText.TextSize = FooterTextSize
	footerText.Alignment = fyne.TextAlignCenter

	return footerText
}
