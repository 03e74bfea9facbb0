package ui

import (
	"image/color"
)

// Chrome constants define the mood-independent parts of the visual
// appearance. Everything mood-dependent (background gradient, accent color,
// title, subtitle, imagery) is derived in the mood package instead; nothing
// here may hardcode a per-mood value.

// Chrome color palette
var (
	// CardBackgroundLight is the card background in light mode
	CardBackgroundLight = color.RGBA{R: 255, G: 255, B: 255, A: 235}

	// CardBackgroundDark is the card background in dark mode
	CardBackgroundDark = color.RGBA{R: 33, G: 33, B: 33, A: 235}

	// TextColorLight is used for text drawn directly on the gradient,
	// which is saturated enough in both themes for white to stay readable
	TextColorLight = color.White
)

// CardColor returns the card background for the active theme.
func CardColor(dark bool) color.Color {
	if dark {
		return CardBackgroundDark
	}
	return CardBackgroundLight
}

// Text size constants for consistent typography
const (
	// TitleTextSize is used for the current mood's title
	TitleTextSize = 48

	// SubtitleTextSize is used for the mood subtitle below the title
	SubtitleTextSize = 16

	// FooterTextSize is used for footer text
	FooterTextSize = 14
)

// Layout constants
const (
	// CardMinWidth is the minimum width for card components
	CardMinWidth = 100

	// CardMinHeight is the minimum height for card components
	CardMinHeight = 100

	// MoodImageSize is the displayed edge length of the mood image
	MoodImageSize = 220

	// HistoryDotSize is the edge length of the colored square next to each
	// history row
	HistoryDotSize = 12
)
