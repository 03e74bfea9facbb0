package mood

import (
	"fmt"
	"image/color"
)

// visual bundles every display attribute derived from a mood. The ui package
// never hardcodes a mood-specific color or string; it always goes through
// the accessor functions below.
type visual struct {
	asset    string
	title    string
	subtitle string
	base     color.RGBA
	gradient [3]color.RGBA
}

// visuals is the single lookup table behind all derivation functions.
// It must contain an entry for every variant in AllMoods; init enforces
// this so a new mood cannot silently render as another one.
var visuals = map[Mood]visual{
	Happy: {
		asset:    "happy.png",
		title:    "Happy",
		subtitle: "Feeling bright and sunny",
		base:     color.RGBA{R: 255, G: 179, B: 0, A: 255},
		gradient: [3]color.RGBA{
			{R: 255, G: 224, B: 130, A: 255},
			{R: 255, G: 179, B: 0, A: 255},
			{R: 255, G: 111, B: 0, A: 255},
		},
	},
	Sad: {
		asset:    "sad.png",
		title:    "Sad",
		subtitle: "A little down today",
		base:     color.RGBA{R: 63, G: 81, B: 181, A: 255},
		gradient: [3]color.RGBA{
			{R: 159, G: 168, B: 218, A: 255},
			{R: 63, G: 81, B: 181, A: 255},
			{R: 26, G: 35, B: 126, A: 255},
		},
	},
	Excited: {
		asset:    "excited.png",
		title:    "Excited",
		subtitle: "Bursting with energy",
		base:     color.RGBA{R: 233, G: 30, B: 99, A: 255},
		gradient: [3]color.RGBA{
			{R: 244, G: 143, B: 177, A: 255},
			{R: 233, G: 30, B: 99, A: 255},
			{R: 136, G: 14, B: 79, A: 255},
		},
	},
}

func init() {
	// Exhaustiveness check: every variant needs a table entry. Failing here
	// turns a missing entry into a startup crash instead of a wrong render.
	for _, m := range AllMoods {
		if _, ok := visuals[m]; !ok {
			panic(fmt.Sprintf("mood: no visual entry for %q", moodNames[m]))
		}
		if _, ok := moodNames[m]; !ok {
			panic(fmt.Sprintf("mood: no name entry for variant %d", int(m)))
		}
	}
}

// Asset returns the image file name for m, e.g. "happy.png". The ui layer
// looks it up in the configured assets directory and falls back to a
// generated placeholder when the file is missing.
func Asset(m Mood) string {
	return visuals[m].asset
}

// Title returns the display title for m.
func Title(m Mood) string {
	return visuals[m].title
}

// Subtitle returns the one-line description shown under the title.
func Subtitle(m Mood) string {
	return visuals[m].subtitle
}

// BaseColor returns the accent color for m.
func BaseColor(m Mood) color.RGBA {
	return visuals[m].base
}

// Gradient returns the three background gradient stops for m, top to bottom.
func Gradient(m Mood) [3]color.RGBA {
	return visuals[m].gradient
}
