// Package assets resolves mood imagery. Users can drop their own images
// into the assets directory (named after mood.Asset, e.g. happy.png); when a
// file is missing or unreadable the package substitutes a generated
// placeholder built from the mood's gradient, so the rendering layer never
// has to handle an image error.
package assets

import (
	"bytes"
	"errors"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"

	"moodscape/mood"
)

// placeholderSize is the edge length of generated placeholder images.
const placeholderSize = 256

// detectImageFormat reads the magic bytes and returns the current image format string
func detectImageFormat(data []byte) (string, error) {
	if len(data) < 12 {
		return "", errors.New("data too short to determine format")
	}

	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return "jpeg", nil
	}
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "png", nil
	}
	if string(data[0:6]) == "GIF87a" || string(data[0:6]) == "GIF89a" {
		return "gif", nil
	}
	if string(data[0:4]) == "RIFF" && len(data) >= 12 && string(data[8:12]) == "WEBP" {
		return "webp", nil
	}

	return "", errors.New("unknown image format")
}

// decodeImage decodes image bytes based on their sniffed format.
// webp needs its own decoder; imaging handles the rest.
func decodeImage(data []byte) (image.Image, error) {
	format, err := detectImageFormat(data)
	if err != nil {
		return nil, err
	}

	if format == "webp" {
		return webp.Decode(bytes.NewReader(data))
	}
	return imaging.Decode(bytes.NewReader(data))
}

// Load returns the image for mood m. It looks for the mood's asset file in
// dir (jpeg, png, gif, and webp are accepted); any failure falls back to the
// generated placeholder, logging the substitution. Load never fails.
func Load(m mood.Mood, dir string) image.Image {
	if dir == "" {
		return Placeholder(m)
	}

	path := filepath.Join(dir, mood.Asset(m))
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[assets] cannot read %s: %v, using placeholder", path, err)
		}
		return Placeholder(m)
	}

	img, err := decodeImage(data)
	if err != nil {
		log.Printf("[assets] cannot decode %s: %v, using placeholder", path, err)
		return Placeholder(m)
	}
	return img
}

// Placeholder builds the stand-in image for mood m: three horizontal bands
// using the mood's gradient stops. Deterministic, never nil.
func Placeholder(m mood.Mood) image.Image {
	stops := mood.Gradient(m)

	img := imaging.New(placeholderSize, placeholderSize, stops[1])
	bandHeight := placeholderSize / len(stops)
	for i, stop := range stops {
		band := imaging.New(placeholderSize, bandHeight, stop)
		img = imaging.Paste(img, band, image.Pt(0, i*bandHeight))
	}
	return img
}

// Dimmed darkens an image for display against the dark theme chrome.
func Dimmed(img image.Image) image.Image {
	return imaging.AdjustBrightness(img, -30)
}
