package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"moodscape/assets"
)

// MoodImageView shows the current mood's image: a user-supplied file from
// the assets directory when present, otherwise the generated placeholder.
// The image dims in dark mode.
type MoodImageView struct {
	Image *canvas.Image
	state *AppState
}

// NewMoodImageView creates the image view wired to both state containers.
func NewMoodImageView(state *AppState) *MoodImageView {
	v := &MoodImageView{state: state}

	v.Image = canvas.NewImageFromImage(assets.Load(state.Mood.Current(), state.Settings.AssetsDir))
	v.Image.FillMode = canvas.ImageFillContain
	v.Image.SetMinSize(fyne.NewSize(MoodImageSize, MoodImageSize))

	state.Mood.OnChange(v.refresh)
	state.Theme.OnChange(v.refresh)
	v.refresh()

	return v
}

func (v *MoodImageView) refresh() {
	img := assets.Load(v.state.Mood.Current(), v.state.Settings.AssetsDir)
	if v.state.Theme.Dark() {
		img = assets.Dimmed(img)
	}
	v.Image.Image = img
	v.Image.Refresh()
}
