package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/atomic"

	"moodscape/mood"
)

// randomizeDelay is the press-feedback pause between tapping Random and the
// mood actually changing. Purely visual; the state model only ever sees the
// single Randomize call at the end of it.
const randomizeDelay = 110 * time.Millisecond

// MoodPickerView holds the mood selection controls: one button per mood,
// the Random button, and the theme toggle.
type MoodPickerView struct {
	Card fyne.CanvasObject

	state     *AppState
	randomBtn *widget.Button
	themeBtn  *widget.Button

	// randomizing guards the delayed Randomize call so rapid taps on the
	// Random button still produce exactly one call per accepted press.
	randomizing atomic.Bool
}

// NewMoodPickerView creates the picker card wired to the mood state.
func NewMoodPickerView(state *AppState) *MoodPickerView {
	v := &MoodPickerView{state: state}

	moodButtons := make([]fyne.CanvasObject, 0, len(mood.AllMoods))
	for _, m := range mood.AllMoods {
		moodButtons = append(moodButtons, widget.NewButton(mood.Title(m), func() {
			log.Printf("[UI] Mood selected: %s", m)
			state.Mood.SetMood(m)
		}))
	}

	v.randomBtn = widget.NewButton("Random", v.onRandomTapped)

	v.themeBtn = widget.NewButton(themeButtonLabel(state.Theme.Dark()), func() {
		log.Println("[UI] Theme toggled")
		state.Theme.Toggle()
	})
	state.Theme.OnChange(func() {
		v.themeBtn.SetText(themeButtonLabel(state.Theme.Dark()))
	})

	content := container.NewVBox(
		container.NewGridWithColumns(len(moodButtons), moodButtons...),
		container.NewGridWithColumns(2, v.randomBtn, v.themeBtn),
	)
	v.Card = NewCardWithHeader(state, "How do you feel?", content)

	return v
}

// onRandomTapped disables the button for the feedback delay, then performs
// exactly one Randomize on the event thread.
func (v *MoodPickerView) onRandomTapped() {
	if !v.randomizing.CompareAndSwap(false, true) {
		return // a press is already in flight
	}
	log.Println("[UI] Random mood requested")
	v.randomBtn.Disable()

	time.AfterFunc(randomizeDelay, func() {
		fyne.Do(func() {
			v.state.Mood.Randomize()
			log.Printf("[UI] Random mood landed on: %s", v.state.Mood.Current())
			v.randomBtn.Enable()
			v.randomizing.Store(false)
		})
	})
}

func themeButtonLabel(dark bool) string {
	if dark {
		return "Light Mode"
	}
	return "Dark Mode"
}
