package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"golang.design/x/clipboard"

	"moodscape/config"
	"moodscape/mood"
)

// AppState bundles the shared state for the entire application.
// This centralized state allows different UI components to communicate with
// each other: the picker mutates the mood containers, and the header,
// background, image, stats, and history views all subscribe to them.
//
// The containers themselves live in the mood package and know nothing about
// Fyne; views register refresh callbacks through their OnChange methods and
// re-read state when notified.
type AppState struct {
	// Window is the main application window, needed for showing dialogs
	Window fyne.Window

	// Mood is the source of truth for the current mood, counters, and
	// recency history
	Mood *mood.State

	// Theme holds the light/dark flag
	Theme *mood.Theme

	// Settings are the values loaded from settings.toml at startup
	Settings config.Settings

	// ClipboardOK reports whether the system clipboard is usable; when
	// false the "Copy Summary" button stays disabled
	ClipboardOK bool
}

// NewAppState creates and initializes the application state.
// This should be called once at application startup.
func NewAppState(window fyne.Window, settings config.Settings) *AppState {
	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("[UI] clipboard unavailable: %v", err)
		clipboardOK = false
	}

	return &AppState{
		Window:      window,
		Mood:        mood.NewState(),
		Theme:       mood.NewTheme(),
		Settings:    settings,
		ClipboardOK: clipboardOK,
	}
}
