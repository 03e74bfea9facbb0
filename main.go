package main

// Application initialization only. Everything else lives in packages:
//
// - mood/    : Core state (current mood, counters, history, theme flag) and
//              the derivation tables mapping a mood to its display attributes
// - assets/  : Mood imagery (user files or generated placeholders)
// - config/  : Settings (settings.toml), rotating log file, version info,
//              session snapshot export
// - models/  : Shared data structures (exported snapshot)
// - ui/      : Views, components, and windows bound to the mood state

import (
	"bytes"
	"image/png"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"moodscape/assets"
	"moodscape/config"
	"moodscape/mood"
	"moodscape/ui"
)

func main() {

	configDir, err := config.VerifyConfigDirectory()
	if err != nil {
		log.Fatalf("cannot prepare config directory: %v", err)
	}
	if err := config.InitLogger(configDir); err != nil {
		// Keep running with stderr-only logging.
		log.Printf("file logging unavailable: %v", err)
	}
	defer config.CloseLogger()

	settings, err := config.LoadSettings()
	if err != nil {
		log.Printf("using default settings: %v", err)
		settings = config.DefaultSettings()
	}

	// Create a new Fyne application instance
	moodApp := app.NewWithID("org.moodscape.app") // must match your AppMetadata.ID

	moodMetadata := fyne.AppMetadata{
		ID:      "org.moodscape.app",
		Name:    "Moodscape",
		Version: config.Version,
	}

	app.SetMetadata(moodMetadata)

	// Create the main application window
	myWindow := moodApp.NewWindow("moodscape")

	// -------------------------
	// Set title bar & taskbar icon
	// -------------------------
	// The icon is the Happy placeholder image, so no binary asset ships
	// with the source.
	if icon := appIcon(); icon != nil {
		myWindow.SetIcon(icon)
	}

	// Build the complete UI layout; state comes back so the menus and
	// shortcuts below can drive the same containers the views observe.
	content, state := ui.BuildMainLayout(myWindow, settings)

	// -------------------------------------------------------------------------
	// MENUS
	// -------------------------------------------------------------------------
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Logs", func() {
			log.Println("[UI] Moodscape Logs opened (GUI)")
			ui.ShowLogWindow(moodApp)
		}),
		fyne.NewMenuItem("Export Snapshot...", func() {
			log.Println("[UI] Export Snapshot triggered (GUI)")
			ui.ShowExportSnapshotDialog(myWindow, state)
		}),
		fyne.NewMenuItem("Settings", func() {
			log.Println("[UI] Moodscape settings opened (GUI)")
			ui.ShowSettingsWindow(moodApp)
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			log.Println("[UI] About dialog opened")
			ui.ShowAboutDialog(moodApp)
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, helpMenu)
	myWindow.SetMainMenu(mainMenu)

	// -------------------------------------------------------------------------
	// KEYBOARD SHORTCUTS
	// -------------------------------------------------------------------------
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] User closed application (ctrl + q)")
		moodApp.Quit()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Moodscape Logs opened (ctrl + l)")
		ui.ShowLogWindow(moodApp)
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyR,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Random mood requested (ctrl + r)")
		state.Mood.Randomize()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyT,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Theme toggled (ctrl + t)")
		state.Theme.Toggle()
	})

	myWindow.SetCloseIntercept(func() {
		log.Println("[UI] User closed application")
		moodApp.Quit()
	})

	// Set initial window size from settings.toml
	myWindow.Resize(fyne.NewSize(float32(settings.WindowWidth), float32(settings.WindowHeight)))

	myWindow.SetContent(content)

	// Show the window and run the event loop
	myWindow.ShowAndRun()
}

// appIcon encodes the Happy placeholder as the window icon.
func appIcon() fyne.Resource {
	var buf bytes.Buffer
	if err := png.Encode(&buf, assets.Placeholder(mood.Happy)); err != nil {
		log.Printf("cannot build app icon: %v", err)
		return nil
	}
	return fyne.NewStaticResource("moodscape.png", buf.Bytes())
}
