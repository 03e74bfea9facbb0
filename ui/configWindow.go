package ui

import (
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"moodscape/config"
)

// ShowSettingsWindow opens the settings editor for settings.toml: window
// size and the optional assets directory. Saved values apply on the next
// launch; the running window keeps its current size.
func ShowSettingsWindow(moodApp fyne.App) {
	settingsWindow := moodApp.NewWindow("Moodscape Settings")
	settingsWindow.Resize(fyne.NewSize(420, 320))

	settings, err := config.LoadSettings()
	if err != nil {
		log.Printf("[UI] cannot load settings, editing defaults: %v", err)
		settings = config.DefaultSettings()
	}

	widthEntry := widget.NewEntry()
	widthEntry.SetText(strconv.Itoa(settings.WindowWidth))

	heightEntry := widget.NewEntry()
	heightEntry.SetText(strconv.Itoa(settings.WindowHeight))

	assetsEntry := widget.NewEntry()
	assetsEntry.SetText(settings.AssetsDir)
	assetsEntry.SetPlaceHolder("Leave empty for generated mood images")

	form := widget.NewForm(
		widget.NewFormItem("Window width", widthEntry),
		widget.NewFormItem("Window height", heightEntry),
		widget.NewFormItem("Assets directory", assetsEntry),
	)

	note := widget.NewLabel("Window size changes apply after restart.")
	note.Wrapping = fyne.TextWrapWord

	saveBtn := widget.NewButton("Save", func() {
		updated, err := ValidateSettingsInput(widthEntry.Text, heightEntry.Text, assetsEntry.Text)
		if err != nil {
			dialog.ShowError(err, settingsWindow)
			return
		}
		if err := config.SaveSettings(updated); err != nil {
			log.Printf("[UI] failed to save settings: %v", err)
			dialog.ShowError(fmt.Errorf("failed to save settings: %v", err), settingsWindow)
			return
		}
		log.Printf("[UI] Settings saved: %dx%d assets=%q",
			updated.WindowWidth, updated.WindowHeight, updated.AssetsDir)
		dialog.ShowInformation("Saved", "Settings saved to settings.toml", settingsWindow)
	})

	closeBtn := widget.NewButton("Close", func() {
		settingsWindow.Close()
	})

	content := container.NewVBox(
		form,
		note,
		widget.NewSeparator(),
		container.NewGridWithColumns(2, saveBtn, closeBtn),
	)

	settingsWindow.SetContent(container.NewPadded(content))
	settingsWindow.Show()
}
