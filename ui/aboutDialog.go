package ui

import (
	"moodscape/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

func ShowAboutDialog(moodApp fyne.App) {
	title := widget.NewLabel("Moodscape")
	title.TextStyle = fyne.TextStyle{Bold: true}

	version := widget.NewLabel(
		"Version: " + config.Version +
			"\nCommit: " + config.GitCommit +
			"\nBuilt: " + config.BuildTime,
	)

	version.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(
		"A single-screen mood tracker. Pick a mood and the whole screen follows.",
	)
	description.Wrapping = fyne.TextWrapWord

	features := widget.NewLabel(
		"Features:\n" +
			"• Three moods: Happy, Sad, Excited\n" +
			"• Random pick with uniform odds\n" +
			"• Selection counters and a 3-deep history\n" +
			"• Light and dark themes\n" +
			"• Your own mood images via the assets directory\n" +
			"• Session snapshot export",
	)
	features.Wrapping = fyne.TextWrapWord

	// Centered bold title
	centeredTitle := container.NewCenter(title)

	// centered version
	centeredVersion := container.NewCenter(version)

	// Declare window first so the close button can reference it
	var aboutWin fyne.Window
	closeBtn := widget.NewButton("Close", func() {
		aboutWin.Close()
	})

	// Main content (scrollable)
	mainContent := container.NewVBox(
		centeredTitle,
		centeredVersion,
		widget.NewSeparator(),
		description,
		widget.NewSeparator(),
		features,
	)

	scroll := container.NewScroll(mainContent)

	// Bottom area: separator + centered Close button
	bottom := container.NewVBox(
		widget.NewSeparator(),
		container.NewCenter(closeBtn),
	)

	// Border layout: scroll in center, close button at bottom
	content := container.NewBorder(nil, bottom, nil, nil, scroll)

	// Create and show window
	aboutWin = moodApp.NewWindow("About Moodscape")
	aboutWin.SetContent(content)
	aboutWin.Resize(fyne.NewSize(400, 400))
	aboutWin.SetFixedSize(true)
	aboutWin.Show()
}
