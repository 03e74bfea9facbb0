package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"moodscape/config"
)

// ShowExportSnapshotDialog handles File > Export Snapshot: it captures the
// current session (mood, counters, history, theme) and writes it as JSON to
// a user-chosen file. The snapshot is a one-way export; the application
// never reads it back.
func ShowExportSnapshotDialog(window fyne.Window, state *AppState) {
	snapshot := config.BuildSnapshot(state.Mood, state.Theme)

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(fmt.Errorf("error opening save dialog: %v", err), window)
			return
		}

		if writer == nil {
			// User cancelled
			return
		}
		defer writer.Close()

		if err := config.WriteSnapshot(writer, snapshot); err != nil {
			log.Printf("[UI] Snapshot export failed: %v", err)
			dialog.ShowError(fmt.Errorf("failed to write snapshot: %v", err), window)
			return
		}

		log.Printf("[UI] Snapshot exported to %s", writer.URI())
		dialog.ShowInformation("Success", "Snapshot exported successfully!", window)
	}, window)

	// Set default filename
	saveDialog.SetFileName("moodscape-snapshot.json")
	saveDialog.Show()
}
