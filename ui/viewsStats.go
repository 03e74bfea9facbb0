package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.design/x/clipboard"

	"moodscape/config"
	"moodscape/mood"
)

// StatsView shows the per-mood selection counters and offers a clipboard
// copy of the session summary.
type StatsView struct {
	Card fyne.CanvasObject

	state       *AppState
	countLabels map[mood.Mood]*widget.Label
	totalLabel  *widget.Label
}

// NewStatsView creates the stats card wired to the mood state.
func NewStatsView(state *AppState) *StatsView {
	v := &StatsView{
		state:       state,
		countLabels: make(map[mood.Mood]*widget.Label, len(mood.AllMoods)),
		totalLabel:  widget.NewLabel(""),
	}

	rows := make([]fyne.CanvasObject, 0, len(mood.AllMoods)+1)
	for _, m := range mood.AllMoods {
		label := widget.NewLabel("")
		v.countLabels[m] = label
		rows = append(rows, label)
	}
	rows = append(rows, v.totalLabel)

	copyBtn := widget.NewButton("Copy Summary", v.onCopyTapped)
	if !state.ClipboardOK {
		copyBtn.Disable()
	}

	content := container.NewVBox(append(rows, copyBtn)...)
	v.Card = NewCardWithHeader(state, "Stats", content)

	v.refresh()
	state.Mood.OnChange(v.refresh)

	return v
}

func (v *StatsView) refresh() {
	counts := v.state.Mood.Counts()
	total := 0
	for _, m := range mood.AllMoods {
		v.countLabels[m].SetText(fmt.Sprintf("%s: %d", mood.Title(m), counts[m]))
		total += counts[m]
	}
	v.totalLabel.SetText(fmt.Sprintf("Total: %d", total))
}

// onCopyTapped puts the formatted session summary on the system clipboard.
func (v *StatsView) onCopyTapped() {
	summary := config.FormatSnapshot(config.BuildSnapshot(v.state.Mood, v.state.Theme))
	clipboard.Write(clipboard.FmtText, []byte(summary))
	log.Println("[UI] Stats summary copied to clipboard")
}

// HistoryView shows the last three selections, most recent first, each with
// a square in the mood's accent color.
type HistoryView struct {
	Card fyne.CanvasObject

	state *AppState
	rows  *fyne.Container
}

// NewHistoryView creates the history card wired to the mood state.
func NewHistoryView(state *AppState) *HistoryView {
	v := &HistoryView{
		state: state,
		rows:  container.NewVBox(),
	}
	v.Card = NewCardWithHeader(state, "Recent", v.rows)

	v.refresh()
	state.Mood.OnChange(v.refresh)

	return v
}

func (v *HistoryView) refresh() {
	v.rows.RemoveAll()

	history := v.state.Mood.History()
	if len(history) == 0 {
		v.rows.Add(widget.NewLabel("No selections yet"))
		v.rows.Refresh()
		return
	}

	for _, m := range history {
		dot := canvas.NewRectangle(mood.BaseColor(m))
		dot.SetMinSize(fyne.NewSize(HistoryDotSize, HistoryDotSize))
		v.rows.Add(container.NewHBox(
			container.NewCenter(dot),
			widget.NewLabel(mood.Title(m)),
		))
	}
	v.rows.Refresh()
}
