package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"moodscape/models"
	"moodscape/mood"
)

// BuildSnapshot captures the current mood session as an exportable record.
func BuildSnapshot(state *mood.State, theme *mood.Theme) models.Snapshot {
	counts := make(map[string]int, len(mood.AllMoods))
	for m, n := range state.Counts() {
		counts[mood.Title(m)] = n
	}

	history := state.History()
	names := make([]string, len(history))
	for i, m := range history {
		names[i] = mood.Title(m)
	}

	return models.Snapshot{
		TakenAt: time.Now().Format(time.RFC3339),
		Version: Version,
		Current: mood.Title(state.Current()),
		Dark:    theme.Dark(),
		Counts:  counts,
		History: names,
	}
}

// WriteSnapshot writes the snapshot as indented JSON.
func WriteSnapshot(w io.Writer, snapshot models.Snapshot) error {
	jsonData, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if _, err := w.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// FormatSnapshot renders the snapshot as the short human-readable summary
// used by the "Copy Summary" button on the stats card.
func FormatSnapshot(snapshot models.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Moodscape summary (%s)\n", snapshot.TakenAt)
	fmt.Fprintf(&b, "Current mood: %s\n", snapshot.Current)

	total := 0
	parts := make([]string, 0, len(mood.AllMoods))
	// Iterate AllMoods rather than the map so the order is stable.
	for _, m := range mood.AllMoods {
		n := snapshot.Counts[mood.Title(m)]
		total += n
		parts = append(parts, fmt.Sprintf("%s %d", mood.Title(m), n))
	}
	fmt.Fprintf(&b, "Selections: %d (%s)\n", total, strings.Join(parts, ", "))

	if len(snapshot.History) > 0 {
		fmt.Fprintf(&b, "Recent: %s\n", strings.Join(snapshot.History, ", "))
	}
	return b.String()
}
