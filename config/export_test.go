package config

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"moodscape/models"
	"moodscape/mood"
)

func sessionFixture() (*mood.State, *mood.Theme) {
	state := mood.NewState()
	state.SetMood(mood.Sad)
	state.SetMood(mood.Excited)
	state.SetMood(mood.Sad)
	theme := mood.NewTheme()
	theme.Toggle()
	return state, theme
}

func TestBuildSnapshot(t *testing.T) {
	state, theme := sessionFixture()
	snapshot := BuildSnapshot(state, theme)

	if snapshot.Current != "Sad" {
		t.Fatalf("current = %q, want Sad", snapshot.Current)
	}
	if !snapshot.Dark {
		t.Fatal("dark flag not captured")
	}
	if snapshot.Counts["Sad"] != 2 || snapshot.Counts["Excited"] != 1 || snapshot.Counts["Happy"] != 0 {
		t.Fatalf("counts = %v", snapshot.Counts)
	}
	want := []string{"Sad", "Excited", "Sad"}
	if len(snapshot.History) != len(want) {
		t.Fatalf("history = %v, want %v", snapshot.History, want)
	}
	for i := range want {
		if snapshot.History[i] != want[i] {
			t.Fatalf("history = %v, want %v", snapshot.History, want)
		}
	}
	if snapshot.TakenAt == "" || snapshot.Version == "" {
		t.Fatal("snapshot missing timestamp or version")
	}
}

func TestWriteSnapshotProducesValidJSON(t *testing.T) {
	state, theme := sessionFixture()

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, BuildSnapshot(state, theme)); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	var decoded models.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("exported snapshot is not valid JSON: %v", err)
	}
	if decoded.Current != "Sad" || decoded.Counts["Sad"] != 2 {
		t.Fatalf("decoded snapshot = %+v", decoded)
	}
}

func TestFormatSnapshotSummary(t *testing.T) {
	state, theme := sessionFixture()
	summary := FormatSnapshot(BuildSnapshot(state, theme))

	for _, want := range []string{
		"Current mood: Sad",
		"Selections: 3",
		"Happy 0",
		"Sad 2",
		"Excited 1",
		"Recent: Sad, Excited, Sad",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}
