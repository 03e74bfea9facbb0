package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettingsInRange(t *testing.T) {
	s := DefaultSettings()
	if s.WindowWidth < MinWindowSize || s.WindowWidth > MaxWindowSize {
		t.Fatalf("default width %d out of range", s.WindowWidth)
	}
	if s.WindowHeight < MinWindowSize || s.WindowHeight > MaxWindowSize {
		t.Fatalf("default height %d out of range", s.WindowHeight)
	}
	if s.AssetsDir != "" {
		t.Fatalf("default assets dir = %q, want empty", s.AssetsDir)
	}
}

func TestSettingsWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	want := Settings{WindowWidth: 800, WindowHeight: 600, AssetsDir: "/tmp/moods"}

	if err := writeSettings(path, want); err != nil {
		t.Fatalf("writeSettings: %v", err)
	}
	got, err := readSettings(path)
	if err != nil {
		t.Fatalf("readSettings: %v", err)
	}
	if got != want {
		t.Fatalf("settings round trip: got %+v, want %+v", got, want)
	}
}

func TestReadSettingsSanitizesOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := writeSettings(path, Settings{WindowWidth: -10, WindowHeight: 100000}); err != nil {
		t.Fatalf("writeSettings: %v", err)
	}

	got, err := readSettings(path)
	if err != nil {
		t.Fatalf("readSettings: %v", err)
	}
	defaults := DefaultSettings()
	if got.WindowWidth != defaults.WindowWidth {
		t.Fatalf("width = %d, want default %d", got.WindowWidth, defaults.WindowWidth)
	}
	if got.WindowHeight != defaults.WindowHeight {
		t.Fatalf("height = %d, want default %d", got.WindowHeight, defaults.WindowHeight)
	}
}

func TestReadSettingsRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("window_width = \"wide\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := readSettings(path)
	if err == nil {
		t.Fatal("expected an error for a malformed settings file")
	}
	// Even on error the returned settings must be usable.
	if got != DefaultSettings() {
		t.Fatalf("settings after decode error = %+v, want defaults", got)
	}
}

func TestReadSettingsKeepsPartialFile(t *testing.T) {
	// A settings file that only sets one key keeps the defaults for the rest.
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("window_width = 1024\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := readSettings(path)
	if err != nil {
		t.Fatalf("readSettings: %v", err)
	}
	if got.WindowWidth != 1024 {
		t.Fatalf("width = %d, want 1024", got.WindowWidth)
	}
	if got.WindowHeight != DefaultSettings().WindowHeight {
		t.Fatalf("height = %d, want default", got.WindowHeight)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	got, err := expandPath("~/.config/moodscape")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if got != filepath.Join(home, ".config/moodscape") {
		t.Fatalf("expandPath = %q", got)
	}

	plain, err := expandPath("/var/tmp")
	if err != nil || plain != "/var/tmp" {
		t.Fatalf("expandPath(/var/tmp) = %q, %v", plain, err)
	}
}
