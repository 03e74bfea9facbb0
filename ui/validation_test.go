package ui

import (
	"strings"
	"testing"
)

func TestValidateSettingsInput(t *testing.T) {
	settings, err := ValidateSettingsInput("800", "600", "  /home/me/moods ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.WindowWidth != 800 || settings.WindowHeight != 600 {
		t.Fatalf("parsed size = %dx%d", settings.WindowWidth, settings.WindowHeight)
	}
	if settings.AssetsDir != "/home/me/moods" {
		t.Fatalf("assets dir = %q, want trimmed path", settings.AssetsDir)
	}
}

func TestValidateSettingsInputEmptyAssetsDirAllowed(t *testing.T) {
	settings, err := ValidateSettingsInput("520", "760", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.AssetsDir != "" {
		t.Fatalf("assets dir = %q, want empty", settings.AssetsDir)
	}
}

func TestValidateSettingsInputRejectsBadValues(t *testing.T) {
	cases := []struct {
		name          string
		width, height string
		wantIn        string
	}{
		{"empty width", "", "600", "required"},
		{"non-numeric width", "wide", "600", "whole number"},
		{"too small height", "800", "10", "between"},
		{"too large width", "999999", "600", "between"},
	}
	for _, tc := range cases {
		_, err := ValidateSettingsInput(tc.width, tc.height, "")
		if err == nil {
			t.Errorf("%s: expected an error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantIn) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.wantIn)
		}
	}
}
