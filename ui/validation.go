package ui

import (
	"fmt"
	"strconv"
	"strings"

	"moodscape/config"
)

// parseDimension converts a settings entry into a window dimension,
// enforcing the accepted range.
func parseDimension(name, text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", name)
	}
	if value < config.MinWindowSize || value > config.MaxWindowSize {
		return 0, fmt.Errorf("%s must be between %d and %d", name, config.MinWindowSize, config.MaxWindowSize)
	}
	return value, nil
}

// ValidateSettingsInput checks the settings form fields and returns the
// parsed settings. The assets dir may be empty (placeholders are used); a
// non-empty value is kept verbatim since missing files already fall back.
func ValidateSettingsInput(widthText, heightText, assetsDir string) (config.Settings, error) {
	width, err := parseDimension("window width", widthText)
	if err != nil {
		return config.Settings{}, err
	}
	height, err := parseDimension("window height", heightText)
	if err != nil {
		return config.Settings{}, err
	}

	return config.Settings{
		WindowWidth:  width,
		WindowHeight: height,
		AssetsDir:    strings.TrimSpace(assetsDir),
	}, nil
}
