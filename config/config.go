package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	configDirPath    = "~/.config/moodscape"
	settingsFileName = "settings.toml"

	// Window size bounds accepted from settings.toml. Values outside this
	// range fall back to the defaults rather than producing an unusable
	// window.
	MinWindowSize = 320
	MaxWindowSize = 4096
)

// Settings holds the user-tunable options stored in settings.toml.
//
// The dark/light theme flag is intentionally absent: the theme always starts
// light and is never written to disk.
type Settings struct {
	WindowWidth  int    `toml:"window_width"`
	WindowHeight int    `toml:"window_height"`
	AssetsDir    string `toml:"assets_dir"` // optional override for mood images
}

// DefaultSettings returns the settings used on first run and whenever a
// stored value is out of range.
func DefaultSettings() Settings {
	return Settings{
		WindowWidth:  520,
		WindowHeight: 760,
	}
}

// LoadSettings reads settings.toml from the config directory, creating the
// directory and a default settings file on first run. Out-of-range values
// are replaced with defaults so the caller never has to re-validate.
func LoadSettings() (Settings, error) {
	settingsPath, err := verifySettingsFile()
	if err != nil {
		return DefaultSettings(), fmt.Errorf("error verifying config files: %w", err)
	}
	return readSettings(settingsPath)
}

// SaveSettings writes the settings to settings.toml, creating the config
// directory if needed.
func SaveSettings(settings Settings) error {
	configDir, err := VerifyConfigDirectory()
	if err != nil {
		return fmt.Errorf("error verifying config directory: %w", err)
	}
	return writeSettings(filepath.Join(configDir, settingsFileName), settings)
}

func readSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("error decoding %s: %w", path, err)
	}
	return sanitize(settings), nil
}

func writeSettings(path string, settings Settings) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating settings file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(settings); err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}
	return nil
}

// sanitize clamps stored values back to usable defaults. An assets dir that
// does not exist is kept as-is: the assets package already falls back to
// placeholders for missing files.
func sanitize(settings Settings) Settings {
	defaults := DefaultSettings()
	if settings.WindowWidth < MinWindowSize || settings.WindowWidth > MaxWindowSize {
		settings.WindowWidth = defaults.WindowWidth
	}
	if settings.WindowHeight < MinWindowSize || settings.WindowHeight > MaxWindowSize {
		settings.WindowHeight = defaults.WindowHeight
	}
	settings.AssetsDir = strings.TrimSpace(settings.AssetsDir)
	return settings
}

// VerifyConfigDirectory checks that ~/.config/moodscape exists, creating it
// on first run.
func VerifyConfigDirectory() (string, error) {
	configDirectory, expandError := expandPath(configDirPath)
	if expandError != nil {
		return "", fmt.Errorf("cannot verify local configuration directory: %w", expandError)
	}

	// Check if the directory exists
	_, err := os.Stat(configDirectory)

	if os.IsNotExist(err) {
		// Create the directory with read/write/execute permissions for owner, and read/execute for others
		err := os.MkdirAll(configDirectory, 0755)
		if err != nil {
			return "", fmt.Errorf("error creating directory %s: %w", configDirectory, err)
		}
		log.Printf("Directory %s created successfully.\n", configDirectory)
	} else if err != nil {
		return "", fmt.Errorf("error checking directory %s: %w", configDirectory, err)
	}

	return configDirectory, nil
}

// verifySettingsFile ensures settings.toml exists, writing a default
// template on first run, and returns its path.
func verifySettingsFile() (string, error) {
	configDir, err := VerifyConfigDirectory()
	if err != nil {
		return "", err
	}

	settingsPath := filepath.Join(configDir, settingsFileName)

	_, err = os.Stat(settingsPath)

	if os.IsNotExist(err) {
		// File does not exist, create a template with the defaults
		log.Printf("Settings file not found, creating template at '%s'\n", settingsPath)

		if saveErr := writeSettings(settingsPath, DefaultSettings()); saveErr != nil {
			return "", fmt.Errorf("error creating settings file: %w", saveErr)
		}
		log.Printf("File '%s' created successfully.\n", settingsPath)

	} else if err != nil {
		// An error occurred other than the file not existing
		return "", fmt.Errorf("error checking file existence: %w", err)
	}

	return settingsPath, nil
}

// expandPath expands ~ to the user's home directory, or returns the path as-is
func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}
