package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/n3il-kb/portfolio/pkg/plotpage"
)

const (
	prefsDir  = "portfolio"
	prefsFile = "preferences.yaml"
)

// Preferences are the user-local settings remembered between builds.
type Preferences struct {
	ColorScheme plotpage.Theme `yaml:"color_scheme"`
}

// DefaultPreferencesPath returns the preferences file under the user config
// directory.
func DefaultPreferencesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}

	return filepath.Join(dir, prefsDir, prefsFile), nil
}

// LoadPreferences reads path. A missing file or an empty scheme yields the
// automatic scheme; an unknown scheme is an error.
func LoadPreferences(path string) (Preferences, error) {
	prefs := Preferences{ColorScheme: plotpage.ThemeAuto}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return prefs, nil
	}

	if err != nil {
		return prefs, fmt.Errorf("read preferences: %w", err)
	}

	var raw struct {
		ColorScheme string `yaml:"color_scheme"`
	}

	err = yaml.Unmarshal(data, &raw)
	if err != nil {
		return prefs, fmt.Errorf("decode preferences: %w", err)
	}

	if raw.ColorScheme == "" {
		return prefs, nil
	}

	theme, err := plotpage.ParseTheme(raw.ColorScheme)
	if err != nil {
		return prefs, fmt.Errorf("preferences %s: %w", path, err)
	}

	prefs.ColorScheme = theme

	return prefs, nil
}

// Save writes the preferences to path, creating its directory.
func (p Preferences) Save(path string) error {
	if _, err := plotpage.ParseTheme(string(p.ColorScheme)); err != nil {
		return err
	}

	err := os.MkdirAll(filepath.Dir(path), 0o750)
	if err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}

	return nil
}
