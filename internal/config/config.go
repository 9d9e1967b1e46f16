// Package config loads and persists the Brik settings file. The file stores
// the selected theme between runs alongside gallery and Webflow options; it
// is the local-storage analogue of the design system's theme switcher.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/brikdesigns/brik/pkg/errors"
)

// Settings is the on-disk configuration model.
type Settings struct {
	// Theme is the persisted theme name.
	Theme   string          `yaml:"theme" validate:"omitempty,theme_name"`
	Gallery GallerySettings `yaml:"gallery"`
	Webflow WebflowSettings `yaml:"webflow"`
}

// GallerySettings configures the component explorer.
type GallerySettings struct {
	// ReducedMotion disables reveal and parallax animation.
	ReducedMotion bool `yaml:"reduced_motion"`
	// FrameRate is the explorer animation frame rate in Hz.
	FrameRate int `yaml:"frame_rate" validate:"omitempty,min=1,max=240"`
	// ParallaxSpeed overrides the default drift speed. Malformed values fall
	// back to the built-in default rather than failing the load.
	ParallaxSpeed string `yaml:"parallax_speed"`
}

// WebflowSettings configures the page-creation client. The token may also be
// supplied through the WEBFLOW_TOKEN environment variable, which wins.
type WebflowSettings struct {
	Token  string `yaml:"token"`
	SiteID string `yaml:"site_id"`
}

// Default returns the settings used when no file exists yet.
func Default() Settings {
	return Settings{
		Theme:   "light",
		Gallery: GallerySettings{FrameRate: 60},
	}
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads and validates the settings file at path. A missing file yields
// the defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, apperrors.NewParseError(path, 0, err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, apperrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Save writes the settings file, creating parent directories as needed.
func Save(path string, settings Settings) error {
	if err := Validate(&settings); err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "brik", "brik.yaml"), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

// FileStore adapts the settings file to the theme persistence interface.
type FileStore struct {
	Path string
}

// LoadThemeName reads the persisted theme name, "" when none is stored.
func (s FileStore) LoadThemeName() (string, error) {
	settings, err := Load(s.Path)
	if err != nil {
		return "", err
	}
	return settings.Theme, nil
}

// SaveThemeName persists the theme name, preserving unrelated settings.
func (s FileStore) SaveThemeName(name string) error {
	settings, err := Load(s.Path)
	if err != nil {
		return err
	}
	settings.Theme = name
	return Save(s.Path, settings)
}
