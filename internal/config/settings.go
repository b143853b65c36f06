package config

import (
	"github.com/watchfire-io/abacus/internal/models"
)

// LoadSettings loads the global settings from ~/.abacus/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom loads settings from path. Keys missing from the file keep
// their default values; a missing file yields the defaults.
func LoadSettingsFrom(path string) (*models.Settings, error) {
	s := models.NewSettings()
	if !FileExists(path) {
		return s, nil
	}
	if err := LoadYAML(path, s); err != nil {
		return nil, err
	}
	s.Normalize()
	return s, nil
}

// SaveSettings saves the global settings to ~/.abacus/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
