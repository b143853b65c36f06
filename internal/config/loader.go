package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// appFs is the filesystem all config reads and writes go through.
var appFs afero.Fs = afero.NewOsFs()

// UseFs replaces the config filesystem and returns the previous one.
func UseFs(fs afero.Fs) afero.Fs {
	prev := appFs
	appFs = fs
	return prev
}

// LoadYAML loads a YAML file into the provided struct.
func LoadYAML(path string, v interface{}) error {
	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	return nil
}

// SaveYAML saves a struct to a YAML file.
func SaveYAML(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := appFs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := afero.WriteFile(appFs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	ok, err := afero.Exists(appFs, path)
	return err == nil && ok
}

// ReadText reads a whole text file, e.g. the banner.
func ReadText(path string) (string, error) {
	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
