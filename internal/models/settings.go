package models

// Theme names accepted in settings.yaml.
const (
	ThemeDefault = "default"
	ThemeGreen   = "green"
	ThemeBlue    = "blue"
	ThemeYellow  = "yellow"
)

// Themes lists the themes in menu order.
var Themes = []string{ThemeDefault, ThemeGreen, ThemeBlue, ThemeYellow}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// AppearanceConfig holds appearance settings.
type AppearanceConfig struct {
	Theme     string `yaml:"theme"`            // "default" | "green" | "blue" | "yellow"
	Animation bool   `yaml:"animation"`        // show the "Processing..." animation
	Banner    string `yaml:"banner,omitempty"` // optional banner text file
}

// LimitsConfig bounds expensive operations.
type LimitsConfig struct {
	MaxFactorial int `yaml:"max_factorial"`
}

// Settings represents global application settings.
// This corresponds to ~/.abacus/settings.yaml.
type Settings struct {
	Version    int              `yaml:"version"`
	Appearance AppearanceConfig `yaml:"appearance"`
	Limits     LimitsConfig     `yaml:"limits"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Appearance: AppearanceConfig{
			Theme:     ThemeDefault,
			Animation: true,
		},
		Limits: LimitsConfig{
			MaxFactorial: 5000,
		},
	}
}

// Normalize replaces unknown or missing values with defaults.
func (s *Settings) Normalize() {
	def := NewSettings()
	if s.Version == 0 {
		s.Version = def.Version
	}
	if !ValidTheme(s.Appearance.Theme) {
		s.Appearance.Theme = def.Appearance.Theme
	}
	if s.Limits.MaxFactorial <= 0 {
		s.Limits.MaxFactorial = def.Limits.MaxFactorial
	}
}
