package tui

import (
	"github.com/watchfire-io/abacus/internal/models"
)

// SettingsReloadedMsg carries settings re-read after settings.yaml changed.
type SettingsReloadedMsg struct {
	Settings *models.Settings
}

// SettingsSavedMsg signals the settings file was written.
type SettingsSavedMsg struct{}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// ClearNoticeMsg clears the transient notice ("Saved", "History cleared.").
type ClearNoticeMsg struct{}

// processingTickMsg advances the "Processing..." animation.
type processingTickMsg struct{}
