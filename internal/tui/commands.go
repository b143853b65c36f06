package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/abacus/internal/models"
)

func processingTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(_ time.Time) tea.Msg {
		return processingTickMsg{}
	})
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearNoticeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}

// saveSettingsCmd writes a copy of s so later edits in the model don't race
// with the write.
func saveSettingsCmd(save func(*models.Settings) error, s *models.Settings) tea.Cmd {
	snapshot := *s
	return func() tea.Msg {
		if err := save(&snapshot); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to save settings: %w", err)}
		}
		return SettingsSavedMsg{}
	}
}
