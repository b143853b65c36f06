package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// confirmMode values.
const (
	confirmNone  = 0
	confirmClear = 1
	confirmQuit  = 2
)

func renderStatusBar(m *Model, width int) string {
	switch m.confirmMode {
	case confirmClear:
		return renderConfirmBar("Are you sure you want to clear history? (y/n)", width)
	case confirmQuit:
		return renderConfirmBar("Are you sure you want to exit? (y/n)", width)
	}

	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	if m.notice != "" {
		return statusBarStyle.
			Width(width).
			Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render(m.notice))
	}

	left := " " + getKeyHints(m)
	right := hintStyle.Render(m.settings.Appearance.Theme) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.activeOverlay != overlayNone {
		return keyHint("Esc", "close")
	}

	helpKey := "Ctrl+h"
	if m.editing() {
		helpKey = "F1"
	}
	base := keyHint("Ctrl+q", "quit") + "  " + keyHint(helpKey, "help")

	switch m.screen {
	case screenMenu:
		return base + "  " + keyHint("1-6", "choose") + "  " + keyHint("Enter", "select")
	case screenAdvanced:
		return base + "  " + keyHint("a-f", "choose") + "  " + keyHint("Esc", "back")
	case screenForm:
		if m.result != nil {
			return base + "  " + keyHint("Enter", "menu")
		}
		return base + "  " + keyHint("Tab", "next") + "  " + keyHint("Enter", "calculate") + "  " + keyHint("Esc", "cancel")
	case screenHistory:
		return base + "  " + keyHint("j/k", "scroll") + "  " + keyHint("c", "clear") + "  " + keyHint("Esc", "back")
	case screenTheme:
		return base + "  " + keyHint("1-4", "choose") + "  " + keyHint("Esc", "back")
	}
	return base
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}
