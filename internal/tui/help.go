package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"Ctrl+q", "Quit"},
			{"Ctrl+h / F1", "Toggle help (F1 in operand fields)"},
		},
	},
	{
		title: "Menus",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate"},
			{"1-6 / a-f", "Choose entry"},
			{"Enter", "Select"},
			{"Esc", "Back"},
		},
	},
	{
		title: "Operands",
		keys: []helpKey{
			{"Tab", "Next field"},
			{"Shift+Tab", "Previous field"},
			{"Enter", "Next field / calculate"},
			{"Esc", "Cancel"},
		},
	},
	{
		title: "History",
		keys: []helpKey{
			{"j/k PgUp/PgDn", "Scroll"},
			{"c", "Clear history"},
			{"Esc", "Back to menu"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 52
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	sections := []string{overlayTitleStyle.Render("Keyboard Shortcuts")}
	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(16).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			sections = append(sections, "  "+keyCol+hintStyle.Render(k.desc))
		}
	}
	sections = append(sections, "", hintStyle.Render("Press Esc or Ctrl+h to close"))

	return overlayStyle.Width(maxWidth).Render(strings.Join(sections, "\n"))
}
