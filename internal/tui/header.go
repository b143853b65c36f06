package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderHeader(st styles, screen, sessionID string, entries int, width int) string {
	dot := lipgloss.NewStyle().Foreground(st.accent).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("Abacus")
	left := fmt.Sprintf(" %s %s  %s", dot, name, dimStyle.Render(screen))

	right := dimStyle.Render(fmt.Sprintf("%d in history", entries))
	if len(sessionID) >= 8 {
		right += dimStyle.Render("  session " + sessionID[:8])
	}
	right += " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
