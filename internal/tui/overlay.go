package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay constants.
const (
	overlayNone = 0
	overlayHelp = 1
)

// renderOverlay centers overlayContent over a dimmed copy of base.
func renderOverlay(base, overlayContent string, width, height int) string {
	rows := strings.Split(base, "\n")
	for i, row := range rows {
		rows[i] = overlayDimStyle.Render(ansi.Strip(row))
	}

	box := strings.Split(overlayContent, "\n")
	top := max((height-len(box))/2, 1)
	left := max((width-lipgloss.Width(overlayContent))/2, 1)

	for i, line := range box {
		row := top + i
		if row >= len(rows) {
			break
		}
		rows[row] = spliceLine(rows[row], line, left)
	}
	return strings.Join(rows, "\n")
}

// spliceLine replaces the cells of bg starting at column left with line,
// keeping whatever of bg lies to either side.
func spliceLine(bg, line string, left int) string {
	bgWidth := lipgloss.Width(bg)
	out := ansi.Truncate(bg, left, "")
	if pad := left - bgWidth; pad > 0 {
		out += strings.Repeat(" ", pad)
	}
	out += "\033[0m" + line + "\033[0m"
	if end := left + lipgloss.Width(line); end < bgWidth {
		out += ansi.Cut(bg, end, bgWidth)
	}
	return out
}

// truncateContent clips content to width columns and height rows.
func truncateContent(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
