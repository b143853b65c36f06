package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/abacus/internal/models"
)

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "25", Dark: "75"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// themeAccents maps a theme name to its accent color.
var themeAccents = map[string]lipgloss.AdaptiveColor{
	models.ThemeDefault: colorCyan,
	models.ThemeGreen:   colorGreen,
	models.ThemeBlue:    colorBlue,
	models.ThemeYellow:  colorYellow,
}

// styles is the set of theme-dependent styles. Everything else is static.
type styles struct {
	accent       lipgloss.AdaptiveColor
	title        lipgloss.Style
	box          lipgloss.Style
	selectedItem lipgloss.Style
	result       lipgloss.Style
	label        lipgloss.Style
}

func newStyles(theme string) styles {
	accent, ok := themeAccents[theme]
	if !ok {
		accent = colorCyan
	}
	return styles{
		accent: accent,
		title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		selectedItem: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"}),
		result: lipgloss.NewStyle().Bold(true).Foreground(accent),
		label: lipgloss.NewStyle().
			Width(28).
			Foreground(colorDim),
	}
}

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	itemStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	errorResultStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorRed)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)
