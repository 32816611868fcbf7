package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mwolczyk/copilot-meter/internal/core"
)

// ─── Color Palette (Tokyo Night) ────────────────────────────────────────────

var (
	colorBgDark    = lipgloss.Color("#16161e")
	colorHighlight = lipgloss.Color("#292e42")
	colorBorder    = lipgloss.Color("#3b4261")
	colorFg        = lipgloss.Color("#c0caf5")
	colorFgDark    = lipgloss.Color("#a9b1d6")
	colorMuted     = lipgloss.Color("#565f89")
	colorBlue      = lipgloss.Color("#7aa2f7")
	colorCyan      = lipgloss.Color("#7dcfff")
	colorGreen     = lipgloss.Color("#9ece6a")
	colorYellow    = lipgloss.Color("#e0af68")
	colorRed       = lipgloss.Color("#f7768e")
	colorMagenta   = lipgloss.Color("#bb9af7")
	colorOrange    = lipgloss.Color("#ff9e64")
)

// ─── Reusable Styles ────────────────────────────────────────────────────────

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorFgDark)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorMagenta).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	headerPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBlue).
				Padding(0, 1)
)

// levelColor maps a usage level onto the palette.
func levelColor(level core.UsageLevel) lipgloss.Color {
	switch level {
	case core.LevelCritical:
		return colorRed
	case core.LevelWarning:
		return colorYellow
	default:
		return colorGreen
	}
}
