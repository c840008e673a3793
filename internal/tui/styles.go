package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#4C78A8")
	colorMuted   = lipgloss.Color("#7F7F7F")
	colorWarn    = lipgloss.Color("#F58518")
	colorError   = lipgloss.Color("#E45756")
	colorSurface = lipgloss.Color("#3A3A3A")

	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	dimStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle     = lipgloss.NewStyle().Foreground(colorWarn)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	activeTab     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colorAccent).Padding(0, 1)
	inactiveTab   = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	trackStyle    = lipgloss.NewStyle().Foreground(colorSurface)
	helpStyle     = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#54A24B"))
)
