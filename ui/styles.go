package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorRed     = lipgloss.Color("#FF5555")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorBlue    = lipgloss.Color("#6272FF")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorGray    = lipgloss.Color("#6272A4")
	colorBlack   = lipgloss.Color("#000000")
	colorWhite   = lipgloss.Color("#F8F8F2")

	titleStyle   = lipgloss.NewStyle().Bold(true)
	deadStyle    = lipgloss.NewStyle().Foreground(colorGray)
	labelStyle   = lipgloss.NewStyle().Foreground(colorGray)
	currentStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	cpuStyle     = lipgloss.NewStyle().Foreground(colorCyan)
	memStyle     = lipgloss.NewStyle().Foreground(colorMagenta)
	riseStyle    = lipgloss.NewStyle().Foreground(colorRed)
	fallStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	exitedStyle  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	helpBarStyle = lipgloss.NewStyle().Foreground(colorBlack).Background(colorWhite)
)

// markerRune styles one marker-line rune.
func markerRune(r rune) string {
	switch r {
	case '+':
		return riseStyle.Render("+")
	case '-':
		return fallStyle.Render("-")
	}
	return " "
}
