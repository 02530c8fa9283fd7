package dashboard

import "github.com/charmbracelet/lipgloss"

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	colorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	colorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}

	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	styleMuted    = lipgloss.NewStyle().Foreground(colorMuted)
	styleSuccess  = lipgloss.NewStyle().Foreground(colorSuccess)
	styleError    = lipgloss.NewStyle().Foreground(colorError)
	styleBold     = lipgloss.NewStyle().Bold(true)
	styleTabOn    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Underline(true).Padding(0, 2)
	styleTabOff   = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 2)
	styleBarFill  = lipgloss.NewStyle().Foreground(colorAccent)
	styleCardBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			Width(cardWidth)
	styleErrorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(1, 3).
			Align(lipgloss.Center)

	iconSuccess = "✔"
	iconError   = "✘"
)

const (
	cardWidth = 24
	barWidth  = 30
)
