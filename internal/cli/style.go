package cli

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#5f4ef5")

	tutorLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headingStyle    = lipgloss.NewStyle().Bold(true)
	chartStyle      = lipgloss.NewStyle().Foreground(accent)
	mutedStyle      = lipgloss.NewStyle().Faint(true)
)
