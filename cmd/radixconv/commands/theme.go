package commands

import "github.com/charmbracelet/lipgloss"

const lineWidth = 60

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Width(lineWidth).
			Align(lipgloss.Center).
			Border(lipgloss.DoubleBorder(), true, false)

	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)
