// Package ui renders human-facing build progress to the terminal.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles for build output.
var (
	prefixStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	targetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Icons.
const (
	iconCheck  = "✓"
	iconCross  = "✗"
	iconCircle = "○"
)
