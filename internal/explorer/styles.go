// Package explorer implements the interactive terminal views. Each model's
// Update loop is the only writer of the state it wraps.
package explorer

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#4682B4")
	colorSub    = lipgloss.Color("#64748B")
	colorWarn   = lipgloss.Color("#F59E0B")

	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(colorSub)
	statusStyle = lipgloss.NewStyle().Foreground(colorWarn)
	focusStyle  = lipgloss.NewStyle().Foreground(colorAccent)
)
