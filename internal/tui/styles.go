// Package tui holds the terminal styles used for text output.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Section headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	// Keys of key/value listings
	KeyStyle = lipgloss.NewStyle().
			Bold(true)

	// Diagnostic codes
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	// Enabled integrations and supported runners
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	// Disabled or unsupported entries
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// KeyValue renders a padded key followed by its value.
func KeyValue(key string, width int, value string) string {
	return KeyStyle.Render(padRight(key, width)) + "  " + value
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
