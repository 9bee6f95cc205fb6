// Package ui holds the lipgloss styles shared by the jumplist commands.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette (matches the classic jumplist scheme):
// - File paths: yellow
// - Line numbers: green
// - Section headings: cyan (overridable via [ui] accent in config)

var (
	// File style for file path fields
	File = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// Line style for line number fields
	Line = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// Section style for section heading labels
	Section = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// ConfigureAccent overrides the section heading color.
// Accepts ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
// An empty value keeps the default.
func ConfigureAccent(accent string) {
	if accent == "" {
		return
	}
	Section = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
}
