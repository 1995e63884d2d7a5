package main

import "github.com/charmbracelet/lipgloss"

var (
	sheetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8C42")).
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)
