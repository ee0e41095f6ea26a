package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/simforge/meshbatch/internal/display"
)

// Shared lipgloss styles for CLI help and error text, drawn from the
// display palette.
var (
	// TitleStyle is for primary headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(display.ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(display.ColorMuted)
)
