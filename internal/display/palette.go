package display

import "github.com/charmbracelet/lipgloss"

// Shared color palette. Every styled surface (banner, CLI help, progress
// bar, log level badges) draws from these, so a retheme touches one file.
var (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorInfo    = lipgloss.Color("#3B82F6")
	ColorSuccess = lipgloss.Color("#10B981")
	ColorWarn    = lipgloss.Color("#F59E0B")
	ColorError   = lipgloss.Color("#EF4444")
	ColorDebug   = lipgloss.Color("#9CA3AF")
)
