// Package styles provides shared lipgloss styles for UI components.
//
// Colors are defined once here so the prompts and the list table look
// the same.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success is used for checkmarks and positive outcomes (green)
	Success color.Color = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error color.Color = lipgloss.Color("196")

	// Muted is used for disabled/inactive text (gray)
	Muted color.Color = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal color.Color = lipgloss.Color("252")

	// Warning marks detached worktrees (orange)
	Warning color.Color = lipgloss.Color("214")
)

// Common styles
var (
	Bold = lipgloss.NewStyle().Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// HighlightStyle marks fuzzy-matched characters
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)
)
