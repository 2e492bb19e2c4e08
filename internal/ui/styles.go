// Package ui handles terminal UI rendering.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#800080") // Purple
	ColorSecondary = lipgloss.Color("#c8a2c8") // Lilac
	ColorSuccess   = lipgloss.Color("2")
	ColorDanger    = lipgloss.Color("1")
	ColorMuted     = lipgloss.Color("245")
	ColorBorder    = lipgloss.Color("8")
	ColorText      = lipgloss.Color("252")
	ColorOnPrimary = lipgloss.Color("#ffffff")
	ColorTrack     = lipgloss.Color("#e0e0e0")
)

// StrengthColors maps a password strength score to its meter color.
var StrengthColors = [...]lipgloss.Color{
	"#d32f2f", // Weak
	"#f57c00", // Fair
	"#fbc02d", // Good
	"#388e3c", // Strong
}

// Styles
var (
	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	// Title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Field label styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	// Input style
	InputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	FocusedInputStyle = InputStyle.
				BorderForeground(ColorPrimary)

	// Message styles
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Divider style
	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Symbols
const (
	SymbolCursor  = "›"
	SymbolDivider = "─"
	SymbolError   = "✗"
	SymbolSuccess = "✓"
)
