package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the button's colors.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonOutlined
)

// ParseButtonVariant maps a config value to a variant, defaulting to primary.
func ParseButtonVariant(s string) ButtonVariant {
	switch s {
	case "secondary":
		return ButtonSecondary
	case "outlined":
		return ButtonOutlined
	}
	return ButtonPrimary
}

// ButtonParams describes a button.
type ButtonParams struct {
	Text      string
	Variant   ButtonVariant
	LeftIcon  string
	RightIcon string

	Loading  bool
	Disabled bool
	Focused  bool

	// Small uses tighter padding.
	Small bool
	// Full stretches the button to Width.
	Full  bool
	Width int

	// SpinnerFrame is drawn before the text while loading.
	SpinnerFrame string
}

// Clickable reports whether pressing the button should trigger its action.
func (p ButtonParams) Clickable() bool {
	return !p.Loading && !p.Disabled
}

// Label returns the button text with icons and the loading decoration.
func (p ButtonParams) Label() string {
	var parts []string
	if p.Loading && p.SpinnerFrame != "" {
		parts = append(parts, p.SpinnerFrame)
	}
	if p.LeftIcon != "" {
		parts = append(parts, p.LeftIcon)
	}
	text := p.Text
	if p.Loading {
		text += " . . ."
	}
	parts = append(parts, text)
	if p.RightIcon != "" {
		parts = append(parts, p.RightIcon)
	}
	return strings.Join(parts, " ")
}

// Button renders a button.
func Button(p ButtonParams) string {
	style := lipgloss.NewStyle().Padding(0, 3).Align(lipgloss.Center)
	if p.Small {
		style = style.Padding(0, 2)
	}

	switch p.Variant {
	case ButtonSecondary:
		style = style.Background(ColorSecondary).Foreground(ColorOnPrimary)
	case ButtonOutlined:
		style = style.
			Foreground(ColorPrimary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary)
	default:
		style = style.Background(ColorPrimary).Foreground(ColorOnPrimary)
	}

	if !p.Clickable() {
		style = style.Faint(true)
	}
	if p.Focused {
		style = style.Bold(true).Underline(p.Clickable())
	}
	if p.Full && p.Width > 0 {
		w := p.Width
		if p.Variant == ButtonOutlined {
			w -= 2
		}
		style = style.Width(w)
	}

	out := style.Render(p.Label())
	if p.Focused {
		// Point at the label line; outlined buttons span three lines.
		lines := strings.Split(out, "\n")
		mid := len(lines) / 2
		for i := range lines {
			prefix := "  "
			if i == mid {
				prefix = SymbolCursor + " "
			}
			lines[i] = prefix + lines[i]
		}
		return strings.Join(lines, "\n")
	}
	return "  " + strings.ReplaceAll(out, "\n", "\n  ")
}
