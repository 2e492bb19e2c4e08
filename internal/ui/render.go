package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Focus constants (matching app focus order)
const (
	FocusName = iota
	FocusEmail
	FocusPassword
	FocusButton
)

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	Width  int
	Height int

	Title    string
	Subtitle string

	NameInput     string
	EmailInput    string
	PasswordInput string
	Focus         int

	Strength          int
	ShowStrengthLabel bool
	EmailHint         string

	Err     string
	Success string

	Submitting    bool
	ButtonVariant ButtonVariant
	SpinnerFrame  string

	Help     string
	ShowHelp bool
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// MaxFormWidth caps the form width on wide terminals.
const MaxFormWidth = 64

// Render renders the full UI.
func Render(p RenderParams) string {
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Width > MaxFormWidth {
		p.Width = MaxFormWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}

	if p.ShowHelp {
		return renderHelp(p)
	}
	return renderForm(p)
}

// renderForm renders the sign-up form.
func renderForm(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 6 // Account for box borders and padding

	b.WriteString(TitleStyle.Width(contentWidth).Align(lipgloss.Center).Render(p.Title) + "\n")
	if p.Subtitle != "" {
		b.WriteString(SubtitleStyle.Width(contentWidth).Align(lipgloss.Center).Render(p.Subtitle) + "\n")
	}
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	if p.Err != "" {
		b.WriteString(ErrorStyle.Width(contentWidth).Render(SymbolError+" "+p.Err) + "\n")
	}
	if p.Success != "" {
		b.WriteString(SuccessStyle.Width(contentWidth).Align(lipgloss.Center).Render(SymbolSuccess+" "+p.Success) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(renderField("Full name", p.NameInput, p.Focus == FocusName, contentWidth))
	b.WriteString(renderField("Email Address", p.EmailInput, p.Focus == FocusEmail, contentWidth))
	if p.EmailHint != "" {
		b.WriteString(HintStyle.Render("  Did you mean "+p.EmailHint+"?") + "\n")
	}
	b.WriteString(renderField("Password", p.PasswordInput, p.Focus == FocusPassword, contentWidth))

	meterWidth := contentWidth
	if p.ShowStrengthLabel {
		meterWidth -= len("Strong") + 1
	}
	b.WriteString(StrengthMeter(p.Strength, meterWidth, p.ShowStrengthLabel) + "\n\n")

	b.WriteString(Button(ButtonParams{
		Text:         "Sign Up",
		Variant:      p.ButtonVariant,
		Loading:      p.Submitting,
		Focused:      p.Focus == FocusButton,
		Full:         true,
		Width:        contentWidth - 2,
		SpinnerFrame: p.SpinnerFrame,
	}) + "\n")

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render(p.Help))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// renderField renders a labelled input.
func renderField(label, input string, focused bool, width int) string {
	labelStyle := LabelStyle
	inputStyle := InputStyle
	if focused {
		labelStyle = FocusedLabelStyle
		inputStyle = FocusedInputStyle
	}
	return labelStyle.Render(label) + "\n" + inputStyle.Width(width-2).Render(input) + "\n"
}

// renderHelp renders the keybinding overlay.
func renderHelp(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 6

	b.WriteString(TitleStyle.Render("KEYBINDINGS") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")
	b.WriteString(p.Help + "\n")
	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("press any key to close"))

	return wrapInBox(b.String(), p.Width, p.Height)
}

// wrapInBox wraps content in a bordered box.
func wrapInBox(content string, width, height int) string {
	boxWidth := width - 2
	if boxWidth < MinWidth-2 {
		boxWidth = MinWidth - 2
	}

	// Don't force height - let content determine size
	style := BoxStyle.Width(boxWidth)

	return style.Render(content)
}
