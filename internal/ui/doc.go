// Package ui provides rendering functions for the fitpro terminal UI.
//
// It contains the Render function which takes RenderParams and produces the
// sign-up form, the Button and StrengthMeter components it is built from,
// and the Lipgloss style definitions. Rendering is pure (no side effects)
// and separated from state management.
package ui
