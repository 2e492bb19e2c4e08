package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/henrilemoine/fitpro/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Navigation
	Next key.Binding
	Prev key.Binding

	// Actions
	Confirm key.Binding
	Submit  key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next / press"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "sign up"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Confirm},
		{k.Submit, k.Help, k.Quit},
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if cfg.Next != "" {
		km.Next = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Next)...),
			key.WithHelp(cfg.Next, "next field"),
		)
	}
	if cfg.Prev != "" {
		km.Prev = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Prev)...),
			key.WithHelp(cfg.Prev, "previous field"),
		)
	}
	if cfg.Submit != "" {
		km.Submit = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Submit)...),
			key.WithHelp(cfg.Submit, "sign up"),
		)
	}
	if cfg.Help != "" {
		km.Help = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Help)...),
			key.WithHelp(cfg.Help, "help"),
		)
	}
	if cfg.Quit != "" {
		km.Quit = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		)
	}

	return km
}

// parseKeys parses a comma-separated list of keys.
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
