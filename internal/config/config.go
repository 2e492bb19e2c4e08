// Package config handles fitpro configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents fitpro configuration.
type Config struct {
	Service ServiceConfig `toml:"service"`
	Session SessionConfig `toml:"session"`
	Form    FormConfig    `toml:"form"`
	UI      UIConfig      `toml:"ui"`
	Keys    KeysConfig    `toml:"keys"`
}

// ServiceConfig contains settings for the remote account service.
type ServiceConfig struct {
	// Base URL of the account API; signups are posted to {base_url}/user/signup
	BaseURL string `toml:"base_url"`

	// Request timeout in seconds
	TimeoutSeconds int `toml:"timeout_seconds"`

	// Use the built-in in-memory service instead of the API
	Offline bool `toml:"offline"`

	// Simulated latency of the offline service, in milliseconds
	OfflineLatencyMS int `toml:"offline_latency_ms"`
}

// SessionConfig contains settings for where the signed-in account is kept.
type SessionConfig struct {
	// Session file (empty = session.json next to the config file)
	Path string `toml:"path"`

	// Keep the session in memory only
	Ephemeral bool `toml:"ephemeral"`
}

// FormConfig contains settings for the sign-up form.
type FormConfig struct {
	// Heading shown above the form
	Title string `toml:"title"`

	// Text shown under the heading
	Subtitle string `toml:"subtitle"`

	// Delay before the form resets after a successful signup, in milliseconds
	ReloadDelayMS int `toml:"reload_delay_ms"`

	// Exit instead of resetting after a successful signup
	ExitAfterSignup bool `toml:"exit_after_signup"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Show Weak/Fair/Good/Strong next to the strength meter
	ShowStrengthLabel bool `toml:"show_strength_label"`

	// Suggest a known mail provider when the email domain looks mistyped
	SuggestDomains bool `toml:"suggest_domains"`

	// Mail providers used for suggestions
	KnownDomains []string `toml:"known_domains"`

	// Submit button style: "primary", "secondary", or "outlined"
	ButtonStyle string `toml:"button_style"`

	// Color theme: auto, dark, light
	Theme string `toml:"theme"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Next   string `toml:"next"`
	Prev   string `toml:"prev"`
	Submit string `toml:"submit"`
	Help   string `toml:"help"`
	Quit   string `toml:"quit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			BaseURL:          "http://localhost:8080/api",
			TimeoutSeconds:   15,
			Offline:          false,
			OfflineLatencyMS: 600,
		},
		Session: SessionConfig{
			Path:      "",
			Ephemeral: false,
		},
		Form: FormConfig{
			Title:           "Create New FITPRO Account",
			Subtitle:        "Please enter details to create a new account",
			ReloadDelayMS:   2000,
			ExitAfterSignup: false,
		},
		UI: UIConfig{
			ShowStrengthLabel: true,
			SuggestDomains:    true,
			KnownDomains:      []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "icloud.com", "proton.me"},
			ButtonStyle:       "primary",
			Theme:             "auto",
		},
		Keys: KeysConfig{
			Next:   "tab,down",
			Prev:   "shift+tab,up",
			Submit: "ctrl+s",
			Help:   "f1",
			Quit:   "ctrl+c,esc",
		},
	}
}

// Timeout returns the service timeout. A non-positive setting falls back
// to the default.
func (c *Config) Timeout() time.Duration {
	if c.Service.TimeoutSeconds <= 0 {
		return time.Duration(DefaultConfig().Service.TimeoutSeconds) * time.Second
	}
	return time.Duration(c.Service.TimeoutSeconds) * time.Second
}

// OfflineLatency returns the simulated offline service latency.
func (c *Config) OfflineLatency() time.Duration {
	return time.Duration(c.Service.OfflineLatencyMS) * time.Millisecond
}

// ReloadDelay returns the delay before the form resets after a signup.
func (c *Config) ReloadDelay() time.Duration {
	return time.Duration(c.Form.ReloadDelayMS) * time.Millisecond
}

// SessionPath returns the session file path.
func (c *Config) SessionPath() string {
	if c.Session.Path != "" {
		return expandHome(c.Session.Path)
	}
	return filepath.Join(Dir(), "session.json")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// Dir returns the fitpro configuration directory.
// Uses ~/.config/fitpro (XDG style) on all Unix systems.
func Dir() string {
	// Respect XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "fitpro")
	}
	// Default to ~/.config on Unix (including macOS)
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "fitpro")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "fitpro")
	}
	return filepath.Join(configDir, "fitpro")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the TOML file,
	// preserving defaults for unspecified fields (including booleans).
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to path.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// CreateDefaultConfigFile writes a commented default config file to path.
// An existing file is left untouched and reported as an error.
func CreateDefaultConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# fitpro configuration\n\n")

	b.WriteString("[service]\n")
	b.WriteString("# Base URL of the account API (signups go to {base_url}/user/signup)\n")
	fmt.Fprintf(&b, "base_url = %q\n", cfg.Service.BaseURL)
	b.WriteString("# Request timeout in seconds\n")
	fmt.Fprintf(&b, "timeout_seconds = %d\n", cfg.Service.TimeoutSeconds)
	b.WriteString("# Use the built-in in-memory service instead of the API\n")
	fmt.Fprintf(&b, "offline = %v\n", cfg.Service.Offline)
	b.WriteString("# Simulated latency of the offline service (ms)\n")
	fmt.Fprintf(&b, "offline_latency_ms = %d\n\n", cfg.Service.OfflineLatencyMS)

	b.WriteString("[session]\n")
	b.WriteString("# Session file (defaults to session.json next to this file)\n")
	b.WriteString("# path = \"~/.config/fitpro/session.json\"\n")
	b.WriteString("# Keep the session in memory only\n")
	fmt.Fprintf(&b, "ephemeral = %v\n\n", cfg.Session.Ephemeral)

	b.WriteString("[form]\n")
	fmt.Fprintf(&b, "title = %q\n", cfg.Form.Title)
	fmt.Fprintf(&b, "subtitle = %q\n", cfg.Form.Subtitle)
	b.WriteString("# Delay before the form resets after a successful signup (ms)\n")
	fmt.Fprintf(&b, "reload_delay_ms = %d\n", cfg.Form.ReloadDelayMS)
	b.WriteString("# Exit instead of resetting after a successful signup\n")
	fmt.Fprintf(&b, "exit_after_signup = %v\n\n", cfg.Form.ExitAfterSignup)

	b.WriteString("[ui]\n")
	b.WriteString("# Show Weak/Fair/Good/Strong next to the strength meter\n")
	fmt.Fprintf(&b, "show_strength_label = %v\n", cfg.UI.ShowStrengthLabel)
	b.WriteString("# Suggest a known mail provider when the email domain looks mistyped\n")
	fmt.Fprintf(&b, "suggest_domains = %v\n", cfg.UI.SuggestDomains)
	b.WriteString("# known_domains = [\"gmail.com\", \"outlook.com\"]\n")
	b.WriteString("# Submit button style: \"primary\", \"secondary\", or \"outlined\"\n")
	fmt.Fprintf(&b, "button_style = %q\n", cfg.UI.ButtonStyle)
	b.WriteString("# Color theme: \"auto\", \"dark\", or \"light\"\n")
	fmt.Fprintf(&b, "theme = %q\n\n", cfg.UI.Theme)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# next = %q\n", cfg.Keys.Next)
	fmt.Fprintf(&b, "# prev = %q\n", cfg.Keys.Prev)
	fmt.Fprintf(&b, "# submit = %q\n", cfg.Keys.Submit)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n", cfg.Keys.Quit)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if !c.Service.Offline {
		u, err := url.Parse(c.Service.BaseURL)
		switch {
		case c.Service.BaseURL == "":
			warnings = append(warnings, "service.base_url is empty (set it or enable service.offline)")
		case err != nil:
			warnings = append(warnings, fmt.Sprintf("Invalid service.base_url: %v", err))
		case u.Scheme != "http" && u.Scheme != "https":
			warnings = append(warnings, fmt.Sprintf("Invalid scheme in service.base_url: %q (expected http or https)", u.Scheme))
		case u.Host == "":
			warnings = append(warnings, "service.base_url has no host")
		}
	}

	if c.Service.TimeoutSeconds <= 0 {
		warnings = append(warnings, fmt.Sprintf("service.timeout_seconds must be positive, got %d", c.Service.TimeoutSeconds))
	}
	if c.Service.OfflineLatencyMS < 0 {
		warnings = append(warnings, fmt.Sprintf("service.offline_latency_ms must not be negative, got %d", c.Service.OfflineLatencyMS))
	}
	if c.Form.ReloadDelayMS < 0 {
		warnings = append(warnings, fmt.Sprintf("form.reload_delay_ms must not be negative, got %d", c.Form.ReloadDelayMS))
	}

	// Check button_style value
	if c.UI.ButtonStyle != "" &&
		c.UI.ButtonStyle != "primary" &&
		c.UI.ButtonStyle != "secondary" &&
		c.UI.ButtonStyle != "outlined" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.button_style: %s (expected primary, secondary, or outlined)", c.UI.ButtonStyle))
	}

	// Check theme value
	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	for _, d := range c.UI.KnownDomains {
		if !strings.Contains(d, ".") || strings.Contains(d, "@") {
			warnings = append(warnings, fmt.Sprintf("ui.known_domains: %q does not look like a domain", d))
		}
	}

	return warnings
}
