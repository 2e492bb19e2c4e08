package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Form.Title != "Create New FITPRO Account" {
		t.Errorf("Expected default title, got %q", cfg.Form.Title)
	}

	if cfg.ReloadDelay() != 2*time.Second {
		t.Errorf("Expected reload delay 2s, got %v", cfg.ReloadDelay())
	}

	if cfg.Timeout() != 15*time.Second {
		t.Errorf("Expected timeout 15s, got %v", cfg.Timeout())
	}

	if cfg.OfflineLatency() != 600*time.Millisecond {
		t.Errorf("Expected offline latency 600ms, got %v", cfg.OfflineLatency())
	}

	if !cfg.UI.ShowStrengthLabel {
		t.Error("Expected ShowStrengthLabel to be true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			mutate:      func(*Config) {},
			wantWarning: false,
		},
		{
			name:        "empty base url",
			mutate:      func(c *Config) { c.Service.BaseURL = "" },
			wantWarning: true,
		},
		{
			name:        "empty base url is fine offline",
			mutate:      func(c *Config) { c.Service.BaseURL = ""; c.Service.Offline = true },
			wantWarning: false,
		},
		{
			name:        "base url without scheme",
			mutate:      func(c *Config) { c.Service.BaseURL = "localhost:8080" },
			wantWarning: true,
		},
		{
			name:        "base url with ftp scheme",
			mutate:      func(c *Config) { c.Service.BaseURL = "ftp://example.com" },
			wantWarning: true,
		},
		{
			name:        "https base url",
			mutate:      func(c *Config) { c.Service.BaseURL = "https://api.example.com/v1" },
			wantWarning: false,
		},
		{
			name:        "zero timeout",
			mutate:      func(c *Config) { c.Service.TimeoutSeconds = 0 },
			wantWarning: true,
		},
		{
			name:        "negative reload delay",
			mutate:      func(c *Config) { c.Form.ReloadDelayMS = -1 },
			wantWarning: true,
		},
		{
			name:        "invalid button style",
			mutate:      func(c *Config) { c.UI.ButtonStyle = "giant" },
			wantWarning: true,
		},
		{
			name:        "invalid theme",
			mutate:      func(c *Config) { c.UI.Theme = "invalid" },
			wantWarning: true,
		},
		{
			name:        "known domain with at sign",
			mutate:      func(c *Config) { c.UI.KnownDomains = []string{"jo@gmail.com"} },
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			warnings := cfg.Validate()
			hasWarnings := len(warnings) > 0
			if hasWarnings != tt.wantWarning {
				t.Errorf("Validate() hasWarnings = %v, want %v. Warnings: %v", hasWarnings, tt.wantWarning, warnings)
			}
		})
	}
}

func TestLoadPreservesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	// Only specify some values - others should keep defaults
	tomlContent := `[service]
base_url = "https://fitpro.example.com/api"

[ui]
suggest_domains = false
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.Service.BaseURL != "https://fitpro.example.com/api" {
		t.Errorf("Expected base url to be loaded, got %q", cfg.Service.BaseURL)
	}

	if cfg.UI.SuggestDomains {
		t.Error("Expected SuggestDomains to be false")
	}

	// Check that non-specified values keep defaults
	if cfg.Service.TimeoutSeconds != 15 {
		t.Errorf("Expected default timeout 15, got %d", cfg.Service.TimeoutSeconds)
	}

	// Boolean defaults must survive when not specified
	if !cfg.UI.ShowStrengthLabel {
		t.Error("Expected ShowStrengthLabel to remain true (default) when not specified in config")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Form.ReloadDelayMS != 2000 {
		t.Errorf("Expected defaults, got reload delay %d", cfg.Form.ReloadDelayMS)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[service\nbase_url ="), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(configPath); err == nil {
		t.Error("Expected parse error")
	}
}

func TestDefaultConfigFileParses(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "fitpro", "config.toml")
	if err := CreateDefaultConfigFile(configPath); err != nil {
		t.Fatalf("CreateDefaultConfigFile() error: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("generated config does not parse: %v", err)
	}
	if warnings := cfg.Validate(); len(warnings) != 0 {
		t.Errorf("generated config has warnings: %v", warnings)
	}

	if err := CreateDefaultConfigFile(configPath); err == nil {
		t.Error("Expected error when config already exists")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Form.ExitAfterSignup = true
	cfg.Keys.Submit = "ctrl+enter"

	if err := Save(cfg, configPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if !loaded.Form.ExitAfterSignup || loaded.Keys.Submit != "ctrl+enter" {
		t.Errorf("Saved values not loaded: %+v", loaded.Form)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path := ConfigPath()
	if path != filepath.Join("/tmp/xdg", "fitpro", "config.toml") {
		t.Errorf("Unexpected config path %q", path)
	}

	if got := DefaultConfig().SessionPath(); got != filepath.Join("/tmp/xdg", "fitpro", "session.json") {
		t.Errorf("Unexpected session path %q", got)
	}
}

func TestSessionPathExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/jo")

	cfg := DefaultConfig()
	cfg.Session.Path = "~/fitpro/session.json"

	got := cfg.SessionPath()
	if !strings.HasPrefix(got, "/home/jo") || filepath.Base(got) != "session.json" {
		t.Errorf("Expected home-relative path, got %q", got)
	}
}
