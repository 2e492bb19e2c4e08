// Package cmd implements the fitpro command line.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/henrilemoine/fitpro/internal/account"
	"github.com/henrilemoine/fitpro/internal/app"
	"github.com/henrilemoine/fitpro/internal/config"
	"github.com/henrilemoine/fitpro/internal/debug"
	"github.com/henrilemoine/fitpro/internal/session"
	"github.com/henrilemoine/fitpro/internal/signup"
)

var (
	configPath string
	apiURL     string
	offline    bool
	ephemeral  bool
	debugPath  string
)

// rootCmd launches the sign-up form.
var rootCmd = &cobra.Command{
	Use:   "fitpro",
	Short: "Create a FITPRO account from the terminal",
	Long: `fitpro opens an interactive sign-up form.

Fill in your name, email and password, then press ctrl+s (or enter on the
Sign Up button). The password meter is advisory only. On success the account
session is saved and the form resets.

Use --offline to try the form without a backend.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.ConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&debugPath, "debug", "", "write debug log to `file`")
	rootCmd.PersistentFlags().Lookup("debug").NoOptDefVal = debug.DefaultPath()

	rootCmd.Flags().StringVar(&apiURL, "api", "", "account API base URL (overrides service.base_url)")
	rootCmd.Flags().BoolVar(&offline, "offline", false, "use the built-in in-memory account service")
	rootCmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "keep the session in memory only")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if debugPath == "" {
			return nil
		}
		if err := debug.Enable(debugPath); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		debug.Close()
	}

	rootCmd.AddCommand(configCmd, sessionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the config file and applies command line overrides.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, err
	}

	if apiURL != "" {
		cfg.Service.BaseURL = apiURL
	}
	if offline {
		cfg.Service.Offline = true
	}
	if ephemeral {
		cfg.Session.Ephemeral = true
	}

	for _, w := range cfg.Validate() {
		debug.Warn("config", "warning", w)
	}
	return cfg, nil
}

// newService picks the account service for cfg.
func newService(cfg *config.Config) account.Service {
	if cfg.Service.Offline {
		return account.NewOffline(cfg.OfflineLatency())
	}
	return account.NewClient(cfg.Service.BaseURL, cfg.Timeout())
}

// newStore picks the session store for cfg.
func newStore(cfg *config.Config) session.Store {
	if cfg.Session.Ephemeral {
		return session.NewMemoryStore()
	}
	return session.NewFileStore(cfg.SessionPath())
}

func runForm() error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return err
	}

	store := newStore(cfg)
	form := signup.New(store, signup.WithReloadDelay(cfg.ReloadDelay()))
	model := app.New(cfg, form, newService(cfg))

	debug.Log("starting form", "offline", cfg.Service.Offline, "ephemeral", cfg.Session.Ephemeral)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	if m, ok := finalModel.(app.Model); ok && m.Created() > 0 {
		fmt.Printf("Created %d account(s).\n", m.Created())
		if fs, ok := store.(*session.FileStore); ok {
			fmt.Printf("Session saved to %s\n", fs.Path())
		}
	}
	return nil
}
