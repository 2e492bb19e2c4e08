package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/henrilemoine/fitpro/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the fitpro config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.ConfigPath()
		}
		if err := config.CreateDefaultConfigFile(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.ConfigPath()
		}
		cfg, err := config.LoadFromPath(path)
		if err != nil {
			return err
		}

		warnings := cfg.Validate()
		out := cmd.OutOrStdout()
		if len(warnings) == 0 {
			fmt.Fprintf(out, "%s: ok\n", path)
			return nil
		}
		for _, w := range warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		return fmt.Errorf("%d config warning(s)", len(warnings))
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configCheckCmd)
}
