package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/henrilemoine/fitpro/internal/config"
	"github.com/henrilemoine/fitpro/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect the saved account session",
}

func sessionStore() (*session.FileStore, error) {
	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	return session.NewFileStore(cfg.SessionPath()), nil
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sessionStore()
		if err != nil {
			return err
		}
		sess, err := store.Current()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if sess == nil {
			fmt.Fprintln(out, "No session saved.")
			return nil
		}
		fmt.Fprintf(out, "Recorded: %s\n", sess.RecordedAt.Local().Format(time.RFC1123))
		fmt.Fprintf(out, "Token:    %s\n", maskToken(sess.Token))
		if len(sess.User) > 0 {
			fmt.Fprintf(out, "User:     %s\n", sess.User)
		}
		return nil
	},
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sessionStore()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
		return nil
	},
}

// maskToken keeps the first and last four characters of long tokens.
func maskToken(token string) string {
	if len(token) <= 12 {
		return "****"
	}
	return token[:4] + "…" + token[len(token)-4:]
}

func init() {
	sessionCmd.AddCommand(sessionShowCmd, sessionClearCmd)
}
