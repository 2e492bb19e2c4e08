// Package main is the entry point for fitpro, a terminal sign-up client.
package main

import (
	"os"

	"github.com/henrilemoine/fitpro/cmd/fitpro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
