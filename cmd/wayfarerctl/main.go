// Wayfarerctl is the developer companion for the Wayfarer app.
//
// It validates destination catalogs before they ship, scales artwork
// into per-density variants, and checks the project's framework
// dependency. All commands are non-interactive and safe to run in CI.
//
// Usage:
//
//	wayfarerctl [command] [flags]
//
// See 'wayfarerctl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wayfarerhq/wayfarer/internal/logging"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "0.1.0-dev"

func main() {
	// Set WAYFARER_LOG_LEVEL=debug to see detailed logs.
	if err := logging.InitializeFromEnv(); err != nil {
		// Ignore error, GetLogger will create a fallback logger
		_ = err
	}

	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wayfarerctl",
	Short: "Wayfarer developer utilities",
	Long: `Developer utilities for the Wayfarer travel app.

wayfarerctl validates destination catalogs, prepares scaled artwork,
and reports on the project's framework dependency. It operates on
plain files and prints plain text, so every command works in CI.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(doctorCmd)
}
