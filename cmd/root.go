/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// PersistentPreRunE loads the corpus lazily: only commands that read the
// book trigger extension init, so bootstrap commands (fetch, guide, config)
// work before anything has been downloaded. The noCorpusCommands map
// controls which commands skip loading.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jpl-au/thebook/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "thebook",
	Short: "Search and read The Rust Programming Language in the terminal",
	Long: `A terminal reader for The Rust Programming Language book with relevancy-ranked search.

Download the book once with "thebook fetch", then open the live reader with
"thebook read" or search from the command line with "thebook search".`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		cmdName := topLevelCmdName(cmd)
		if noCorpusCommands[cmdName] || !cmd.HasParent() {
			return nil
		}

		if err := requireCorpus(); err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return err
		}
		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "thebook search borrow", returns "search".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions, executes the command, and
// closes the book service before exit. Exit code 1 indicates error.
func Execute() {
	// Continue without the audit log if it cannot be opened
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	registerExtensions()
	err := rootCmd.Execute()

	if extService != nil {
		if closeErr := extService.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing service: %v\n", closeErr)
		}
	}

	if err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
