// Package main provides the entry point for the ao3list CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for ao3list.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ao3list",
		Short: "Scrape AO3 category indexes for fandom lists",
		Long: `ao3list scrapes the Archive of Our Own category index pages and produces
a deduplicated list of fandoms with their work counts and canonical URLs,
sorted by popularity.

Results can be rendered as plain text, an aligned table, JSON, YAML, or
Markdown, and written to stdout or a file.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewCategoriesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
