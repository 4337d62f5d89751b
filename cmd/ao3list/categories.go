package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fandomtools/ao3list/internal/config"
)

// NewCategoriesCmd creates the categories command.
func NewCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the known category names",
		Long: `List the category names accepted by "fetch --category", together with
the archive path segments they resolve to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range config.CategoryNames() {
				segment, _ := config.PathSegment(name)
				fmt.Fprintf(tw, "%s\t%s\n", name, segment)
			}
			return tw.Flush()
		},
	}
}
