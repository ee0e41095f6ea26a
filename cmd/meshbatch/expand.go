package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simforge/meshbatch/internal/rangespec"
)

// expandCmd prints the directory names a range spec denotes, one per line.
// Handy for checking what a --subdirs value selects before a long batch.
var expandCmd = &cobra.Command{
	Use:   "expand SPEC",
	Short: "Print the subdirectory names a range spec expands to",
	Long: `Expand a range spec into the concrete directory names it selects.

A range spec is two endpoints separated by "..", each sharing a non-numeric
prefix and ending in a zero-padded number. The upper endpoint is exclusive:

  meshbatch expand 000-000..000-003
  000-000
  000-001
  000-002`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := rangespec.Expand(args[0])
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}
