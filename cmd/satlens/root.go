// Package main provides the entry point for the satlens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for satlens.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "satlens",
		Short: "Summary reports for CP-SAT solver run records",
		Long: `satlens turns structured CP-SAT solver run records into readable summary
reports: solver version and workers, final status, timing, model size,
objective bounds, and the search progression.

Records are read from JSON or YAML files (or stdin) and rendered as a
terminal report, GitHub Flavored Markdown, or machine-readable JSON.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging and metric help texts")

	// Add subcommands
	cmd.AddCommand(NewReportCmd())
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
