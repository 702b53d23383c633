// Package cli provides the command-line interface for sqlchart.
package cli

import (
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var cfgFile string

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqlchart",
		Short: "sqlchart - SQL scripts to chart reports",
		Long: `sqlchart executes an annotated SQL script against a database and writes
a PDF report with one chart page per titled statement.

Statements are titled with a leading -- comment and terminated with a
semicolon. Each statement must select an X column (labels or dates) and a
Y column (numeric values).`,
		Version:      Version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default sqlchart.yaml in the working directory)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug diagnostics")

	rootCmd.AddCommand(NewRenderCommand())

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}
