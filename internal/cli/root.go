// Package cli implements the mathsheet command-line interface using Cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mathsheet",
	Short: "mathsheet: weekly column arithmetic worksheets as PDF",
	Long: `mathsheet prints practice sheets for formal column addition and
subtraction. Every worksheet comes as a pair: the tasks, and the solution with
the result and the carry/borrow digits filled in.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $MATHSHEET_HOME/config.toml)")
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
