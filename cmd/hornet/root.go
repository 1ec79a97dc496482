package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hornet",
	Short: "Hornet - in-process tracing core for Go services",
	Long: `Hornet is an in-process tracing library: it tracks a stack of open spans
per trace, samples deterministically, aggregates rollup totals, and emits
one event per finished span to a configurable sink.

The hornet command works with Hornet configuration files:
  - Validate configuration before deployment
  - Preview the sampling behaviour of a configured rate
  - Emit a demo trace through the configured sink`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "hornet.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
