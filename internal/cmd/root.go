package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for searchbench
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "searchbench",
		Short: "Benchmark binary search against linear search",
		Long: `searchbench compares classic binary search with linear search over
sorted integer ranges.

It measures mean wall-clock time and mean step count for both algorithms
across a set of input sizes, prints the speedup, and can replay the
midpoint trace of a binary search as a step-by-step diagram.

Configuration is loaded from .searchbench/config.yaml if present.
CLI flags override configuration file settings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: .searchbench/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log verbosity: trace, debug, info, warn, error")
	cmd.PersistentFlags().String("log-dir", "", "Directory for run log files (disabled when empty)")
	cmd.PersistentFlags().String("color", "", "Color output: auto, always, never")

	cmd.AddCommand(NewBenchCommand())
	cmd.AddCommand(NewSearchCommand())
	cmd.AddCommand(NewVisualizeCommand())
	cmd.AddCommand(NewSelfTestCommand())
	cmd.AddCommand(NewDemoCommand())

	return cmd
}
