package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/searchbench/internal/search"
)

// SelfTestPassed is printed when every built-in check succeeds
const SelfTestPassed = "All tests passed."

// NewSelfTestCommand creates the selftest command
func NewSelfTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in search checks",
		Long: `Run the built-in correctness checks for binary and linear search:
empty input, first and last elements, absent targets, duplicates and
agreement between the two algorithms.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRuntimeEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			return selfTest(cmd.OutOrStdout(), env)
		},
	}
}

func selfTest(w io.Writer, env *runtimeEnv) error {
	if err := search.SelfCheck(); err != nil {
		env.log.LogError("Self-check failed")
		return fmt.Errorf("self-check failed: %w", err)
	}
	fmt.Fprintln(w, SelfTestPassed)
	return nil
}
