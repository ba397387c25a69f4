package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/searchbench/internal/display"
	"github.com/harrison/searchbench/internal/report"
	"github.com/harrison/searchbench/internal/visual"
)

// demoRuleWidth is the width of the rules around the demo visualization
const demoRuleWidth = 50

// NewDemoCommand creates the demo command
func NewDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Visualize, self-test and benchmark in one run",
		Long: `Run the full demonstration:

  1. the Beamer/TikZ step visualization of the demonstration list,
     searching for 71, between two rules
  2. the built-in self-check
  3. the benchmark table with the configured sizes and repetitions`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}

	cmd.Flags().IntSlice("sizes", nil, "Comma-separated sequence lengths (default 10000,100000,1000000,10000000)")
	cmd.Flags().Int("repetitions", 0, "Random searches per size (default 100)")
	cmd.Flags().Uint64("seed", 0, "Seed for target generation (0 = derive from the clock)")

	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	env, err := newRuntimeEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	out := cmd.OutOrStdout()
	rule := strings.Repeat("-", demoRuleWidth)
	stages := display.NewProgressIndicator(cmd.ErrOrStderr(), 3)

	stages.Step("Visualization")
	fmt.Fprintln(out, rule)
	vc := env.cfg.Visualize
	vc.Values = visual.DemoValues()
	vc.Target = visual.DemoTarget
	vc.Style = string(visual.StyleTikZ)
	if err := drawSteps(out, env, vc); err != nil {
		return err
	}
	fmt.Fprintln(out, rule)

	stages.Step("Self-check")
	if err := selfTest(out, env); err != nil {
		return err
	}

	stages.Step("Benchmark")
	rep, err := runBenchmark(cmd, env, env.cfg.Progress)
	if err != nil {
		return err
	}
	if err := report.WriteText(out, rep, report.Options{Color: env.color}); err != nil {
		return err
	}

	stages.Complete()
	return nil
}
