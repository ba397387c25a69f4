package cmd

import (
	"bytes"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harrison/searchbench/internal/bench"
	"github.com/harrison/searchbench/internal/display"
	"github.com/harrison/searchbench/internal/filelock"
	"github.com/harrison/searchbench/internal/logger"
	"github.com/harrison/searchbench/internal/models"
	"github.com/harrison/searchbench/internal/report"
)

// progressBarWidth is the number of cells in the benchmark progress bar
const progressBarWidth = 30

// NewBenchCommand creates the bench command
func NewBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare linear and binary search across input sizes",
		Long: `Benchmark linear search against binary search.

For every size N a sorted sequence 0..N-1 is built and searched for a
uniformly random target, once with each algorithm, for the configured
number of repetitions. The mean time, mean step count and speedup per
size are printed as a table.

Examples:
  searchbench bench
  searchbench bench --sizes 1000,10000 --repetitions 50
  searchbench bench --format markdown --output results.md`,
		Args: cobra.NoArgs,
		RunE: runBench,
	}

	cmd.Flags().IntSlice("sizes", nil, "Comma-separated sequence lengths (default 10000,100000,1000000,10000000)")
	cmd.Flags().Int("repetitions", 0, "Random searches per size (default 100)")
	cmd.Flags().Uint64("seed", 0, "Seed for target generation (0 = derive from the clock)")
	cmd.Flags().String("format", "", "Report format: text, markdown, html")
	cmd.Flags().String("output", "", "Write the report to this file instead of stdout")
	cmd.Flags().Bool("no-progress", false, "Disable the progress bar")

	return cmd
}

func runBench(cmd *cobra.Command, args []string) error {
	env, err := newRuntimeEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	format, err := report.ParseFormat(env.cfg.Format)
	if err != nil {
		return err
	}

	noProgress, _ := cmd.Flags().GetBool("no-progress")
	showProgress := env.cfg.Progress && !noProgress

	rep, err := runBenchmark(cmd, env, showProgress)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if err := writeReport(cmd, rep, format, outputPath, env.color); err != nil {
		return err
	}
	if outputPath != "" {
		env.log.LogInfo(fmt.Sprintf("Report written to %s", outputPath))
	}

	if w := display.WarnUnbounded(rep); w != nil {
		w.Display(cmd.ErrOrStderr())
	}

	return nil
}

// runBenchmark runs the harness with the resolved configuration. The run is
// interrupted on SIGINT or SIGTERM.
func runBenchmark(cmd *cobra.Command, env *runtimeEnv, showProgress bool) (*models.Report, error) {
	opts := bench.Options{
		Sizes:       env.cfg.Sizes,
		Repetitions: env.cfg.Repetitions,
		Seed:        env.cfg.Seed,
	}

	if w := display.WarnLargeSizes(opts.Sizes); w != nil {
		w.Display(cmd.ErrOrStderr())
	}

	observers := bench.MultiObserver{env.log}
	stderr := cmd.ErrOrStderr()
	if showProgress && isTerminalWriter(stderr) {
		observers = append(observers, logger.NewProgressReporter(stderr, progressBarWidth, env.color))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	harness := bench.NewHarness(opts, bench.WithObserver(observers))
	env.log.LogDebug(fmt.Sprintf("Benchmark seed: %d", harness.Options().Seed))

	rep, err := harness.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("benchmark failed: %w", err)
	}

	env.log.LogSummary(rep)
	return rep, nil
}

// writeReport renders rep to stdout, or to path under a file lock when path is set.
func writeReport(cmd *cobra.Command, rep *models.Report, format report.Format, path string, colored bool) error {
	if path == "" {
		return report.Write(cmd.OutOrStdout(), rep, format, report.Options{Color: colored})
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, rep, format, report.Options{}); err != nil {
		return err
	}
	if err := filelock.LockAndWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
