package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/searchbench/internal/config"
	"github.com/harrison/searchbench/internal/logger"
)

// loadConfig reads the config file named by --config, or .searchbench/config.yaml,
// and applies every flag the user set on cmd. Flags that cmd does not define are ignored.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var sizesPtr *[]int
	if changed(cmd, "sizes") {
		sizes, _ := cmd.Flags().GetIntSlice("sizes")
		sizesPtr = &sizes
	}

	var repetitionsPtr *int
	if changed(cmd, "repetitions") {
		repetitions, _ := cmd.Flags().GetInt("repetitions")
		repetitionsPtr = &repetitions
	}

	var seedPtr *uint64
	if changed(cmd, "seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		seedPtr = &seed
	}

	var formatPtr *string
	if changed(cmd, "format") {
		format, _ := cmd.Flags().GetString("format")
		formatPtr = &format
	}

	var logLevelPtr *string
	if changed(cmd, "log-level") {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &logLevel
	}

	var logDirPtr *string
	if changed(cmd, "log-dir") {
		logDir, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &logDir
	}

	// Merge CLI flags with config (flags take precedence)
	cfg.MergeWithFlags(sizesPtr, repetitionsPtr, seedPtr, formatPtr, logLevelPtr, logDirPtr)

	if changed(cmd, "color") {
		cfg.Color, _ = cmd.Flags().GetString("color")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// isTerminalWriter reports whether w is a file attached to a terminal.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveColor decides whether output to w is colored and applies the
// decision to fatih/color globally.
func resolveColor(mode string, w io.Writer) bool {
	var enabled bool
	switch mode {
	case config.ColorAlways:
		enabled = true
	case config.ColorNever:
		enabled = false
	default:
		_, noColor := os.LookupEnv("NO_COLOR")
		enabled = !noColor && isTerminalWriter(w)
	}
	color.NoColor = !enabled
	return enabled
}

// runtimeEnv bundles what every command needs after configuration.
type runtimeEnv struct {
	cfg     *config.Config
	log     logger.Logger
	color   bool
	closers []io.Closer
}

// newRuntimeEnv loads configuration, resolves color, and builds the loggers:
// a console logger on stderr and, when a log dir is configured, a file logger.
func newRuntimeEnv(cmd *cobra.Command) (*runtimeEnv, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	env := &runtimeEnv{
		cfg:   cfg,
		color: resolveColor(cfg.Color, cmd.OutOrStdout()),
	}

	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	console.SetColor(env.color && isTerminalWriter(cmd.ErrOrStderr()))
	loggers := logger.MultiLogger{console}

	if cfg.LogDir != "" {
		fileLevel := cfg.LogLevel
		if fileLevel == "warn" || fileLevel == "error" {
			fileLevel = "info"
		}
		fl, err := logger.NewFileLoggerWithDirAndLevel(cfg.LogDir, fileLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to open run log: %w", err)
		}
		loggers = append(loggers, fl)
		env.closers = append(env.closers, fl)
		console.LogDebug(fmt.Sprintf("Writing run log to %s", fl.RunFile()))
	}

	env.log = loggers
	return env, nil
}

// Close releases file loggers.
func (e *runtimeEnv) Close() error {
	var errs []error
	for _, c := range e.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
