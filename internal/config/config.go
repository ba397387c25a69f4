package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/harrison/searchbench/internal/report"
	"github.com/harrison/searchbench/internal/visual"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// VisualizeConfig represents step visualizer configuration
type VisualizeConfig struct {
	// Values is the ascending list the trace is drawn over
	Values []int `yaml:"values"`

	// Target is the value searched for
	Target int `yaml:"target"`

	// Style selects the renderer (tikz, text)
	Style string `yaml:"style"`
}

// Config represents searchbench configuration options
type Config struct {
	// Sizes are the sequence lengths benchmarked, in order
	Sizes []int `yaml:"sizes"`

	// Repetitions is the number of random searches per size
	Repetitions int `yaml:"repetitions"`

	// Seed seeds the target generator (0 = derive from the clock)
	Seed uint64 `yaml:"seed"`

	// Format selects the report renderer (text, markdown, html)
	Format string `yaml:"format"`

	// Color controls ANSI color output (auto, always, never)
	Color string `yaml:"color"`

	// Progress shows a progress bar on stderr while benchmarking
	Progress bool `yaml:"progress"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs are written (empty = no file log)
	LogDir string `yaml:"log_dir"`

	// Visualize contains step visualizer configuration
	Visualize VisualizeConfig `yaml:"visualize"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Sizes:       []int{10_000, 100_000, 1_000_000, 10_000_000},
		Repetitions: 100,
		Seed:        0, // Clock-derived
		Format:      "text",
		Color:       ColorAuto,
		Progress:    true,
		LogLevel:    "warn",
		LogDir:      "",
		Visualize: VisualizeConfig{
			Values: []int{14, 25, 31, 46, 52, 63, 71, 84, 96, 99},
			Target: 71,
			Style:  "tikz",
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if len(fileCfg.Sizes) > 0 {
		cfg.Sizes = fileCfg.Sizes
	}
	if fileCfg.Repetitions != 0 {
		cfg.Repetitions = fileCfg.Repetitions
	}
	if fileCfg.Seed != 0 {
		cfg.Seed = fileCfg.Seed
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.Color != "" {
		cfg.Color = fileCfg.Color
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}

	// Booleans and nested keys need presence detection, a zero value may be explicit
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["progress"]; exists {
			cfg.Progress = fileCfg.Progress
		}

		if section, exists := rawMap["visualize"]; exists && section != nil {
			visualizeMap, _ := section.(map[string]interface{})

			if _, exists := visualizeMap["values"]; exists {
				cfg.Visualize.Values = fileCfg.Visualize.Values
			}
			if _, exists := visualizeMap["target"]; exists {
				cfg.Visualize.Target = fileCfg.Visualize.Target
			}
			if _, exists := visualizeMap["style"]; exists {
				cfg.Visualize.Style = fileCfg.Visualize.Style
			}
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .searchbench/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ".searchbench", "config.yaml")
	return LoadConfig(configPath)
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(sizes *[]int, repetitions *int, seed *uint64, format *string, logLevel *string, logDir *string) {
	if sizes != nil {
		c.Sizes = *sizes
	}
	if repetitions != nil {
		c.Repetitions = *repetitions
	}
	if seed != nil {
		c.Seed = *seed
	}
	if format != nil {
		c.Format = *format
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("sizes cannot be empty")
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("sizes must be >= 1, got %d", n)
		}
	}

	if c.Repetitions < 1 {
		return fmt.Errorf("repetitions must be >= 1, got %d", c.Repetitions)
	}

	// Any name the report writer accepts, aliases included
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	validColors := map[string]bool{
		ColorAuto:   true,
		ColorAlways: true,
		ColorNever:  true,
	}
	if !validColors[c.Color] {
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	// Validate visualizer configuration
	if _, err := visual.ParseStyle(c.Visualize.Style); err != nil {
		return fmt.Errorf("invalid visualize.style: %w", err)
	}
	if !slices.IsSorted(c.Visualize.Values) {
		return fmt.Errorf("visualize.values must be sorted in ascending order")
	}

	return nil
}
