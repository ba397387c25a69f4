package config

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	wantSizes := []int{10_000, 100_000, 1_000_000, 10_000_000}
	if !reflect.DeepEqual(cfg.Sizes, wantSizes) {
		t.Errorf("Sizes = %v, want %v", cfg.Sizes, wantSizes)
	}
	if cfg.Repetitions != 100 {
		t.Errorf("Repetitions = %d, want 100", cfg.Repetitions)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want %q", cfg.Format, "text")
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
	}
	if !cfg.Progress {
		t.Errorf("Progress = false, want true")
	}
	if cfg.LogDir != "" {
		t.Errorf("LogDir = %q, want empty", cfg.LogDir)
	}
	if cfg.Visualize.Target != 71 || cfg.Visualize.Style != "tikz" || len(cfg.Visualize.Values) != 10 {
		t.Errorf("Visualize = %+v, want demo list with target 71", cfg.Visualize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `sizes: [100, 1000]
repetitions: 20
seed: 1234
format: markdown
color: never
progress: false
log_level: debug
log_dir: /tmp/logs
visualize:
  values: [1, 3, 5, 7]
  target: 5
  style: text
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !reflect.DeepEqual(cfg.Sizes, []int{100, 1000}) {
		t.Errorf("Sizes = %v, want [100 1000]", cfg.Sizes)
	}
	if cfg.Repetitions != 20 {
		t.Errorf("Repetitions = %d, want 20", cfg.Repetitions)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Seed = %d, want 1234", cfg.Seed)
	}
	if cfg.Format != "markdown" {
		t.Errorf("Format = %q, want %q", cfg.Format, "markdown")
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
	}
	if cfg.Progress {
		t.Errorf("Progress = true, want false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogDir != "/tmp/logs" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/tmp/logs")
	}
	if !reflect.DeepEqual(cfg.Visualize, VisualizeConfig{Values: []int{1, 3, 5, 7}, Target: 5, Style: "text"}) {
		t.Errorf("Visualize = %+v", cfg.Visualize)
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}

	if cfg.Repetitions != 100 {
		t.Errorf("Repetitions = %d, want 100 (default)", cfg.Repetitions)
	}
}

// TestLoadConfigInvalidYAML tests error handling for malformed YAML
func TestLoadConfigInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	invalidYAML := `
repetitions: 5
sizes: [this is not valid
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig() expected error for invalid YAML, got nil")
	}
}

// TestLoadConfigPartialValues tests that partial config merges with defaults
func TestLoadConfigPartialValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `repetitions: 10
visualize:
  target: 25
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Repetitions != 10 {
		t.Errorf("Repetitions = %d, want 10", cfg.Repetitions)
	}
	if len(cfg.Sizes) != 4 {
		t.Errorf("Sizes = %v, want defaults", cfg.Sizes)
	}
	if cfg.Visualize.Target != 25 {
		t.Errorf("Visualize.Target = %d, want 25", cfg.Visualize.Target)
	}
	if cfg.Visualize.Style != "tikz" || len(cfg.Visualize.Values) != 10 {
		t.Errorf("Visualize = %+v, want default style and values", cfg.Visualize)
	}
	if !cfg.Progress {
		t.Errorf("Progress = false, want true (default)")
	}
}

// TestLoadConfigFromDir tests loading config from .searchbench/config.yaml
func TestLoadConfigFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, ".searchbench")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("repetitions: 3\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if cfg.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", cfg.Repetitions)
	}
}

// TestLoadConfigFromDirNotExists tests loading when .searchbench dir doesn't exist
func TestLoadConfigFromDirNotExists(t *testing.T) {
	cfg, err := LoadConfigFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfigFromDir() should not error on missing config, got: %v", err)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want %q (default)", cfg.Format, "text")
	}
}

// TestLoadConfigPermissionDenied tests unreadable config files
func TestLoadConfigPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("repetitions: 3\n"), 0000); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig() expected error for unreadable file, got nil")
	}
}

// TestMergeWithFlags tests CLI flag precedence over config values
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()

	sizes := []int{50}
	repetitions := 7
	seed := uint64(9)
	format := "html"
	logLevel := "debug"
	logDir := "/custom/logs"

	cfg.MergeWithFlags(&sizes, &repetitions, &seed, &format, &logLevel, &logDir)

	if !reflect.DeepEqual(cfg.Sizes, []int{50}) {
		t.Errorf("Sizes = %v, want [50]", cfg.Sizes)
	}
	if cfg.Repetitions != 7 {
		t.Errorf("Repetitions = %d, want 7", cfg.Repetitions)
	}
	if cfg.Seed != 9 {
		t.Errorf("Seed = %d, want 9", cfg.Seed)
	}
	if cfg.Format != "html" {
		t.Errorf("Format = %q, want %q", cfg.Format, "html")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogDir != "/custom/logs" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/custom/logs")
	}
}

// TestMergeWithFlagsNil tests that nil flags don't override config
func TestMergeWithFlagsNil(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Repetitions = 3

	cfg.MergeWithFlags(nil, nil, nil, nil, nil, nil)

	if cfg.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3 (unchanged)", cfg.Repetitions)
	}
	if len(cfg.Sizes) != 4 {
		t.Errorf("Sizes = %v, want defaults", cfg.Sizes)
	}
}

// TestConfigValidation tests validation of configuration values
func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty sizes", func(c *Config) { c.Sizes = nil }, true},
		{"zero size", func(c *Config) { c.Sizes = []int{10, 0} }, true},
		{"zero repetitions", func(c *Config) { c.Repetitions = 0 }, true},
		{"md alias", func(c *Config) { c.Format = "md" }, false},
		{"txt alias", func(c *Config) { c.Format = "txt" }, false},
		{"uppercase format", func(c *Config) { c.Format = "Markdown" }, false},
		{"unknown format", func(c *Config) { c.Format = "csv" }, true},
		{"color always", func(c *Config) { c.Color = ColorAlways }, false},
		{"unknown color", func(c *Config) { c.Color = "rainbow" }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"latex style alias", func(c *Config) { c.Visualize.Style = "latex" }, false},
		{"beamer style alias", func(c *Config) { c.Visualize.Style = "Beamer" }, false},
		{"ascii style alias", func(c *Config) { c.Visualize.Style = "ascii" }, false},
		{"unknown style", func(c *Config) { c.Visualize.Style = "svg" }, true},
		{"unsorted values", func(c *Config) { c.Visualize.Values = []int{3, 1} }, true},
		{"empty values", func(c *Config) { c.Visualize.Values = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
