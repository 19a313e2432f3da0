// Package config provides file- and environment-driven configuration for
// the mazeway command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazeway/raster"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all settings of a mazeway run.
type Config struct {
	// Threshold is the minimum luminance of a passable pixel.
	Threshold uint8 `yaml:"threshold"`
	// PathColor paints the solution, as #rrggbb.
	PathColor string `yaml:"path_color"`
	// OutputSuffix is inserted before ".png" in default output paths.
	OutputSuffix string `yaml:"output_suffix"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
	// Jobs bounds concurrent solves in batch mode.
	Jobs int `yaml:"jobs"`
	// MetricsFile, when set, receives Prometheus metrics in text format.
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Threshold:    raster.DefaultThreshold,
		PathColor:    "#969696",
		OutputSuffix: raster.DefaultSuffix,
		LogLevel:     "info",
		LogFormat:    "text",
		Jobs:         4,
	}
}

// Load is Resolve followed by Validate and ValidateJobs.
func Load(path string) (*Config, error) {
	cfg, err := Resolve(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.ValidateJobs(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve builds a Config from defaults, then the YAML file at path
// (skipped when path is empty), then MAZEWAY_* environment variables.
// Values are not range-checked, so callers can lay command-line flags on
// top before calling Validate. Only malformed input (unreadable file, bad
// YAML, non-numeric env numbers) is an error here.
func Resolve(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("MAZEWAY_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("MAZEWAY_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("MAZEWAY_METRICS_FILE"); v != "" {
		c.MetricsFile = v
	}
	if v := os.Getenv("MAZEWAY_THRESHOLD"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return fmt.Errorf("%w: MAZEWAY_THRESHOLD must be 0-255: %v", ErrInvalid, err)
		}
		c.Threshold = uint8(n)
	}
	if v := os.Getenv("MAZEWAY_JOBS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: MAZEWAY_JOBS must be an integer: %v", ErrInvalid, err)
		}
		c.Jobs = n
	}
	return nil
}

// Validate checks the settings every command relies on. Jobs is left to
// ValidateJobs since only batch mode reads it.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalid, c.LogFormat)
	}
	if c.OutputSuffix == "" {
		return fmt.Errorf("%w: output_suffix must not be empty", ErrInvalid)
	}
	if _, err := raster.ParseColor(c.PathColor); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// ValidateJobs checks the batch concurrency limit.
func (c *Config) ValidateJobs() error {
	if c.Jobs < 1 || c.Jobs > 64 {
		return fmt.Errorf("%w: jobs must be between 1 and 64, got %d", ErrInvalid, c.Jobs)
	}
	return nil
}
