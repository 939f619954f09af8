// Package config loads the occupancy CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/occupancy/enumerate"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all CLI configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig maps onto enumerate.Options.
type SearchConfig struct {
	MaxLevels  int    `yaml:"max_levels"`
	Workers    int    `yaml:"workers"`
	Prune      bool   `yaml:"prune"`
	TimeLimit  string `yaml:"time_limit"` // Go duration, "" or "0" for none
	StepBudget int64  `yaml:"step_budget"`
}

// OutputConfig selects the report format.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, yaml
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxLevels: enumerate.DefaultMaxLevels,
			Workers:   1,
			Prune:     true,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Search.MaxLevels < 0 {
		return fmt.Errorf("%w: search.max_levels must be >= 0", ErrInvalidConfig)
	}
	if c.Search.Workers < 0 {
		return fmt.Errorf("%w: search.workers must be >= 0", ErrInvalidConfig)
	}
	if c.Search.StepBudget < 0 {
		return fmt.Errorf("%w: search.step_budget must be >= 0", ErrInvalidConfig)
	}
	if _, err := c.TimeLimit(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: unknown output.format %q", ErrInvalidConfig, c.Output.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// TimeLimit parses Search.TimeLimit; empty means no limit.
func (c *Config) TimeLimit() (time.Duration, error) {
	if c.Search.TimeLimit == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Search.TimeLimit)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: search.time_limit %q", ErrInvalidConfig, c.Search.TimeLimit)
	}

	return d, nil
}

// SearchOptions converts the search section into enumerate options.
func (c *Config) SearchOptions() ([]enumerate.Option, error) {
	tl, err := c.TimeLimit()
	if err != nil {
		return nil, err
	}

	return []enumerate.Option{
		enumerate.WithMaxLevels(c.Search.MaxLevels),
		enumerate.WithWorkers(c.Search.Workers),
		enumerate.WithPruning(c.Search.Prune),
		enumerate.WithTimeLimit(tl),
		enumerate.WithStepBudget(c.Search.StepBudget),
	}, nil
}
