// Package config loads mega's runtime settings from MEGA_* environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"

	"github.com/born-ml/mega/internal/numerr"
	"github.com/born-ml/mega/internal/sequence"
	"github.com/born-ml/mega/internal/tensor"
)

// Prefix is prepended to every environment variable name.
const Prefix = "MEGA"

// Config holds all application configuration.
type Config struct {
	Logging  LogConfig
	Sequence SequenceConfig
	Tensor   TensorConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// SequenceConfig holds defaults for sequence commands.
type SequenceConfig struct {
	GoldenIterations int `envconfig:"GOLDEN_ITERATIONS" default:"40"`
}

// TensorConfig holds tensor rendering settings.
type TensorConfig struct {
	PrintLimit int `envconfig:"PRINT_LIMIT" default:"16"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Sequence: SequenceConfig{
			GoldenIterations: sequence.DefaultGoldenIterations,
		},
		Tensor: TensorConfig{
			PrintLimit: tensor.MaxPrintElements,
		},
	}
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var err error
	if c.Sequence.GoldenIterations < 1 {
		err = multierr.Append(err, numerr.Invalid("%s_GOLDEN_ITERATIONS must be >= 1, got %d", Prefix, c.Sequence.GoldenIterations))
	}
	if c.Tensor.PrintLimit < 0 {
		err = multierr.Append(err, numerr.Invalid("%s_PRINT_LIMIT must be >= 0, got %d", Prefix, c.Tensor.PrintLimit))
	}
	return err
}
