// Package config resolves the orchestrator configuration: caller supplied
// values merged over defaults, optionally read from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/ib-77/mutator/pkg/logging"
)

// Config holds the orchestrator configuration. Zero fields mean "not set" and
// are filled from Default by Merge.
type Config struct {
	LogLevel logging.Level
	Colors   *bool
	Metrics  MetricsConfig
}

// MetricsConfig names the prometheus series exported by flows.
type MetricsConfig struct {
	Namespace string
}

// env is the environment view of Config.
type env struct {
	LogLevel         logging.Level `envconfig:"LOG_LEVEL" default:"INFO"`
	Colors           bool          `envconfig:"COLORS" default:"true"`
	MetricsNamespace string        `envconfig:"METRICS_NAMESPACE" default:"mutator"`
}

// Default returns {INFO, colors on}.
func Default() Config {
	return Config{
		LogLevel: logging.LevelInfo,
		Colors:   Bool(true),
		Metrics:  MetricsConfig{Namespace: "mutator"},
	}
}

// Merge returns c with every field set in override replacing its value.
func (c Config) Merge(override Config) Config {
	if override.LogLevel != "" {
		c.LogLevel = override.LogLevel
	}
	if override.Colors != nil {
		c.Colors = Bool(*override.Colors)
	}
	if override.Metrics.Namespace != "" {
		c.Metrics.Namespace = override.Metrics.Namespace
	}
	return c
}

// Resolve merges override over Default.
func Resolve(override Config) Config {
	return Default().Merge(override)
}

// ColorsEnabled reads Colors, treating unset as the default (true).
func (c Config) ColorsEnabled() bool {
	return c.Colors == nil || *c.Colors
}

// Logging derives the logger configuration.
func (c Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	if c.LogLevel != "" {
		cfg.Level = c.LogLevel
	}
	cfg.Colors = c.ColorsEnabled()
	return cfg
}

// Load loads configuration from environment variables.
func Load() (Config, error) {
	var e env
	if err := envconfig.Process("", &e); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return Config{
		LogLevel: e.LogLevel,
		Colors:   Bool(e.Colors),
		Metrics:  MetricsConfig{Namespace: e.MetricsNamespace},
	}, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

func Bool(b bool) *bool {
	return &b
}
