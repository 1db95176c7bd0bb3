// Package config loads tool configuration from FLUIDPATH_* environment
// variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all tool configuration.
type Config struct {
	Logging LogConfig
	Find    FindConfig
	Output  OutputConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// FindConfig holds traversal defaults.
type FindConfig struct {
	ShowHidden bool `envconfig:"SHOW_HIDDEN" default:"false"`
}

// OutputConfig holds CLI output configuration.
type OutputConfig struct {
	Color bool `envconfig:"COLOR" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("fluidpath", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns the
// defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{Level: "info"},
		Find:    FindConfig{ShowHidden: false},
		Output:  OutputConfig{Color: true},
	}
}
