// Package config loads CLI settings from an optional YAML file, with defaults
// applied via struct tags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mcuadros/go-defaults"
	"gopkg.in/yaml.v3"

	"github.com/m1guelpf/aranet-go/aranet"
)

// Config holds the settings the aranet4 CLI accepts from a config file.
// Durations are kept as strings so the YAML stays human-editable ("10s",
// "500ms"); Options parses and validates them.
type Config struct {
	SearchTimeout string `yaml:"search_timeout" default:"10s"`
	PollInterval  string `yaml:"poll_interval" default:"1s"`
	NamePrefix    string `yaml:"name_prefix" default:"Aranet4"`
	LogLevel      string `yaml:"log_level"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	defaults.SetDefaults(cfg)
	return cfg
}

// Load reads a YAML config file. Fields absent from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// Options converts the Config into discovery options.
func (c *Config) Options() (*aranet.Options, error) {
	opts := aranet.DefaultOptions()

	searchTimeout, err := time.ParseDuration(c.SearchTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid search_timeout %q: %w", c.SearchTimeout, err)
	}
	pollInterval, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid poll_interval %q: %w", c.PollInterval, err)
	}

	opts.SearchTimeout = searchTimeout
	opts.PollInterval = pollInterval
	if c.NamePrefix != "" {
		opts.NamePrefix = c.NamePrefix
	}
	return opts, nil
}
