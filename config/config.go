package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultPollIntervalMS = 10

type Config struct {
	Tracker TrackerConfig `yaml:"tracker"`
	Logging LoggingConfig `yaml:"logging"`
}

type TrackerConfig struct {
	PollIntervalMS int `yaml:"poll_interval_ms"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration the probe runs with when no config
// file is present.
func Default() *Config {
	return &Config{
		Tracker: TrackerConfig{PollIntervalMS: defaultPollIntervalMS},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the yaml config at path. A missing file is not an error;
// the probe runs with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set defaults
	if cfg.Tracker.PollIntervalMS <= 0 {
		cfg.Tracker.PollIntervalMS = defaultPollIntervalMS
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return &cfg, nil
}

// PollInterval returns the tracker poll cadence.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Tracker.PollIntervalMS) * time.Millisecond
}
