// Package config loads the escort YAML configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/escort/joint"
)

// Config represents the complete configuration for the escort CLI.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig holds joint search settings.
type SearchConfig struct {
	Dedup  string `yaml:"dedup"`  // "positions-turn" or "positions"
	Verify bool   `yaml:"verify"` // re-check every emitted path
}

// BatchConfig holds batch runner settings.
type BatchConfig struct {
	Workers      int    `yaml:"workers"`       // 0 means one per CPU
	CheckAnswers bool   `yaml:"check_answers"` // compare against <name>.out when present
	MetricsOut   string `yaml:"metrics_out"`   // Prometheus textfile path; empty disables
}

// LoggingConfig defines the logging configuration.
type LoggingConfig struct {
	Level         string `yaml:"level"`  // Options: "debug", "info", "warn", "error"
	Format        string `yaml:"format"` // Options: "text", "json"
	IncludeCaller bool   `yaml:"include_caller"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Dedup: joint.PositionsAndTurn.String(),
		},
		Batch: BatchConfig{
			CheckAnswers: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file over Default and validates the result.
// An empty path returns the defaults.
func Load(configPath string) (*Config, error) {
	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.DedupKey(); err != nil {
		return err
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("invalid batch workers: %d", c.Batch.Workers)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(strings.TrimSpace(c.Logging.Level))] {
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(strings.TrimSpace(c.Logging.Format))] {
		return fmt.Errorf("invalid logging format: %q", c.Logging.Format)
	}

	return nil
}

// DedupKey parses Search.Dedup.
func (c *Config) DedupKey() (joint.DedupKey, error) {
	return joint.ParseDedupKey(c.Search.Dedup)
}
