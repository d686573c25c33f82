// Package config provides application configuration.
// Configuration is loaded once at startup and passed explicitly; there is no
// package-level instance.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"compute-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// AWS contains AWS-specific configuration
	AWS AWSConfig `json:"aws,omitempty"`

	// GCP contains GCP-specific configuration
	GCP GCPConfig `json:"gcp,omitempty"`

	// UsageRates overrides the built-in usage-rate table, keyed by
	// tier then workload class. Partial overrides merge over the defaults.
	UsageRates map[string]map[string]float64 `json:"usage_rates,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (table, json)
	DefaultFormat string `json:"default_format"`
}

// AWSConfig contains AWS-specific settings
type AWSConfig struct {
	// DefaultRegion is the region preselected for estimates
	DefaultRegion string `json:"default_region"`

	// Profile is the AWS credentials profile for the pricing client
	Profile string `json:"profile,omitempty"`
}

// GCPConfig contains GCP-specific settings
type GCPConfig struct {
	// DefaultRegion is the region preselected for estimates
	DefaultRegion string `json:"default_region"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Logging: logging.DefaultConfig(),
		Output: OutputConfig{
			DefaultFormat: "table",
		},
		AWS: AWSConfig{
			DefaultRegion: "us-east-1",
		},
		GCP: GCPConfig{
			DefaultRegion: "us-central1",
		},
	}
}

// DefaultPath returns the default configuration file location
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "compute-cost.json"
	}
	return filepath.Join(homeDir, ".compute-cost", "config.json")
}

// Load loads configuration from a file.
// A missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
