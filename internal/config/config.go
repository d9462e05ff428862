// Package config provides configuration parsing for hwdiag.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the hwdiag configuration.
type Config struct {
	// Collect holds metric collection settings.
	Collect CollectConfig `yaml:"collect"`

	// Report holds report rendering and saving settings.
	Report ReportConfig `yaml:"report"`

	// Serve holds HTTP server settings.
	Serve ServeConfig `yaml:"serve"`

	// Log holds logging settings.
	Log LogConfig `yaml:"log"`
}

// CollectConfig holds metric collection settings.
type CollectConfig struct {
	// SampleInterval is a duration string (e.g. "500ms", "2s") over which
	// CPU and process usage is sampled.
	SampleInterval string `yaml:"sample_interval"`
	// AllPartitions includes every mounted filesystem instead of the
	// curated set of real volumes.
	AllPartitions bool `yaml:"all_partitions"`
	// TopProcesses is how many processes to list per ranking. Zero
	// disables process collection.
	TopProcesses int `yaml:"top_processes"`
	// GPU controls whether graphics adapters are enumerated.
	GPU bool `yaml:"gpu"`
}

// ReportConfig holds report rendering and saving settings.
type ReportConfig struct {
	// Dir is the directory saved reports are written to.
	Dir string `yaml:"dir"`
	// Color enables ANSI colors on console output.
	Color bool `yaml:"color"`
	// Full always prints the detailed hardware sections.
	Full bool `yaml:"full"`
}

// ServeConfig holds HTTP server settings.
type ServeConfig struct {
	// Port is the TCP port the diagnostic server listens on.
	Port int `yaml:"port"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum level emitted: "debug", "info", "warn" or "error".
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Collect: CollectConfig{
			SampleInterval: "500ms",
			AllPartitions:  false,
			TopProcesses:   5,
			GPU:            true,
		},
		Report: ReportConfig{
			Dir:   ".",
			Color: true,
			Full:  false,
		},
		Serve: ServeConfig{
			Port: 8080,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the conventional config file location. The file
// does not have to exist.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hwdiag", "config.yaml")
}

// LoadConfig loads configuration from a YAML file, merging with
// defaults. A missing file is not an error; the defaults stand.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for required fields and logical consistency.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.Collect.SampleInterval); err != nil {
		return fmt.Errorf("collect.sample_interval is not a duration: %q", c.Collect.SampleInterval)
	}
	if c.Collect.TopProcesses < 0 {
		return fmt.Errorf("collect.top_processes must be non-negative, got %d", c.Collect.TopProcesses)
	}

	if c.Report.Dir == "" {
		return fmt.Errorf("report.dir is required")
	}

	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port must be in 1-65535, got %d", c.Serve.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("log.level must be 'debug', 'info', 'warn' or 'error', got %q", c.Log.Level)
	}

	return nil
}

// Interval returns the parsed collection interval. Call Validate
// first; an unparsable value falls back to the default.
func (c *CollectConfig) Interval() time.Duration {
	d, err := time.ParseDuration(c.SampleInterval)
	if err != nil || d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}
