// Package config resolves the tool configuration from, in increasing
// precedence: built-in defaults, an optional YAML file, and environment
// variables. Flag overrides are applied by the CLI layer on top.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"adminctl/pkg/api"
)

// Environment variable names.
const (
	EnvBaseURL   = "ADMINCTL_BASE_URL"
	EnvTimeoutMS = "ADMINCTL_TIMEOUT_MS"
	EnvLogLevel  = "ADMINCTL_LOG_LEVEL"
)

// Config holds the settings shared by every command.
type Config struct {
	BaseURL   string `yaml:"base_url"`
	TimeoutMS int    `yaml:"timeout_ms"`
	LogLevel  string `yaml:"log_level"`
	LogPath   string `yaml:"log_path"`
}

// Default returns the built-in configuration: the local API at
// http://localhost:5120 with a 10 s request timeout.
func Default() Config {
	return Config{
		BaseURL:   api.DefaultBaseURL,
		TimeoutMS: int(api.DefaultTimeout / time.Millisecond),
		LogLevel:  "info",
	}
}

// Load resolves the configuration. path may be empty, in which case only
// defaults and environment overrides apply; a non-empty path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.loadEnv()

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvTimeoutMS); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TimeoutMS = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if c.TimeoutMS < 1 {
		return fmt.Errorf("timeout_ms must be positive")
	}
	return nil
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
