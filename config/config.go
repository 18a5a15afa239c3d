// Package config loads the application configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI needs outside the database itself.
type Config struct {
	// DBPath is the SQLite file. Defaults to ~/.networth/networth.db.
	DBPath string `yaml:"db_path"`
	// User selects whose rows to read and write. Defaults to "default".
	User string `yaml:"user"`
	// QuoteTTL bounds how long fetched quotes are reused, e.g. "60s".
	QuoteTTL string `yaml:"quote_ttl"`
	// FallbackUSDTWD overrides the built-in USD/TWD fallback rate.
	FallbackUSDTWD float64 `yaml:"fallback_usdtwd,omitempty"`
	// GeminiAPIKey enables the assistant command. Can also come from
	// the GEMINI_API_KEY environment variable.
	GeminiAPIKey string `yaml:"gemini_api_key,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DBPath:   filepath.Join(home, ".networth", "networth.db"),
		User:     "default",
		QuoteTTL: "60s",
	}
}

// DefaultPath is where Load looks when given an empty path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".networth", "config.yaml")
}

// Load reads the YAML file at path, filling in defaults for anything the
// file leaves out. A missing file is not an error: you get the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = Default().DBPath
	}
	if cfg.User == "" {
		cfg.User = "default"
	}
	if cfg.QuoteTTL == "" {
		cfg.QuoteTTL = "60s"
	}
	return cfg, nil
}

// ParseQuoteTTL converts the configured TTL to a duration.
func (c *Config) ParseQuoteTTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.QuoteTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid quote_ttl %q: %w", c.QuoteTTL, err)
	}
	return d, nil
}
