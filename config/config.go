// Package config loads optional user configuration for the booksdata
// scraper from ~/.booksdata/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ScraperConfig represents scraper settings from the config file. Zero
// values mean "use the built-in default".
type ScraperConfig struct {
	BaseURL        string            `yaml:"base_url"`
	UserAgent      string            `yaml:"user_agent"`
	TimeoutSeconds int               `yaml:"timeout_seconds"`
	Headers        map[string]string `yaml:"headers"`
}

// FileConfig represents the structure of ~/.booksdata/config.yaml.
type FileConfig struct {
	Scraper ScraperConfig `yaml:"scraper"`
}

// LoadConfigFile loads configuration from ~/.booksdata/config.yaml.
// Returns nil if the file doesn't exist (not an error). Returns error if
// the file exists but cannot be parsed.
func LoadConfigFile() (*FileConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	return LoadConfigFrom(filepath.Join(homeDir, ".booksdata", "config.yaml"))
}

// LoadConfigFrom loads configuration from an explicit path, with the same
// missing-file behavior as LoadConfigFile.
func LoadConfigFrom(path string) (*FileConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil // File doesn't exist -- not an error
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
