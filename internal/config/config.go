// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents settings that can be loaded from a JSON file. All fields
// are optional; missing values use defaults or must be provided via CLI
// flags or the environment.
type Config struct {
	APIKey    string `json:"api_key,omitempty"`    // YouTube Data API key
	Port      int    `json:"port,omitempty"`       // HTTP listen port
	MaxVideos int    `json:"max_videos,omitempty"` // Candidate videos per run
	Language  string `json:"language,omitempty"`   // Transcript language preference
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:      8080,
		MaxVideos: 5,
		Language:  "en",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.MaxVideos < 0 {
		return fmt.Errorf("config error: 'max_videos' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. CLI flags and environment variables are applied on top by the
// caller and always win.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxVideos == 0 {
		result.MaxVideos = defaults.MaxVideos
	}

	return result
}
