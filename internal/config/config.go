// Package config provides configuration loading and validation for the CLI
// and the persistence server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the tracker configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Extraction input
	URL     string `json:"url,omitempty"`      // Job page URL to extract
	URLFile string `json:"url_file,omitempty"` // Path to a file with one URL per line

	// Extraction behavior
	UseBrowser    bool `json:"use_browser,omitempty"`     // Use headless browser for SPA sites
	ExpandDelayMS int  `json:"expand_delay_ms,omitempty"` // Wait after clicking "show more" (default 1000)

	// Persistence API (client side)
	APIBaseURL string `json:"api_base_url,omitempty"` // Persistence API root URL
	Token      string `json:"token,omitempty"`        // Bearer token from a previous login
	Email      string `json:"email,omitempty"`        // Account email for login

	// Server side
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	ListenAddr  string `json:"listen_addr,omitempty"`  // Server listen address (default ":8080")
	DailyGoal   int    `json:"daily_goal,omitempty"`   // Applications per day counted toward streaks

	// Behavior
	APIKey         string  `json:"api_key,omitempty"`          // Gemini API key for optional enrichment
	RequestsPerSec float64 `json:"requests_per_sec,omitempty"` // Per-host fetch rate limit
	Verbose        bool    `json:"verbose,omitempty"`          // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.URL != "" && c.URLFile != "" {
		return fmt.Errorf("config error: 'url' and 'url_file' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.ExpandDelayMS < 0 {
		return fmt.Errorf("config error: 'expand_delay_ms' must be non-negative")
	}
	if c.RequestsPerSec < 0 {
		return fmt.Errorf("config error: 'requests_per_sec' must be non-negative")
	}
	if c.DailyGoal < 0 {
		return fmt.Errorf("config error: 'daily_goal' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.URLFile != "" {
		if _, err := os.Stat(c.URLFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: url file not found: %s", c.URLFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.URLFile == "" {
		result.URLFile = defaults.URLFile
	}
	if result.APIBaseURL == "" {
		result.APIBaseURL = defaults.APIBaseURL
	}
	if result.Token == "" {
		result.Token = defaults.Token
	}
	if result.Email == "" {
		result.Email = defaults.Email
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.ExpandDelayMS == 0 {
		result.ExpandDelayMS = defaults.ExpandDelayMS
	}
	if result.DailyGoal == 0 {
		result.DailyGoal = defaults.DailyGoal
	}

	// Float fields
	if result.RequestsPerSec == 0 {
		result.RequestsPerSec = defaults.RequestsPerSec
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
