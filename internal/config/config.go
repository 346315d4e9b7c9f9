// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults applied when neither the config file nor the environment sets a value.
const (
	DefaultPort           = 3000
	DefaultFetchTimeout   = 30 * time.Second
	DefaultBrowserTimeout = 60 * time.Second
	DefaultMaxUploadBytes = 5 * 1024 * 1024
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Scraping
	ScholarBaseURL string `json:"scholar_base_url,omitempty"` // Override for the Google Scholar origin
	UserAgent      string `json:"user_agent,omitempty"`       // User-Agent sent on outbound fetches
	FetchTimeout   string `json:"fetch_timeout,omitempty"`    // Outbound fetch timeout, Go duration string
	UseBrowser     bool   `json:"use_browser,omitempty"`      // Fall back to a headless browser on block pages
	BrowserTimeout string `json:"browser_timeout,omitempty"`  // Headless browser timeout, Go duration string

	// Uploads
	MaxUploadBytes int64 `json:"max_upload_bytes,omitempty"` // Resume upload size cap

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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

// FromEnv builds a Config from environment variables. Unset variables leave
// the zero value so defaults apply downstream.
func FromEnv() Config {
	var cfg Config
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	cfg.ScholarBaseURL = os.Getenv("SCHOLAR_BASE_URL")
	cfg.UserAgent = os.Getenv("SCHOLARSYNC_USER_AGENT")
	cfg.FetchTimeout = os.Getenv("SCHOLARSYNC_FETCH_TIMEOUT")
	cfg.BrowserTimeout = os.Getenv("SCHOLARSYNC_BROWSER_TIMEOUT")
	if v := os.Getenv("SCHOLARSYNC_USE_BROWSER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UseBrowser = b
		}
	}
	if v := os.Getenv("SCHOLARSYNC_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxUploadBytes = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.FetchTimeout != "" {
		if _, err := time.ParseDuration(c.FetchTimeout); err != nil {
			return fmt.Errorf("config error: 'fetch_timeout' is not a valid duration: %w", err)
		}
	}
	if c.BrowserTimeout != "" {
		if _, err := time.ParseDuration(c.BrowserTimeout); err != nil {
			return fmt.Errorf("config error: 'browser_timeout' is not a valid duration: %w", err)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ScholarBaseURL == "" {
		result.ScholarBaseURL = defaults.ScholarBaseURL
	}
	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}
	if result.FetchTimeout == "" {
		result.FetchTimeout = defaults.FetchTimeout
	}
	if result.BrowserTimeout == "" {
		result.BrowserTimeout = defaults.BrowserTimeout
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FetchTimeoutDuration parses FetchTimeout, falling back to the default.
func (c *Config) FetchTimeoutDuration() time.Duration {
	if d, err := time.ParseDuration(c.FetchTimeout); err == nil && d > 0 {
		return d
	}
	return DefaultFetchTimeout
}

// BrowserTimeoutDuration parses BrowserTimeout, falling back to the default.
func (c *Config) BrowserTimeoutDuration() time.Duration {
	if d, err := time.ParseDuration(c.BrowserTimeout); err == nil && d > 0 {
		return d
	}
	return DefaultBrowserTimeout
}

// EffectivePort returns the configured port or the default.
func (c *Config) EffectivePort() int {
	if c.Port > 0 {
		return c.Port
	}
	return DefaultPort
}

// EffectiveMaxUploadBytes returns the configured upload cap or the default.
func (c *Config) EffectiveMaxUploadBytes() int64 {
	if c.MaxUploadBytes > 0 {
		return c.MaxUploadBytes
	}
	return DefaultMaxUploadBytes
}
