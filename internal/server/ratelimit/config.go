package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate tier for one endpoint: at most Limit requests
// per client within each Window.
type EndpointConfig struct {
	Path   string // endpoint path (a trailing "/" matches by prefix)
	Method string
	Limit  int
	Window time.Duration
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Allowlist:       parseClientList(getEnvString("RATE_LIMIT_ALLOWLIST", "")),
		Denylist:        parseClientList(getEnvString("RATE_LIMIT_DENYLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint rate tiers.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Scholar scraping hits a third-party site, so it gets the
		// strictest limit.
		{Path: "/api/fetch-scholar-profile", Method: "POST", Limit: 30, Window: time.Hour},

		// Resume parsing decodes uploaded binaries.
		{Path: "/api/parse-resume", Method: "POST", Limit: 60, Window: time.Minute},

		// Suggestion generation is a pure in-memory computation.
		{Path: "/api/generate-suggestions", Method: "POST", Limit: 300, Window: time.Minute},

		// Health check is unlimited; the matcher special-cases it.
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseClientList parses a comma-separated list of client IDs into a set.
func parseClientList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, id := range strings.Split(list, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			result[id] = true
		}
	}
	return result
}
