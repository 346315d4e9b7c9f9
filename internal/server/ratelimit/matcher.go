package ratelimit

import (
	"strings"
)

// MatchEndpoint finds the rate tier for a request path and method. Exact path
// matches win over prefix matches; nil means no tier is configured and the
// default limit applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check must stay reachable for monitoring regardless of limits.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Limit: 0, Window: 0}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	// Tiers with a trailing "/" cover everything under that path.
	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") {
			if strings.HasPrefix(path, config.Path) {
				return config
			}
		}
	}

	return nil
}
