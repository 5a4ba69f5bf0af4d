package ratelimit

import (
	"strings"
	"time"

	"github.com/jonathan/chalkbox/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.); empty matches any
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := config.EnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    config.EnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   config.EnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: config.EnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(config.EnvString("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(config.EnvString("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: Credential endpoints (strictest limits)
		{Path: "/auth/login", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},
		{Path: "/auth/register", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},

		// Tier 2: Ranking over the whole marketplace (moderate limits)
		{Path: "/me/recommendations/", Method: "GET", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/jobs/", Method: "GET", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/match", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// Tier 3: Writes
		{Path: "/me/skills", Method: "PUT", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/jobs", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/workshops", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/jobs/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/workshops/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		// Tier 4: Other reads - handled by default limit
		// Tier 5: Health check (unlimited) - handled in the matcher
	}
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}

	return result
}
