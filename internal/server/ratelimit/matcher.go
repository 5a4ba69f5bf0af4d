package ratelimit

import (
	"strings"
)

// unmetered lists GET routes that are never limited.
var unmetered = map[string]bool{
	"/health": true,
}

// MatchEndpoint returns the configuration that governs a request, or nil when
// the default limit applies.
//
// An exact path wins. Otherwise configs whose path ends in "/" match as
// prefixes and the longest prefix wins, so "/jobs/" covers
// "/jobs/{id}/candidates" unless a more specific entry exists. An empty
// Method matches any method.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == "GET" && unmetered[path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	var best *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != "" && cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			if best == nil || len(cfg.Path) > len(best.Path) {
				best = cfg
			}
		}
	}
	return best
}
