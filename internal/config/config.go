// Package config provides configuration loading and validation for ChalkBox.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/chalkbox/internal/skills"
)

// Defaults applied by MergeWithDefaults when neither the file nor the flags set a value.
const (
	DefaultPort                = 8080
	DefaultRecommendationLimit = 20
	MaxRecommendationLimit     = 200
)

// Config represents the ChalkBox configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Matching
	Taxonomy  string `json:"taxonomy,omitempty"`   // Path to a YAML/JSON taxonomy file; built-in table if empty
	MatchMode string `json:"match_mode,omitempty"` // "token" (default) or "substring"

	// Service
	DatabaseURL         string `json:"database_url,omitempty"`         // PostgreSQL connection URL
	Port                int    `json:"port,omitempty"`                 // HTTP port for `serve`
	RecommendationLimit int    `json:"recommendation_limit,omitempty"` // Default page size for ranked lists

	// Behavior
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn, error
	Verbose  bool   `json:"verbose,omitempty"`   // Print detailed debug information
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

// ApplyEnv overrides empty fields from DATABASE_URL, PORT, CHALKBOX_TAXONOMY,
// CHALKBOX_MATCH_MODE and CHALKBOX_LOG_LEVEL.
func (c *Config) ApplyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = EnvString("DATABASE_URL", "")
	}
	if c.Port == 0 {
		c.Port = EnvInt("PORT", 0)
	}
	if c.Taxonomy == "" {
		c.Taxonomy = EnvString("CHALKBOX_TAXONOMY", "")
	}
	if c.MatchMode == "" {
		c.MatchMode = EnvString("CHALKBOX_MATCH_MODE", "")
	}
	if c.LogLevel == "" {
		c.LogLevel = EnvString("CHALKBOX_LOG_LEVEL", "")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if _, err := skills.ParseMatchMode(c.MatchMode); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}
	if c.RecommendationLimit < 0 {
		return fmt.Errorf("config error: 'recommendation_limit' must be non-negative")
	}
	if c.RecommendationLimit > MaxRecommendationLimit {
		return fmt.Errorf("config error: 'recommendation_limit' must be at most %d", MaxRecommendationLimit)
	}

	if c.Taxonomy != "" {
		if _, err := os.Stat(c.Taxonomy); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.Taxonomy)
		}
	}

	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.MatchMode == "" {
		result.MatchMode = defaults.MatchMode
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}
	if result.RecommendationLimit == 0 {
		if defaults.RecommendationLimit > 0 {
			result.RecommendationLimit = defaults.RecommendationLimit
		} else {
			result.RecommendationLimit = DefaultRecommendationLimit
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LoadTaxonomy returns the configured taxonomy with the configured match mode.
func (c *Config) LoadTaxonomy() (*skills.Taxonomy, error) {
	mode, err := skills.ParseMatchMode(c.MatchMode)
	if err != nil {
		return nil, err
	}

	if c.Taxonomy == "" {
		return skills.Default().WithMode(mode), nil
	}

	opts := []skills.Option{}
	if c.MatchMode != "" {
		opts = append(opts, skills.WithMatchMode(mode))
	}
	return skills.LoadTaxonomy(c.Taxonomy, opts...)
}

// Logger builds the process logger for the configured level.
// Verbose forces debug level.
func (c *Config) Logger() *slog.Logger {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
