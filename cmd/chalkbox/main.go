// Package main provides the chalkbox CLI: skill-match scoring, ranking and the REST API server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/chalkbox/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chalkbox",
	Short: "ChalkBox skill-match scorer",
	Long: `ChalkBox scores how well a user's skills match a job or workshop, applies
badge and prior-interaction boosts, and ranks the results.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values, which override environment variables.`,
	SilenceUsage: true,
}

var (
	globalConfigPath string
	globalTaxonomy   string
	globalMatchMode  string
	globalLogLevel   string
	globalVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&globalTaxonomy, "taxonomy", "", "Path to a YAML/JSON taxonomy file (default: built-in table)")
	rootCmd.PersistentFlags().StringVar(&globalMatchMode, "match-mode", "", "Partial skill matching: token (default) or substring")
	rootCmd.PersistentFlags().StringVar(&globalLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig resolves the effective configuration: config file, then
// environment for unset fields, then explicitly set flags, then defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if globalConfigPath != "" {
		loaded, err := config.LoadConfig(globalConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("taxonomy") {
		cfg.Taxonomy = globalTaxonomy
	}
	if flags.Changed("match-mode") {
		cfg.MatchMode = globalMatchMode
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = globalLogLevel
	}
	if flags.Changed("verbose") {
		cfg.Verbose = globalVerbose
	}

	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Config{})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger()
	slog.SetDefault(logger)
	if globalConfigPath != "" {
		logger.Debug("loaded config", "path", globalConfigPath)
	}
	return &cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
