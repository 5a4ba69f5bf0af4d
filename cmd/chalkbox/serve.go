package main

import (
	"fmt"

	"github.com/jonathan/chalkbox/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort        int
	serveDatabaseURL string
	serveLimit       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes skill matching, recommendations and the job/workshop marketplace.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	serveCmd.Flags().IntVar(&serveLimit, "limit", 0, "Default number of recommendations returned per request")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDatabaseURL
	}
	if cmd.Flags().Changed("limit") {
		cfg.RecommendationLimit = serveLimit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	taxonomy, err := cfg.LoadTaxonomy()
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	srv, err := server.New(server.Config{
		Port:                cfg.Port,
		DatabaseURL:         cfg.DatabaseURL,
		Taxonomy:            taxonomy,
		RecommendationLimit: cfg.RecommendationLimit,
		Logger:              cfg.Logger(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
