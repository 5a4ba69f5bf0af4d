package main

import (
	"context"
	"fmt"

	"github.com/jonathan/chalkbox/internal/db"
	"github.com/spf13/cobra"
)

var (
	migrateDatabaseURL string
	migratePrint       bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  "Applies the embedded schema to the database. Every statement is idempotent, so running it twice is safe.",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	migrateCmd.Flags().BoolVar(&migratePrint, "print", false, "Print the schema instead of applying it")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	if migratePrint {
		_, err := fmt.Fprint(cmd.OutOrStdout(), db.Schema())
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = migrateDatabaseURL
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL, db.WithLogger(cfg.Logger()))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Schema applied")
	return nil
}
