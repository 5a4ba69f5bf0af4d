package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/chalkbox/internal/db"
	"github.com/jonathan/chalkbox/internal/types"
	"github.com/spf13/cobra"
)

// ---------------------------------------------------------------------
// Database administration commands
// ---------------------------------------------------------------------

var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Manage user badges",
}

var badgeAwardCmd = &cobra.Command{
	Use:   "award",
	Short: "Award a badge tier to a user",
	RunE:  runBadgeAward,
}

var badgeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's badges, most prestigious first",
	RunE:  runBadgeList,
}

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage job postings",
}

var jobCloseCmd = &cobra.Command{
	Use:   "close JOB_ID",
	Short: "Close a job so it is no longer recommended",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobClose,
}

var (
	adminDatabaseURL string
	badgeUserID      string
	badgeTier        string
)

func init() {
	for _, c := range []*cobra.Command{badgeCmd, jobCmd} {
		c.PersistentFlags().StringVar(&adminDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	}

	badgeAwardCmd.Flags().StringVar(&badgeUserID, "user-id", "", "User ID (required)")
	badgeAwardCmd.Flags().StringVar(&badgeTier, "tier", "", "Badge tier, e.g. GURU or siksha-sevi (required)")
	badgeListCmd.Flags().StringVar(&badgeUserID, "user-id", "", "User ID (required)")
	for _, c := range []*cobra.Command{badgeAwardCmd, badgeListCmd} {
		if err := c.MarkFlagRequired("user-id"); err != nil {
			panic(fmt.Sprintf("failed to mark user-id flag as required: %v", err))
		}
	}
	if err := badgeAwardCmd.MarkFlagRequired("tier"); err != nil {
		panic(fmt.Sprintf("failed to mark tier flag as required: %v", err))
	}

	badgeCmd.AddCommand(badgeAwardCmd, badgeListCmd)
	jobCmd.AddCommand(jobCloseCmd)
	rootCmd.AddCommand(badgeCmd, jobCmd)
}

func connectDB(ctx context.Context, cmd *cobra.Command) (*db.DB, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = adminDatabaseURL
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL, db.WithLogger(cfg.Logger()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

func runBadgeAward(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(badgeUserID)
	if err != nil {
		return fmt.Errorf("invalid --user-id: %w", err)
	}
	tier, err := types.ParseBadgeTier(badgeTier)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := connectDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	user, err := database.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user not found: %s", userID)
	}

	if err := database.AwardBadge(ctx, userID, tier); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Awarded %s to %s (%s)\n", tier, user.Name, userID)
	return nil
}

func runBadgeList(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(badgeUserID)
	if err != nil {
		return fmt.Errorf("invalid --user-id: %w", err)
	}

	ctx := context.Background()
	database, err := connectDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	badges, err := database.ListUserBadges(ctx, userID)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(badges) == 0 {
		_, err := fmt.Fprintln(out, "No badges")
		return err
	}
	for _, b := range badges {
		awarded := ""
		if b.AwardedAt != nil {
			awarded = b.AwardedAt.Format("2006-01-02")
		}
		if _, err := fmt.Fprintf(out, "%-15s %s\n", b.Tier, awarded); err != nil {
			return err
		}
	}
	return nil
}

func runJobClose(cmd *cobra.Command, args []string) error {
	jobID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid job ID: %w", err)
	}

	ctx := context.Background()
	database, err := connectDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.CloseJob(ctx, jobID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Closed job %s\n", jobID)
	return nil
}
