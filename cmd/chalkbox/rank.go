package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/chalkbox/internal/observability"
	"github.com/jonathan/chalkbox/internal/ranking"
	"github.com/jonathan/chalkbox/internal/schemas"
	"github.com/jonathan/chalkbox/internal/types"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a list of targets against a skill profile",
	Long: `Scores every target in a JSON file against the profile and prints them in
descending order. Targets with equal scores keep their file order.

The input file is a JSON array:
  [{"id": "j1", "title": "Frontend", "skills": ["React", "CSS"], "prior_interaction": false}]`,
	RunE: runRank,
}

var (
	rankInput   string
	rankProfile []string
	rankBadges  []string
	rankLimit   int
	rankJSON    bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankInput, "input", "i", "", "Path to targets JSON file (required)")
	rankCmd.Flags().StringSliceVarP(&rankProfile, "profile", "p", nil, "Comma-separated profile skills")
	rankCmd.Flags().StringSliceVarP(&rankBadges, "badge", "b", nil, "Badge tiers held by the profile")
	rankCmd.Flags().IntVarP(&rankLimit, "limit", "n", 0, "Maximum number of results (0 means all)")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print the ranking as JSON")

	if err := rankCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

// rankTarget is one entry of the targets file.
type rankTarget struct {
	ID               string   `json:"id"`
	Title            string   `json:"title,omitempty"`
	Skills           []string `json:"skills"`
	PriorInteraction bool     `json:"prior_interaction,omitempty"`
}

// rankedTarget is a target with its similarity attached.
type rankedTarget struct {
	rankTarget
	Similarity types.SimilarityResult `json:"similarity"`
}

func runRank(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if rankLimit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", rankLimit)
	}

	targets, err := loadTargets(rankInput)
	if err != nil {
		return err
	}

	tiers, err := parseBadges(rankBadges)
	if err != nil {
		return err
	}
	badges := (&types.MatchRequest{Badges: tiers}).BadgeList()

	taxonomy, err := cfg.LoadTaxonomy()
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}
	scorer := ranking.NewScorer(taxonomy)
	printVerboseProfile(cmd, cfg.Verbose, taxonomy, rankProfile, tiers)

	scored := make([]rankedTarget, 0, len(targets))
	for _, target := range targets {
		result, err := scorer.Score(rankProfile, target.Skills, badges, target.PriorInteraction)
		if err != nil {
			return fmt.Errorf("failed to score target %s: %w", target.ID, err)
		}
		scored = append(scored, rankedTarget{rankTarget: target, Similarity: result})
	}

	ranked := ranking.TopN(ranking.Rank(scored, func(t rankedTarget) (float64, bool) {
		return t.Similarity.Score, true
	}), rankLimit)

	if cfg.Verbose {
		items := make([]observability.RankedItem, len(ranked))
		for i, t := range ranked {
			items[i] = observability.RankedItem{Label: t.ID, Result: t.Similarity}
		}
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRanking(items)
	}

	out := cmd.OutOrStdout()
	if rankJSON {
		return writeJSON(out, ranked)
	}
	return printRanking(out, ranked)
}

func loadTargets(path string) ([]rankTarget, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read targets file %s: %w", path, err)
	}
	if err := schemas.ValidateJSONString(schemas.TargetsSchema, string(data)); err != nil {
		return nil, fmt.Errorf("invalid targets file %s: %w", path, err)
	}

	var targets []rankTarget
	if err := json.Unmarshal(data, &targets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal targets JSON: %w", err)
	}
	return targets, nil
}

func printRanking(w io.Writer, ranked []rankedTarget) error {
	if len(ranked) == 0 {
		_, err := fmt.Fprintln(w, "No targets to rank")
		return err
	}
	for i, t := range ranked {
		label := t.ID
		if t.Title != "" {
			label = fmt.Sprintf("%s (%s)", t.Title, t.ID)
		}
		if _, err := fmt.Fprintf(w, "%2d. %3d%%  %s\n", i+1, t.Similarity.MatchPercentage, label); err != nil {
			return err
		}
	}
	return nil
}
