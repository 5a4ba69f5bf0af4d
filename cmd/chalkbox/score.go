package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/chalkbox/internal/observability"
	"github.com/jonathan/chalkbox/internal/ranking"
	"github.com/jonathan/chalkbox/internal/skills"
	"github.com/jonathan/chalkbox/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a skill profile against a target skill list",
	Long: `Computes the bounded similarity between a profile's skills and a target's
required skills, including badge and prior-interaction boosts.

Example:
  chalkbox score --profile react,node --target react,node.js,mongodb,express --badge guru`,
	RunE: runScore,
}

var (
	scoreProfile []string
	scoreTarget  []string
	scoreBadges  []string
	scorePrior   bool
	scoreExplain bool
	scoreJSON    bool
)

func init() {
	scoreCmd.Flags().StringSliceVarP(&scoreProfile, "profile", "p", nil, "Comma-separated profile skills")
	scoreCmd.Flags().StringSliceVarP(&scoreTarget, "target", "t", nil, "Comma-separated target skills (required)")
	scoreCmd.Flags().StringSliceVarP(&scoreBadges, "badge", "b", nil, "Badge tiers held by the profile (e.g. GURU, acharya)")
	scoreCmd.Flags().BoolVar(&scorePrior, "prior", false, "The profile has a prior interaction with the target")
	scoreCmd.Flags().BoolVar(&scoreExplain, "explain", false, "Print the intermediate values and matched skills")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the result as JSON")

	if err := scoreCmd.MarkFlagRequired("target"); err != nil {
		panic(fmt.Sprintf("failed to mark target flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	tiers, err := parseBadges(scoreBadges)
	if err != nil {
		return err
	}
	req := types.MatchRequest{
		ProfileSkills:       scoreProfile,
		TargetSkills:        scoreTarget,
		Badges:              tiers,
		HasPriorInteraction: scorePrior,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid score request: %w", err)
	}

	taxonomy, err := cfg.LoadTaxonomy()
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	printVerboseProfile(cmd, cfg.Verbose, taxonomy, req.ProfileSkills, tiers)

	breakdown, err := ranking.NewScorer(taxonomy).Explain(req.ProfileSkills, req.TargetSkills, req.BadgeList(), req.HasPriorInteraction)
	if err != nil {
		return fmt.Errorf("failed to score: %w", err)
	}

	out := cmd.OutOrStdout()
	if scoreJSON {
		return writeJSON(out, breakdown)
	}
	return printBreakdown(out, breakdown, scoreExplain)
}

func printBreakdown(w io.Writer, b types.MatchBreakdown, explain bool) error {
	if _, err := fmt.Fprintf(w, "Match: %d%% (score %.4f)\n", b.MatchPercentage, b.Score); err != nil {
		return err
	}
	if explain {
		observability.NewPrinter(w).PrintMatchBreakdown(&b)
	}
	return nil
}

// printVerboseProfile shows how the profile was normalized, on stderr.
func printVerboseProfile(cmd *cobra.Command, verbose bool, taxonomy *skills.Taxonomy, profile []string, tiers []types.BadgeTier) {
	if !verbose {
		return
	}
	matched := taxonomy.Matched(taxonomy.Vectorize(profile))
	observability.NewPrinter(cmd.ErrOrStderr()).PrintProfile(matched, tiers)
}

// parseBadges parses tier names case-insensitively.
func parseBadges(names []string) ([]types.BadgeTier, error) {
	tiers := make([]types.BadgeTier, 0, len(names))
	for _, name := range names {
		tier, err := types.ParseBadgeTier(name)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
