package ranking

import (
	"fmt"
	"math"

	"github.com/jonathan/chalkbox/internal/skills"
	"github.com/jonathan/chalkbox/internal/types"
)

const (
	// MinScore keeps every candidate rankable, even with no skill overlap.
	MinScore = 0.01
	// MaxScore caps boosted scores.
	MaxScore = 1.0

	defaultInteractionMultiplier = 1.10
)

// Scorer computes bounded skill similarity between a profile and a target.
// It holds only read-only state and is safe for concurrent use.
type Scorer struct {
	taxonomy              *skills.Taxonomy
	boosts                []BoostRule
	interactionMultiplier float64
}

// ScorerOption configures a Scorer.
type ScorerOption func(*Scorer)

// WithBadgeBoosts replaces the priority-ordered badge boost rules.
func WithBadgeBoosts(rules []BoostRule) ScorerOption {
	return func(s *Scorer) {
		s.boosts = append([]BoostRule(nil), rules...)
	}
}

// WithInteractionMultiplier sets the multiplier applied on prior interaction.
func WithInteractionMultiplier(multiplier float64) ScorerOption {
	return func(s *Scorer) {
		s.interactionMultiplier = multiplier
	}
}

// NewScorer creates a Scorer over the given taxonomy. A nil taxonomy means skills.Default().
func NewScorer(taxonomy *skills.Taxonomy, opts ...ScorerOption) *Scorer {
	if taxonomy == nil {
		taxonomy = skills.Default()
	}
	s := &Scorer{
		taxonomy:              taxonomy,
		boosts:                DefaultBadgeBoosts(),
		interactionMultiplier: defaultInteractionMultiplier,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Taxonomy returns the taxonomy the scorer vectorizes against.
func (s *Scorer) Taxonomy() *skills.Taxonomy {
	return s.taxonomy
}

// computation holds the intermediate values of one scoring pass.
type computation struct {
	profile, target       skills.Vector
	base                  float64
	boost                 BoostRule
	boosted               bool
	interactionMultiplier float64
	result                types.SimilarityResult
}

func (s *Scorer) compute(profileSkills, targetSkills []string, badges []types.Badge, hasPriorInteraction bool) (*computation, error) {
	c := &computation{
		profile:               s.taxonomy.Vectorize(profileSkills),
		target:                s.taxonomy.Vectorize(targetSkills),
		interactionMultiplier: 1.0,
	}

	base, err := CosineSimilarity(c.profile, c.target)
	if err != nil {
		return nil, fmt.Errorf("failed to compute similarity: %w", err)
	}
	c.base = base

	score := base
	if rule, ok := firstBoost(s.boosts, badges); ok {
		c.boost, c.boosted = rule, true
		score *= rule.Multiplier
	}
	if hasPriorInteraction {
		c.interactionMultiplier = s.interactionMultiplier
		score *= s.interactionMultiplier
	}

	score = Clamp(score)
	c.result = types.SimilarityResult{
		Score:           score,
		MatchPercentage: MatchPercentage(score),
	}
	return c, nil
}

// Score returns the bounded similarity of profileSkills to targetSkills.
//
// The base cosine similarity is multiplied by the first badge boost the
// profile qualifies for and, when hasPriorInteraction is set, by the
// interaction multiplier. The result is clamped to [MinScore, MaxScore].
func (s *Scorer) Score(profileSkills, targetSkills []string, badges []types.Badge, hasPriorInteraction bool) (types.SimilarityResult, error) {
	c, err := s.compute(profileSkills, targetSkills, badges, hasPriorInteraction)
	if err != nil {
		return types.SimilarityResult{}, err
	}
	return c.result, nil
}

// Explain is Score plus the intermediate values and the matched/missing skills.
func (s *Scorer) Explain(profileSkills, targetSkills []string, badges []types.Badge, hasPriorInteraction bool) (types.MatchBreakdown, error) {
	c, err := s.compute(profileSkills, targetSkills, badges, hasPriorInteraction)
	if err != nil {
		return types.MatchBreakdown{}, err
	}

	breakdown := types.MatchBreakdown{
		SimilarityResult:      c.result,
		BaseSimilarity:        c.base,
		BadgeMultiplier:       1.0,
		InteractionMultiplier: c.interactionMultiplier,
		MatchedSkills:         []string{},
		MissingSkills:         []string{},
	}
	if c.boosted {
		breakdown.AppliedBoost = c.boost.Name
		breakdown.BadgeMultiplier = c.boost.Multiplier
	}

	canonicals := s.taxonomy.Canonicals()
	for i := range c.target {
		if c.target[i] == 0 {
			continue
		}
		if c.profile[i] != 0 {
			breakdown.MatchedSkills = append(breakdown.MatchedSkills, canonicals[i])
		} else {
			breakdown.MissingSkills = append(breakdown.MissingSkills, canonicals[i])
		}
	}

	return breakdown, nil
}

// Clamp bounds a score to [MinScore, MaxScore].
func Clamp(score float64) float64 {
	if math.IsNaN(score) || score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// MatchPercentage converts a clamped score to an integer percentage in [1, 100].
func MatchPercentage(score float64) int {
	pct := int(math.Round(Clamp(score) * 100))
	return max(1, min(100, pct))
}
