package types

// SimilarityResult is the bounded score for one (profile, target) pair.
// Score is in [0.01, 1.0] and MatchPercentage in [1, 100].
type SimilarityResult struct {
	Score           float64 `json:"score"`
	MatchPercentage int     `json:"match_percentage"`
}

// MatchBreakdown explains how a SimilarityResult was reached.
type MatchBreakdown struct {
	SimilarityResult
	BaseSimilarity        float64  `json:"base_similarity"`
	AppliedBoost          string   `json:"applied_boost,omitempty"`
	BadgeMultiplier       float64  `json:"badge_multiplier"`
	InteractionMultiplier float64  `json:"interaction_multiplier"`
	MatchedSkills         []string `json:"matched_skills"`
	MissingSkills         []string `json:"missing_skills"`
}
