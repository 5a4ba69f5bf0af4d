package ranking

import "github.com/jonathan/chalkbox/internal/types"

// BoostRule multiplies a score when its predicate holds for a profile's badges.
type BoostRule struct {
	Name       string
	Multiplier float64
	Applies    func(badges []types.Badge) bool
}

// TierRule returns a rule that applies when the profile holds the given tier.
func TierRule(tier types.BadgeTier, multiplier float64) BoostRule {
	return BoostRule{
		Name:       string(tier),
		Multiplier: multiplier,
		Applies: func(badges []types.Badge) bool {
			return types.HasTier(badges, tier)
		},
	}
}

// DefaultBadgeBoosts returns the badge boosts in priority order.
// Only the first matching rule is applied.
func DefaultBadgeBoosts() []BoostRule {
	return []BoostRule{
		TierRule(types.BadgeGuru, 1.20),
		TierRule(types.BadgeAcharya, 1.15),
		TierRule(types.BadgeSikshaSevi, 1.10),
	}
}

// firstBoost returns the highest-priority rule the badges qualify for.
func firstBoost(rules []BoostRule, badges []types.Badge) (BoostRule, bool) {
	if len(badges) == 0 {
		return BoostRule{}, false
	}
	for _, rule := range rules {
		if rule.Applies != nil && rule.Applies(badges) {
			return rule, true
		}
	}
	return BoostRule{}, false
}
