// Package types provides type definitions for structured data used throughout the ChalkBox system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// BadgeTier is a reputation level a user can hold.
type BadgeTier string

// Badge tiers, from most to least prestigious.
const (
	BadgeGuru          BadgeTier = "GURU"
	BadgeAcharya       BadgeTier = "ACHARYA"
	BadgeSikshaSevi    BadgeTier = "SIKSHA_SEVI"
	BadgeShiksharthi   BadgeTier = "SHIKSHARTHI"
	BadgeUtsaahiIntern BadgeTier = "UTSAAHI_INTERN"
)

// AllBadgeTiers lists every known tier in prestige order.
var AllBadgeTiers = []BadgeTier{
	BadgeGuru,
	BadgeAcharya,
	BadgeSikshaSevi,
	BadgeShiksharthi,
	BadgeUtsaahiIntern,
}

// ParseBadgeTier parses a tier name case-insensitively. Hyphens and spaces are
// accepted in place of underscores ("siksha-sevi" parses as SIKSHA_SEVI).
func ParseBadgeTier(s string) (BadgeTier, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	for _, tier := range AllBadgeTiers {
		if string(tier) == normalized {
			return tier, nil
		}
	}
	return "", fmt.Errorf("unknown badge tier: %q", s)
}

// IsValid reports whether t is one of the known tiers.
func (t BadgeTier) IsValid() bool {
	_, err := ParseBadgeTier(string(t))
	return err == nil
}

// UnmarshalJSON rejects unknown tier names.
func (t *BadgeTier) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	tier, err := ParseBadgeTier(raw)
	if err != nil {
		return err
	}
	*t = tier
	return nil
}

// Badge is a badge assignment held by a user.
type Badge struct {
	Tier      BadgeTier  `json:"tier"`
	AwardedAt *time.Time `json:"awarded_at,omitempty"`
}

// HasTier reports whether any badge in the list has the given tier.
func HasTier(badges []Badge, tier BadgeTier) bool {
	for _, b := range badges {
		if b.Tier == tier {
			return true
		}
	}
	return false
}
