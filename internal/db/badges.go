package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/chalkbox/internal/types"
)

// -----------------------------------------------------------------------------
// Badge Methods
// -----------------------------------------------------------------------------

// ListUserBadges returns the badges held by a user, most prestigious first
func (db *DB) ListUserBadges(ctx context.Context, userID uuid.UUID) ([]types.Badge, error) {
	badges, err := db.ListBadgesForUsers(ctx, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}
	return badges[userID], nil
}

// ListBadgesForUsers returns badges for many users in one query, keyed by user ID.
// Users without badges are absent from the map.
func (db *DB) ListBadgesForUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]types.Badge, error) {
	result := make(map[uuid.UUID][]types.Badge)
	if len(userIDs) == 0 {
		return result, nil
	}

	rows, err := db.pool.Query(ctx,
		`SELECT user_id, tier, awarded_at FROM user_badges
		 WHERE user_id = ANY($1)
		 ORDER BY user_id, array_position(ARRAY['GURU','ACHARYA','SIKSHA_SEVI','SHIKSHARTHI','UTSAAHI_INTERN'], tier)`,
		userIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID uuid.UUID
		var tier string
		var awardedAt time.Time
		if err := rows.Scan(&userID, &tier, &awardedAt); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		result[userID] = append(result[userID], types.Badge{
			Tier:      types.BadgeTier(tier),
			AwardedAt: &awardedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	return result, nil
}

// AwardBadge grants a badge tier to a user. Awarding a tier the user already
// holds is a no-op.
func (db *DB) AwardBadge(ctx context.Context, userID uuid.UUID, tier types.BadgeTier) error {
	if !tier.IsValid() {
		return fmt.Errorf("unknown badge tier: %q", tier)
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO user_badges (user_id, tier) VALUES ($1, $2)
		 ON CONFLICT (user_id, tier) DO NOTHING`,
		userID, string(tier),
	)
	if err != nil {
		return fmt.Errorf("failed to award badge %s: %w", tier, err)
	}
	return nil
}
