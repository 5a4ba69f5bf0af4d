package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/chalkbox/internal/types"
)

// -----------------------------------------------------------------------------
// Workshop Methods
// -----------------------------------------------------------------------------

const workshopColumns = `id, host_id, title, description, skills_taught, starts_at, created_at`

func scanWorkshop(row pgx.Row) (*types.Workshop, error) {
	var w types.Workshop
	var skillsJSON []byte
	if err := row.Scan(&w.ID, &w.HostID, &w.Title, &w.Description, &skillsJSON, &w.StartsAt, &w.CreatedAt); err != nil {
		return nil, err
	}
	var skills StringArray
	if err := skills.Scan(skillsJSON); err != nil {
		return nil, fmt.Errorf("failed to decode skills taught: %w", err)
	}
	w.SkillsTaught = skills
	return &w, nil
}

// CreateWorkshop stores a new workshop and returns it
func (db *DB) CreateWorkshop(ctx context.Context, input WorkshopInput) (*types.Workshop, error) {
	skillsJSON, err := marshalSkills(input.SkillsTaught)
	if err != nil {
		return nil, err
	}

	w, err := scanWorkshop(db.pool.QueryRow(ctx,
		`INSERT INTO workshops (host_id, title, description, skills_taught, starts_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+workshopColumns,
		input.HostID, input.Title, input.Description, skillsJSON, input.StartsAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create workshop: %w", err)
	}
	return w, nil
}

// GetWorkshop retrieves a workshop by ID. Returns nil, nil if not found.
func (db *DB) GetWorkshop(ctx context.Context, id uuid.UUID) (*types.Workshop, error) {
	w, err := scanWorkshop(db.pool.QueryRow(ctx,
		`SELECT `+workshopColumns+` FROM workshops WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get workshop: %w", err)
	}
	return w, nil
}

// ListWorkshops returns every workshop, soonest first; unscheduled ones last
func (db *DB) ListWorkshops(ctx context.Context) ([]types.Workshop, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+workshopColumns+` FROM workshops ORDER BY starts_at ASC NULLS LAST, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workshops: %w", err)
	}
	defer rows.Close()

	var workshops []types.Workshop
	for rows.Next() {
		w, err := scanWorkshop(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workshop: %w", err)
		}
		workshops = append(workshops, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list workshops: %w", err)
	}
	return workshops, nil
}
