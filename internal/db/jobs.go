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
// Job Methods
// -----------------------------------------------------------------------------

const jobColumns = `id, employer_id, title, description, required_skills, status, created_at`

func scanJob(row pgx.Row) (*types.Job, error) {
	var j types.Job
	var skillsJSON []byte
	if err := row.Scan(&j.ID, &j.EmployerID, &j.Title, &j.Description, &skillsJSON, &j.Status, &j.CreatedAt); err != nil {
		return nil, err
	}
	var skills StringArray
	if err := skills.Scan(skillsJSON); err != nil {
		return nil, fmt.Errorf("failed to decode required skills: %w", err)
	}
	j.RequiredSkills = skills
	return &j, nil
}

// CreateJob posts a new open job and returns it
func (db *DB) CreateJob(ctx context.Context, input JobInput) (*types.Job, error) {
	skillsJSON, err := marshalSkills(input.RequiredSkills)
	if err != nil {
		return nil, err
	}

	job, err := scanJob(db.pool.QueryRow(ctx,
		`INSERT INTO jobs (employer_id, title, description, required_skills, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+jobColumns,
		input.EmployerID, input.Title, input.Description, skillsJSON, JobStatusOpen,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// GetJob retrieves a job by ID. Returns nil, nil if not found.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	job, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListOpenJobs returns every open job, newest first
func (db *DB) ListOpenJobs(ctx context.Context) ([]types.Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY created_at DESC, id`,
		JobStatusOpen,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// CloseJob marks a job as closed so it no longer appears in recommendations
func (db *DB) CloseJob(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE jobs SET status = $1 WHERE id = $2`, JobStatusClosed, id)
	if err != nil {
		return fmt.Errorf("failed to close job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}
