package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Interaction Methods
//
// Applications and attendances are the "prior interaction" signal the scorer
// consumes.
// -----------------------------------------------------------------------------

// ApplyToJob records that a user applied to a job. Re-applying is a no-op.
func (db *DB) ApplyToJob(ctx context.Context, jobID, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO job_applications (job_id, user_id) VALUES ($1, $2)
		 ON CONFLICT (job_id, user_id) DO NOTHING`,
		jobID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to record application: %w", err)
	}
	return nil
}

// AttendWorkshop records that a user attended a workshop. Repeats are no-ops.
func (db *DB) AttendWorkshop(ctx context.Context, workshopID, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO workshop_attendances (workshop_id, user_id) VALUES ($1, $2)
		 ON CONFLICT (workshop_id, user_id) DO NOTHING`,
		workshopID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to record attendance: %w", err)
	}
	return nil
}

// HostAttendeeIDs returns the distinct users who attended any workshop run by hostID
func (db *DB) HostAttendeeIDs(ctx context.Context, hostID uuid.UUID) ([]uuid.UUID, error) {
	return db.queryIDs(ctx, "host attendees",
		`SELECT DISTINCT a.user_id FROM workshop_attendances a
		 JOIN workshops w ON w.id = a.workshop_id
		 WHERE w.host_id = $1`, hostID)
}

// AppliedJobIDs returns the IDs of every job the user applied to
func (db *DB) AppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return db.queryIDs(ctx, "applied jobs",
		`SELECT job_id FROM job_applications WHERE user_id = $1 ORDER BY created_at`, userID)
}

// AttendedHostIDs returns the distinct hosts whose workshops the user attended
func (db *DB) AttendedHostIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return db.queryIDs(ctx, "attended hosts",
		`SELECT DISTINCT w.host_id FROM workshop_attendances a
		 JOIN workshops w ON w.id = a.workshop_id
		 WHERE a.user_id = $1`, userID)
}

// ListJobApplicants returns the IDs of every user who applied to the job
func (db *DB) ListJobApplicants(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error) {
	return db.queryIDs(ctx, "job applicants",
		`SELECT user_id FROM job_applications WHERE job_id = $1 ORDER BY created_at`, jobID)
}

func (db *DB) queryIDs(ctx context.Context, what, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", what, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", what, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", what, err)
	}
	return ids, nil
}
