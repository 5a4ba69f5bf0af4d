package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jonathan/chalkbox/internal/types"
)

// ErrEmailTaken is returned by CreateUser when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

const uniqueViolation = "23505"

// -----------------------------------------------------------------------------
// User Methods
// -----------------------------------------------------------------------------

const userColumns = `id, name, email, role, skills, password_hash, password_set, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	var skillsJSON []byte
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &skillsJSON,
		&u.PasswordHash, &u.PasswordSet, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := u.Skills.Scan(skillsJSON); err != nil {
		return nil, fmt.Errorf("failed to decode skills: %w", err)
	}
	return &u, nil
}

func marshalSkills(skills []string) ([]byte, error) {
	if skills == nil {
		skills = []string{}
	}
	data, err := json.Marshal(skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	return data, nil
}

// CreateUser inserts a new user and returns its ID. The password hash is
// written in the same statement; an empty hash leaves the password unset.
func (db *DB) CreateUser(ctx context.Context, name, email string, role types.Role, skills []string, passwordHash string) (uuid.UUID, error) {
	skillsJSON, err := marshalSkills(skills)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, role, skills, password_hash, password_set)
		 VALUES ($1, $2, $3, $4, $5, $5 <> '')
		 RETURNING id`,
		name, email, string(role), skillsJSON, passwordHash,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, fmt.Errorf("failed to create user %s: %w", email, ErrEmailTaken)
		}
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves a user by ID. Returns nil, nil if not found.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email. Returns nil, nil if not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if email == "" {
		return nil, nil
	}
	u, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// CheckEmailExists reports whether an account already uses email
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// UpdateUserSkills replaces the user's skill list
func (db *DB) UpdateUserSkills(ctx context.Context, userID uuid.UUID, skills []string) error {
	skillsJSON, err := marshalSkills(skills)
	if err != nil {
		return err
	}
	tag, err := db.pool.Exec(ctx,
		`UPDATE users SET skills = $1, updated_at = NOW() WHERE id = $2`,
		skillsJSON, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update skills: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}

// DeleteUser removes a user and, through cascades, everything they own
func (db *DB) DeleteUser(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ListStudents returns every student account, oldest first
func (db *DB) ListStudents(ctx context.Context) ([]User, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at, id`,
		string(types.RoleStudent),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return users, nil
}
