package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/chalkbox/internal/types"
)

// Job statuses
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// User represents a student or employer account
type User struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         types.Role  `json:"role"`
	Skills       StringArray `json:"skills"`               // JSONB array
	PasswordHash string      `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool        `json:"password_set" db:"password_set"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// APIUser converts the row to its API representation.
func (u *User) APIUser() *types.User {
	return &types.User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Skills:      []string(u.Skills),
		PasswordSet: u.PasswordSet,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// Profile builds the scoring profile for the user with the given badges.
func (u *User) Profile(badges []types.Badge) types.Profile {
	return types.Profile{
		UserID: u.ID,
		Name:   u.Name,
		Role:   u.Role,
		Skills: []string(u.Skills),
		Badges: badges,
	}
}

// JobInput holds the fields needed to post a job
type JobInput struct {
	EmployerID     uuid.UUID
	Title          string
	Description    string
	RequiredSkills []string
}

// WorkshopInput holds the fields needed to create a workshop
type WorkshopInput struct {
	HostID       uuid.UUID
	Title        string
	Description  string
	SkillsTaught []string
	StartsAt     *time.Time
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	switch source := src.(type) {
	case []byte:
		return json.Unmarshal(source, a)
	case string:
		return json.Unmarshal([]byte(source), a)
	default:
		return errors.New("type assertion .([]byte) failed")
	}
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
