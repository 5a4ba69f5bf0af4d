package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateUserRequest represents the request to register a new student or employer.
type CreateUserRequest struct {
	Name     string   `json:"name" validate:"required,min=1"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Role     Role     `json:"role" validate:"required,oneof=student employer"`
	Skills   []string `json:"skills,omitempty" validate:"max=200,dive,required,max=100"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User represents a user for API responses (avoids import cycle with db package).
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	Skills      []string  `json:"skills"`
	PasswordSet bool      `json:"password_set"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse represents the login/register response with user data and authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the CreateUserRequest using the validator.
func (r *CreateUserRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
