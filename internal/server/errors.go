package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/chalkbox/internal/recommend"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrForbidden indicates the caller may not act on the resource
type ErrForbidden struct {
	Reason string
}

func (e *ErrForbidden) Error() string {
	return "forbidden: " + e.Reason
}

// ErrJobClosed indicates an application to a job that no longer accepts them
type ErrJobClosed struct {
	JobID uuid.UUID
}

func (e *ErrJobClosed) Error() string {
	return fmt.Sprintf("job is closed: %s", e.JobID)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Wrapped errors are unwrapped.
func HTTPStatus(err error) int {
	var (
		emailErr      *ErrEmailAlreadyExists
		credErr       *ErrInvalidCredentials
		userErr       *ErrUserNotFound
		validationErr *ErrValidation
		forbiddenErr  *ErrForbidden
		closedErr     *ErrJobClosed
	)
	switch {
	case errors.As(err, &emailErr):
		return http.StatusConflict
	case errors.As(err, &credErr):
		return http.StatusUnauthorized
	case errors.As(err, &userErr), errors.Is(err, recommend.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &forbiddenErr):
		return http.StatusForbidden
	case errors.As(err, &closedErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage is the error text safe to return to callers. Internal errors
// are logged, not echoed.
func clientMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
