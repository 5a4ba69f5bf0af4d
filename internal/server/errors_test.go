package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/chalkbox/internal/recommend"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	userID := uuid.New()

	assert.Equal(t, "email already registered: test@example.com", (&ErrEmailAlreadyExists{Email: "test@example.com"}).Error())
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())
	assert.Equal(t, "user not found: "+userID.String(), (&ErrUserNotFound{UserID: userID}).Error())
	assert.Equal(t, "validation error: limit - must be a positive integer", (&ErrValidation{Field: "limit", Message: "must be a positive integer"}).Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "ErrEmailAlreadyExists", err: &ErrEmailAlreadyExists{Email: "a@b.c"}, expected: http.StatusConflict},
		{name: "ErrInvalidCredentials", err: &ErrInvalidCredentials{}, expected: http.StatusUnauthorized},
		{name: "ErrUserNotFound", err: &ErrUserNotFound{UserID: uuid.New()}, expected: http.StatusNotFound},
		{name: "ErrValidation", err: &ErrValidation{Field: "f", Message: "m"}, expected: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("decode: %w", &ErrValidation{Field: "f", Message: "m"}), expected: http.StatusBadRequest},
		{name: "recommend not found", err: fmt.Errorf("job x: %w", recommend.ErrNotFound), expected: http.StatusNotFound},
		{name: "ErrForbidden", err: &ErrForbidden{Reason: "not your job"}, expected: http.StatusForbidden},
		{name: "ErrJobClosed", err: &ErrJobClosed{JobID: uuid.New()}, expected: http.StatusConflict},
		{name: "unknown error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestClientMessage_HidesInternalErrors(t *testing.T) {
	assert.Equal(t, "internal server error", clientMessage(errors.New("pq: connection reset")))
	assert.Equal(t, "invalid email or password", clientMessage(&ErrInvalidCredentials{}))
}
