// Package middleware provides HTTP middleware for authentication and role checks.
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const (
	userIDKey ContextKey = "userID"
	roleKey   ContextKey = "role"
)

// TokenValidator validates bearer tokens. The JWT service adapts to it so this
// package does not import the server package.
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

// Principal is the identity carried by a validated token.
type Principal interface {
	GetUserID() uuid.UUID
	GetRole() string
}

// AuthMiddleware creates middleware that validates bearer tokens and stores the
// caller's user ID and role in the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			principal, err := validator.ValidateToken(tokenString)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, principal.GetUserID())
			ctx = context.WithValue(ctx, roleKey, principal.GetRole())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated callers whose role is not one of roles.
// It must run inside AuthMiddleware.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := GetRole(r)
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, "forbidden")
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(r *http.Request) (uuid.UUID, error) {
	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("user ID not found in request context")
	}
	return userID, nil
}

// GetRole returns the authenticated role, or "" outside AuthMiddleware.
func GetRole(r *http.Request) string {
	role, _ := r.Context().Value(roleKey).(string)
	return role
}

// WithPrincipal returns ctx carrying the given identity, as AuthMiddleware would.
func WithPrincipal(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
