package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/chalkbox/internal/config"
	"github.com/jonathan/chalkbox/internal/server/middleware"
	"github.com/jonathan/chalkbox/internal/types"
)

// Claims represents JWT claims with the user's ID and marketplace role.
type Claims struct {
	UserID uuid.UUID  `json:"user_id"`
	Role   types.Role `json:"role"`
	jwt.RegisteredClaims
}

// GetUserID returns the user ID from the claims.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// GetRole returns the role from the claims.
func (c *Claims) GetRole() string {
	return string(c.Role)
}

// AsTokenValidator returns a middleware.TokenValidator backed by this service.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return &jwtServiceValidator{service: s}
}

// jwtServiceValidator adapts JWTService to middleware.TokenValidator interface.
type jwtServiceValidator struct {
	service *JWTService
}

func (v *jwtServiceValidator) ValidateToken(tokenString string) (middleware.Principal, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// JWTService provides JWT token generation and validation functionality.
type JWTService struct {
	config *config.JWTConfig
}

// NewJWTService creates a new JWT service with the given configuration.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		config: cfg,
	}
}

// GenerateToken generates a signed token for the given user.
func (s *JWTService) GenerateToken(userID uuid.UUID, role types.Role) (string, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(s.config.ExpirationHours) * time.Hour)

	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a token's signature, expiry and issuer and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("invalid token signature: %w", err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("token expired: %w", err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("malformed token: %w", err)
		default:
			return nil, fmt.Errorf("failed to parse token: %w", err)
		}
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("token has no user ID")
	}

	return claims, nil
}
