package config

import (
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds configuration for password hashing and verification.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended before hashing
}

// NewPasswordConfig creates a new password configuration from environment variables.
// It reads BCRYPT_COST (default: 12) and optionally PASSWORD_PEPPER.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost, err := strconv.Atoi(EnvString("BCRYPT_COST", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &PasswordConfig{
		BcryptCost: cost,
		Pepper:     EnvString("PASSWORD_PEPPER", ""),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

func (c *PasswordConfig) peppered(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash (with optional pepper).
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.peppered(pw)) == nil
}
