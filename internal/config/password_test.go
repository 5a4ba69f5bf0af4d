package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		pepper     string
		wantCost   int
		wantErr    bool
	}{
		{name: "default cost", wantCost: 12},
		{name: "valid cost", bcryptCost: "11", wantCost: 11},
		{name: "cost too low", bcryptCost: "9", wantErr: true},
		{name: "cost too high", bcryptCost: "15", wantErr: true},
		{name: "invalid cost", bcryptCost: "invalid", wantErr: true},
		{name: "with pepper", bcryptCost: "10", pepper: "test-pepper", wantCost: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.bcryptCost)
			t.Setenv("PASSWORD_PEPPER", tt.pepper)

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.pepper, cfg.Pepper)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
}

func TestPasswordConfig_PepperMatters(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "pepper-1"}

	hash, err := peppered.HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("password123", hash))

	otherPepper := &PasswordConfig{BcryptCost: 10, Pepper: "pepper-2"}
	assert.False(t, otherPepper.VerifyPassword("password123", hash))

	noPepper := &PasswordConfig{BcryptCost: 10}
	assert.False(t, noPepper.VerifyPassword("password123", hash))
}
