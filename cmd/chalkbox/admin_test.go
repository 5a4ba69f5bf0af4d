package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommand_Print(t *testing.T) {
	out, err := executeCommand(t, "migrate", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "CREATE TABLE IF NOT EXISTS users")
	assert.Contains(t, out, "CREATE TABLE IF NOT EXISTS user_badges")
}

func TestDatabaseCommands_RequireURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	tests := [][]string{
		{"serve"},
		{"migrate"},
		{"badge", "list", "--user-id", "6f1c8f0e-8d4b-4c55-9a3e-1f2e3d4c5b6a"},
		{"job", "close", "6f1c8f0e-8d4b-4c55-9a3e-1f2e3d4c5b6a"},
	}
	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			_, err := executeCommand(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "DATABASE_URL")
		})
	}
}

func TestBadgeAward_ValidatesInput(t *testing.T) {
	_, err := executeCommand(t, "badge", "award", "--user-id", "nope", "--tier", "guru")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --user-id")

	_, err = executeCommand(t, "badge", "award", "--user-id", "6f1c8f0e-8d4b-4c55-9a3e-1f2e3d4c5b6a", "--tier", "wizard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown badge tier")

	_, err = executeCommand(t, "job", "close", "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid job ID")
}
