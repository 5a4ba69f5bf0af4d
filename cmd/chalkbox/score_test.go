package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/chalkbox/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCommand_Base(t *testing.T) {
	out, err := executeCommand(t, "score", "--profile", "react,node", "--target", "react,node.js,mongodb,express")
	require.NoError(t, err)
	assert.Contains(t, out, "Match: 71%")
}

func TestScoreCommand_BadgeExplain(t *testing.T) {
	out, err := executeCommand(t, "score",
		"--profile", "React,Node",
		"--target", "React,Node.js,MongoDB,Express",
		"--badge", "guru",
		"--explain")
	require.NoError(t, err)

	assert.Contains(t, out, "Match: 85%")
	assert.Contains(t, out, "Base similarity:  0.7071")
	assert.Contains(t, out, "GURU x1.20")
	assert.Contains(t, out, "Matched skills:   React, Node.js")
	assert.Contains(t, out, "Missing skills:   Express, MongoDB")
}

func TestScoreCommand_Prior(t *testing.T) {
	out, err := executeCommand(t, "score", "-p", "react,node", "-t", "react,node.js,mongodb,express", "--prior")
	require.NoError(t, err)
	assert.Contains(t, out, "Match: 78%")
}

func TestScoreCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "score", "-p", "python", "-t", "figma", "--json")
	require.NoError(t, err)

	var got types.MatchBreakdown
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 0.01, got.Score, 1e-9)
	assert.Equal(t, 1, got.MatchPercentage)
	assert.Equal(t, []string{"UI/UX Design"}, got.MissingSkills)
}

func TestScoreCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing target", args: []string{"score", "-p", "go"}, want: "required flag"},
		{name: "unknown badge", args: []string{"score", "-t", "go", "-b", "wizard"}, want: "unknown badge tier"},
		{name: "unknown match mode", args: []string{"--match-mode", "fuzzy", "score", "-t", "go"}, want: "unknown match mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestScoreCommand_MatchMode(t *testing.T) {
	// "djangorest" contains the raw substring "go" but not the token.
	out, err := executeCommand(t, "score", "-p", "djangorest", "-t", "go")
	require.NoError(t, err)
	assert.Contains(t, out, "Match: 1%")

	out, err = executeCommand(t, "--match-mode", "substring", "score", "-p", "djangorest", "-t", "go")
	require.NoError(t, err)
	assert.Contains(t, out, "Match: 100%")
}

func TestScoreCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"match_mode":"substring"}`), 0o644))

	out, err := executeCommand(t, "--config", path, "score", "-p", "djangorest", "-t", "go")
	require.NoError(t, err)
	assert.Contains(t, out, "Match: 100%")

	// Flags override the file.
	out, err = executeCommand(t, "--config", path, "--match-mode", "token", "score", "-p", "djangorest", "-t", "go")
	require.NoError(t, err)
	assert.Contains(t, out, "Match: 1%")
}

func TestScoreCommand_MissingConfigFile(t *testing.T) {
	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "nope.json"), "score", "-t", "go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestScoreCommand_Verbose(t *testing.T) {
	out, err := executeCommand(t, "--verbose", "score", "-p", "golang,k8s", "-t", "go", "-b", "siksha-sevi", "--explain")
	require.NoError(t, err)

	assert.Contains(t, out, "NORMALIZED PROFILE")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "DevOps")
	assert.Contains(t, out, "Badges:   SIKSHA_SEVI")
	assert.Contains(t, out, "MATCH BREAKDOWN")
	assert.Contains(t, out, "SIKSHA_SEVI x1.10")
}
