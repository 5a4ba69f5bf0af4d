package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyCommand_PrintsDefault(t *testing.T) {
	out, err := executeCommand(t, "taxonomy")
	require.NoError(t, err)
	assert.Contains(t, out, "match_mode: token")
	assert.Contains(t, out, "name: JavaScript")
	assert.Contains(t, out, "name: Teaching")
}

func TestTaxonomyCommand_Validate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`match_mode: substring
skills:
  - name: Go
    variants: [go, golang]
  - name: Rust
    variants: [rust]
`), 0o644))

	out, err := executeCommand(t, "taxonomy", "--validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "valid (2 skills, match mode substring)")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("skills:\n  - name: Go\n"), 0o644))
	_, err = executeCommand(t, "taxonomy", "--validate", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variants")
}

func TestTaxonomyCommand_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills":[{"name":"Rust","variants":["rust","rustlang"]}]}`), 0o644))

	out, err := executeCommand(t, "--taxonomy", path, "score", "-p", "rustlang", "-t", "rust")
	require.NoError(t, err)
	assert.Contains(t, out, "Match: 100%")
}

func TestNormalizeCommand(t *testing.T) {
	out, err := executeCommand(t, "taxonomy", "normalize", "golang", "React.js", "Basket Weaving")
	require.NoError(t, err)
	assert.Contains(t, out, "golang => Go")
	assert.Contains(t, out, "React.js => React")
	assert.Contains(t, out, "Basket Weaving => basket weaving")
}
