// Test Type: Unit Test
// Description: Tests for layered configuration loading

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Walk.MaxDepth)
	assert.True(t, cfg.Walk.FailOnDepth)
	assert.True(t, cfg.Walk.Canonicalize)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.False(t, cfg.Run.DryRun)
}

func TestLoadWorkingDirOverride(t *testing.T) {
	dir := t.TempDir()
	content := `
[walk]
max_depth = 3

[run]
dry_run = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".retree.toml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Walk.MaxDepth)
	assert.True(t, cfg.Run.DryRun)
	// untouched keys keep their defaults
	assert.True(t, cfg.Walk.FailOnDepth)
	assert.Equal(t, "auto", cfg.Output.Format)
}

func TestLoadHiddenFileWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".retree.toml"),
		[]byte("[walk]\nmax_depth = 1\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "retree.toml"),
		[]byte("[walk]\nmax_depth = 2\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Walk.MaxDepth)
}

func TestLoadMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".retree.toml"),
		[]byte("[walk\n"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestDefaultConfigContent(t *testing.T) {
	assert.Contains(t, GetDefaultConfigContent(), "[walk]")
}
