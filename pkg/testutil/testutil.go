// Package testutil provides helpers for testing retree components.
//
// Tests run against an afero in-memory filesystem wrapped in the
// types.FS interface, so no test touches the real disk. All test data
// is defined inline; each test is isolated with no shared state.
package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/retree/pkg/filesystem"
	"github.com/arthur-debert/retree/pkg/types"
)

// Env is an in-memory filesystem for one test, exposed both as the
// raw afero layer for assertions and as the types.FS used by the code
// under test
type Env struct {
	Mem afero.Fs
	FS  types.FS
}

// NewEnv creates an Env seeded with empty files at the given paths.
// Parent directories are created implicitly.
func NewEnv(t *testing.T, paths ...string) *Env {
	t.Helper()

	mem := afero.NewMemMapFs()
	for _, p := range paths {
		require.NoError(t, afero.WriteFile(mem, p, []byte(""), 0644))
	}

	return &Env{Mem: mem, FS: filesystem.NewAferoFS(mem)}
}

// WriteFile adds or replaces a file with the given content
func (e *Env) WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(e.Mem, path, []byte(content), 0644))
}

// MkdirAll creates a directory and its parents
func (e *Env) MkdirAll(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, e.Mem.MkdirAll(path, 0755))
}

// Exists reports whether a path is present
func (e *Env) Exists(t *testing.T, path string) bool {
	t.Helper()
	ok, err := afero.Exists(e.Mem, path)
	require.NoError(t, err)
	return ok
}
