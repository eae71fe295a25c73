// Test Type: Unit Test
// Description: Tests for the afero-backed filesystem implementation

package filesystem_test

import (
	"testing"

	"github.com/arthur-debert/retree/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS(t *testing.T) {
	t.Run("stat_and_read_file", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(mem, "/d/a.txt", []byte("hi"), 0644))

		fsys := filesystem.NewAferoFS(mem)

		info, err := fsys.Stat("/d/a.txt")
		require.NoError(t, err)
		assert.False(t, info.IsDir())

		data, err := fsys.ReadFile("/d/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "hi", string(data))
	})

	t.Run("read_file_on_directory_fails", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		require.NoError(t, mem.MkdirAll("/d", 0755))

		fsys := filesystem.NewAferoFS(mem)
		_, err := fsys.ReadFile("/d")
		assert.Error(t, err)
	})

	t.Run("read_dir", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(mem, "/d/a.txt", []byte(""), 0644))
		require.NoError(t, afero.WriteFile(mem, "/d/b.txt", []byte(""), 0644))
		require.NoError(t, mem.MkdirAll("/d/sub", 0755))

		fsys := filesystem.NewAferoFS(mem)
		entries, err := fsys.ReadDir("/d")
		require.NoError(t, err)
		require.Len(t, entries, 3)

		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.Contains(t, names, "a.txt")
		assert.Contains(t, names, "b.txt")
		assert.Contains(t, names, "sub")
	})

	t.Run("rename", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(mem, "/d/a.txt", []byte("hi"), 0644))

		fsys := filesystem.NewAferoFS(mem)
		require.NoError(t, fsys.Rename("/d/a.txt", "/d/b.txt"))

		_, err := fsys.Stat("/d/a.txt")
		assert.Error(t, err)

		data, err := fsys.ReadFile("/d/b.txt")
		require.NoError(t, err)
		assert.Equal(t, "hi", string(data))
	})

	t.Run("canonical_cleans_path", func(t *testing.T) {
		fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
		got, err := fsys.Canonical("/d/sub/../a.txt")
		require.NoError(t, err)
		assert.Equal(t, "/d/a.txt", got)
	})
}
