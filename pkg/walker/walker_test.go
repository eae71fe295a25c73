// Test Type: Unit Test
// Description: Tests for tree walking - inclusion policy, depth limits,
// and ordering

package walker_test

import (
	"testing"

	"github.com/arthur-debert/retree/pkg/errors"
	"github.com/arthur-debert/retree/pkg/testutil"
	"github.com/arthur-debert/retree/pkg/types"
	"github.com/arthur-debert/retree/pkg/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS(t *testing.T, paths ...string) types.FS {
	t.Helper()
	return testutil.NewEnv(t, paths...).FS
}

func TestWalkInclusions(t *testing.T) {
	fsys := testFS(t,
		"/root/a.txt",
		"/root/sub/b.txt",
	)

	t.Run("first_lists_directory_before_contents", func(t *testing.T) {
		paths, err := walker.New(fsys, "/root").Walk()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/root",
			"/root/a.txt",
			"/root/sub",
			"/root/sub/b.txt",
		}, paths)
	})

	t.Run("last_lists_directory_after_contents", func(t *testing.T) {
		paths, err := walker.New(fsys, "/root",
			walker.WithDirInclusions(walker.IncludeLast)).Walk()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/root/a.txt",
			"/root/sub/b.txt",
			"/root/sub",
			"/root",
		}, paths)
	})

	t.Run("skip_omits_directories", func(t *testing.T) {
		paths, err := walker.New(fsys, "/root",
			walker.WithDirInclusions(walker.SkipDirs)).Walk()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/root/a.txt",
			"/root/sub/b.txt",
		}, paths)
	})
}

func TestWalkMaxDepth(t *testing.T) {
	fsys := testFS(t,
		"/root/a.txt",
		"/root/sub/b.txt",
		"/root/sub/deep/c.txt",
	)

	t.Run("exceeding_depth_is_an_error_by_default", func(t *testing.T) {
		_, err := walker.New(fsys, "/root", walker.WithMaxDepth(2)).Walk()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMaxDepth))
	})

	t.Run("cutoff_records_unvisited_directory", func(t *testing.T) {
		paths, err := walker.New(fsys, "/root",
			walker.WithMaxDepth(2),
			walker.WithoutFailOnDepth()).Walk()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/root",
			"/root/a.txt",
			"/root/sub",
			"/root/sub/b.txt",
			"/root/sub/deep",
		}, paths)
	})

	t.Run("cutoff_with_skip_drops_unvisited_directory", func(t *testing.T) {
		paths, err := walker.New(fsys, "/root",
			walker.WithMaxDepth(2),
			walker.WithoutFailOnDepth(),
			walker.WithDirInclusions(walker.SkipDirs)).Walk()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/root/a.txt",
			"/root/sub/b.txt",
		}, paths)
	})

	t.Run("zero_depth_fails_immediately", func(t *testing.T) {
		_, err := walker.New(fsys, "/root", walker.WithMaxDepth(0)).Walk()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMaxDepth))
	})
}

func TestWalkCanonicalize(t *testing.T) {
	fsys := testFS(t, "/root/a.txt")

	paths, err := walker.New(fsys, "/root",
		walker.WithCanonicalize(),
		walker.WithDirInclusions(walker.SkipDirs)).Walk()
	require.NoError(t, err)
	assert.Equal(t, []string{"/root/a.txt"}, paths)
}

func TestWalkErrors(t *testing.T) {
	fsys := testFS(t, "/root/a.txt")

	_, err := walker.New(fsys, "/missing").Walk()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReadDir))
}
