// Test Type: Unit Test
// Description: Tests for file operations that rewrite destination paths

package operations_test

import (
	"testing"

	"github.com/arthur-debert/retree/pkg/operations"
	"github.com/arthur-debert/retree/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetName(t *testing.T) {
	t.Run("replaces_name_component", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/IMG_0042.jpg")
		op := operations.SetName(operations.Constant("holiday.jpg"))

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "/photos/holiday.jpg", env.CurrentFile().Destination)
		assert.Equal(t, "/photos/IMG_0042.jpg", env.CurrentFile().Source)
	})

	t.Run("absent_expression_is_no_change", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/IMG_0042.jpg")
		op := operations.SetName(absent())

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "/photos/IMG_0042.jpg", env.CurrentFile().Destination)
	})

	t.Run("identical_name_still_reports_change", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/IMG_0042.jpg")
		op := operations.SetName(operations.Constant("IMG_0042.jpg"))

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "/photos/IMG_0042.jpg", env.CurrentFile().Destination)
	})
}

func TestSetStem(t *testing.T) {
	t.Run("keeps_extension", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/IMG_0042.jpg")
		op := operations.SetStem(operations.Constant("holiday"))

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "/photos/holiday.jpg", env.CurrentFile().Destination)
	})

	t.Run("no_extension_sets_whole_name", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/README")
		op := operations.SetStem(operations.Constant("NOTES"))

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "/photos/NOTES", env.CurrentFile().Destination)
	})
}

func TestSetExtension(t *testing.T) {
	t.Run("replaces_extension", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/IMG_0042.jpg")
		op := operations.SetExtension(operations.Constant("jpeg"))

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "/photos/IMG_0042.jpeg", env.CurrentFile().Destination)
	})

	t.Run("adds_extension_when_missing", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/README")
		op := operations.SetExtension(operations.Constant("md"))

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "/photos/README.md", env.CurrentFile().Destination)
	})

	t.Run("empty_removes_extension", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/IMG_0042.jpg")
		op := operations.SetExtension(operations.Constant(""))

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "/photos/IMG_0042", env.CurrentFile().Destination)
	})
}

func TestIfOperation(t *testing.T) {
	t.Run("condition_checks_full_destination_path", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/IMG_0042.jpg")
		op := operations.IfOperation(
			rules.Contains("/photos/"),
			operations.SetStem(operations.Constant("holiday")),
			nil,
		)

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "/photos/holiday.jpg", env.CurrentFile().Destination)
	})

	t.Run("condition_false_takes_else", func(t *testing.T) {
		env := newTestEnvWithFile("/docs/report.txt")
		op := operations.IfOperation(
			rules.Contains("/photos/"),
			operations.SetStem(operations.Constant("holiday")),
			operations.SetExtension(operations.Constant("md")),
		)

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "/docs/report.md", env.CurrentFile().Destination)
	})

	t.Run("condition_false_without_else_is_no_change", func(t *testing.T) {
		env := newTestEnvWithFile("/docs/report.txt")
		op := operations.IfOperation(
			rules.Contains("/photos/"),
			operations.SetStem(operations.Constant("holiday")),
			nil,
		)

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "/docs/report.txt", env.CurrentFile().Destination)
	})
}

func TestNoOp(t *testing.T) {
	t.Run("evaluates_for_side_effects_only", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/IMG_0042.jpg")
		op := operations.NoOp(operations.AssignVariable("seen", operations.FileName()))

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "/photos/IMG_0042.jpg", env.CurrentFile().Destination)

		value, ok := env.LookupVariable("seen")
		require.True(t, ok)
		assert.Equal(t, "IMG_0042.jpg", value)
	})
}

func TestSequence(t *testing.T) {
	t.Run("applies_in_order", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/IMG_0042.jpg")
		op := operations.Sequence(
			operations.SetStem(operations.Constant("holiday")),
			operations.SetExtension(operations.Constant("jpeg")),
		)

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "/photos/holiday.jpeg", env.CurrentFile().Destination)
	})

	t.Run("change_flag_from_any_member", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/IMG_0042.jpg")
		op := operations.Sequence(
			operations.NoOp(operations.Constant("x")),
			operations.SetExtension(operations.Constant("jpeg")),
		)

		changed, err := op.Apply(env)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("empty_sequence_is_no_change", func(t *testing.T) {
		env := newTestEnvWithFile("/photos/IMG_0042.jpg")
		changed, err := operations.Sequence().Apply(env)
		require.NoError(t, err)
		assert.False(t, changed)
	})
}
