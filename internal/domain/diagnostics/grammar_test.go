//go:build unit

package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/envfixer/internal/domain/diagnostics"
	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

func TestMatchMissingRequirement(t *testing.T) {
	t.Parallel()

	t.Run("should capture the trimmed dependency name", func(t *testing.T) {
		// given
		line := "tqdm 4.63.0 requires importlib-resources, which is not installed."

		// when
		record, ok := diagnostics.MatchMissingRequirement(line)

		// then
		require.True(t, ok)
		assert.Equal(t, "tqdm", record.RequiringPackage)
		assert.Equal(t, "4.63.0", record.RequiringVersion)
		assert.Equal(t, "importlib-resources", record.Dependency)
	})

	t.Run("should trim surrounding whitespace from the dependency", func(t *testing.T) {
		// given
		line := "pkg 1.0.0 requires  some-dep , which is not installed."

		// when
		record, ok := diagnostics.MatchMissingRequirement(line)

		// then
		require.True(t, ok)
		assert.Equal(t, "some-dep", record.Dependency)
	})

	t.Run("should not match unrelated lines", func(t *testing.T) {
		// given
		lines := []string{
			"No broken requirements found.",
			"pkg 1.0.0 requires some-dep which is not installed.", // missing comma
			"",
		}

		for _, line := range lines {
			// when
			_, ok := diagnostics.MatchMissingRequirement(line)

			// then
			assert.False(t, ok, line)
		}
	})
}

func TestMatchVersionConflict(t *testing.T) {
	t.Parallel()

	t.Run("should capture all fields without a condition", func(t *testing.T) {
		// given
		line := "requests 2.28.0 has requirement urllib3<1.27, but you have urllib3 2.0.0."

		// when
		record, ok := diagnostics.MatchVersionConflict(line)

		// then
		require.True(t, ok)
		assert.Equal(t, "requests", record.RequiringPackage)
		assert.Equal(t, "2.28.0", record.RequiringVersion)
		assert.Equal(t, "urllib3", record.Dependency)
		assert.Equal(t, entities.OperatorLessThan, record.Operator)
		assert.Equal(t, "1.27", record.RequiredVersion)
		assert.Equal(t, "2.0.0", record.ActualVersion)
		assert.Empty(t, record.Condition)
	})

	t.Run("should capture the condition between semicolon and comma", func(t *testing.T) {
		// given
		line := `pkg 1.0.0 has requirement dep>=2.1; python_version < "3.10", but you have dep 1.9.0.`

		// when
		record, ok := diagnostics.MatchVersionConflict(line)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.OperatorGreaterOrEqual, record.Operator)
		assert.Equal(t, "2.1", record.RequiredVersion)
		assert.Equal(t, `python_version < "3.10"`, record.Condition)
	})

	t.Run("should prefer two-character operators over their prefixes", func(t *testing.T) {
		// given
		line := "pkg 1.0.0 has requirement dep<=4.3.0, but you have dep 5.0.0."

		// when
		record, ok := diagnostics.MatchVersionConflict(line)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.OperatorLessOrEqual, record.Operator)
		assert.Equal(t, "dep", record.Dependency)
		assert.Equal(t, "4.3.0", record.RequiredVersion)
	})

	t.Run("should normalize double-equals to the canonical operator", func(t *testing.T) {
		// given
		line := "pkg 1.0.0 has requirement dep==2.0.0, but you have dep 2.1.0."

		// when
		record, ok := diagnostics.MatchVersionConflict(line)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.OperatorEqual, record.Operator)
	})

	t.Run("should keep operator characters out of the dependency name", func(t *testing.T) {
		// given
		line := "pkg 1.0.0 has requirement typing-extensions>=4.0.0, but you have typing-extensions 3.10.0."

		// when
		record, ok := diagnostics.MatchVersionConflict(line)

		// then
		require.True(t, ok)
		assert.Equal(t, "typing-extensions", record.Dependency)
	})

	t.Run("should reject a boundary that is not a dotted numeric version", func(t *testing.T) {
		// given
		line := "pkg 1.0.0 has requirement dep>=latest, but you have dep 1.0.0."

		// when
		_, ok := diagnostics.MatchVersionConflict(line)

		// then
		assert.False(t, ok)
	})

	t.Run("should not match checker noise", func(t *testing.T) {
		// given
		lines := []string{
			"No broken requirements found.",
			"WARNING: something unrelated",
		}

		for _, line := range lines {
			// when
			_, ok := diagnostics.MatchVersionConflict(line)

			// then
			assert.False(t, ok, line)
		}
	})
}
