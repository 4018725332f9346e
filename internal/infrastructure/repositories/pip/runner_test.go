//go:build unit

package pip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	t.Run("should split merged output and drop blank lines", func(t *testing.T) {
		// given
		output := "first line\r\n\nsecond line\n   \nthird line"

		// when
		lines := splitLines(output)

		// then
		assert.Equal(t, []string{"first line", "second line", "third line"}, lines)
	})

	t.Run("should return nil for empty output", func(t *testing.T) {
		// given / when / then
		assert.Nil(t, splitLines(""))
	})
}

func TestLastLine(t *testing.T) {
	t.Parallel()

	t.Run("should return the final non-blank line", func(t *testing.T) {
		// given
		output := "Collecting requests\nERROR: No matching distribution found\n"

		// when / then
		assert.Equal(t, "ERROR: No matching distribution found", lastLine(output))
	})

	t.Run("should describe empty output", func(t *testing.T) {
		// given / when / then
		assert.Equal(t, "(no output)", lastLine(""))
	})
}
