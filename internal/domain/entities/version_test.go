//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	t.Run("should default missing components to zero", func(t *testing.T) {
		// given
		cases := map[string]entities.Version{
			"4":      {Major: 4},
			"4.3":    {Major: 4, Minor: 3},
			"4.3.1":  {Major: 4, Minor: 3, Patch: 1},
			" 1.2 ":  {Major: 1, Minor: 2},
			"0.0.0":  {},
			"10.0.9": {Major: 10, Patch: 9},
		}

		for raw, expected := range cases {
			// when
			parsed, err := entities.ParseVersion(raw)

			// then
			require.NoError(t, err, raw)
			assert.Equal(t, expected, parsed, raw)
		}
	})

	t.Run("should reject malformed versions", func(t *testing.T) {
		// given
		cases := []string{"", "a.b.c", "1.2.3.4", "1.-2", "1..3"}

		for _, raw := range cases {
			// when
			_, err := entities.ParseVersion(raw)

			// then
			require.Error(t, err, raw)
		}
	})
}

func TestVersionCompare(t *testing.T) {
	t.Parallel()

	t.Run("should compare component-wise left to right", func(t *testing.T) {
		// given
		low := entities.Version{Major: 3, Minor: 8, Patch: 10}
		high := entities.Version{Major: 3, Minor: 10}

		// when / then
		assert.Equal(t, -1, low.Compare(high))
		assert.Equal(t, 1, high.Compare(low))
		assert.Equal(t, 0, low.Compare(low))
	})
}

func TestFixTarget(t *testing.T) {
	t.Parallel()

	t.Run("should keep the boundary for =, <= and >=", func(t *testing.T) {
		// given
		boundary := entities.Version{Major: 1, Minor: 2, Patch: 3}

		for _, op := range []entities.Operator{
			entities.OperatorEqual,
			entities.OperatorLessOrEqual,
			entities.OperatorGreaterOrEqual,
		} {
			// when
			target := entities.FixTarget(op, boundary)

			// then
			assert.Equal(t, "1.2.3", target.String(), string(op))
		}
	})

	t.Run("should increment only the patch for >", func(t *testing.T) {
		// given
		boundary := entities.Version{Major: 1, Minor: 2, Patch: 3}

		// when
		target := entities.FixTarget(entities.OperatorGreaterThan, boundary)

		// then
		assert.Equal(t, "1.2.4", target.String())
	})

	t.Run("should decrement with borrow for <", func(t *testing.T) {
		// given
		cases := map[entities.Version]string{
			{Major: 4, Minor: 3}:           "4.2.999",
			{Major: 4}:                     "3.999.999",
			{Major: 4, Minor: 3, Patch: 1}: "4.3.0",
			{Major: 0, Minor: 1}:           "0.0.999",
		}

		for boundary, expected := range cases {
			// when
			target := entities.FixTarget(entities.OperatorLessThan, boundary)

			// then
			assert.Equal(t, expected, target.String(), boundary.String())
		}
	})

	t.Run("should leave the zero version unchanged for <", func(t *testing.T) {
		// given
		boundary := entities.Version{}

		// when
		target := entities.FixTarget(entities.OperatorLessThan, boundary)

		// then
		assert.Equal(t, "0.0.0", target.String())
	})
}
