package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ocramius/dependabot-core/domain"
)

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{
			name:     "should order plain numeric versions",
			a:        "1.7.0",
			b:        "1.8.0",
			expected: -1,
		},
		{
			name:     "should compare numeric segments numerically not lexically",
			a:        "1.10.0",
			b:        "1.9.0",
			expected: 1,
		},
		{
			name:     "should treat identical versions as equal",
			a:        "1.7.0",
			b:        "1.7.0",
			expected: 0,
		},
		{
			name:     "should rank a release above its pre-release",
			a:        "1.7.0",
			b:        "1.7.0.beta",
			expected: 1,
		},
		{
			name:     "should order pre-release labels lexicographically",
			a:        "1.7.0.beta",
			b:        "1.7.0.alpha",
			expected: 1,
		},
		{
			name:     "should rank a trailing numeric segment above its prefix",
			a:        "1.7.0.1",
			b:        "1.7.0",
			expected: 1,
		},
		{
			name:     "should rank a numeric segment above a pre-release label",
			a:        "1.7.0.1",
			b:        "1.7.0.beta",
			expected: 1,
		},
		{
			name:     "should order short version below longer numeric one",
			a:        "1.7",
			b:        "1.7.0",
			expected: -1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result, err := domain.CompareVersions(tt.a, tt.b)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)

			// inverse comparison must mirror the sign
			inverse, err := domain.CompareVersions(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, -tt.expected, inverse)
		})
	}

	t.Run("should fail with ErrInvalidVersion for empty version", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := domain.CompareVersions("", "1.0.0")

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidVersion)
	})
}
