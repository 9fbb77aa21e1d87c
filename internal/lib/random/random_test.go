package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/review-catalog/internal/lib/random"
)

func TestString_Length(t *testing.T) {
	for _, length := range []int{1, 6, 32} {
		code, err := random.String(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
	}
}

func TestString_Charset(t *testing.T) {
	code, err := random.String(64)
	require.NoError(t, err)
	for _, r := range code {
		isDigit := r >= '0' && r <= '9'
		isUpper := r >= 'A' && r <= 'Z'
		isLower := r >= 'a' && r <= 'z'
		assert.True(t, isDigit || isUpper || isLower, "unexpected symbol %q", r)
	}
}

func TestString_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := random.String(12)
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
