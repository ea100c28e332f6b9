package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShort(t *testing.T) {
	id, err := Short()

	require.NoError(t, err)
	assert.Len(t, id, ShortLength)
	for _, c := range id {
		assert.Contains(t, alphabet, string(c))
	}
}

func TestShort_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := Short()
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate token %q after %d draws", id, i)
		seen[id] = true
	}
}

func TestGenerate_Lengths(t *testing.T) {
	for _, length := range []int{1, 6, 12, 32} {
		id, err := Generate(length)
		require.NoError(t, err)
		assert.Len(t, id, length)
	}
}
