package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSeedOr(t *testing.T) {
	seed, err := SeedOr(1234)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), seed)

	seed, err = SeedOr(0)
	require.NoError(t, err)
	assert.NotZero(t, seed)
}
