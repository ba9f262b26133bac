package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	rng := NewRNG(4711)

	assert.Len(t, rng.Bits(100, 0.5), 100)
	assert.Empty(t, SetIndices(rng.Bits(50, 0)))
	assert.Len(t, SetIndices(rng.Bits(50, 1)), 50)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	first := rng.Bits(64, 0.5)

	rng.Reset()

	assert.Equal(t, first, rng.Bits(64, 0.5))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestBoundaryLengths(t *testing.T) {
	assert.Equal(t, []uint{0, 1, 7, 8, 9, 15, 16, 17, 23, 24, 25}, BoundaryLengths(8))
	assert.Equal(t, []uint{0, 1, 2, 3, 4}, BoundaryLengths(1))
}

func TestLengths(t *testing.T) {
	rng := NewRNG(4711)

	got := rng.Lengths(10, 300, 64)

	assert.Len(t, got, 10+len(BoundaryLengths(64)))
	for _, n := range got[:10] {
		assert.LessOrEqual(t, n, uint(300))
	}
}

func TestSetIndices(t *testing.T) {
	assert.Equal(t, []uint{1, 3}, SetIndices([]bool{false, true, false, true}))
	assert.Nil(t, SetIndices(nil))
}
