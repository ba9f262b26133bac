package bitmask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// eachWidth runs one instantiation of a generic test per word type.
func eachWidth(t *testing.T, w8, w16, w32, w64, w128, w256 func(*testing.T)) {
	t.Helper()
	t.Run("Word8", w8)
	t.Run("Word16", w16)
	t.Run("Word32", w32)
	t.Run("Word64", w64)
	t.Run("Word128", w128)
	t.Run("Word256", w256)
}

// fromFlags builds a mask with one bit per flag.
func fromFlags[W Word[W]](t *testing.T, flags []bool) *BitMask[W] {
	t.Helper()
	m := Zeros[W](uint(len(flags)))
	for i, f := range flags {
		require.NoError(t, m.Set(uint(i), f))
	}
	return m
}

// flagsOf reads every bit of m.
func flagsOf[W Word[W]](t *testing.T, m *BitMask[W]) []bool {
	t.Helper()
	out := make([]bool, m.Len())
	for i := range out {
		v, err := m.Get(uint(i))
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

// withBits builds a mask of length bits with the given indices set.
func withBits[W Word[W]](t *testing.T, length uint, set ...uint) *BitMask[W] {
	t.Helper()
	m := Zeros[W](length)
	for _, i := range set {
		require.NoError(t, m.Set(i, true))
	}
	return m
}

// requireInvariants checks the storage shape and that tail padding is clear.
func requireInvariants[W Word[W]](t *testing.T, m *BitMask[W]) {
	t.Helper()
	require.Len(t, m.words, int(m.length/width[W]()+1), "word count for length %d", m.length)
	require.True(t, m.tailClear(), "tail padding set for length %d", m.length)
}

// requireMaskEqual compares masks and prints both renderings on mismatch.
func requireMaskEqual[W Word[W]](t *testing.T, want, got *BitMask[W]) {
	t.Helper()
	require.True(t, want.Equal(got), "want %q (len %d), got %q (len %d)", want, want.Len(), got, got.Len())
}
