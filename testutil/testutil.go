package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uintn returns a pseudo-random number in [0,n).
func (r *RNG) Uintn(n uint) uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint(r.rand.Int63n(int64(n)))
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bits generates n flags where each flag is set with probability density.
// Locks only once per call.
func (r *RNG) Bits(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := make([]bool, n)
	for i := range n {
		set[i] = r.rand.Float64() < density
	}

	return set
}

// Lengths returns n pseudo-random lengths in [0, maxLen], followed by the
// boundary lengths for width.
func (r *RNG) Lengths(n int, maxLen, width uint) []uint {
	out := make([]uint, 0, n)
	for range n {
		out = append(out, r.Uintn(maxLen+1))
	}
	return append(out, BoundaryLengths(width)...)
}

// BoundaryLengths returns the lengths around the first three multiples of
// width, where tail handling changes: 0, 1, and k*width-1, k*width, k*width+1.
func BoundaryLengths(width uint) []uint {
	out := []uint{0, 1}
	for k := uint(1); k <= 3; k++ {
		out = append(out, k*width-1, k*width, k*width+1)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// SetIndices returns the indices of the set flags.
func SetIndices(flags []bool) []uint {
	var out []uint
	for i, f := range flags {
		if f {
			out = append(out, uint(i))
		}
	}
	return out
}
