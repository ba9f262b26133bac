// Package testutil provides testing utilities for bitmask.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG for generating random bit patterns and the
// word-boundary lengths that exercise tail handling.
//
// # Random Bit Patterns
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bits(100, 0.3) // ~30% of 100 flags set
//
// # Boundary Lengths
//
//	for _, n := range testutil.BoundaryLengths(64) {
//	    // 0, 1, 63, 64, 65, 127, 128, 129, ...
//	}
package testutil
