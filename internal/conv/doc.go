// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow when
// converting lengths and bit indices that arrive from untrusted records or
// cross into 32-bit index spaces.
package conv
