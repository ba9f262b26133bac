package conv

import (
	"fmt"
	"math"
)

// Uint64ToUint converts uint64 to uint safely.
func Uint64ToUint(v uint64) (uint, error) {
	if v > uint64(math.MaxUint) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint (too large)", v)
	}
	return uint(v), nil
}

// UintToUint32 converts uint to uint32 safely.
func UintToUint32(v uint) (uint32, error) {
	// On 64-bit systems, uint can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// IntToUint converts int to uint safely.
func IntToUint(v int) (uint, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint (negative)", v)
	}
	return uint(v), nil
}
