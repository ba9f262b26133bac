// Package bitmask provides a dynamically-sized bit vector packed into
// fixed-width storage words.
//
// # Quick Start
//
//	m := bitmask.Zeros[bitmask.Word64](100) // 100 clear bits
//	_ = m.Set(3, true)
//	ok, _ := m.Get(3)                        // true
//	fmt.Println(m.CountOnes())               // 1
//
// # Storage Words
//
// A BitMask is generic over its storage word. Word8, Word16, Word32 and
// Word64 wrap the native unsigned integers, Word128 pairs two uint64 halves,
// and Word256 is backed by github.com/holiman/uint256. Any type implementing
// Word can be used.
//
// Bit i lives in word i/W at offset i%W, lowest word first. A mask of n bits
// always owns n/W+1 words, so a length that is an exact multiple of W keeps one
// extra zero word. Bits at or beyond the length are kept clear by every
// operation.
//
// # Boolean Algebra
//
//	a.AndWith(b)     // in place, never grows a
//	a.OrWith(b)      // in place, grows a to the longer length
//	a.XorWith(b)     // in place, grows a to the longer length
//	c := bitmask.And(a, b) // new mask, length max(a.Len(), b.Len())
//	d := a.Not()
//
// # Shifts
//
// Shr and Shl (and their in-place forms ShiftRight and ShiftLeft) are logical
// shifts: vacated bits are zero and the length never changes.
//
// # Rendering
//
// String renders exactly Len() characters with bit 0 first, so "010" has only
// bit 1 set. Parse is its inverse.
//
// # Serialization
//
// A mask travels as a Record: the base64 encoding of its big-endian words plus
// the logical length.
//
//	data, _ := bitmask.Marshal(codec.Default, m)
//	// {"mask":"AAAAAAAAAAgAAAAAAAAAAA==","length":100}
//	m2, err := bitmask.Unmarshal[bitmask.Word64](codec.Default, data)
//
// BitMask also implements json.Marshaler and json.Unmarshaler.
//
// # Errors
//
// Get and Set return an *IndexError matching ErrIndexOutOfBounds. Decoding
// returns a *DecodeError matching ErrDeserializationFailed. No operation
// panics on ordinary misuse.
//
// # Concurrency
//
// A BitMask is a plain value with no internal locking; synchronize access
// externally or work on clones.
package bitmask
