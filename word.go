package bitmask

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Word is the fixed-width storage unit a BitMask packs its bits into.
//
// The zero value of W must be the all-zero word. Methods never mutate the
// receiver, and shifting by Width() or more yields the zero word.
type Word[W any] interface {
	comparable

	// Width returns the number of bits held by one word.
	Width() uint
	// One returns the word with only bit 0 set.
	One() W

	Not() W
	And(o W) W
	Or(o W) W
	Xor(o W) W
	Shl(n uint) W
	Shr(n uint) W

	// OnesCount returns the population count.
	OnesCount() int
	// TrailingZeros returns the number of trailing zero bits, Width() for the zero word.
	TrailingZeros() int

	// AppendBytes appends the big-endian encoding of the word to dst.
	AppendBytes(dst []byte) []byte
	// FromBytes decodes a big-endian word. len(b) must be Width()/8.
	FromBytes(b []byte) (W, error)
}

// Word8 stores 8 bits per word.
type Word8 uint8

// Word16 stores 16 bits per word.
type Word16 uint16

// Word32 stores 32 bits per word.
type Word32 uint32

// Word64 stores 64 bits per word.
type Word64 uint64

func shl[U constraints.Unsigned](v U, n, width uint) U {
	if n >= width {
		return 0
	}
	return v << n
}

func shr[U constraints.Unsigned](v U, n, width uint) U {
	if n >= width {
		return 0
	}
	return v >> n
}

func onesCount[U constraints.Unsigned](v U) int {
	return bits.OnesCount64(uint64(v))
}

func trailingZeros[U constraints.Unsigned](v U, width uint) int {
	if v == 0 {
		return int(width)
	}
	return bits.TrailingZeros64(uint64(v))
}

// checkWordBytes validates the byte count handed to FromBytes.
func checkWordBytes(b []byte, size int) error {
	if len(b) != size {
		return &DecodeError{Reason: fmt.Sprintf("word needs %d bytes, got %d", size, len(b))}
	}
	return nil
}

func (Word8) Width() uint { return 8 }
func (Word8) One() Word8 { return 1 }
func (w Word8) Not() Word8 { return ^w }
func (w Word8) And(o Word8) Word8 { return w & o }
func (w Word8) Or(o Word8) Word8 { return w | o }
func (w Word8) Xor(o Word8) Word8 { return w ^ o }
func (w Word8) Shl(n uint) Word8 { return shl(w, n, 8) }
func (w Word8) Shr(n uint) Word8 { return shr(w, n, 8) }
func (w Word8) OnesCount() int { return onesCount(w) }
func (w Word8) TrailingZeros() int { return trailingZeros(w, 8) }

func (w Word8) AppendBytes(dst []byte) []byte {
	return append(dst, byte(w))
}

func (Word8) FromBytes(b []byte) (Word8, error) {
	if err := checkWordBytes(b, 1); err != nil {
		return 0, err
	}
	return Word8(b[0]), nil
}

func (Word16) Width() uint { return 16 }
func (Word16) One() Word16 { return 1 }
func (w Word16) Not() Word16 { return ^w }
func (w Word16) And(o Word16) Word16 { return w & o }
func (w Word16) Or(o Word16) Word16 { return w | o }
func (w Word16) Xor(o Word16) Word16 { return w ^ o }
func (w Word16) Shl(n uint) Word16 { return shl(w, n, 16) }
func (w Word16) Shr(n uint) Word16 { return shr(w, n, 16) }
func (w Word16) OnesCount() int { return onesCount(w) }
func (w Word16) TrailingZeros() int { return trailingZeros(w, 16) }

func (w Word16) AppendBytes(dst []byte) []byte {
	return binary.BigEndian.AppendUint16(dst, uint16(w))
}

func (Word16) FromBytes(b []byte) (Word16, error) {
	if err := checkWordBytes(b, 2); err != nil {
		return 0, err
	}
	return Word16(binary.BigEndian.Uint16(b)), nil
}

func (Word32) Width() uint { return 32 }
func (Word32) One() Word32 { return 1 }
func (w Word32) Not() Word32 { return ^w }
func (w Word32) And(o Word32) Word32 { return w & o }
func (w Word32) Or(o Word32) Word32 { return w | o }
func (w Word32) Xor(o Word32) Word32 { return w ^ o }
func (w Word32) Shl(n uint) Word32 { return shl(w, n, 32) }
func (w Word32) Shr(n uint) Word32 { return shr(w, n, 32) }
func (w Word32) OnesCount() int { return onesCount(w) }
func (w Word32) TrailingZeros() int { return trailingZeros(w, 32) }

func (w Word32) AppendBytes(dst []byte) []byte {
	return binary.BigEndian.AppendUint32(dst, uint32(w))
}

func (Word32) FromBytes(b []byte) (Word32, error) {
	if err := checkWordBytes(b, 4); err != nil {
		return 0, err
	}
	return Word32(binary.BigEndian.Uint32(b)), nil
}

func (Word64) Width() uint { return 64 }
func (Word64) One() Word64 { return 1 }
func (w Word64) Not() Word64 { return ^w }
func (w Word64) And(o Word64) Word64 { return w & o }
func (w Word64) Or(o Word64) Word64 { return w | o }
func (w Word64) Xor(o Word64) Word64 { return w ^ o }
func (w Word64) Shl(n uint) Word64 { return shl(w, n, 64) }
func (w Word64) Shr(n uint) Word64 { return shr(w, n, 64) }
func (w Word64) OnesCount() int { return onesCount(w) }
func (w Word64) TrailingZeros() int { return trailingZeros(w, 64) }

func (w Word64) AppendBytes(dst []byte) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(w))
}

func (Word64) FromBytes(b []byte) (Word64, error) {
	if err := checkWordBytes(b, 8); err != nil {
		return 0, err
	}
	return Word64(binary.BigEndian.Uint64(b)), nil
}
