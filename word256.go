package bitmask

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// Word256 stores 256 bits per word, backed by uint256.Int.
//
// Limb 0 holds the least significant 64 bits.
type Word256 uint256.Int

// NewWord256 converts x into a storage word.
func NewWord256(x *uint256.Int) Word256 {
	return Word256(*x)
}

// Int returns the word as a uint256.Int.
func (w Word256) Int() *uint256.Int {
	x := uint256.Int(w)
	return &x
}

func (Word256) Width() uint { return 256 }

func (Word256) One() Word256 { return Word256(*uint256.NewInt(1)) }

func (w Word256) Not() Word256 {
	return Word256(*new(uint256.Int).Not(w.Int()))
}

func (w Word256) And(o Word256) Word256 {
	return Word256(*new(uint256.Int).And(w.Int(), o.Int()))
}

func (w Word256) Or(o Word256) Word256 {
	return Word256(*new(uint256.Int).Or(w.Int(), o.Int()))
}

func (w Word256) Xor(o Word256) Word256 {
	return Word256(*new(uint256.Int).Xor(w.Int(), o.Int()))
}

func (w Word256) Shl(n uint) Word256 {
	if n >= 256 {
		return Word256{}
	}
	return Word256(*new(uint256.Int).Lsh(w.Int(), n))
}

func (w Word256) Shr(n uint) Word256 {
	if n >= 256 {
		return Word256{}
	}
	return Word256(*new(uint256.Int).Rsh(w.Int(), n))
}

func (w Word256) OnesCount() int {
	count := 0
	for _, limb := range w {
		count += bits.OnesCount64(limb)
	}
	return count
}

func (w Word256) TrailingZeros() int {
	for i, limb := range w {
		if limb != 0 {
			return i*64 + bits.TrailingZeros64(limb)
		}
	}
	return 256
}

func (w Word256) AppendBytes(dst []byte) []byte {
	b := w.Int().Bytes32()
	return append(dst, b[:]...)
}

func (Word256) FromBytes(b []byte) (Word256, error) {
	if err := checkWordBytes(b, 32); err != nil {
		return Word256{}, err
	}
	return Word256(*new(uint256.Int).SetBytes32(b)), nil
}
