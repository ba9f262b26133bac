package bitmask

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitmask/internal/conv"
)

// setBit sets bit i without a bounds check; callers guarantee i < Len().
func (m *BitMask[W]) setBit(i uint) {
	w, offset := m.locate(i)
	m.words[w] = m.words[w].Or(m.words[w].One().Shl(offset))
}

// ToBitSet copies the mask into a bitset.BitSet of the same length.
func (m *BitMask[W]) ToBitSet() *bitset.BitSet {
	bs := bitset.New(m.length)
	m.ForEach(func(i uint) bool {
		bs.Set(i)
		return true
	})
	return bs
}

// FromBitSet builds a mask of bs.Len() bits from a bitset.BitSet.
func FromBitSet[W Word[W]](bs *bitset.BitSet) *BitMask[W] {
	m := Zeros[W](bs.Len())
	for i, ok := bs.NextSet(0); ok && i < m.length; i, ok = bs.NextSet(i + 1) {
		m.setBit(i)
	}
	return m
}

// ToRoaring copies the set bits into a roaring bitmap.
// Masks with more than 1<<32 bits cannot be represented.
func (m *BitMask[W]) ToRoaring() (*roaring.Bitmap, error) {
	if m.length > 0 {
		if _, err := conv.UintToUint32(m.length - 1); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIndexOutOfBounds, err)
		}
	}
	rb := roaring.New()
	m.ForEach(func(i uint) bool {
		rb.Add(uint32(i))
		return true
	})
	return rb, nil
}

// FromRoaring builds a mask of length bits with the bits of rb set.
// A bit at or beyond length yields an *IndexError.
func FromRoaring[W Word[W]](rb *roaring.Bitmap, length uint) (*BitMask[W], error) {
	m := Zeros[W](length)
	it := rb.Iterator()
	for it.HasNext() {
		i := uint(it.Next())
		if i >= length {
			return nil, &IndexError{Index: i, Length: length}
		}
		m.setBit(i)
	}
	return m, nil
}
