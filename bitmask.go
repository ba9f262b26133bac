package bitmask

import "slices"

// BitMask is a dense, fixed-length sequence of bits packed into words of type W.
//
// Bit i lives in word i/Width() at offset i%Width(); word 0 holds the lowest
// bits. The mask always keeps Len()/Width()+1 words, so a length that is an
// exact multiple of the width carries one extra all-zero word. Bits at or
// beyond Len() are always zero.
//
// A BitMask is a plain value: it is not safe for concurrent mutation.
type BitMask[W Word[W]] struct {
	words  []W
	length uint
}

// width returns the bit width of W.
func width[W Word[W]]() uint {
	var w W
	return w.Width()
}

// lowBits returns a word with the low n bits set, n < width.
func lowBits[W Word[W]](n uint) W {
	var zero W
	if n == 0 {
		return zero
	}
	return zero.Not().Shr(width[W]() - n)
}

// Zeros returns a mask of size bits, all clear.
func Zeros[W Word[W]](size uint) *BitMask[W] {
	return &BitMask[W]{
		words:  make([]W, size/width[W]()+1),
		length: size,
	}
}

// Ones returns a mask of size bits, all set.
func Ones[W Word[W]](size uint) *BitMask[W] {
	m := Zeros[W](size)
	m.SetAll(true)
	return m
}

// Len returns the number of logical bits.
func (m *BitMask[W]) Len() uint {
	return m.length
}

// locate splits a bit index into word index and in-word offset.
func (m *BitMask[W]) locate(i uint) (int, uint) {
	w := width[W]()
	return int(i / w), i % w
}

// word returns word i, or the zero word when i is outside the storage.
func (m *BitMask[W]) word(i int) W {
	if i < 0 || i >= len(m.words) {
		var zero W
		return zero
	}
	return m.words[i]
}

// maskTail clears every bit at or beyond the logical length in the last covered word.
func (m *BitMask[W]) maskTail() {
	last, offset := m.locate(m.length)
	if last >= len(m.words) {
		return
	}
	m.words[last] = m.words[last].And(lowBits[W](offset))
}

// tailClear reports whether no bit at or beyond the logical length is set.
func (m *BitMask[W]) tailClear() bool {
	var zero W
	last, offset := m.locate(m.length)
	for i := last; i < len(m.words); i++ {
		w := m.words[i]
		if i == last {
			w = w.And(lowBits[W](offset).Not())
		}
		if w != zero {
			return false
		}
	}
	return true
}

// SetAll sets or clears every bit.
func (m *BitMask[W]) SetAll(value bool) {
	var fill W
	if value {
		fill = fill.Not()
	}
	for i := range m.words {
		m.words[i] = fill
	}
	m.maskTail()
}

// Set sets bit i to value. It returns an *IndexError if i >= Len().
func (m *BitMask[W]) Set(i uint, value bool) error {
	if i >= m.length {
		return &IndexError{Index: i, Length: m.length}
	}
	w, offset := m.locate(i)
	bit := m.words[w].One().Shl(offset)
	if value {
		m.words[w] = m.words[w].Or(bit)
	} else {
		m.words[w] = m.words[w].And(bit.Not())
	}
	return nil
}

// Get reports whether bit i is set. It returns an *IndexError if i >= Len().
func (m *BitMask[W]) Get(i uint) (bool, error) {
	if i >= m.length {
		return false, &IndexError{Index: i, Length: m.length}
	}
	w, offset := m.locate(i)
	one := m.words[w].One()
	return m.words[w].Shr(offset).And(one) == one, nil
}

// CountOnes returns the number of set bits.
func (m *BitMask[W]) CountOnes() int {
	count := 0
	for _, w := range m.words {
		count += w.OnesCount()
	}
	return count
}

// TrailingZeros returns the index of the lowest set bit, or Len() if no bit is set.
func (m *BitMask[W]) TrailingZeros() uint {
	wd := width[W]()
	var acc uint
	for _, w := range m.words {
		if tz := uint(w.TrailingZeros()); tz < wd {
			return acc + tz
		}
		acc += wd
	}
	return m.length
}

// Any reports whether at least one bit is set.
func (m *BitMask[W]) Any() bool {
	var zero W
	for _, w := range m.words {
		if w != zero {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (m *BitMask[W]) None() bool {
	return !m.Any()
}

// ForEach calls fn with the index of every set bit in ascending order.
// Iteration stops early if fn returns false.
func (m *BitMask[W]) ForEach(fn func(i uint) bool) {
	var zero W
	wd := width[W]()
	for wi, w := range m.words {
		for w != zero {
			tz := uint(w.TrailingZeros())
			if !fn(uint(wi)*wd + tz) {
				return
			}
			w = w.And(w.One().Shl(tz).Not())
		}
	}
}

// Clone returns an independent copy of the mask.
func (m *BitMask[W]) Clone() *BitMask[W] {
	return &BitMask[W]{
		words:  slices.Clone(m.words),
		length: m.length,
	}
}

// Words returns a copy of the storage words, lowest word first.
func (m *BitMask[W]) Words() []W {
	return slices.Clone(m.words)
}

// Equal reports whether both masks have the same length and the same words.
func (m *BitMask[W]) Equal(o *BitMask[W]) bool {
	return m.length == o.length && slices.Equal(m.words, o.words)
}
