package bitmask

// ShiftRight moves every bit n positions towards index 0 in place.
// Vacated high bits are cleared; the length is unchanged.
func (m *BitMask[W]) ShiftRight(n uint) {
	if n == 0 {
		return
	}
	wd := width[W]()
	if n >= uint(len(m.words))*wd {
		m.SetAll(false)
		return
	}

	q, r := int(n/wd), n%wd
	// Ascending order: word i only reads words >= i.
	for i := range m.words {
		v := m.word(i + q).Shr(r)
		if r != 0 {
			v = v.Or(m.word(i + q + 1).Shl(wd - r))
		}
		m.words[i] = v
	}
}

// ShiftLeft moves every bit n positions away from index 0 in place.
// Bits pushed past Len() are dropped; the length is unchanged.
func (m *BitMask[W]) ShiftLeft(n uint) {
	if n == 0 {
		return
	}
	wd := width[W]()
	if n >= uint(len(m.words))*wd {
		m.SetAll(false)
		return
	}

	q, r := int(n/wd), n%wd
	// Descending order: word i only reads words <= i.
	for i := len(m.words) - 1; i >= 0; i-- {
		v := m.word(i - q).Shl(r)
		if r != 0 {
			v = v.Or(m.word(i - q - 1).Shr(wd - r))
		}
		m.words[i] = v
	}
	m.maskTail()
}

// Shr returns a copy of m shifted right by n bits.
func (m *BitMask[W]) Shr(n uint) *BitMask[W] {
	res := m.Clone()
	res.ShiftRight(n)
	return res
}

// Shl returns a copy of m shifted left by n bits.
func (m *BitMask[W]) Shl(n uint) *BitMask[W] {
	res := m.Clone()
	res.ShiftLeft(n)
	return res
}
