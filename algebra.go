package bitmask

// grow zero-extends m to cover o's words and takes the larger length.
func (m *BitMask[W]) grow(o *BitMask[W]) {
	if n := len(o.words); n > len(m.words) {
		m.words = append(m.words, make([]W, n-len(m.words))...)
	}
	m.length = max(m.length, o.length)
}

// AndWith performs in-place intersection: m = m AND o.
// Only m's existing words are touched; its length never changes.
func (m *BitMask[W]) AndWith(o *BitMask[W]) {
	for i := range m.words {
		m.words[i] = m.words[i].And(o.word(i))
	}
}

// OrWith performs in-place union: m = m OR o.
// m grows to the longer of both masks.
func (m *BitMask[W]) OrWith(o *BitMask[W]) {
	m.grow(o)
	for i := range m.words {
		m.words[i] = m.words[i].Or(o.word(i))
	}
}

// XorWith performs in-place symmetric difference: m = m XOR o.
// m grows to the longer of both masks.
func (m *BitMask[W]) XorWith(o *BitMask[W]) {
	m.grow(o)
	for i := range m.words {
		m.words[i] = m.words[i].Xor(o.word(i))
	}
}

// And returns a AND b. The result is as long as the longer operand.
func And[W Word[W]](a, b *BitMask[W]) *BitMask[W] {
	res := a.Clone()
	res.grow(b)
	res.AndWith(b)
	return res
}

// Or returns a OR b. The result is as long as the longer operand.
func Or[W Word[W]](a, b *BitMask[W]) *BitMask[W] {
	res := a.Clone()
	res.OrWith(b)
	return res
}

// Xor returns a XOR b. The result is as long as the longer operand.
func Xor[W Word[W]](a, b *BitMask[W]) *BitMask[W] {
	res := a.Clone()
	res.XorWith(b)
	return res
}

// Not returns the complement of m. Bits beyond Len() stay clear.
func (m *BitMask[W]) Not() *BitMask[W] {
	res := m.Clone()
	for i := range res.words {
		res.words[i] = res.words[i].Not()
	}
	res.maskTail()
	return res
}
