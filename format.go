package bitmask

import (
	"fmt"
	"strings"
)

// String renders the mask as exactly Len() characters, bit 0 first,
// '1' for a set bit and '0' for a clear one.
func (m *BitMask[W]) String() string {
	var sb strings.Builder
	sb.Grow(int(m.length))

	wd := width[W]()
	rem := m.length
	for _, w := range m.words {
		if rem == 0 {
			break
		}
		n := min(rem, wd)
		one := w.One()
		for j := uint(0); j < n; j++ {
			if w.Shr(j).And(one) == one {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		rem -= n
	}
	return sb.String()
}

// Parse builds a mask from the text produced by String.
func Parse[W Word[W]](s string) (*BitMask[W], error) {
	m := Zeros[W](uint(len(s)))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			m.setBit(uint(i))
		default:
			return nil, &DecodeError{Reason: fmt.Sprintf("invalid character %q at position %d", s[i], i)}
		}
	}
	return m, nil
}
