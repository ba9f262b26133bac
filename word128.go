package bitmask

import (
	"encoding/binary"
	"math/bits"
)

// Word128 stores 128 bits per word as two 64-bit halves.
type Word128 struct {
	Hi uint64
	Lo uint64
}

func (Word128) Width() uint { return 128 }

func (Word128) One() Word128 { return Word128{Lo: 1} }

func (w Word128) Not() Word128 { return Word128{Hi: ^w.Hi, Lo: ^w.Lo} }

func (w Word128) And(o Word128) Word128 { return Word128{Hi: w.Hi & o.Hi, Lo: w.Lo & o.Lo} }

func (w Word128) Or(o Word128) Word128 { return Word128{Hi: w.Hi | o.Hi, Lo: w.Lo | o.Lo} }

func (w Word128) Xor(o Word128) Word128 { return Word128{Hi: w.Hi ^ o.Hi, Lo: w.Lo ^ o.Lo} }

func (w Word128) Shl(n uint) Word128 {
	switch {
	case n == 0:
		return w
	case n >= 128:
		return Word128{}
	case n >= 64:
		return Word128{Hi: w.Lo << (n - 64)}
	default:
		return Word128{Hi: w.Hi<<n | w.Lo>>(64-n), Lo: w.Lo << n}
	}
}

func (w Word128) Shr(n uint) Word128 {
	switch {
	case n == 0:
		return w
	case n >= 128:
		return Word128{}
	case n >= 64:
		return Word128{Lo: w.Hi >> (n - 64)}
	default:
		return Word128{Hi: w.Hi >> n, Lo: w.Lo>>n | w.Hi<<(64-n)}
	}
}

func (w Word128) OnesCount() int {
	return bits.OnesCount64(w.Hi) + bits.OnesCount64(w.Lo)
}

func (w Word128) TrailingZeros() int {
	if w.Lo != 0 {
		return bits.TrailingZeros64(w.Lo)
	}
	return 64 + bits.TrailingZeros64(w.Hi)
}

func (w Word128) AppendBytes(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint64(dst, w.Hi)
	return binary.BigEndian.AppendUint64(dst, w.Lo)
}

func (Word128) FromBytes(b []byte) (Word128, error) {
	if err := checkWordBytes(b, 16); err != nil {
		return Word128{}, err
	}
	return Word128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}, nil
}
