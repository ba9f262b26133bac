package bitmask

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitmask/testutil"
)

func TestWord_Contract(t *testing.T) {
	eachWidth(t, testWordContract[Word8], testWordContract[Word16], testWordContract[Word32],
		testWordContract[Word64], testWordContract[Word128], testWordContract[Word256])
}

func testWordContract[W Word[W]](t *testing.T) {
	var zero W
	wd := zero.Width()
	one := zero.One()
	all := zero.Not()

	assert.Equal(t, 0, zero.OnesCount())
	assert.Equal(t, int(wd), zero.TrailingZeros())
	assert.Equal(t, int(wd), all.OnesCount())
	assert.Equal(t, 0, all.TrailingZeros())
	assert.Equal(t, 1, one.OnesCount())

	for n := uint(0); n < wd; n++ {
		bit := one.Shl(n)
		assert.Equal(t, int(n), bit.TrailingZeros(), "shl %d", n)
		assert.Equal(t, one, bit.Shr(n))
		assert.Equal(t, zero, bit.And(bit.Not()))
		assert.Equal(t, all, bit.Or(bit.Not()))
		assert.Equal(t, zero, bit.Xor(bit))
	}

	for _, n := range []uint{wd, wd + 1, 2 * wd} {
		assert.Equal(t, zero, all.Shl(n), "shl %d", n)
		assert.Equal(t, zero, all.Shr(n), "shr %d", n)
	}

	b := all.AppendBytes(nil)
	require.Len(t, b, int(wd/8))
	got, err := zero.FromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	_, err = zero.FromBytes(b[1:])
	assert.ErrorIs(t, err, ErrDeserializationFailed)
}

func TestWord_BigEndian(t *testing.T) {
	assert.Equal(t, []byte{0x12}, Word8(0x12).AppendBytes(nil))
	assert.Equal(t, []byte{0x12, 0x34}, Word16(0x1234).AppendBytes(nil))
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, Word32(0x12345678).AppendBytes(nil))
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x01, 0x09}, Word64(0x0109).AppendBytes(nil))
	assert.Equal(t,
		[]byte{0, 0, 0, 0, 0, 0, 0, 0x01, 0, 0, 0, 0, 0, 0, 0, 0x02},
		Word128{Hi: 1, Lo: 2}.AppendBytes(nil))

	b := NewWord256(uint256.NewInt(0x0109)).AppendBytes(nil)
	require.Len(t, b, 32)
	assert.Equal(t, []byte{0x01, 0x09}, b[30:])
}

func TestWord128_Shifts(t *testing.T) {
	w := Word128{Lo: 1 << 63}

	assert.Equal(t, Word128{Hi: 1}, w.Shl(1))
	assert.Equal(t, Word128{Hi: 1 << 63}, w.Shl(64))
	assert.Equal(t, Word128{Lo: 1 << 62}, w.Shr(1))
	assert.Equal(t, Word128{Lo: 1}, Word128{Hi: 1 << 63}.Shr(127))
	assert.Equal(t, Word128{Lo: 1 << 63}, Word128{Hi: 1}.Shr(1))
	assert.Equal(t, 64, Word128{Hi: 1}.TrailingZeros())
}

func TestWord128_MatchesUint256(t *testing.T) {
	rng := testutil.NewRNG(10)
	for range 50 {
		w := Word128{Hi: rng.Uint64(), Lo: rng.Uint64()}
		x := new(uint256.Int).SetBytes(w.AppendBytes(nil))
		n := rng.Uintn(130)

		mask := new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))
		wantShl := new(uint256.Int).And(new(uint256.Int).Lsh(x, n), mask)
		wantShr := new(uint256.Int).Rsh(x, n)

		gotShl := new(uint256.Int).SetBytes(w.Shl(n).AppendBytes(nil))
		gotShr := new(uint256.Int).SetBytes(w.Shr(n).AppendBytes(nil))

		assert.True(t, wantShl.Eq(gotShl), "shl %d", n)
		assert.True(t, wantShr.Eq(gotShr), "shr %d", n)
	}
}

func TestWord256_Int(t *testing.T) {
	x := uint256.NewInt(42)
	w := NewWord256(x)

	assert.True(t, x.Eq(w.Int()))
	assert.Equal(t, 3, w.OnesCount())
	assert.Equal(t, 1, w.TrailingZeros())
	assert.Equal(t, 255, NewWord256(new(uint256.Int).Lsh(uint256.NewInt(1), 255)).TrailingZeros())
}
