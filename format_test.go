package bitmask

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitmask/testutil"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		mask *BitMask[Word64]
		want string
	}{
		{"zeros(5)", Zeros[Word64](5), "00000"},
		{"zeros(64)", Zeros[Word64](64), strings.Repeat("0", 64)},
		{"zeros(75)", Zeros[Word64](75), strings.Repeat("0", 75)},
		{"empty", Zeros[Word64](0), ""},
		{"bit 1 of 3", withBits[Word64](t, 3, 1), "010"},
		{"least significant bit first", withBits[Word64](t, 8, 0, 7), "10000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mask.String())
		})
	}
}

func TestString_Word8SpanningManyWords(t *testing.T) {
	m := Zeros[Word8](257)
	require.NoError(t, m.Set(1, true))
	assert.Equal(t, "01"+strings.Repeat("0", 255), m.String())

	m.SetAll(true)
	require.NoError(t, m.Set(1, false))
	assert.Equal(t, "10"+strings.Repeat("1", 255), m.String())
}

func TestParse(t *testing.T) {
	eachWidth(t, testParse[Word8], testParse[Word16], testParse[Word32],
		testParse[Word64], testParse[Word128], testParse[Word256])
}

func testParse[W Word[W]](t *testing.T) {
	rng := testutil.NewRNG(8)
	for _, n := range rng.Lengths(10, 600, width[W]()) {
		m := fromFlags[W](t, rng.Bits(int(n), 0.5))

		got, err := Parse[W](m.String())
		require.NoError(t, err)
		requireInvariants(t, got)
		requireMaskEqual(t, m, got)
	}
}

func TestParse_InvalidCharacter(t *testing.T) {
	_, err := Parse[Word64]("0102")

	assert.ErrorIs(t, err, ErrDeserializationFailed)
	assert.EqualError(t, err, `deserialization failed: invalid character '2' at position 3`)
}
