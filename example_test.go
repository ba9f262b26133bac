package bitmask_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/bitmask"
	"github.com/hupe1980/bitmask/codec"
)

// Example demonstrates single-bit access and rendering.
func Example() {
	m := bitmask.Zeros[bitmask.Word64](5)
	if err := m.Set(1, true); err != nil {
		log.Fatal(err)
	}

	fmt.Println(m)
	fmt.Println(m.CountOnes(), m.TrailingZeros())
	// Output:
	// 01000
	// 1 1
}

// Example_or demonstrates that OR grows the receiver to the longer operand.
func Example_or() {
	a := bitmask.Ones[bitmask.Word64](3)
	b := bitmask.Ones[bitmask.Word64](4)
	_ = a.Set(1, false)
	_ = b.Set(1, false)

	a.OrWith(b)

	fmt.Println(a, a.Len())
	// Output: 1011 4
}

// Example_shift demonstrates a shift that crosses word boundaries.
func Example_shift() {
	m, err := bitmask.Parse[bitmask.Word8]("00000100001000")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(m.Shr(3))
	// Output: 00100001000000
}

// Example_record demonstrates the transport record.
func Example_record() {
	m := bitmask.Zeros[bitmask.Word64](10)
	for _, i := range []uint{0, 3, 8} {
		_ = m.Set(i, true)
	}

	data, err := bitmask.Marshal(codec.JSON{}, m)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))

	back, err := bitmask.Unmarshal[bitmask.Word64](codec.JSON{}, data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(back.Equal(m))
	// Output:
	// {"mask":"AAAAAAAAAQk=","length":10}
	// true
}
