// Copyright 2020 Aleksandr Demakin. All rights reserved.

package subbyte

import (
	"fmt"
)

func ExampleUnit_Combine() {
	low := MustNewUnit(0b011, Tribit)
	high := MustNewUnit(0b10, Crumb)
	u, err := low.Combine(high)
	if err != nil {
		panic(err)
	}
	fmt.Printf("value = %d, width = %v, bits = %s\n", u.Value(), u.Width(), u)

	_, err = MustNewUnit(1, Nibble).Combine(MustNewUnit(1, Pentad))
	fmt.Println(err)

	// Output:
	// value = 19, width = pentad, bits = 10011
	// byte capacity exceeded: 9 bits requested, a byte holds 8
}

func ExampleSeparate() {
	units, err := Separate(0b1_0_000001, Bit, Bit, Hexad)
	if err != nil {
		panic(err)
	}
	for _, u := range units {
		fmt.Printf("%#v\n", u)
	}
	fmt.Println(Bytes(units))

	_, err = Separate(0xFF, Tribit, Nibble)
	fmt.Println(err)

	// Output:
	// Unit{0b1, bit}
	// Unit{0b0, bit}
	// Unit{0b000001, hexad}
	// [1 0 1]
	// missing partition: partition covers 7 of 8 bits
}

func ExampleLayout() {
	l := MustParseLayout("ready:bit,mode:3,count:nibble")
	b, err := l.Pack(map[string]uint64{"ready": 1, "mode": 0b010, "count": 9})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s packs into %08b\n", l, b)

	fields := l.Unpack(b)
	fmt.Println(fields["ready"].Value(), fields["mode"].Value(), fields["count"].Value())

	// Output:
	// ready:1,mode:3,count:4 packs into 10101001
	// 1 2 9
}
