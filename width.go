// Copyright 2020 Aleksandr Demakin. All rights reserved.

package subbyte

import (
	"strconv"
	"strings"

	"github.com/avdva/subbyte/internal/bitutil"
)

// Width is a size of a bit field, from 1 to 8 bits.
type Width uint8

// Named widths.
const (
	Bit Width = iota + 1
	Crumb
	Tribit
	Nibble
	Pentad
	Hexad
	Heptad
	Byte
)

const maxBits = bitutil.BitsInByte

var widthNames = [...]string{
	Bit:    "bit",
	Crumb:  "crumb",
	Tribit: "tribit",
	Nibble: "nibble",
	Pentad: "pentad",
	Hexad:  "hexad",
	Heptad: "heptad",
	Byte:   "byte",
}

// ParseWidth parses a width from either its number, like "4",
// or its name, like "nibble". Names are case-insensitive.
func ParseWidth(s string) (Width, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for w, name := range widthNames {
		if name != "" && name == s {
			return Width(w), nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, invalidWidthName(s)
	}
	if w := Width(n); w.Valid() {
		return w, nil
	}
	return 0, invalidWidth(Width(n))
}

func invalidWidthName(s string) error {
	return &widthNameError{name: s}
}

type widthNameError struct {
	name string
}

func (e *widthNameError) Error() string {
	return ErrInvalidWidth.Error() + ": unknown width " + strconv.Quote(e.name)
}

func (e *widthNameError) Unwrap() error {
	return ErrInvalidWidth
}

// Valid returns true, if w is in [Bit, Byte].
func (w Width) Valid() bool {
	return w >= Bit && w <= Byte
}

// MaxValue returns the maximum value that fits w bits, 2^w - 1.
func (w Width) MaxValue() uint8 {
	return bitutil.Mask(uint(w))
}

// Mask returns a byte with w lowest bits set.
// Invalid widths have an empty mask.
func (w Width) Mask() uint8 {
	if !w.Valid() {
		return 0
	}
	return bitutil.Mask(uint(w))
}

// Bits returns w as a number of bits.
func (w Width) Bits() uint {
	return uint(w)
}

// Add returns w + other.
// Returns an error, if any of the widths is invalid,
// or if the sum does not fit a byte.
func (w Width) Add(other Width) (Width, error) {
	if !w.Valid() {
		return 0, invalidWidth(w)
	}
	sum, err := addBits(uint(w), other)
	if err != nil {
		return 0, err
	}
	return Width(sum), nil
}

// String returns the name of the width.
func (w Width) String() string {
	if w.Valid() {
		return widthNames[w]
	}
	return "Width(" + strconv.Itoa(int(w)) + ")"
}

// addBits adds w to a running total of bits.
// This is the only place where the byte capacity is checked.
func addBits(total uint, w Width) (uint, error) {
	if !w.Valid() {
		return total, invalidWidth(w)
	}
	sum := total + uint(w)
	if sum > maxBits {
		return total, &CapacityError{Bits: sum}
	}
	return sum, nil
}
