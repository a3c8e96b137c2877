// Package bitutil contains bit helpers shared by subbyte packages.
package bitutil

import (
	"strconv"
)

// BitsInByte is the capacity of a single byte.
const BitsInByte = 8

var (
	// enough zeros to pad any byte-sized binary string.
	zeros = "00000000"
)

// Mask returns a byte with n lowest bits set.
// Values of n greater than 8 are treated as 8.
func Mask(n uint) uint8 {
	if n >= BitsInByte {
		return 0xFF
	}
	return uint8(1<<n - 1)
}

// Slice returns n bits of b, starting 'offset' bits from the most significant end.
// All shifts are done in 8-bit arithmetic, so the bits above the slice are dropped
// by the left shift and the bits below it by the right shift.
func Slice(b uint8, offset, n uint) uint8 {
	if n == 0 {
		return 0
	}
	return (b << offset) >> (BitsInByte - n)
}

// PadBinary formats value in base 2, left-padded with zeros to n digits.
// At most 8 zeros are added.
func PadBinary(value uint64, n int) string {
	s := strconv.FormatUint(value, 2)
	if diff := n - len(s); diff > 0 {
		if diff > len(zeros) {
			diff = len(zeros)
		}
		return zeros[:diff] + s
	}
	return s
}
