// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package subbyte implements sub-byte units: values that occupy from 1 to 8 bits.
// Units can be combined into a wider unit, and a byte can be separated into
// units of given widths.
//
// Combine places the first unit into the lowest bits:
//
//	a.Combine(b, c) = cccbbaaa (for widths 3, 2, 3)
//
// Separate consumes the byte starting from the highest bits:
//
//	Separate(xxyyyzzz, Crumb, Tribit, Tribit) = [xx, yyy, zzz]
package subbyte

import (
	"fmt"
	"strconv"

	"github.com/avdva/subbyte/internal/bitutil"
)

// Unit is a value bounded by its width, so that 0 <= value <= 2^width - 1.
// The zero Unit has no width and can't be used in Combine.
type Unit struct {
	width Width
	value uint8
}

// NewUnit returns a unit of width w holding 'value'.
// Returns an error, if w is invalid, or if the value exceeds w.MaxValue().
func NewUnit(value uint64, w Width) (Unit, error) {
	if !w.Valid() {
		return Unit{}, invalidWidth(w)
	}
	if err := checkRange(value, w); err != nil {
		return Unit{}, err
	}
	return Unit{width: w, value: uint8(value)}, nil
}

// MustNewUnit returns a new unit or panics.
func MustNewUnit(value uint64, w Width) Unit {
	u, err := NewUnit(value, w)
	if err != nil {
		panic(err)
	}
	return u
}

func checkRange(value uint64, w Width) error {
	if max := w.MaxValue(); value > uint64(max) {
		return &RangeError{Value: value, Max: max}
	}
	return nil
}

// Width returns the width of u.
func (u Unit) Width() Width {
	return u.width
}

// Value returns the value of u.
func (u Unit) Value() uint8 {
	return u.value
}

// MaxValue returns the maximum value u can hold.
func (u Unit) MaxValue() uint8 {
	return u.width.MaxValue()
}

// SetValue changes the value of u.
// The value is checked against u's width the same way NewUnit does it.
// If an error is returned, u is not modified.
func (u *Unit) SetValue(value uint64) error {
	if !u.width.Valid() {
		return invalidWidth(u.width)
	}
	if err := checkRange(value, u.width); err != nil {
		return err
	}
	u.value = uint8(value)
	return nil
}

// Eq returns true, if both units have the same width and value.
func (u Unit) Eq(other Unit) bool {
	return u == other
}

// Combine packs u and others into one unit.
// u goes to the lowest bits, and every next unit is placed above all the previous ones.
// The width of the result is the sum of all widths.
// Returns an error if the sum exceeds 8 bits, or if any of the units is a zero Unit.
func (u Unit) Combine(others ...Unit) (Unit, error) {
	if !u.width.Valid() {
		return Unit{}, invalidWidth(u.width)
	}
	value, width := uint64(u.value), u.width
	for _, other := range others {
		next, err := width.Add(other.width)
		if err != nil {
			return Unit{}, err
		}
		value |= uint64(other.value) << width.Bits()
		width = next
	}
	return NewUnit(value, width)
}

// Combine packs units into one, see Unit.Combine.
func Combine(units ...Unit) (Unit, error) {
	if len(units) == 0 {
		return Unit{}, fmt.Errorf("%w: nothing to combine", ErrInvalidWidth)
	}
	return units[0].Combine(units[1:]...)
}

// String returns the value in base 2, without leading zeros.
func (u Unit) String() string {
	return strconv.FormatUint(uint64(u.value), 2)
}

// Binary returns the value in base 2, padded with zeros to u's width.
func (u Unit) Binary() string {
	return bitutil.PadBinary(uint64(u.value), int(u.width))
}

// GoString returns debug string representation.
func (u Unit) GoString() string {
	return fmt.Sprintf("Unit{0b%s, %v}", u.Binary(), u.width)
}

// Bytes returns raw values of units.
func Bytes(units []Unit) []byte {
	result := make([]byte, len(units))
	for i, u := range units {
		result[i] = u.value
	}
	return result
}
