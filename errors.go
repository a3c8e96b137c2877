// Copyright 2020 Aleksandr Demakin. All rights reserved.

package subbyte

import (
	"errors"
	"fmt"
)

var (
	// ErrValueOutOfRange is returned when a value does not fit the unit's width.
	// See RangeError for the details.
	ErrValueOutOfRange = errors.New("value out of range")
	// ErrCapacityExceeded is returned when more bits are requested than a byte can hold.
	ErrCapacityExceeded = errors.New("byte capacity exceeded")
	// ErrMissingPartition is returned when a partition does not cover the whole byte.
	ErrMissingPartition = errors.New("missing partition")
	// ErrInvalidWidth is returned for widths outside [Bit, Byte].
	ErrInvalidWidth = errors.New("invalid width")
)

// RangeError describes a value that is greater than the maximum of its width.
type RangeError struct {
	Value uint64
	Max   uint8
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %d is greater than %d", ErrValueOutOfRange, e.Value, e.Max)
}

// Unwrap returns ErrValueOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrValueOutOfRange
}

// CapacityError is returned when a sum of widths goes above 8 bits.
// Bits is the total at the moment the overflow was detected.
type CapacityError struct {
	Bits uint
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: %d bits requested, a byte holds %d", ErrCapacityExceeded, e.Bits, maxBits)
}

// Unwrap returns ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// PartitionError is returned when a partition covers less than a byte.
type PartitionError struct {
	Bits uint
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("%v: partition covers %d of %d bits", ErrMissingPartition, e.Bits, maxBits)
}

// Unwrap returns ErrMissingPartition.
func (e *PartitionError) Unwrap() error {
	return ErrMissingPartition
}

func invalidWidth(w Width) error {
	return fmt.Errorf("%w: %d, must be in [%d, %d]", ErrInvalidWidth, uint8(w), uint8(Bit), uint8(Byte))
}
