// Copyright 2020 Aleksandr Demakin. All rights reserved.

package subbyte

import (
	"fmt"

	"github.com/avdva/subbyte/internal/bitutil"
)

// Separate splits b into units of given widths.
// The first width takes the highest bits of b, the last one - the lowest.
// Widths must sum up to exactly 8 bits:
//   - if the sum goes over 8 bits, an error wrapping ErrCapacityExceeded is returned.
//   - if it's less than 8, an error wrapping ErrMissingPartition is returned.
func Separate(b byte, widths ...Width) ([]Unit, error) {
	if err := checkPartition(widths); err != nil {
		return nil, err
	}
	units := make([]Unit, len(widths))
	var offset uint
	for i, w := range widths {
		u, err := NewUnit(uint64(bitutil.Slice(b, offset, w.Bits())), w)
		if err != nil {
			return nil, err
		}
		units[i] = u
		offset += w.Bits()
	}
	return units, nil
}

// MustSeparate separates a byte or panics.
func MustSeparate(b byte, widths ...Width) []Unit {
	units, err := Separate(b, widths...)
	if err != nil {
		panic(err)
	}
	return units
}

// checkPartition validates the whole plan before any bits are taken.
func checkPartition(widths []Width) error {
	var total uint
	for i, w := range widths {
		var err error
		if total, err = addBits(total, w); err != nil {
			return fmt.Errorf("partition %d: %w", i, err)
		}
	}
	if total != maxBits {
		return &PartitionError{Bits: total}
	}
	return nil
}
