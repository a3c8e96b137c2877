// Copyright 2020 Aleksandr Demakin. All rights reserved.

package subbyte

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrEmptyFieldName is returned for a layout field without a name.
	ErrEmptyFieldName = errors.New("empty field name")
	// ErrDuplicateField is returned when a layout has two fields with the same name.
	ErrDuplicateField = errors.New("duplicate field")
	// ErrUnknownField is returned by Layout.Pack for names the layout does not have.
	ErrUnknownField = errors.New("unknown field")
	// ErrMalformedField is returned by ParseLayout for entries that are not "name:width" pairs.
	ErrMalformedField = errors.New("malformed field")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at field %d", pe.pos)
}

func (pe posError) Unwrap() error {
	return ErrMalformedField
}

// Field is a named bit field of a layout.
type Field struct {
	Name  string
	Width Width
}

// String returns the field as "name:width".
func (f Field) String() string {
	return fmt.Sprintf("%s:%d", f.Name, uint8(f.Width))
}

// Layout is a named partition of a byte.
// Fields are listed from the most significant bits to the least significant,
// the same order Separate uses.
// Layout is immutable and safe for concurrent use.
type Layout struct {
	fields []Field
	index  map[string]int
}

// NewLayout returns a layout for given fields.
// Field names must be non-empty and unique, and the widths must cover exactly 8 bits.
func NewLayout(fields ...Field) (*Layout, error) {
	l := &Layout{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	widths := make([]Width, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d: %w", i, ErrEmptyFieldName)
		}
		if _, found := l.index[f.Name]; found {
			return nil, fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		l.index[f.Name] = i
		l.fields[i] = f
		widths[i] = f.Width
	}
	if err := checkPartition(widths); err != nil {
		return nil, err
	}
	return l, nil
}

// ParseLayout parses a layout from a string like "ready:1,mode:3,count:nibble".
// Widths can be numbers or names, see ParseWidth.
func ParseLayout(s string) (*Layout, error) {
	parts := strings.Split(s, ",")
	fields := make([]Field, 0, len(parts))
	for i, part := range parts {
		name, width, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("parsing failed: %w", newPosError("missing width", i))
		}
		w, err := ParseWidth(width)
		if err != nil {
			return nil, fmt.Errorf("parsing failed: field %q: %w", strings.TrimSpace(name), err)
		}
		fields = append(fields, Field{Name: strings.TrimSpace(name), Width: w})
	}
	return NewLayout(fields...)
}

// MustParseLayout parses a layout or panics.
func MustParseLayout(s string) *Layout {
	l, err := ParseLayout(s)
	if err != nil {
		panic(err)
	}
	return l
}

// Fields returns a copy of the layout's fields.
func (l *Layout) Fields() []Field {
	return append([]Field(nil), l.fields...)
}

// Widths returns widths of all fields in the layout order.
func (l *Layout) Widths() []Width {
	widths := make([]Width, len(l.fields))
	for i, f := range l.fields {
		widths[i] = f.Width
	}
	return widths
}

// String returns the layout in the format accepted by ParseLayout.
func (l *Layout) String() string {
	var builder strings.Builder
	for i, f := range l.fields {
		if i > 0 {
			builder.WriteRune(',')
		}
		builder.WriteString(f.String())
	}
	return builder.String()
}

// Separate splits b into units in the layout order.
func (l *Layout) Separate(b byte) []Unit {
	// the partition was checked by NewLayout.
	return MustSeparate(b, l.Widths()...)
}

// Unpack splits b into named units.
func (l *Layout) Unpack(b byte) map[string]Unit {
	units := l.Separate(b)
	result := make(map[string]Unit, len(units))
	for i, u := range units {
		result[l.fields[i].Name] = u
	}
	return result
}

// Pack combines named values into a byte.
// Fields missing from 'values' are packed as zeros.
// Returns an error for unknown names and for values that don't fit their fields.
func (l *Layout) Pack(values map[string]uint64) (byte, error) {
	if err := l.checkNames(values); err != nil {
		return 0, err
	}
	// Combine starts from the lowest bits, so go from the last field to the first.
	units := make([]Unit, 0, len(l.fields))
	for i := len(l.fields) - 1; i >= 0; i-- {
		f := l.fields[i]
		u, err := NewUnit(values[f.Name], f.Width)
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", f.Name, err)
		}
		units = append(units, u)
	}
	u, err := Combine(units...)
	if err != nil {
		return 0, err
	}
	return u.Value(), nil
}

func (l *Layout) checkNames(values map[string]uint64) error {
	var unknown []string
	for name := range values {
		if _, found := l.index[name]; !found {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(unknown, ", "))
}
