package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/avdva/subbyte"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		args     []string
		contains []string
		err      error
	}{
		{[]string{"separate", "-byte", "0xB2", "-widths", "4,4"}, []string{"1011", "0010", "nibble", "11"}, nil},
		{[]string{"separate", "-byte", "0b1_0_000001", "-widths", "bit,bit,hexad"}, []string{"000001", "hexad"}, nil},
		{[]string{"separate", "-byte", "0xB2", "-widths", "5,5"}, nil, subbyte.ErrCapacityExceeded},
		{[]string{"separate", "-byte", "0xB2", "-widths", "3,4"}, nil, subbyte.ErrMissingPartition},
		{[]string{"separate", "-byte", "0xB2", "-widths", "3,word"}, nil, subbyte.ErrInvalidWidth},
		{[]string{"separate", "-widths", "4,4"}, nil, errUsage},
		{[]string{"combine", "3:0b011", "2:0b10"}, []string{"pentad", "10011", "19", "0x13"}, nil},
		{[]string{"combine", "nibble:1", "pentad:1"}, nil, subbyte.ErrCapacityExceeded},
		{[]string{"combine", "2:4"}, nil, subbyte.ErrValueOutOfRange},
		{[]string{"combine", "24"}, nil, errUsage},
		{[]string{"combine"}, nil, errUsage},
		{[]string{"unpack", "-fields", "ready:1,mode:3,count:4", "0xD6"}, []string{"ready", "mode", "101", "count", "0110", "6"}, nil},
		{[]string{"unpack", "-config", "layouts.toml", "-layout", "nibbles", "0xB2"}, []string{"high", "1011", "low", "0010"}, nil},
		{[]string{"unpack", "-fields", "a:4,b:4"}, nil, errUsage},
		{[]string{"unpack", "0xB2"}, nil, errUsage},
		{[]string{"pack", "-fields", "ready:1,mode:3,count:4", "ready=1", "mode=5", "count=6"}, []string{"11010110", "214", "0xD6"}, nil},
		{[]string{"pack", "-config", "layouts.toml", "-layout", "status", "ready=1"}, []string{"10000000", "128", "0x80"}, nil},
		{[]string{"pack", "-fields", "a:4,b:4", "a=16"}, nil, subbyte.ErrValueOutOfRange},
		{[]string{"pack", "-fields", "a:4,b:4", "c=1"}, nil, subbyte.ErrUnknownField},
		{[]string{"pack", "-fields", "a:4,b:4", "a"}, nil, errUsage},
		{[]string{"layouts", "-config", "layouts.toml"}, []string{"status", "ready:1,mode:3,count:4", "flags"}, nil},
		{[]string{"layouts"}, nil, errUsage},
		{[]string{"-debug", "separate", "-byte", "255", "-widths", "byte"}, []string{"11111111", "255"}, nil},
		{[]string{"explode"}, nil, errUsage},
		{nil, nil, errUsage},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var out bytes.Buffer
			err := run(test.args, &out)
			if test.err == nil {
				if a.NoError(err) {
					for _, s := range test.contains {
						a.Contains(out.String(), s)
					}
				}
			} else {
				a.True(errors.Is(err, test.err), "%v", err)
			}
		})
	}
}

func TestRun_DebugLevelIsRestored(t *testing.T) {
	a := assert.New(t)
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	defer zerolog.SetGlobalLevel(prev)

	var out bytes.Buffer
	a.NoError(run([]string{"-debug", "separate", "-byte", "1", "-widths", "8"}, &out))
	a.Equal(zerolog.InfoLevel, zerolog.GlobalLevel())
	a.Error(run([]string{"-debug", "explode"}, &out))
	a.Equal(zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestParseByte(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		b   byte
		err bool
	}{
		{"0", 0, false},
		{"255", 255, false},
		{"0xB2", 0xB2, false},
		{"0b1011_0010", 0xB2, false},
		{"0o17", 0o17, false},
		{"256", 0, true},
		{"-1", 0, true},
		{"x", 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			b, err := parseByte(test.s)
			if test.err {
				a.Error(err)
			} else if a.NoError(err) {
				a.Equal(test.b, b)
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	a := assert.New(t)
	u, err := parseUnit("tribit:5")
	if a.NoError(err) {
		a.Equal(subbyte.MustNewUnit(5, subbyte.Tribit), u)
	}
	_, err = parseUnit("3:8")
	a.EqualError(err, `unit "3:8": value out of range: 8 is greater than 7`)
	_, err = parseUnit("3:z")
	a.Error(err)
}
