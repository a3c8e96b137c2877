package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avdva/subbyte"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: subbyte [-debug] <command> [flags] [args]

commands:
  separate -byte B -widths W,W...                  split a byte, high bits first
  combine  WIDTH:VALUE...                          pack units, low bits first
  unpack   (-config F -layout N | -fields L) B     split a byte by a named layout
  pack     (-config F -layout N | -fields L) K=V.. pack named values into a byte
  layouts  -config F                               list layouts from a config file

widths are numbers from 1 to 8 or names: bit, crumb, tribit, nibble, pentad, hexad, heptad, byte.
bytes and values accept 0x, 0o and 0b prefixes.`

var errUsage = errors.New("bad usage")

type command func(args []string, out io.Writer) error

var commands = map[string]command{
	"separate": runSeparate,
	"combine":  runCombine,
	"unpack":   runUnpack,
	"pack":     runPack,
	"layouts":  runLayouts,
}

func run(args []string, out io.Writer) error {
	fs := newFlagSet("subbyte")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return usageError(err.Error())
	}
	if *debug {
		prev := zerolog.GlobalLevel()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		defer zerolog.SetGlobalLevel(prev)
	}
	if fs.NArg() == 0 {
		return usageError("no command")
	}
	name := fs.Arg(0)
	cmd, found := commands[name]
	if !found {
		return usageError(fmt.Sprintf("unknown command %q", name))
	}
	log.Debug().Str("command", name).Strs("args", fs.Args()[1:]).Msg("running command")
	return cmd(fs.Args()[1:], out)
}

func usageError(msg string) error {
	return fmt.Errorf("%w: %s\n%s", errUsage, msg, usage)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func runSeparate(args []string, out io.Writer) error {
	fs := newFlagSet("separate")
	value := fs.String("byte", "", "byte to separate, like 0xB2 or 0b10110010")
	widths := fs.String("widths", "", "comma-separated widths, from the highest bits to the lowest")
	if err := fs.Parse(args); err != nil {
		return usageError(err.Error())
	}
	if *value == "" || *widths == "" {
		return usageError("separate: -byte and -widths are required")
	}
	b, err := parseByte(*value)
	if err != nil {
		return err
	}
	ws, err := parseWidths(*widths)
	if err != nil {
		return err
	}
	units, err := subbyte.Separate(b, ws...)
	if err != nil {
		return fmt.Errorf("separate %08b: %w", b, err)
	}
	table := newTable(out, "#", "width", "bits", "value")
	for i, u := range units {
		table.Append([]string{strconv.Itoa(i), u.Width().String(), u.Binary(), strconv.Itoa(int(u.Value()))})
	}
	table.Render()
	return nil
}

func runCombine(args []string, out io.Writer) error {
	if len(args) == 0 {
		return usageError("combine: no units")
	}
	units := make([]subbyte.Unit, 0, len(args))
	for _, arg := range args {
		u, err := parseUnit(arg)
		if err != nil {
			return err
		}
		units = append(units, u)
	}
	u, err := subbyte.Combine(units...)
	if err != nil {
		return fmt.Errorf("combine: %w", err)
	}
	table := newTable(out, "width", "bits", "value", "hex")
	table.Append(unitRow(u))
	table.Render()
	return nil
}

func runUnpack(args []string, out io.Writer) error {
	fs := newFlagSet("unpack")
	src := addLayoutFlags(fs)
	if err := fs.Parse(args); err != nil {
		return usageError(err.Error())
	}
	if fs.NArg() != 1 {
		return usageError("unpack: exactly one byte expected")
	}
	l, err := src.layout()
	if err != nil {
		return err
	}
	b, err := parseByte(fs.Arg(0))
	if err != nil {
		return err
	}
	units := l.Separate(b)
	table := newTable(out, "field", "width", "bits", "value")
	for i, f := range l.Fields() {
		u := units[i]
		table.Append([]string{f.Name, u.Width().String(), u.Binary(), strconv.Itoa(int(u.Value()))})
	}
	table.Render()
	return nil
}

func runPack(args []string, out io.Writer) error {
	fs := newFlagSet("pack")
	src := addLayoutFlags(fs)
	if err := fs.Parse(args); err != nil {
		return usageError(err.Error())
	}
	l, err := src.layout()
	if err != nil {
		return err
	}
	values := make(map[string]uint64, fs.NArg())
	for _, arg := range fs.Args() {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			return usageError(fmt.Sprintf("pack: %q is not a name=value pair", arg))
		}
		v, err := strconv.ParseUint(strings.TrimSpace(value), 0, 64)
		if err != nil {
			return fmt.Errorf("parse value of %q: %w", name, err)
		}
		values[strings.TrimSpace(name)] = v
	}
	b, err := l.Pack(values)
	if err != nil {
		return fmt.Errorf("pack %s: %w", l, err)
	}
	table := newTable(out, "layout", "bits", "value", "hex")
	table.Append([]string{l.String(), fmt.Sprintf("%08b", b), strconv.Itoa(int(b)), fmt.Sprintf("0x%02X", b)})
	table.Render()
	return nil
}

func runLayouts(args []string, out io.Writer) error {
	fs := newFlagSet("layouts")
	config := fs.String("config", "", "toml file with layouts")
	if err := fs.Parse(args); err != nil {
		return usageError(err.Error())
	}
	if *config == "" {
		return usageError("layouts: -config is required")
	}
	layouts, err := loadLayouts(*config)
	if err != nil {
		return err
	}
	table := newTable(out, "name", "fields", "description")
	for _, nl := range layouts {
		table.Append([]string{nl.Name, nl.Layout.String(), nl.Description})
	}
	table.Render()
	return nil
}

type layoutFlags struct {
	config, name, fields *string
}

func addLayoutFlags(fs *flag.FlagSet) layoutFlags {
	return layoutFlags{
		config: fs.String("config", "", "toml file with layouts"),
		name:   fs.String("layout", "", "layout name in the config file"),
		fields: fs.String("fields", "", "inline layout, like ready:1,mode:3,count:4"),
	}
}

func (lf layoutFlags) layout() (*subbyte.Layout, error) {
	switch {
	case *lf.fields != "":
		return subbyte.ParseLayout(*lf.fields)
	case *lf.config != "" && *lf.name != "":
		layouts, err := loadLayouts(*lf.config)
		if err != nil {
			return nil, err
		}
		return findLayout(layouts, *lf.name)
	default:
		return nil, usageError("either -fields or both -config and -layout are required")
	}
}

func parseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err != nil {
		return 0, fmt.Errorf("parse byte %q: %w", s, err)
	}
	return byte(v), nil
}

func parseWidths(s string) ([]subbyte.Width, error) {
	parts := strings.Split(s, ",")
	widths := make([]subbyte.Width, len(parts))
	for i, part := range parts {
		w, err := subbyte.ParseWidth(part)
		if err != nil {
			return nil, fmt.Errorf("width %d: %w", i, err)
		}
		widths[i] = w
	}
	return widths, nil
}

// parseUnit parses a "width:value" pair.
func parseUnit(s string) (subbyte.Unit, error) {
	width, value, found := strings.Cut(s, ":")
	if !found {
		return subbyte.Unit{}, usageError(fmt.Sprintf("%q is not a width:value pair", s))
	}
	w, err := subbyte.ParseWidth(width)
	if err != nil {
		return subbyte.Unit{}, fmt.Errorf("unit %q: %w", s, err)
	}
	v, err := strconv.ParseUint(strings.TrimSpace(value), 0, 64)
	if err != nil {
		return subbyte.Unit{}, fmt.Errorf("unit %q: %w", s, err)
	}
	u, err := subbyte.NewUnit(v, w)
	if err != nil {
		return subbyte.Unit{}, fmt.Errorf("unit %q: %w", s, err)
	}
	return u, nil
}

func unitRow(u subbyte.Unit) []string {
	return []string{u.Width().String(), u.Binary(), strconv.Itoa(int(u.Value())), fmt.Sprintf("0x%02X", u.Value())}
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
