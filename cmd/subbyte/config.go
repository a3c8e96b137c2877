package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/avdva/subbyte"
	"github.com/rs/zerolog/log"
)

type layoutConfig struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Fields      []string `toml:"fields"`
}

type fileConfig struct {
	Layouts []layoutConfig `toml:"layout"`
}

type namedLayout struct {
	Name        string
	Description string
	Layout      *subbyte.Layout
}

// loadLayouts reads layouts from a toml file, keeping the file order:
//
//	[[layout]]
//	name = "status"
//	fields = ["ready:1", "mode:3", "count:nibble"]
func loadLayouts(path string) ([]namedLayout, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load layout config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load layout config: unknown key %q", undecoded[0].String())
	}
	if !meta.IsDefined("layout") {
		return nil, fmt.Errorf("load layout config: no layouts in %s", path)
	}

	result := make([]namedLayout, 0, len(raw.Layouts))
	seen := make(map[string]struct{}, len(raw.Layouts))
	for i, lc := range raw.Layouts {
		name := strings.TrimSpace(lc.Name)
		if name == "" {
			return nil, fmt.Errorf("layout %d: empty name", i)
		}
		if _, found := seen[name]; found {
			return nil, fmt.Errorf("layout %q: defined twice", name)
		}
		seen[name] = struct{}{}
		l, err := subbyte.ParseLayout(strings.Join(lc.Fields, ","))
		if err != nil {
			return nil, fmt.Errorf("layout %q: %w", name, err)
		}
		result = append(result, namedLayout{
			Name:        name,
			Description: strings.TrimSpace(lc.Description),
			Layout:      l,
		})
	}
	log.Debug().Str("path", path).Int("layouts", len(result)).Msg("loaded layout config")
	return result, nil
}

func findLayout(layouts []namedLayout, name string) (*subbyte.Layout, error) {
	for _, nl := range layouts {
		if nl.Name == name {
			return nl.Layout, nil
		}
	}
	return nil, fmt.Errorf("layout %q not found", name)
}
