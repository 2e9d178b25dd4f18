// SPDX-License-Identifier: MIT
package render

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/thatcatcamp/huewheel/internal/palette"
)

// FlatListing returns the palette as an ordered key -> hex mapping
func FlatListing(p *palette.Palette) yaml.MapSlice {
	entries := p.Entries()
	out := make(yaml.MapSlice, 0, len(entries))
	for _, e := range entries {
		out = append(out, yaml.MapItem{Key: e.Key, Value: e.Hex})
	}
	return out
}

// WriteYAML writes the flat key/value listing in palette order
func WriteYAML(w io.Writer, p *palette.Palette) error {
	out, err := yaml.Marshal(FlatListing(p))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
