// SPDX-License-Identifier: MIT

// Package palette builds the full named palette for a base color and a
// scheme: one ramp per derived hue followed by the base ramp.
package palette

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/ordmap"
	"github.com/thatcatcamp/huewheel/internal/colors"
	"github.com/thatcatcamp/huewheel/internal/ramp"
	"github.com/thatcatcamp/huewheel/internal/schemes"
)

// BaseGroup is the group name of the unrotated base ramp
const BaseGroup = "base"

// Group is the ramp of one hue within a palette
type Group struct {
	Name   string
	Color  colors.Color
	Colors *ordmap.Map[string, string]
}

// Entry is one key/hex pair of a palette
type Entry struct {
	Key string `json:"key" yaml:"key"`
	Hex string `json:"hex" yaml:"hex"`
}

// Palette is the ordered result of a build. It is not modified after Build
// returns.
type Palette struct {
	// BaseName is how the base color was requested, e.g. "steelblue"
	BaseName string
	Base     colors.Color
	Scheme   string

	groups  []Group
	entries *ordmap.Map[string, string]
}

// Build expands every hue of the scheme into a ramp. Derived groups come
// first in table order and the base group last. Derived keys are prefixed
// with their group name; base keys are bare variants.
func Build(s *schemes.Scheme) *Palette {
	p := &Palette{
		BaseName: s.Base.Hex(),
		Base:     s.Base,
		Scheme:   s.ID(),
		entries:  ordmap.New[string, string](),
	}

	for _, d := range s.Colors() {
		p.add(d.Name, d.Color, ramp.Build(d.Color, d.Name))
	}
	p.add(BaseGroup, s.Base, ramp.Build(s.Base, ""))
	return p
}

// Generate resolves baseColor (a CSS name or #hex literal), applies the
// scheme and builds the palette. Nothing is returned on error.
func Generate(baseColor, schemeID string) (*Palette, error) {
	base, err := colors.Parse(baseColor)
	if err != nil {
		return nil, err
	}

	s, err := schemes.Create(schemeID, base)
	if err != nil {
		return nil, err
	}

	p := Build(s)
	p.BaseName = strings.TrimSpace(baseColor)
	return p, nil
}

func (p *Palette) add(name string, c colors.Color, m *ordmap.Map[string, string]) {
	p.groups = append(p.groups, Group{Name: name, Color: c, Colors: m})
	p.entries.Copy(m)
}

// Groups returns the groups in palette order. Each group carries its own
// copy of the ramp, so the palette cannot be changed through it.
func (p *Palette) Groups() []Group {
	out := make([]Group, len(p.groups))
	for i, g := range p.groups {
		out[i] = g.clone()
	}
	return out
}

// Group returns a copy of the named group
func (p *Palette) Group(name string) (Group, bool) {
	for _, g := range p.groups {
		if g.Name == name {
			return g.clone(), true
		}
	}
	return Group{}, false
}

func (g Group) clone() Group {
	m := ordmap.New[string, string]()
	m.Copy(g.Colors)
	g.Colors = m
	return g
}

// Entries returns every key/hex pair in palette order
func (p *Palette) Entries() []Entry {
	out := make([]Entry, 0, p.entries.Len())
	for _, kv := range p.entries.Order {
		out = append(out, Entry{Key: kv.Key, Hex: kv.Value})
	}
	return out
}

// Keys returns the palette keys in order
func (p *Palette) Keys() []string {
	return p.entries.Keys()
}

// Hex returns the hex value stored under key
func (p *Palette) Hex(key string) (string, bool) {
	return p.entries.ValueByKeyTry(key)
}

// Len returns the number of entries
func (p *Palette) Len() int {
	return p.entries.Len()
}

// Map returns a copy of the flat ordered key -> hex mapping
func (p *Palette) Map() *ordmap.Map[string, string] {
	m := ordmap.New[string, string]()
	m.Copy(p.entries)
	return m
}

// Title is a short human readable label, e.g. "steelblue (triadic)"
func (p *Palette) Title() string {
	return fmt.Sprintf("%s (%s)", p.BaseName, p.Scheme)
}
