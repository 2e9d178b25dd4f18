// SPDX-License-Identifier: MIT

// Package schemes holds the fixed table of hue-rotation schemes and the
// rotation that derives each scheme color from a base color.
package schemes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thatcatcamp/huewheel/internal/colors"
)

// StepsPerTurn is the number of hue steps in a full turn (20 degrees each)
const StepsPerTurn = 18

// ErrUnknownScheme is returned for a scheme id that is not in the table
var ErrUnknownScheme = errors.New("unknown scheme")

// Offset is a labelled hue rotation, in steps
type Offset struct {
	Name  string // group name, e.g. "accent1"
	Steps int    // within one turn either way
}

// Definition is a named scheme and its ordered offsets
type Definition struct {
	ID          string
	Description string
	Offsets     []Offset
}

// table order is the listing order
var table = []*Definition{
	{
		ID:          "basic",
		Description: "Base color only",
	},
	{
		ID:          "complementary",
		Description: "Base plus the opposite hue",
		Offsets:     []Offset{{"complementary", +6}},
	},
	{
		ID:          "analogous",
		Description: "Base plus its two neighbouring hues",
		Offsets:     []Offset{{"support", -1}, {"accent", +1}},
	},
	{
		ID:          "triadic",
		Description: "Three hues spaced evenly",
		Offsets:     []Offset{{"accent1", +4}, {"accent2", -4}},
	},
	{
		ID:          "split_complementary",
		Description: "Base plus the two hues either side of its complement",
		Offsets:     []Offset{{"complement1", +5}, {"complement2", -5}},
	},
	{
		ID:          "rectangle",
		Description: "Two complementary pairs",
		Offsets:     []Offset{{"accent1", +2}, {"accent2", +6}, {"accent3", -4}},
	},
	{
		ID:          "square",
		Description: "Four hues a quarter turn apart",
		Offsets:     []Offset{{"accent1", +3}, {"complement", +6}, {"accent2", +9}},
	},
}

var byID = func() map[string]*Definition {
	m := make(map[string]*Definition, len(table))
	for _, d := range table {
		m[d.ID] = d
	}
	return m
}()

// Get returns a scheme definition by id. Ids are matched case-insensitively
// and "-" is accepted in place of "_".
func Get(id string) (*Definition, bool) {
	d, ok := byID[normalizeID(id)]
	return d, ok
}

// List returns all scheme definitions in table order
func List() []*Definition {
	out := make([]*Definition, len(table))
	copy(out, table)
	return out
}

// IDs returns the scheme ids in table order
func IDs() []string {
	ids := make([]string, len(table))
	for i, d := range table {
		ids[i] = d.ID
	}
	return ids
}

// Rotate turns the hue of base by steps/18 of a turn. Saturation and
// lightness are kept exactly.
func Rotate(base colors.Color, steps int) colors.Color {
	hue := base.Hue() + float64(steps)/StepsPerTurn
	if hue >= 1.0 {
		hue -= 1.0
	} else if hue < 0.0 {
		hue += 1.0
	}
	return base.WithHue(hue)
}

// Scheme is a definition applied to a base color
type Scheme struct {
	Definition *Definition
	Base       colors.Color
}

// Derived is one rotated color of a scheme together with its group name
type Derived struct {
	Name  string
	Color colors.Color
}

// Create applies the scheme with the given id to base
func Create(id string, base colors.Color) (*Scheme, error) {
	d, ok := Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScheme, id, strings.Join(IDs(), ", "))
	}
	return &Scheme{Definition: d, Base: base}, nil
}

// ID returns the scheme id
func (s *Scheme) ID() string {
	return s.Definition.ID
}

// Colors returns the rotated colors in table order
func (s *Scheme) Colors() []Derived {
	out := make([]Derived, 0, len(s.Definition.Offsets))
	for _, o := range s.Definition.Offsets {
		out = append(out, Derived{Name: o.Name, Color: Rotate(s.Base, o.Steps)})
	}
	return out
}

func normalizeID(id string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(id)), "-", "_")
}
