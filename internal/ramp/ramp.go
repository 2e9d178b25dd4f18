// SPDX-License-Identifier: MIT

// Package ramp expands a single color into its fixed ladder of tints
// and shades.
package ramp

import (
	"cogentcore.org/core/base/ordmap"
	"github.com/thatcatcamp/huewheel/internal/colors"
)

// Variant names, in ramp order
const (
	Mid      = "mid"
	Light    = "light"
	Lighter  = "lighter"
	Lightest = "lightest"
	Dark     = "dark"
	Darker   = "darker"
	Darkest  = "darkest"
)

// step is one rung of a ladder. Weight is the share (percent) of the
// original color that survives the mix toward white or black.
type step struct {
	name   string
	weight float64
}

var (
	tints  = []step{{Light, 50}, {Lighter, 30}, {Lightest, 10}}
	shades = []step{{Dark, 50}, {Darker, 30}, {Darkest, 10}}
)

// Variants returns the variant names in the order Build emits them
func Variants() []string {
	names := []string{Mid}
	for _, s := range tints {
		names = append(names, s.name)
	}
	for _, s := range shades {
		names = append(names, s.name)
	}
	return names
}

// Build returns the ramp for c as an ordered variant -> hex map.
// A non-empty prefix turns each key into "<prefix>_<variant>".
func Build(c colors.Color, prefix string) *ordmap.Map[string, string] {
	m := ordmap.New[string, string]()
	variants := Variants()
	for i, v := range Colors(c) {
		m.Add(Key(prefix, variants[i]), v.Hex())
	}
	return m
}

// Colors returns the ramp for c without rendering, in the same order as Build
func Colors(c colors.Color) []colors.Color {
	out := []colors.Color{c}
	for _, s := range tints {
		out = append(out, c.LightenBy(100-s.weight))
	}
	for _, s := range shades {
		out = append(out, c.DarkenBy(100-s.weight))
	}
	return out
}

// Key returns the palette key for a variant in the given group prefix
func Key(prefix, variant string) string {
	if prefix == "" {
		return variant
	}
	return prefix + "_" + variant
}
