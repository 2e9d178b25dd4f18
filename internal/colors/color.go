// SPDX-License-Identifier: MIT

// Package colors provides the immutable HSL color value the palette
// generator works with, along with name and hex resolution.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	// ErrUnknownColorName is returned when a color name has no RGB mapping
	ErrUnknownColorName = errors.New("unknown color name")

	// ErrInvalidHex is returned when a hex literal cannot be parsed
	ErrInvalidHex = errors.New("invalid hex color")
)

var hexLiteral = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// Color is an immutable color held in HSL form. Hue is measured in
// fractional turns in [0,1), saturation and lightness in [0,1].
type Color struct {
	h, s, l float64
}

// FromHSL returns the color with the given hue, saturation and lightness.
// Hue wraps into [0,1); saturation and lightness are clamped to [0,1].
func FromHSL(h, s, l float64) Color {
	return Color{h: normalizeHue(h), s: clamp01(s), l: clamp01(l)}
}

// FromRGB returns the color for the given 8-bit channels
func FromRGB(r, g, b uint8) Color {
	return fromColorful(colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	})
}

// FromColor converts any image/color value. Alpha is ignored.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// FromName resolves a CSS color name such as "steelblue". Matching ignores
// case, surrounding space, and the separators in "steel_blue" or "Steel Blue".
func FromName(name string) (Color, error) {
	rgba, ok := colornames.Map[normalizeName(name)]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColorName, name)
	}
	return FromRGB(rgba.R, rgba.G, rgba.B), nil
}

// FromHex parses a #rrggbb or #rgb literal. The leading # is optional.
func FromHex(s string) (Color, error) {
	hex := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) == 4 {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	if !hexLiteral.MatchString(hex) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return fromColorful(c), nil
}

// Parse resolves s as a hex literal when it starts with # and as a color
// name otherwise.
func Parse(s string) (Color, error) {
	if strings.HasPrefix(strings.TrimSpace(s), "#") {
		return FromHex(s)
	}
	return FromName(s)
}

// Names returns the known color names in sorted order
func Names() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}

// HSL returns the hue, saturation and lightness components
func (c Color) HSL() (h, s, l float64) {
	return c.h, c.s, c.l
}

// Hue returns the hue in fractional turns
func (c Color) Hue() float64 { return c.h }

// Saturation returns the HSL saturation
func (c Color) Saturation() float64 { return c.s }

// Lightness returns the HSL lightness
func (c Color) Lightness() float64 { return c.l }

// WithHue returns a copy of c with the hue replaced, wrapped into [0,1).
// Saturation and lightness are kept exactly.
func (c Color) WithHue(h float64) Color {
	return Color{h: normalizeHue(h), s: c.s, l: c.l}
}

// LightenBy moves lightness toward 1 by amount percent (0-100) of the
// remaining distance. Hue and saturation are unchanged.
func (c Color) LightenBy(amount float64) Color {
	a := clampPercent(amount)
	return Color{h: c.h, s: c.s, l: c.l + (1-c.l)*a/100}
}

// DarkenBy moves lightness toward 0 by amount percent (0-100) of the
// remaining distance. Hue and saturation are unchanged.
func (c Color) DarkenBy(amount float64) Color {
	a := clampPercent(amount)
	return Color{h: c.h, s: c.s, l: c.l - c.l*a/100}
}

// IsLight reports whether the color is light (lightness of at least 0.6)
func (c Color) IsLight() bool {
	return c.l >= 0.6
}

// Contrast returns black for light colors and white otherwise, for text
// drawn on top of c.
func (c Color) Contrast() Color {
	if c.IsLight() {
		return Color{}
	}
	return Color{l: 1}
}

// Hex renders the color as lowercase #rrggbb
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// RGB returns the 8-bit red, green and blue channels
func (c Color) RGB() (r, g, b uint8) {
	return c.colorful().RGB255()
}

// RGBA implements image/color.Color. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	return color.RGBA{R: r8, G: g8, B: b8, A: 0xff}.RGBA()
}

// String returns the hex form
func (c Color) String() string {
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Hsl(c.h*360, c.s, c.l).Clamped()
}

func fromColorful(cf colorful.Color) Color {
	h, s, l := cf.Hsl()
	return FromHSL(h/360, s, l)
}

func normalizeName(name string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(name)))
}

func normalizeHue(h float64) float64 {
	h -= math.Floor(h)
	if h >= 1 {
		return 0
	}
	return h
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
