// SPDX-License-Identifier: MIT
package colors

import (
	"errors"
	"math"
	"regexp"
	"testing"
)

const tolerance = 1e-9

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestFromNameRed(t *testing.T) {
	c, err := FromName("red")
	if err != nil {
		t.Fatalf("FromName failed: %v", err)
	}

	h, s, l := c.HSL()
	if !almostEqual(h, 0) || !almostEqual(s, 1) || !almostEqual(l, 0.5) {
		t.Errorf("expected hsl(0, 1, 0.5), got hsl(%v, %v, %v)", h, s, l)
	}
	if c.Hex() != "#ff0000" {
		t.Errorf("expected #ff0000, got %s", c.Hex())
	}
}

func TestFromNameNormalizes(t *testing.T) {
	names := []string{"SteelBlue", "  steelblue ", "steel_blue", "Steel Blue", "steel-blue"}
	for _, name := range names {
		c, err := FromName(name)
		if err != nil {
			t.Errorf("FromName(%q) failed: %v", name, err)
			continue
		}
		if c.Hex() != "#4682b4" {
			t.Errorf("FromName(%q) = %s, want #4682b4", name, c.Hex())
		}
	}
}

func TestFromNameUnknown(t *testing.T) {
	_, err := FromName("not-a-color")
	if err == nil {
		t.Fatal("expected an error for an unknown color name")
	}
	if !errors.Is(err, ErrUnknownColorName) {
		t.Errorf("expected ErrUnknownColorName, got %v", err)
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#4682B4", "#4682b4"},
		{"4682b4", "#4682b4"},
		{"#f00", "#ff0000"},
		{"#000000", "#000000"},
		{"#ffffff", "#ffffff"},
	}

	for _, tt := range tests {
		c, err := FromHex(tt.in)
		if err != nil {
			t.Errorf("FromHex(%q) failed: %v", tt.in, err)
			continue
		}
		if c.Hex() != tt.want {
			t.Errorf("FromHex(%q) = %s, want %s", tt.in, c.Hex(), tt.want)
		}
	}
}

func TestFromHexInvalid(t *testing.T) {
	for _, in := range []string{"#12345", "#zzzzzz", ""} {
		if _, err := FromHex(in); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("FromHex(%q): expected ErrInvalidHex, got %v", in, err)
		}
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("navy")
	if err != nil || c.Hex() != "#000080" {
		t.Errorf("Parse(navy) = %v, %v", c, err)
	}

	c, err = Parse("#123456")
	if err != nil || c.Hex() != "#123456" {
		t.Errorf("Parse(#123456) = %v, %v", c, err)
	}

	if _, err := Parse("bad"); !errors.Is(err, ErrUnknownColorName) {
		t.Errorf("Parse(bad): expected ErrUnknownColorName, got %v", err)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, name := range Names() {
		c, err := FromName(name)
		if err != nil {
			t.Fatalf("FromName(%q) failed: %v", name, err)
		}

		h, s, l := c.HSL()
		back := FromHSL(h, s, l)
		if back.Hex() != c.Hex() {
			t.Errorf("%s: round trip changed %s to %s", name, c.Hex(), back.Hex())
		}
		if !hexPattern.MatchString(c.Hex()) {
			t.Errorf("%s: hex %q is not canonical", name, c.Hex())
		}
	}
}

func TestFromHSLWrapsHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1, 0},
		{1.25, 0.25},
		{-0.25, 0.75},
		{-1, 0},
	}

	for _, tt := range tests {
		got := FromHSL(tt.in, 0.5, 0.5).Hue()
		if !almostEqual(got, tt.want) {
			t.Errorf("FromHSL(%v).Hue() = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 1 {
			t.Errorf("FromHSL(%v).Hue() = %v, outside [0,1)", tt.in, got)
		}
	}
}

func TestLightenDarkenIdentity(t *testing.T) {
	c, _ := FromName("steelblue")

	if c.LightenBy(0).Hex() != c.Hex() {
		t.Errorf("LightenBy(0) changed %s to %s", c.Hex(), c.LightenBy(0).Hex())
	}
	if c.DarkenBy(0).Hex() != c.Hex() {
		t.Errorf("DarkenBy(0) changed %s to %s", c.Hex(), c.DarkenBy(0).Hex())
	}
}

func TestLightenDarkenFull(t *testing.T) {
	c, _ := FromName("steelblue")

	if l := c.LightenBy(100).Lightness(); !almostEqual(l, 1) {
		t.Errorf("LightenBy(100) lightness = %v, want 1", l)
	}
	if l := c.DarkenBy(100).Lightness(); !almostEqual(l, 0) {
		t.Errorf("DarkenBy(100) lightness = %v, want 0", l)
	}
	if c.LightenBy(100).Hex() != "#ffffff" {
		t.Errorf("LightenBy(100) = %s, want #ffffff", c.LightenBy(100).Hex())
	}
	if c.DarkenBy(100).Hex() != "#000000" {
		t.Errorf("DarkenBy(100) = %s, want #000000", c.DarkenBy(100).Hex())
	}
}

func TestLightenDarkenPreserveHueAndSaturation(t *testing.T) {
	c := FromHSL(0.3, 0.6, 0.4)

	for _, amount := range []float64{10, 30, 50, 90} {
		for _, v := range []Color{c.LightenBy(amount), c.DarkenBy(amount)} {
			if v.Hue() != c.Hue() || v.Saturation() != c.Saturation() {
				t.Errorf("amount %v: hue/saturation changed to %v/%v", amount, v.Hue(), v.Saturation())
			}
		}
	}

	if l := c.LightenBy(50).Lightness(); !almostEqual(l, 0.7) {
		t.Errorf("LightenBy(50) lightness = %v, want 0.7", l)
	}
	if l := c.DarkenBy(50).Lightness(); !almostEqual(l, 0.2) {
		t.Errorf("DarkenBy(50) lightness = %v, want 0.2", l)
	}
}

func TestLightenDarkenBoundaries(t *testing.T) {
	white := FromHSL(0, 0, 1)
	black := FromHSL(0, 0, 0)

	if white.LightenBy(50).Hex() != "#ffffff" {
		t.Errorf("lightening white gave %s", white.LightenBy(50).Hex())
	}
	if black.DarkenBy(50).Hex() != "#000000" {
		t.Errorf("darkening black gave %s", black.DarkenBy(50).Hex())
	}
	if l := white.LightenBy(250).Lightness(); l != 1 {
		t.Errorf("out of range amount produced lightness %v", l)
	}
}

func TestColorImplementsImageColor(t *testing.T) {
	c, _ := FromName("red")
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}

	if FromColor(c).Hex() != "#ff0000" {
		t.Errorf("FromColor round trip gave %s", FromColor(c).Hex())
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) < 140 {
		t.Fatalf("expected the CSS named colors, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted at %d: %s >= %s", i, names[i-1], names[i])
		}
	}
}

func TestContrast(t *testing.T) {
	light, _ := FromName("lightyellow")
	dark, _ := FromName("navy")

	if !light.IsLight() || dark.IsLight() {
		t.Fatal("IsLight misclassified lightyellow or navy")
	}
	if light.Contrast().Hex() != "#000000" {
		t.Errorf("expected black text on lightyellow, got %s", light.Contrast().Hex())
	}
	if dark.Contrast().Hex() != "#ffffff" {
		t.Errorf("expected white text on navy, got %s", dark.Contrast().Hex())
	}
}
