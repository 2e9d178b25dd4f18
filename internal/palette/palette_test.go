// SPDX-License-Identifier: MIT
package palette

import (
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/thatcatcamp/huewheel/internal/colors"
	"github.com/thatcatcamp/huewheel/internal/ramp"
	"github.com/thatcatcamp/huewheel/internal/schemes"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestGenerateAllSchemes(t *testing.T) {
	variants := len(ramp.Variants())

	for _, base := range []string{"red", "steelblue", "gold", "black", "white", "#336699"} {
		for _, d := range schemes.List() {
			p, err := Generate(base, d.ID)
			if err != nil {
				t.Fatalf("Generate(%s, %s) failed: %v", base, d.ID, err)
			}

			want := variants * (len(d.Offsets) + 1)
			if p.Len() != want {
				t.Errorf("%s/%s: expected %d entries, got %d", base, d.ID, want, p.Len())
			}
			for _, e := range p.Entries() {
				if !hexPattern.MatchString(e.Hex) {
					t.Errorf("%s/%s: %s has non-canonical hex %q", base, d.ID, e.Key, e.Hex)
				}
			}
		}
	}
}

func TestGenerateRedComplementary(t *testing.T) {
	p, err := Generate("red", "complementary")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if hex, _ := p.Hex("mid"); hex != "#ff0000" {
		t.Errorf("expected base mid #ff0000, got %s", hex)
	}

	want := colors.FromHSL(6.0/18.0, 1, 0.5).Hex()
	if hex, _ := p.Hex("complementary_mid"); hex != want {
		t.Errorf("expected complementary_mid %s, got %s", want, hex)
	}
	if want != "#00ff00" {
		t.Errorf("hsl(1/3, 1, 0.5) should be #00ff00, got %s", want)
	}
}

func TestGroupOrder(t *testing.T) {
	p, err := Generate("steelblue", "rectangle")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	groups := p.Groups()
	names := []string{"accent1", "accent2", "accent3", "base"}
	if len(groups) != len(names) {
		t.Fatalf("expected %d groups, got %d", len(names), len(groups))
	}
	for i, g := range groups {
		if g.Name != names[i] {
			t.Errorf("group %d: expected %s, got %s", i, names[i], g.Name)
		}
	}

	keys := p.Keys()
	if keys[0] != "accent1_mid" {
		t.Errorf("first key should be accent1_mid, got %s", keys[0])
	}
	if keys[len(keys)-1] != "darkest" {
		t.Errorf("last key should be the bare base darkest, got %s", keys[len(keys)-1])
	}
	for _, k := range keys {
		if len(k) > 5 && k[:5] == "base_" {
			t.Errorf("base keys must not be prefixed: %s", k)
		}
	}
}

func TestBasicHasOnlyBaseGroup(t *testing.T) {
	p, err := Generate("teal", "basic")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	groups := p.Groups()
	if len(groups) != 1 || groups[0].Name != BaseGroup {
		t.Fatalf("expected only the base group, got %d groups", len(groups))
	}
	if p.Len() != len(ramp.Variants()) {
		t.Errorf("expected %d entries, got %d", len(ramp.Variants()), p.Len())
	}
}

func TestGenerateUnknownColor(t *testing.T) {
	p, err := Generate("not-a-color", "basic")
	if !errors.Is(err, colors.ErrUnknownColorName) {
		t.Fatalf("expected ErrUnknownColorName, got %v", err)
	}
	if p != nil {
		t.Error("no palette should be returned on error")
	}
}

func TestGenerateUnknownScheme(t *testing.T) {
	p, err := Generate("red", "not-a-scheme")
	if !errors.Is(err, schemes.ErrUnknownScheme) {
		t.Fatalf("expected ErrUnknownScheme, got %v", err)
	}
	if p != nil {
		t.Error("no palette should be returned on error")
	}
}

func TestGenerateKeepsRequestedName(t *testing.T) {
	p, err := Generate(" SteelBlue ", "triadic")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if p.BaseName != "SteelBlue" {
		t.Errorf("unexpected base name %q", p.BaseName)
	}
	if p.Scheme != "triadic" {
		t.Errorf("unexpected scheme %q", p.Scheme)
	}
	if p.Title() != "SteelBlue (triadic)" {
		t.Errorf("unexpected title %q", p.Title())
	}
}

func TestGroupLookup(t *testing.T) {
	p, _ := Generate("red", "analogous")

	g, ok := p.Group("support")
	if !ok {
		t.Fatal("support group not found")
	}
	if g.Colors.Len() != len(ramp.Variants()) {
		t.Errorf("unexpected group size %d", g.Colors.Len())
	}
	if _, ok := p.Group("missing"); ok {
		t.Error("unexpected group found")
	}
}

func TestMapIsCopy(t *testing.T) {
	p, _ := Generate("red", "basic")

	m := p.Map()
	m.Add("mid", "#000000")
	if hex, _ := p.Hex("mid"); hex != "#ff0000" {
		t.Errorf("palette changed through its map copy: %s", hex)
	}
}

func TestGroupsAreCopies(t *testing.T) {
	p, _ := Generate("red", "complementary")
	want, _ := p.Group(BaseGroup)
	wantMid, _ := want.Colors.ValueByKeyTry("mid")

	for _, g := range p.Groups() {
		g.Colors.Add("mid", "#000000")
		g.Colors.Add("extra", "#000000")
	}
	if g, ok := p.Group(BaseGroup); ok {
		g.Colors.Add("mid", "#000000")
	}

	got, _ := p.Group(BaseGroup)
	if mid, _ := got.Colors.ValueByKeyTry("mid"); mid != wantMid {
		t.Errorf("base mid changed through a returned group: %s, want %s", mid, wantMid)
	}
	if _, ok := got.Colors.ValueByKeyTry("extra"); ok {
		t.Error("key added through Groups leaked into the palette")
	}
	if got.Colors.Len() != want.Colors.Len() {
		t.Errorf("base group has %d colors, want %d", got.Colors.Len(), want.Colors.Len())
	}
}

func TestGenerateConcurrent(t *testing.T) {
	want, _ := Generate("orchid", "square")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := Generate("orchid", "square")
			if err != nil {
				t.Errorf("Generate failed: %v", err)
				return
			}
			for j, e := range p.Entries() {
				if e != want.Entries()[j] {
					t.Errorf("entry %d differs: %+v vs %+v", j, e, want.Entries()[j])
				}
			}
		}()
	}
	wg.Wait()
}
