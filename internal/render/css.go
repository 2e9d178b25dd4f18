// SPDX-License-Identifier: MIT
package render

import (
	"io"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/thatcatcamp/huewheel/internal/palette"
	"github.com/thatcatcamp/huewheel/internal/ramp"
)

// CSSVar returns the custom property name for a palette key
func CSSVar(key string) string {
	return "--" + strings.ReplaceAll(key, "_", "-")
}

// GenerateCSS builds a stylesheet with one custom property per palette
// entry on :root, followed by base element styles that use the base ramp.
func GenerateCSS(p *palette.Palette) *css.Stylesheet {
	sheet := css.NewStylesheet()

	root := css.NewRule(css.QualifiedRule)
	root.Selectors = []string{":root"}
	for _, e := range p.Entries() {
		root.Declarations = append(root.Declarations, declaration(CSSVar(e.Key), e.Hex))
	}
	sheet.Rules = append(sheet.Rules, root)

	// base element styles
	sheet.Rules = append(sheet.Rules,
		rule([]string{"body"},
			"background-color", varRef(ramp.Lightest),
			"color", varRef(ramp.Darkest)),
		rule([]string{"a"},
			"color", varRef(ramp.Dark)),
		rule([]string{"a:hover"},
			"color", varRef(ramp.Darker)),
		rule([]string{"button", ".btn"},
			"background-color", varRef(ramp.Mid),
			"color", varRef(ramp.Lightest),
			"border", "1px solid "+varRef(ramp.Dark)),
		rule([]string{".card", ".surface"},
			"background-color", varRef(ramp.Lighter),
			"border", "1px solid "+varRef(ramp.Light)),
	)

	// one background utility class per entry
	for _, e := range p.Entries() {
		sheet.Rules = append(sheet.Rules,
			rule([]string{".bg-" + strings.ReplaceAll(e.Key, "_", "-")}, "background-color", varRef(e.Key)))
	}
	return sheet
}

// WriteCSS writes the stylesheet built by GenerateCSS
func WriteCSS(w io.Writer, p *palette.Palette) error {
	_, err := io.WriteString(w, GenerateCSS(p).String()+"\n")
	return err
}

func varRef(key string) string {
	return "var(" + CSSVar(key) + ")"
}

func declaration(property, value string) *css.Declaration {
	d := css.NewDeclaration()
	d.Property = property
	d.Value = value
	return d
}

// rule builds a qualified rule from alternating property/value pairs
func rule(selectors []string, pairs ...string) *css.Rule {
	r := css.NewRule(css.QualifiedRule)
	r.Selectors = selectors
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Declarations = append(r.Declarations, declaration(pairs[i], pairs[i+1]))
	}
	return r
}
