// SPDX-License-Identifier: MIT
package render

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/thatcatcamp/huewheel/internal/palette"
)

// Document is the JSON shape of a palette
type Document struct {
	Base   string          `json:"base"`
	Hex    string          `json:"hex"`
	Scheme string          `json:"scheme"`
	Groups []GroupDocument `json:"groups"`
}

// GroupDocument is one group of a Document
type GroupDocument struct {
	Name   string          `json:"name"`
	Colors []palette.Entry `json:"colors"`
}

// NewDocument converts p for JSON encoding, keeping group and ramp order
func NewDocument(p *palette.Palette) *Document {
	doc := &Document{
		Base:   p.BaseName,
		Hex:    p.Base.Hex(),
		Scheme: p.Scheme,
	}
	for _, g := range p.Groups() {
		gd := GroupDocument{Name: g.Name}
		for _, kv := range g.Colors.Order {
			gd.Colors = append(gd.Colors, palette.Entry{Key: kv.Key, Hex: kv.Value})
		}
		doc.Groups = append(doc.Groups, gd)
	}
	return doc
}

// WriteJSON writes the indented JSON document
func WriteJSON(w io.Writer, p *palette.Palette) error {
	out, err := json.MarshalIndent(NewDocument(p), "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
