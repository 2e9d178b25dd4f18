// SPDX-License-Identifier: MIT

// Package render turns a built palette into the text formats the CLI and
// the HTTP API hand out.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thatcatcamp/huewheel/internal/palette"
)

// ErrUnknownFormat is returned for an output format that has no renderer
var ErrUnknownFormat = errors.New("unknown output format")

// Format names an output format
type Format string

const (
	Sass     Format = "sass"
	CSS      Format = "css"
	YAML     Format = "yaml"
	JSON     Format = "json"
	HTML     Format = "html"
	Terminal Format = "terminal"
	ANSI     Format = "ansi"
)

type renderer struct {
	contentType string
	write       func(io.Writer, *palette.Palette) error
}

var renderers = map[Format]renderer{
	Sass:     {"text/plain; charset=utf-8", WriteSass},
	CSS:      {"text/css; charset=utf-8", WriteCSS},
	YAML:     {"application/yaml; charset=utf-8", WriteYAML},
	JSON:     {"application/json; charset=utf-8", WriteJSON},
	HTML:     {"text/html; charset=utf-8", WriteHTML},
	Terminal: {"text/plain; charset=utf-8", WriteTerminal},
	ANSI:     {"text/plain; charset=utf-8", WriteANSI},
}

// Formats returns the supported formats in display order
func Formats() []Format {
	return []Format{Sass, CSS, YAML, JSON, HTML, Terminal, ANSI}
}

// ParseFormat validates a format name. An empty name selects Sass.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return Sass, nil
	}
	if _, ok := renderers[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	return renderers[f].contentType
}

// Render writes p to w in the given format
func Render(w io.Writer, p *palette.Palette, f Format) error {
	r, ok := renderers[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return r.write(w, p)
}

// String renders p into a string
func String(p *palette.Palette, f Format) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, p, f); err != nil {
		return "", err
	}
	return buf.String(), nil
}
