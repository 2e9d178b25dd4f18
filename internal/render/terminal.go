// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/thatcatcamp/huewheel/internal/colors"
	"github.com/thatcatcamp/huewheel/internal/palette"
)

// WriteTerminal writes one line per entry with a 24-bit color block.
// Escape codes are emitted only when w itself is a terminal and NO_COLOR
// is unset.
func WriteTerminal(w io.Writer, p *palette.Palette) error {
	return writeSwatchLines(w, p, isColorTerminal(w))
}

// WriteANSI writes the same listing as WriteTerminal with escape codes
// always on, for clients that asked for color explicitly.
func WriteANSI(w io.Writer, p *palette.Palette) error {
	return writeSwatchLines(w, p, true)
}

func isColorTerminal(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// withColor pins c to the decision made for this writer instead of the
// process-wide stdout check
func withColor(c *color.Color, enabled bool) *color.Color {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func writeSwatchLines(w io.Writer, p *palette.Palette, enabled bool) error {
	clrGroup := withColor(color.New(color.FgWhite, color.Bold), enabled)

	if _, err := clrGroup.Fprintln(w, p.Title()); err != nil {
		return err
	}
	for _, g := range p.Groups() {
		fmt.Fprintln(w)
		clrGroup.Fprintf(w, "  %s\n", g.Name)
		for _, kv := range g.Colors.Order {
			c, err := colors.FromHex(kv.Value)
			if err != nil {
				return err
			}
			r, gr, b := c.RGB()
			tr, tg, tb := c.Contrast().RGB()
			block := withColor(color.BgRGB(int(r), int(gr), int(b)).AddRGB(int(tr), int(tg), int(tb)), enabled)
			block.Fprintf(w, "  %s  ", kv.Value)
			fmt.Fprintf(w, "  %s\n", kv.Key)
		}
	}
	return nil
}
