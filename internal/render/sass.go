// SPDX-License-Identifier: MIT
package render

import (
	"bufio"
	"io"

	"github.com/thatcatcamp/huewheel/internal/palette"
)

// SassHeader opens every sass listing
const SassHeader = "# Generated by huewheel"

// WriteSass writes the flat variable listing: a "# <group>" line, one
// "!<key> = <hex>" line per entry, and a blank line after each group.
func WriteSass(w io.Writer, p *palette.Palette) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(SassHeader + "\n")
	for _, g := range p.Groups() {
		bw.WriteString("# " + g.Name + "\n")
		for _, kv := range g.Colors.Order {
			bw.WriteString("!" + kv.Key + " = " + kv.Value + "\n")
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}
