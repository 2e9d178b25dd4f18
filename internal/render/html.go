// SPDX-License-Identifier: MIT
package render

import (
	"html/template"
	"io"

	"github.com/thatcatcamp/huewheel/internal/colors"
	"github.com/thatcatcamp/huewheel/internal/palette"
)

var swatchTemplate = template.Must(template.New("swatch").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 24px; }
    table { border-collapse: collapse; margin-bottom: 24px; }
    td { width: 120px; height: 64px; padding: 8px; vertical-align: bottom; font-size: 12px; }
    h2 { font-size: 16px; margin: 0 0 8px; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
{{- range .Groups}}
  <h2>{{.Name}}</h2>
  <table class="swatch" id="group-{{.Name}}">
    <tr>
{{- range .Cells}}
      <td style="background-color: {{.Hex}}; color: {{.Text}}" title="{{.Key}}">{{.Key}}<br>{{.Hex}}</td>
{{- end}}
    </tr>
  </table>
{{- end}}
</body>
</html>
`))

type swatchCell struct {
	Key  string
	Hex  string
	Text string
}

type swatchGroup struct {
	Name  string
	Cells []swatchCell
}

type swatchPage struct {
	Title  string
	Groups []swatchGroup
}

// WriteHTML writes a standalone swatch page with one row per group
func WriteHTML(w io.Writer, p *palette.Palette) error {
	page := swatchPage{Title: p.Title()}
	for _, g := range p.Groups() {
		sg := swatchGroup{Name: g.Name}
		for _, kv := range g.Colors.Order {
			text := "#000000"
			if c, err := colors.FromHex(kv.Value); err == nil {
				text = c.Contrast().Hex()
			}
			sg.Cells = append(sg.Cells, swatchCell{Key: kv.Key, Hex: kv.Value, Text: text})
		}
		page.Groups = append(page.Groups, sg)
	}
	return swatchTemplate.Execute(w, page)
}
