// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/huewheel/internal/colors"
	"github.com/thatcatcamp/huewheel/internal/metrics"
	"github.com/thatcatcamp/huewheel/internal/palette"
	"github.com/thatcatcamp/huewheel/internal/render"
	"github.com/thatcatcamp/huewheel/internal/schemes"
)

type offsetResponse struct {
	Name  string `json:"name"`
	Steps int    `json:"steps"`
}

type schemeResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Offsets     []offsetResponse `json:"offsets"`
}

// ListSchemes returns the scheme table in order
func (h *Handler) ListSchemes(c *gin.Context) {
	defs := schemes.List()
	out := make([]schemeResponse, 0, len(defs))
	for _, d := range defs {
		sr := schemeResponse{ID: d.ID, Description: d.Description, Offsets: []offsetResponse{}}
		for _, o := range d.Offsets {
			sr.Offsets = append(sr.Offsets, offsetResponse{Name: o.Name, Steps: o.Steps})
		}
		out = append(out, sr)
	}
	c.JSON(http.StatusOK, out)
}

// ListColors returns the known color names, sorted
func (h *Handler) ListColors(c *gin.Context) {
	c.JSON(http.StatusOK, colors.Names())
}

// GetPalette renders the palette for ?color=&scheme=&format=. Missing
// parameters fall back to the configured defaults.
func (h *Handler) GetPalette(c *gin.Context) {
	color := queryOrConfig(c, "color", "palette.default_color", defaultColor)
	scheme := queryOrConfig(c, "scheme", "palette.default_scheme", defaultScheme)

	format, err := render.ParseFormat(queryOrConfig(c, "format", "output.format", string(render.Sass)))
	if err != nil {
		h.fail(c, err)
		return
	}

	p, err := palette.Generate(color, scheme)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.writePalette(c, p, format)
}

// writePalette renders p in full before writing so a render error never
// leaves a partial body
func (h *Handler) writePalette(c *gin.Context, p *palette.Palette, format render.Format) {
	var buf bytes.Buffer
	if err := render.Render(&buf, p, format); err != nil {
		h.fail(c, err)
		return
	}
	metrics.PalettesGenerated.WithLabelValues(p.Scheme, string(format)).Inc()
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
