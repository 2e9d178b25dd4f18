// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/huewheel/internal/library"
	"github.com/thatcatcamp/huewheel/internal/metrics"
	"github.com/thatcatcamp/huewheel/internal/models"
	"github.com/thatcatcamp/huewheel/internal/palette"
	"github.com/thatcatcamp/huewheel/internal/render"
	"go.uber.org/zap"
)

var errNoLibrary = errors.New("library database not configured")

// SaveRequest is the body of POST /api/library
type SaveRequest struct {
	Name   string `json:"name" binding:"required"`
	Color  string `json:"color" binding:"required"`
	Scheme string `json:"scheme"`
}

// SavedResponse describes one library palette
type SavedResponse struct {
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Hex       string    `json:"hex"`
	Scheme    string    `json:"scheme"`
	Entries   int       `json:"entries,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newSavedResponse(s *models.SavedPalette) SavedResponse {
	return SavedResponse{
		Name:      s.Name,
		Color:     s.BaseColor,
		Hex:       s.BaseHex,
		Scheme:    s.Scheme,
		Entries:   len(s.Entries),
		CreatedAt: s.CreatedAt,
	}
}

func (h *Handler) requireLibrary(c *gin.Context) bool {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNoLibrary.Error()})
		return false
	}
	return true
}

// refreshLibraryGauge updates the saved palette gauge after a change
func (h *Handler) refreshLibraryGauge() {
	count, err := library.Count(h.db)
	if err != nil {
		h.logger.Warn("failed to count library palettes", zap.Error(err))
		return
	}
	metrics.LibraryPalettes.Set(float64(count))
}

// ListLibrary returns all saved palettes ordered by name
func (h *Handler) ListLibrary(c *gin.Context) {
	if !h.requireLibrary(c) {
		return
	}
	saved, err := library.List(h.db)
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]SavedResponse, 0, len(saved))
	for i := range saved {
		out = append(out, newSavedResponse(&saved[i]))
	}
	c.JSON(http.StatusOK, out)
}

// SavePalette generates and stores a palette under a name
func (h *Handler) SavePalette(c *gin.Context) {
	if !h.requireLibrary(c) {
		return
	}

	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and color are required"})
		return
	}
	if strings.TrimSpace(req.Scheme) == "" {
		req.Scheme = configOr("palette.default_scheme", defaultScheme)
	}

	p, err := palette.Generate(req.Color, req.Scheme)
	if err != nil {
		h.fail(c, err)
		return
	}

	saved, err := library.Save(h.db, req.Name, p)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Info("palette saved",
		zap.String("name", saved.Name),
		zap.String("color", saved.BaseColor),
		zap.String("scheme", saved.Scheme))
	h.refreshLibraryGauge()

	c.JSON(http.StatusCreated, newSavedResponse(saved))
}

// GetSaved renders a saved palette; ?format= defaults to json
func (h *Handler) GetSaved(c *gin.Context) {
	if !h.requireLibrary(c) {
		return
	}

	format := render.JSON
	if f := c.Query("format"); f != "" {
		var err error
		if format, err = render.ParseFormat(f); err != nil {
			h.fail(c, err)
			return
		}
	}

	p, err := library.Load(h.db, c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.writePalette(c, p, format)
}

// DeleteSaved removes a saved palette
func (h *Handler) DeleteSaved(c *gin.Context) {
	if !h.requireLibrary(c) {
		return
	}

	name := c.Param("name")
	if err := library.Delete(h.db, name); err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Info("palette deleted", zap.String("name", name))
	h.refreshLibraryGauge()

	c.Status(http.StatusNoContent)
}
