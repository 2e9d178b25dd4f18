// SPDX-License-Identifier: MIT

// Package handlers serves the palette HTTP API.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/huewheel/internal/colors"
	"github.com/thatcatcamp/huewheel/internal/config"
	"github.com/thatcatcamp/huewheel/internal/library"
	"github.com/thatcatcamp/huewheel/internal/metrics"
	"github.com/thatcatcamp/huewheel/internal/render"
	"github.com/thatcatcamp/huewheel/internal/schemes"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Fallbacks used when the config has no value
const (
	defaultColor  = "steelblue"
	defaultScheme = "basic"
)

// Handler provides HTTP handlers for the palette API
type Handler struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewHandler creates a Handler. db may be nil, in which case the library
// endpoints answer 503.
func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{db: db, logger: logger}
}

// RegisterRoutes registers the API routes on r
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.GET("/schemes", h.ListSchemes)
	api.GET("/colors", h.ListColors)
	api.GET("/palette", h.GetPalette)

	api.GET("/library", h.ListLibrary)
	api.POST("/library", h.SavePalette)
	api.GET("/library/:name", h.GetSaved)
	api.DELETE("/library/:name", h.DeleteSaved)
}

// Health reports liveness and whether the library database answers
func (h *Handler) Health(c *gin.Context) {
	status := gin.H{"status": "ok"}
	if h.db != nil {
		if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status["database"] = "unavailable"
		} else {
			status["database"] = "ok"
		}
	}
	c.JSON(http.StatusOK, status)
}

// errorStatus maps domain errors to an HTTP status and a metrics label
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, colors.ErrUnknownColorName):
		return http.StatusBadRequest, "unknown_color"
	case errors.Is(err, colors.ErrInvalidHex):
		return http.StatusBadRequest, "invalid_hex"
	case errors.Is(err, schemes.ErrUnknownScheme):
		return http.StatusBadRequest, "unknown_scheme"
	case errors.Is(err, render.ErrUnknownFormat):
		return http.StatusBadRequest, "unknown_format"
	case errors.Is(err, library.ErrInvalidName):
		return http.StatusBadRequest, "invalid_name"
	case errors.Is(err, library.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, library.ErrExists):
		return http.StatusConflict, "exists"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// fail writes err as {"error": ...}. Internal errors are logged and hidden.
func (h *Handler) fail(c *gin.Context, err error) {
	status, kind := errorStatus(err)
	metrics.Errors.WithLabelValues(kind).Inc()

	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		msg = "internal error"
	}
	c.JSON(status, gin.H{"error": msg})
}

// queryOrConfig returns the query parameter, else the config value, else fallback
func queryOrConfig(c *gin.Context, param, key, fallback string) string {
	if v := strings.TrimSpace(c.Query(param)); v != "" {
		return v
	}
	return configOr(key, fallback)
}

func configOr(key, fallback string) string {
	if v := config.GetString(key); v != "" {
		return v
	}
	return fallback
}
