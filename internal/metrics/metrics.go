// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PalettesGenerated counts palettes built by scheme and output format
	PalettesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "huewheel_palettes_generated_total",
		Help: "Total palettes generated by scheme and format",
	}, []string{"scheme", "format"})

	// Errors counts request errors by type
	Errors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "huewheel_errors_total",
		Help: "Total errors by type",
	}, []string{"type"})

	// RateLimited counts requests rejected by the rate limiter
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "huewheel_rate_limited_total",
		Help: "Total requests rejected by the rate limiter",
	})

	// LibraryPalettes tracks the number of palettes in the saved library
	LibraryPalettes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "huewheel_library_palettes",
		Help: "Current number of saved palettes",
	})

	// RequestDuration tracks HTTP request duration by route
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "huewheel_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"route"})
)
