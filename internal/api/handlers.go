// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"time"

	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/recommend"
)

// HandlerConfig holds request limits for the handlers.
type HandlerConfig struct {
	SearchDefaultLimit int
	SearchMaxLimit     int
	RequestTimeout     time.Duration
	Version            string
}

// DefaultHandlerConfig returns the limits used when none are configured.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		SearchDefaultLimit: catalog.DefaultSearchLimit,
		SearchMaxLimit:     100,
		RequestTimeout:     10 * time.Second,
		Version:            "dev",
	}
}

// Handler serves the JSON API. It holds no mutable state of its own; the
// engine and catalog behind it are read-only after startup.
type Handler struct {
	engine    *recommend.Engine
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates the API handler. Zero limits in cfg fall back to
// DefaultHandlerConfig.
func NewHandler(engine *recommend.Engine, cfg HandlerConfig) (*Handler, error) {
	if engine == nil {
		return nil, errNilEngine
	}
	def := DefaultHandlerConfig()
	if cfg.SearchDefaultLimit <= 0 {
		cfg.SearchDefaultLimit = def.SearchDefaultLimit
	}
	if cfg.SearchMaxLimit <= 0 {
		cfg.SearchMaxLimit = def.SearchMaxLimit
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = def.RequestTimeout
	}
	if cfg.Version == "" {
		cfg.Version = def.Version
	}
	return &Handler{
		engine:    engine,
		config:    cfg,
		startTime: time.Now(),
	}, nil
}

func (h *Handler) catalog() *catalog.Catalog {
	return h.engine.Catalog()
}
