// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tunematch/internal/catalog"
)

// Engine serves recommendations over a normalized catalog. All state it
// shares between requests is read-only apart from atomic counters, so it
// is safe for concurrent use without locks.
type Engine struct {
	nc     *NormalizedCatalog
	config *Config
	logger zerolog.Logger

	requestCount  atomic.Int64
	errorCount    atomic.Int64
	notFoundCount atomic.Int64
	invalidCount  atomic.Int64
	latencyMicros atomic.Int64
}

// NewEngine creates an engine. A nil cfg selects DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(nc *NormalizedCatalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if nc == nil {
		return nil, errors.New("normalized catalog is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		nc:     nc,
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend returns songs similar to req.TrackID for the requester's age group.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if req.RequestID == "" {
		req.RequestID = generateRequestID()
	}
	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Str("track_id", req.TrackID).
		Str("age_group", Classify(req.Age).String()).
		Logger()
	logger.Debug().Int("age", req.Age).Int("count", req.Count).Msg("processing recommendation request")

	result, err := rank(ctx, e.nc, e.config, req)
	if err != nil {
		e.recordError(err)
		logger.Debug().Err(err).Msg("recommendation rejected")
		return nil, err
	}

	resp := e.buildResponse(result, ResponseMetadata{
		RequestID: req.RequestID,
		Mode:      ModeSimilar,
		TrackID:   req.TrackID,
		Age:       req.Age,
		Count:     len(result.Items),
	}, start)

	logger.Debug().
		Int("candidates", result.Candidates).
		Int("returned", len(result.Items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")
	return resp, nil
}

// RecommendForAge returns the age group's most popular fitting songs.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) RecommendForAge(ctx context.Context, req AgeRequest) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if req.RequestID == "" {
		req.RequestID = generateRequestID()
	}
	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Str("age_group", Classify(req.Age).String()).
		Logger()

	result, err := rankForAge(ctx, e.nc, e.config, req)
	if err != nil {
		e.recordError(err)
		logger.Debug().Err(err).Msg("age-group request rejected")
		return nil, err
	}

	resp := e.buildResponse(result, ResponseMetadata{
		RequestID: req.RequestID,
		Mode:      ModeAgeGroup,
		Age:       req.Age,
		Count:     len(result.Items),
	}, start)

	logger.Debug().
		Str("selection", string(result.Selection)).
		Int("candidates", result.Candidates).
		Int("returned", len(result.Items)).
		Msg("age-group picks complete")
	return resp, nil
}

//nolint:gocritic // hugeParam: metadata is small and built per request
func (e *Engine) buildResponse(result *Result, meta ResponseMetadata, start time.Time) *Response {
	elapsed := time.Since(start)
	e.latencyMicros.Add(elapsed.Microseconds())
	meta.LatencyMS = elapsed.Milliseconds()
	meta.Timestamp = time.Now()
	return &Response{Result: *result, Metadata: meta}
}

func (e *Engine) recordError(err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		e.invalidCount.Add(1)
	case errors.Is(err, catalog.ErrNotFound):
		e.notFoundCount.Add(1)
	default:
		e.errorCount.Add(1)
	}
}

// Normalized returns the catalog the engine ranks over.
func (e *Engine) Normalized() *NormalizedCatalog {
	return e.nc
}

// Catalog returns the underlying song catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.nc.Catalog()
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// GetMetrics returns a snapshot of the engine counters.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount:  e.requestCount.Load(),
		ErrorCount:    e.errorCount.Load(),
		NotFoundCount: e.notFoundCount.Load(),
		InvalidCount:  e.invalidCount.Load(),
	}
	served := m.RequestCount - m.ErrorCount - m.NotFoundCount - m.InvalidCount
	if served > 0 {
		m.AverageLatencyMS = float64(e.latencyMicros.Load()) / float64(served) / 1000
	}
	return m
}

func generateRequestID() string {
	return uuid.New().String()
}
