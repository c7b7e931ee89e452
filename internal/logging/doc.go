// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package logging provides the zerolog-based structured logger shared by every
// Tunematch component.
//
// JSON output is the default and is what production deployments should use;
// the console format is meant for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("songs", cat.Len()).Msg("Catalog loaded")
//	logging.Error().Err(err).Msg("Recommendation failed")
//
// Components derive child loggers instead of logging through the globals:
//
//	logger := logging.WithComponent("recommend")
//
// # Request Context
//
// The HTTP layer stores request and correlation IDs in the request context;
// Ctx returns a logger that carries both:
//
//	logging.Ctx(r.Context()).Warn().Str("track_id", id).Msg("Unknown track")
//
// # slog Bridge
//
// SlogHandler adapts zerolog to log/slog so the suture supervisor (through
// sutureslog) reports restarts and failures into the same stream.
//
// Always terminate chains with Msg or Send; an unterminated event is dropped.
package logging
