// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Loader names accepted by Load.
const (
	LoaderCSV    = "csv"
	LoaderDuckDB = "duckdb"
)

// Load reads the dataset with the named loader and builds the catalog.
// Malformed rows and duplicate IDs are logged and dropped; a missing file
// or column returns a *DataLoadError.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Load(ctx context.Context, path, loader string, logger zerolog.Logger) (*Catalog, error) {
	start := time.Now()
	logger = logger.With().Str("component", "catalog").Str("path", path).Logger()

	var (
		songs  []Song
		report LoadReport
		err    error
	)
	switch strings.ToLower(loader) {
	case "", LoaderCSV:
		songs, report, err = LoadCSV(path)
	case LoaderDuckDB:
		songs, report, err = LoadDuckDB(ctx, path)
	default:
		return nil, &DataLoadError{Path: path, Err: fmt.Errorf("unknown loader %q", loader)}
	}
	if err != nil {
		return nil, err
	}

	if report.Skipped > 0 {
		logger.Warn().
			Int("skipped", report.Skipped).
			Strs("examples", report.FirstErrors).
			Msg("Skipped malformed dataset rows")
	}

	cat := New(songs)
	cat.malformed = report.Skipped
	if cat.Duplicates() > 0 {
		logger.Info().Int("duplicates", cat.Duplicates()).Msg("Dropped repeated track IDs")
	}

	logger.Info().
		Str("loader", loader).
		Int("rows", report.Rows).
		Int("songs", cat.Len()).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")
	return cat, nil
}
