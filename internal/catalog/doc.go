// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package catalog holds the song dataset in memory.
//
// The catalog is loaded once at startup, either with encoding/csv or through
// an in-memory DuckDB read_csv scan, and is read-only afterwards. It offers
// lookup by track ID, case-insensitive search over titles and artists, and
// dataset statistics.
//
// Loading fails with a *DataLoadError when the file is missing or a required
// column is absent. Individual malformed rows are skipped and counted.
package catalog
