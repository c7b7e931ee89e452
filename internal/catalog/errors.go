// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a track ID is not in the catalog.
	ErrNotFound = errors.New("song not found")

	// ErrDataLoad marks every dataset loading failure.
	ErrDataLoad = errors.New("dataset load failed")
)

// DataLoadError describes why the dataset could not be loaded. Callers treat
// it as fatal; the process never runs with a partial catalog.
type DataLoadError struct {
	Path   string
	Column string
	Err    error
}

func (e *DataLoadError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("load dataset %q: missing required column %q", e.Path, e.Column)
	case e.Err != nil:
		return fmt.Sprintf("load dataset %q: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("load dataset %q", e.Path)
	}
}

// Unwrap exposes the underlying cause.
func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDataLoad) hold for every DataLoadError.
func (e *DataLoadError) Is(target error) bool {
	return target == ErrDataLoad
}
