// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/tunematch/internal/catalog"
)

var (
	// ErrInvalidInput marks requests rejected before any scoring happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is catalog.ErrNotFound, re-exported for callers that only
	// import this package.
	ErrNotFound = catalog.ErrNotFound
)

// InputError reports a request field outside its accepted range. The message
// is written so it can be shown to the user as-is.
type InputError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

// Is makes errors.Is(err, ErrInvalidInput) hold.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func checkRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return &InputError{Field: field, Value: value, Min: lo, Max: hi}
	}
	return nil
}
