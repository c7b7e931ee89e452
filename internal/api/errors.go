// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/tunematch/internal/recommend"
	"github.com/tomtom215/tunematch/internal/validation"
)

// Error codes for API responses
const (
	ErrCodeValidation         = validation.ErrorCode
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	ErrCodeTimeout            = "TIMEOUT"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// errNilEngine is returned by NewHandler without an engine.
var errNilEngine = errors.New("recommendation engine is required")

// respondRecommendError maps engine errors onto HTTP responses. Input
// errors carry the engine's corrective message verbatim.
func respondRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	var inputErr *recommend.InputError
	switch {
	case errors.As(err, &inputErr):
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, inputErr.Error(), map[string]interface{}{
			"field": inputErr.Field,
			"value": inputErr.Value,
			"min":   inputErr.Min,
			"max":   inputErr.Max,
		})
	case errors.Is(err, recommend.ErrInvalidInput):
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
	case errors.Is(err, recommend.ErrNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, notFoundMessage(r), nil)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, ErrCodeTimeout, "Recommendation timed out", nil)
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to send
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Request canceled", nil)
	default:
		respondInternalError(w, r, err)
	}
}

func notFoundMessage(r *http.Request) string {
	if id := r.URL.Query().Get("track_id"); id != "" {
		return fmt.Sprintf("Track %q not found in catalog", id)
	}
	return "Track not found in catalog"
}
