// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once and reused; it caches struct
// metadata, so concurrent handlers share it safely. Field names in error
// messages come from the `query` struct tag, so a missing track reports
// "track_id is required" rather than the Go field name.
//
// # Custom Tags
//
//   - trackid: catalog.ValidID, 1 to 64 ASCII letters, digits, '-' or '_'
//
// # Usage
//
//	q := validation.RecommendationQuery{TrackID: id, Age: age}
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Range checks for age and count are left to the recommend package, whose
// bounds come from configuration.
package validation
