// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package validation

// Query parameter shapes accepted by the HTTP API. These check presence and
// format only; the age and count ranges are configurable and enforced by the
// recommendation engine so its error text is the one clients see.

// RecommendationQuery is GET /api/v1/recommendations.
type RecommendationQuery struct {
	TrackID string `query:"track_id" validate:"required,trackid"`
	Age     int    `query:"age" validate:"required"`
	Count   int    `query:"count"`
}

// AgeQuery is GET /api/v1/recommendations/age.
type AgeQuery struct {
	Age   int `query:"age" validate:"required"`
	Count int `query:"count"`
}

// SearchQuery is GET /api/v1/songs/search.
type SearchQuery struct {
	Query string `query:"q" validate:"required,max=200"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// TrackQuery is GET /api/v1/songs/{trackID}.
type TrackQuery struct {
	TrackID string `query:"track_id" validate:"required,trackid"`
}
