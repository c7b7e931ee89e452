// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/logging"
	"github.com/tomtom215/tunematch/internal/metrics"
	"github.com/tomtom215/tunematch/internal/middleware"
	"github.com/tomtom215/tunematch/internal/models"
	"github.com/tomtom215/tunematch/internal/recommend"
	"github.com/tomtom215/tunematch/internal/validation"
)

// Recommendations handles GET /api/v1/recommendations?track_id=&age=&count=
//
// Returns songs similar to track_id, biased toward the listener's age
// group. count is optional (default 10); age and count ranges are enforced
// by the engine and reported as VALIDATION_ERROR with a corrective message.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ints, err := parseIntQueries(r, "age", "count")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	q := validation.RecommendationQuery{
		TrackID: strings.TrimSpace(r.URL.Query().Get("track_id")),
		Age:     ints[0],
		Count:   ints[1],
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		TrackID:   q.TrackID,
		Age:       q.Age,
		Count:     q.Count,
		RequestID: middleware.GetRequestID(r.Context()),
	})
	h.record(r, recommend.ModeSimilar, q.Age, resp, start, err)
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}

	var seed *catalog.Song
	if s, lookupErr := h.catalog().Lookup(q.TrackID); lookupErr == nil {
		seed = &s
	}

	setCacheable(w)
	respondSuccess(w, r, newRecommendationsResponse(resp, seed), start)
}

// AgeRecommendations handles GET /api/v1/recommendations/age?age=&count=
//
// Returns the most popular songs that fit the listener's age group, with
// no seed song.
func (h *Handler) AgeRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ints, err := parseIntQueries(r, "age", "count")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	q := validation.AgeQuery{Age: ints[0], Count: ints[1]}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	resp, err := h.engine.RecommendForAge(ctx, recommend.AgeRequest{
		Age:       q.Age,
		Count:     q.Count,
		RequestID: middleware.GetRequestID(r.Context()),
	})
	h.record(r, recommend.ModeAgeGroup, q.Age, resp, start, err)
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}

	setCacheable(w)
	respondSuccess(w, r, newRecommendationsResponse(resp, nil), start)
}

// AgeGroups handles GET /api/v1/age-groups
func (h *Handler) AgeGroups(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	profiles := recommend.Profiles()
	views := make([]models.AgeGroupView, len(profiles))
	for i := range profiles {
		views[i] = newAgeGroupView(&profiles[i])
	}

	setCacheable(w)
	respondSuccess(w, r, views, start)
}

func (h *Handler) record(r *http.Request, mode string, age int, resp *recommend.Response, start time.Time, err error) {
	items := 0
	if resp != nil {
		items = len(resp.Items)
	}
	group := recommend.Classify(age)
	metrics.RecordRecommendation(mode, group, items, time.Since(start), err)

	event := logging.Ctx(r.Context()).Info()
	if err != nil {
		event = logging.Ctx(r.Context()).Debug().Err(err)
	}
	event.
		Str("mode", mode).
		Str("age_group", group.String()).
		Int("items", items).
		Dur("duration", time.Since(start)).
		Msg("Recommendation request")
}
