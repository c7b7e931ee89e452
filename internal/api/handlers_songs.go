// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/metrics"
	"github.com/tomtom215/tunematch/internal/models"
	"github.com/tomtom215/tunematch/internal/validation"
)

// SearchSongs handles GET /api/v1/songs/search?q=&limit=
//
// Matches q case-insensitively against titles and artists, most popular
// first. limit defaults to the configured search default and is capped at
// the configured maximum.
func (h *Handler) SearchSongs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := parseIntQuery(r, "limit")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), map[string]interface{}{"field": "limit"})
		return
	}

	req := validation.SearchQuery{
		Query: strings.TrimSpace(r.URL.Query().Get("q")),
		Limit: limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	if req.Limit == 0 {
		req.Limit = h.config.SearchDefaultLimit
	}
	if req.Limit > h.config.SearchMaxLimit {
		req.Limit = h.config.SearchMaxLimit
	}

	songs := h.catalog().Search(req.Query, req.Limit)
	metrics.RecordSearch(len(songs))

	setCacheable(w)
	respondSuccess(w, r, models.SearchResponse{
		Query:   req.Query,
		Limit:   req.Limit,
		Total:   len(songs),
		Results: newSongViews(songs),
	}, start)
}

// GetSong handles GET /api/v1/songs/{trackID}
func (h *Handler) GetSong(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := validation.TrackQuery{TrackID: chi.URLParam(r, "trackID")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	song, err := h.catalog().Lookup(req.TrackID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, ErrCodeNotFound,
				fmt.Sprintf("Track %q not found in catalog", req.TrackID), nil)
			return
		}
		respondInternalError(w, r, err)
		return
	}

	setCacheable(w)
	respondSuccess(w, r, newSongView(song), start)
}
