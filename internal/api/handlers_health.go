// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/tunematch/internal/models"
)

// HealthLive handles liveness probe requests. It only reports that the
// process is serving HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthResponse{
			Status:        "alive",
			Version:       h.config.Version,
			CatalogLoaded: h.catalog().Len() > 0,
			CatalogSongs:  h.catalog().Len(),
			Uptime:        time.Since(h.startTime).Seconds(),
		},
		Metadata: newMetadata(r, time.Time{}),
	})
}

// HealthReady handles readiness probe requests. It returns 503 until the
// catalog holds at least one song, since no recommendation can be served
// from an empty catalog.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	songs := h.catalog().Len()
	ready := songs > 0

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: models.HealthResponse{
			Status:        status,
			Version:       h.config.Version,
			CatalogLoaded: ready,
			CatalogSongs:  songs,
			Uptime:        time.Since(h.startTime).Seconds(),
		},
		Metadata: newMetadata(r, time.Time{}),
	})
}
