// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"net/http"
	"time"
)

// CatalogStats handles GET /api/v1/catalog/stats
//
// Reports dataset size, genre counts, load-time drops and per-feature
// normalization statistics including any degenerate features.
func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	setCacheable(w)
	respondSuccess(w, r, newCatalogStats(h.engine.Normalized()), start)
}
