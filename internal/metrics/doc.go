// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package metrics provides Prometheus metrics for the recommendation service.

Metrics are registered on the default registry with promauto and exposed at
/metrics by promhttp:

	curl http://localhost:8501/metrics

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendations:
  - recommendations_total{mode, outcome}
  - recommendations_age_group_total{age_group}
  - recommendation_duration_seconds{mode}
  - recommendation_items

Search:
  - search_requests_total
  - search_empty_results_total

Catalog (set once at startup):
  - catalog_songs
  - catalog_rows_skipped
  - catalog_degenerate_features
  - catalog_load_duration_seconds

The endpoint label is the chi route pattern, not the raw path, so track IDs
never become label values.
*/
package metrics
