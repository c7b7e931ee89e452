// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package api provides the HTTP interface for Tunematch.

Routing uses chi. Every JSON response is wrapped in models.APIResponse and
encoded with goccy/go-json.

# Endpoints

Health (rate limited at 1000/min):
  - GET /api/v1/health/live: process is serving
  - GET /api/v1/health/ready: 503 until the catalog holds songs

Catalog and recommendations (configurable rate limit, gzip, Prometheus):
  - GET /api/v1/songs/search?q=&limit=
  - GET /api/v1/songs/{trackID}
  - GET /api/v1/recommendations?track_id=&age=&count=
  - GET /api/v1/recommendations/age?age=&count=
  - GET /api/v1/age-groups
  - GET /api/v1/catalog/stats

Metrics:
  - GET /metrics: Prometheus exposition

# Errors

	400 VALIDATION_ERROR     missing or malformed parameter, age or count out of range
	404 NOT_FOUND            unknown track ID or route
	405 METHOD_NOT_ALLOWED   anything but GET on a known route
	429 RATE_LIMIT_EXCEEDED  per-IP limit hit
	504 TIMEOUT              ranking exceeded the request timeout
	503 SERVICE_UNAVAILABLE  the client canceled the request
	500 INTERNAL_ERROR       unexpected failure; details are logged, not returned

Range errors carry the engine's corrective message, for example
"age must be between 13 and 100, got 7", with field, value, min and max in
error.details.

# Middleware Order

Request ID, request logging, RealIP, Recoverer and CORS run on every route.
Route groups then add rate limiting, security headers, Prometheus
instrumentation and compression.
*/
package api
