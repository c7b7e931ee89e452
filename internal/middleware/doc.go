// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package middleware provides HTTP middleware components for the API.

Key Components:

  - RequestID: UUID-based request tracking, propagated to the logging
    context as request_id and correlation_id
  - PrometheusMetrics: request count, latency and in-flight instrumentation

Both are written as http.HandlerFunc decorators; the api package adapts them
to chi's func(http.Handler) http.Handler form.

Usage Example:

	handler := middleware.RequestID(
	    middleware.PrometheusMetrics(recommendHandler),
	)

An X-Request-ID header sent by a client or proxy is reused when it is at
most 128 bytes; otherwise a new UUID v4 is generated. The ID is echoed in
the response header and in every JSON response's metadata.
*/
package middleware
