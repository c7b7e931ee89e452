// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package metrics

import (
	"errors"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/tunematch/internal/recommend"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total recommendation requests by mode and outcome",
		},
		[]string{"mode", "outcome"}, // outcome: success, invalid_input, not_found, error
	)

	RecommendationsByAgeGroup = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_age_group_total",
			Help: "Successful recommendation requests by listener age group",
		},
		[]string{"age_group"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent ranking the catalog for one request",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		},
		[]string{"mode"},
	)

	RecommendationItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_items",
			Help:    "Number of songs returned per recommendation",
			Buckets: []float64{0, 5, 10, 15, 20},
		},
	)

	// Search Metrics
	SearchRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of catalog searches",
		},
	)

	SearchEmptyResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_empty_results_total",
			Help: "Searches that matched no songs",
		},
	)

	// Catalog Metrics
	CatalogSongs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_songs",
			Help: "Number of songs in the loaded catalog",
		},
	)

	CatalogRowsSkipped = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_rows_skipped",
			Help: "Dataset rows skipped at load time (malformed or duplicate)",
		},
	)

	CatalogDegenerateFeatures = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_degenerate_features",
			Help: "Audio features with zero variance across the catalog",
		},
	)

	CatalogLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_load_duration_seconds",
			Help: "Time taken to load and normalize the catalog at startup",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// Outcome labels for RecommendationsTotal.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeNotFound     = "not_found"
	OutcomeError        = "error"
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records the outcome of one recommendation request.
// group is ignored unless err is nil.
func RecordRecommendation(mode string, group recommend.AgeGroup, items int, duration time.Duration, err error) {
	outcome := Outcome(err)
	RecommendationsTotal.WithLabelValues(mode, outcome).Inc()
	RecommendationDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if outcome == OutcomeSuccess {
		RecommendationsByAgeGroup.WithLabelValues(group.String()).Inc()
		RecommendationItems.Observe(float64(items))
	}
}

// Outcome classifies a recommendation error into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, recommend.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, recommend.ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}

// RecordSearch records a catalog search and whether it matched anything.
func RecordSearch(results int) {
	SearchRequestsTotal.Inc()
	if results == 0 {
		SearchEmptyResults.Inc()
	}
}

// RecordCatalogLoad publishes catalog gauges after startup.
func RecordCatalogLoad(songs, skipped, degenerate int, duration time.Duration) {
	CatalogSongs.Set(float64(songs))
	CatalogRowsSkipped.Set(float64(skipped))
	CatalogDegenerateFeatures.Set(float64(degenerate))
	CatalogLoadDuration.Set(duration.Seconds())
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
