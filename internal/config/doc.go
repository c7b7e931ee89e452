// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package config loads Tunematch configuration with koanf.
//
// Sources are layered, later ones winning:
//
//  1. built-in defaults (port 8501, dataset cleaned_genres_data.csv)
//  2. an optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
//     /etc/tunematch/config.yaml or /etc/tunematch/config.yml
//  3. environment variables
//
// Example config.yaml:
//
//	server:
//	  port: 8501
//	catalog:
//	  path: /data/cleaned_genres_data.csv
//	  loader: duckdb
//	recommend:
//	  default_count: 10
//	  max_age_adjustment: 0.15
//	logging:
//	  level: debug
//	  format: console
//
// Environment variables:
//
//	HTTP_PORT, HTTP_HOST, SERVER_TIMEOUT, SHUTDOWN_TIMEOUT, ENVIRONMENT
//	CATALOG_PATH, CATALOG_LOADER
//	RECOMMEND_MIN_AGE, RECOMMEND_MAX_AGE, RECOMMEND_MIN_COUNT,
//	RECOMMEND_MAX_COUNT, RECOMMEND_DEFAULT_COUNT,
//	RECOMMEND_MAX_AGE_ADJUSTMENT, RECOMMEND_REQUEST_TIMEOUT
//	SEARCH_DEFAULT_LIMIT, SEARCH_MAX_LIMIT
//	CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS,
//	RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
//	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//
// Load validates the result; main treats any error as fatal.
package config
