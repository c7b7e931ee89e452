// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package main is the entry point for the Tunematch server.

Tunematch recommends songs from a static audio-feature dataset. Given a seed
track and a listener's age it returns similar songs, nudged toward what the
listener's age group tends to enjoy. It also serves age-group picks without a
seed, title/artist search, and catalog statistics.

# Startup

 1. Configuration: koanf v2 layers (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Catalog: the dataset is read once (csv or duckdb loader), duplicate IDs
    and malformed rows are dropped and counted
 4. Normalization: audio features are z-scored; constant columns are zeroed
    and logged
 5. HTTP: chi router under a suture supervisor tree

A dataset that cannot be read stops the process before the server listens.

# Configuration

Common environment variables:

	HTTP_PORT=8501
	CATALOG_PATH=cleaned_genres_data.csv
	CATALOG_LOADER=csv            # or duckdb
	LOG_LEVEL=info
	LOG_FORMAT=json               # or console
	DISABLE_RATE_LIMIT=false

See internal/config for the full list.

# Example

	CATALOG_PATH=./data/songs.csv LOG_FORMAT=console ./tunematch
	curl 'http://localhost:8501/api/v1/recommendations?track_id=5SuOikwiRyPMVoIQDJUgSV&age=24&count=5'

# Signals

SIGINT and SIGTERM cancel the supervisor tree. In-flight requests get
SHUTDOWN_TIMEOUT to finish.
*/
package main
