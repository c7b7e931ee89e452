// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package models defines the JSON shapes served by the HTTP API.

Every endpoint wraps its payload in APIResponse. Payload types are plain
views with json tags; the api package builds them from catalog and
recommend values so those packages stay free of transport concerns.

Song durations are rendered as "m:ss" alongside the raw millisecond value.
*/
package models
