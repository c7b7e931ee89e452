// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"time"

	"github.com/tomtom215/tunematch/internal/catalog"
)

// Request asks for songs similar to TrackID, biased toward the age group
// of Age. Count zero selects Config.Count.Default.
type Request struct {
	TrackID   string `json:"track_id"`
	Age       int    `json:"age"`
	Count     int    `json:"count"`
	RequestID string `json:"request_id,omitempty"`
}

// AgeRequest asks for an age group's picks without a seed song.
type AgeRequest struct {
	Age       int    `json:"age"`
	Count     int    `json:"count"`
	RequestID string `json:"request_id,omitempty"`
}

// ScoredSong is one ranked recommendation with its score breakdown.
type ScoredSong struct {
	Song catalog.Song `json:"song"`

	// Score is the combined ranking value.
	Score float64 `json:"score"`

	// Similarity is the raw cosine similarity to the query song.
	Similarity float64 `json:"similarity"`

	// AdjustedSimilarity is Similarity after the age-affinity adjustment.
	AdjustedSimilarity float64 `json:"adjusted_similarity"`

	// AgeAffinity is how well the song fits the age group, in [0, 1].
	AgeAffinity float64 `json:"age_affinity"`

	// PopularityScore is popularity scaled to [0, 1].
	PopularityScore float64 `json:"popularity_score"`
}

// Selection describes which filter produced age-group picks.
type Selection string

// Selection tiers, from most to least specific.
const (
	SelectionGenreAndMood Selection = "genre_and_mood"
	SelectionGenre        Selection = "genre"
	SelectionAll          Selection = "all"
)

// Result is the output of Rank and RankForAge.
type Result struct {
	Items []ScoredSong `json:"items"`

	// AgeGroup is the cohort the requester was classified into.
	AgeGroup AgeGroup `json:"age_group"`

	// Candidates is the number of songs considered.
	Candidates int `json:"candidates"`

	// Selection is set by RankForAge only.
	Selection Selection `json:"selection,omitempty"`
}

// Response wraps a Result with request metadata.
type Response struct {
	Result
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID string    `json:"request_id"`
	Mode      string    `json:"mode"`
	TrackID   string    `json:"track_id,omitempty"`
	Age       int       `json:"age"`
	Count     int       `json:"count"`
	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// Request modes reported in ResponseMetadata.
const (
	ModeSimilar  = "similar"
	ModeAgeGroup = "age_group"
)

// Metrics is a snapshot of engine counters.
type Metrics struct {
	RequestCount     int64   `json:"request_count"`
	ErrorCount       int64   `json:"error_count"`
	NotFoundCount    int64   `json:"not_found_count"`
	InvalidCount     int64   `json:"invalid_count"`
	AverageLatencyMS float64 `json:"average_latency_ms"`
}
