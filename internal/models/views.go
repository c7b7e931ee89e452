// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package models

// AudioFeaturesView lists a song's audio features by name.
type AudioFeaturesView struct {
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Loudness         float64 `json:"loudness"`
	Speechiness      float64 `json:"speechiness"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Valence          float64 `json:"valence"`
	Tempo            float64 `json:"tempo"`
}

// SongView is a song as shown to listeners. Duration is "m:ss".
type SongView struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Artists    string            `json:"artists"`
	Album      string            `json:"album"`
	Genre      string            `json:"genre"`
	Duration   string            `json:"duration"`
	DurationMS int64             `json:"duration_ms"`
	Popularity int               `json:"popularity"`
	Explicit   bool              `json:"explicit"`
	Features   AudioFeaturesView `json:"features"`
}

// RecommendationItem is one ranked song with its score breakdown.
type RecommendationItem struct {
	Rank int `json:"rank"`
	SongView
	Score              float64 `json:"score"`
	Similarity         float64 `json:"similarity"`
	AdjustedSimilarity float64 `json:"adjusted_similarity"`
	AgeAffinity        float64 `json:"age_affinity"`
	PopularityScore    float64 `json:"popularity_score"`
}

// RecommendationsResponse is the data payload of both recommendation endpoints.
type RecommendationsResponse struct {
	Mode       string               `json:"mode"`
	TrackID    string               `json:"track_id,omitempty"`
	Seed       *SongView            `json:"seed,omitempty"`
	Age        int                  `json:"age"`
	AgeGroup   string               `json:"age_group"`
	Count      int                  `json:"count"`
	Candidates int                  `json:"candidates"`
	Selection  string               `json:"selection,omitempty"`
	Items      []RecommendationItem `json:"items"`
}

// SearchResponse is the data payload of song search.
type SearchResponse struct {
	Query   string     `json:"query"`
	Limit   int        `json:"limit"`
	Total   int        `json:"total"`
	Results []SongView `json:"results"`
}

// AgeGroupView describes one listener cohort and its preferences.
type AgeGroupView struct {
	Group           string   `json:"group"`
	Name            string   `json:"name"`
	AgeRange        string   `json:"age_range"`
	Description     string   `json:"description"`
	Genres          []string `json:"genres"`
	MinDanceability float64  `json:"min_danceability"`
	MinEnergy       float64  `json:"min_energy"`
	MinValence      float64  `json:"min_valence"`
}

// FeatureStatsView is the mean and population standard deviation of one feature.
type FeatureStatsView struct {
	Feature    string  `json:"feature"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Degenerate bool    `json:"degenerate"`
}

// CatalogStatsResponse summarizes the loaded dataset.
type CatalogStatsResponse struct {
	TotalSongs         int                `json:"total_songs"`
	Genres             int                `json:"genres"`
	AveragePopularity  float64            `json:"average_popularity"`
	DuplicatesDropped  int                `json:"duplicates_dropped"`
	MalformedRows      int                `json:"malformed_rows"`
	GenreCounts        map[string]int     `json:"genre_counts"`
	DegenerateFeatures []string           `json:"degenerate_features"`
	Features           []FeatureStatsView `json:"features"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version,omitempty"`
	CatalogLoaded bool    `json:"catalog_loaded"`
	CatalogSongs  int     `json:"catalog_songs"`
	Uptime        float64 `json:"uptime_seconds"`
}
