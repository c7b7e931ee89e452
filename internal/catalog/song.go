// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"fmt"
	"regexp"
	"time"
)

// MaxIDLength bounds track IDs.
const MaxIDLength = 64

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidID reports whether id is a usable track ID: 1 to MaxIDLength ASCII
// letters, digits, '-' or '_'. Loading and request validation share it so
// every loaded song is addressable through the API.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// FeatureCount is the number of numeric audio features carried by every song.
const FeatureCount = 9

// FeatureNames lists the audio features in vector order.
var FeatureNames = [FeatureCount]string{
	"danceability",
	"energy",
	"loudness",
	"speechiness",
	"acousticness",
	"instrumentalness",
	"liveness",
	"valence",
	"tempo",
}

// AudioFeatures holds the raw descriptors of a track as they appear in the
// dataset. Loudness is in dB (usually negative), tempo in BPM, the rest in [0,1].
type AudioFeatures struct {
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

// Vector returns the features in FeatureNames order.
func (f AudioFeatures) Vector() [FeatureCount]float64 {
	return [FeatureCount]float64{
		f.Danceability,
		f.Energy,
		f.Loudness,
		f.Speechiness,
		f.Acousticness,
		f.Instrumentalness,
		f.Liveness,
		f.Valence,
		f.Tempo,
	}
}

// Song is a single catalog entry. Songs are values and are never modified
// once the catalog is built.
type Song struct {
	ID         string        `json:"id"`
	Artists    string        `json:"artists"`
	Album      string        `json:"album"`
	Title      string        `json:"title"`
	Popularity int           `json:"popularity"`
	DurationMS int64         `json:"duration_ms"`
	Explicit   bool          `json:"explicit"`
	Features   AudioFeatures `json:"features"`
	Genre      string        `json:"genre"`
}

// Duration returns the track length.
func (s Song) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

// DurationLabel formats the track length as m:ss.
func (s Song) DurationLabel() string {
	if s.DurationMS <= 0 {
		return "0:00"
	}
	totalSeconds := s.DurationMS / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
