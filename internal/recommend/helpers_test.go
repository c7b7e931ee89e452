// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tunematch/internal/catalog"
)

// features builds AudioFeatures from the nine values in vector order.
func features(v ...float64) catalog.AudioFeatures {
	if len(v) != catalog.FeatureCount {
		panic(fmt.Sprintf("features: want %d values, got %d", catalog.FeatureCount, len(v)))
	}
	return catalog.AudioFeatures{
		Danceability: v[0], Energy: v[1], Loudness: v[2], Speechiness: v[3],
		Acousticness: v[4], Instrumentalness: v[5], Liveness: v[6], Valence: v[7], Tempo: v[8],
	}
}

func song(id string, popularity int, genre string, f catalog.AudioFeatures) catalog.Song {
	return catalog.Song{ID: id, Title: "Song " + id, Artists: "Artist " + id, Popularity: popularity, Genre: genre, Features: f}
}

func normalized(t *testing.T, songs ...catalog.Song) *NormalizedCatalog {
	t.Helper()
	return Normalize(catalog.New(songs), zerolog.Nop())
}

var testGenres = []string{"pop", "rock", "jazz", "classical", "hip-hop", "folk", "edm", "metal"}

// randomCatalog returns n songs with realistic feature ranges.
func randomCatalog(t *testing.T, n int, seed int64) *NormalizedCatalog {
	t.Helper()
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test data
	songs := make([]catalog.Song, n)
	for i := range songs {
		songs[i] = song(
			fmt.Sprintf("t%03d", i),
			rng.Intn(101),
			testGenres[rng.Intn(len(testGenres))],
			features(
				rng.Float64(), rng.Float64(), -30+rng.Float64()*30, rng.Float64()*0.5, rng.Float64(),
				rng.Float64(), rng.Float64(), rng.Float64(), 60+rng.Float64()*120,
			),
		)
	}
	return normalized(t, songs...)
}

func discard() zerolog.Logger {
	return zerolog.Nop()
}
