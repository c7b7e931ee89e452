// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package recommend ranks songs by audio-feature similarity, biased toward
// the listener's age group and blended with popularity.
//
// # Pipeline
//
//	cat, _ := catalog.Load(ctx, path, catalog.LoaderCSV, logger)
//	nc := recommend.Normalize(cat, logger)      // once, at startup
//	res, err := recommend.Rank(nc, cfg, recommend.Request{
//	    TrackID: id,
//	    Age:     25,
//	    Count:   10,
//	})
//
// Normalize z-scores the nine audio features so loudness (dB) and tempo
// (BPM) do not dominate the [0,1] descriptors. Constant columns are
// reported as degenerate and zeroed.
//
// # Scoring
//
// For every song other than the query:
//
//	sim      = cosine(query, candidate)                  in [-1, 1]
//	affinity = profile(ageGroup).Affinity(candidate)     in [0, 1]
//	adjusted = sim + |sim| × MaxAgeAdjustment × (2×affinity − 1)
//	score    = 0.7 × adjusted + 0.3 × popularity/100
//
// MaxAgeAdjustment defaults to 0.15, so the age group can move the
// similarity term by at most 15% of its magnitude. Affinity gives 0.6 for
// a preferred genre and 0.4/3 for each mood threshold (danceability,
// energy, valence) the raw features meet.
//
// Results are sorted by score, then popularity, both descending, then by
// track ID, and truncated to the requested count.
//
// # Age Groups
//
//	Teen        age < 20
//	YoungAdult  20 ≤ age < 30
//	Adult       30 ≤ age < 50
//	Senior      age ≥ 50
//
// Requests accept ages in [13, 100] and counts in [5, 20] by default.
//
// # Thread Safety
//
// NormalizedCatalog and Engine hold no mutable shared state besides atomic
// counters; both are safe for concurrent use.
package recommend
