// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"context"
	"math"
	"sort"
)

// Fixed blend of the combined score.
const (
	SimilarityWeight = 0.7
	PopularityWeight = 0.3
)

// ctxCheckInterval is how many candidates are scored between cancellation checks.
const ctxCheckInterval = 4096

// AdjustSimilarity applies the age-affinity adjustment to a similarity
// score. Affinity 1 raises the score by maxAdjustment×|sim|, affinity 0
// lowers it by the same amount, 0.5 leaves it unchanged. Using |sim| keeps
// a boost a boost for negative similarities too.
func AdjustSimilarity(sim, affinity, maxAdjustment float64) float64 {
	affinity = clamp01(affinity)
	return sim + math.Abs(sim)*maxAdjustment*(2*affinity-1)
}

// PopularityScore maps 0–100 popularity to [0, 1].
func PopularityScore(popularity int) float64 {
	return clamp01(float64(popularity) / 100)
}

// CombinedScore blends an (adjusted) similarity with a popularity score.
func CombinedScore(similarity, popularity float64) float64 {
	return SimilarityWeight*similarity + PopularityWeight*popularity
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

// candidate is a scored catalog position. Songs are only copied out for
// the final top N.
type candidate struct {
	index      int
	id         string
	popularity int
	score      float64
	similarity float64
	adjusted   float64
	affinity   float64
}

// rankLess orders candidates by score, then popularity, both descending,
// then ID ascending.
func rankLess(a, b *candidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if a.popularity != b.popularity {
		return a.popularity > b.popularity
	}
	return a.id < b.id
}

// ValidateAge returns an *InputError when age is outside the configured range.
func (c *Config) ValidateAge(age int) error {
	return checkRange("age", age, c.Age.Min, c.Age.Max)
}

// validate checks age and count and resolves a zero count to the default.
func (c *Config) validate(age, count int) (int, error) {
	if err := c.ValidateAge(age); err != nil {
		return 0, err
	}
	if count == 0 {
		count = c.Count.Default
	}
	if err := checkRange("count", count, c.Count.Min, c.Count.Max); err != nil {
		return 0, err
	}
	return count, nil
}

// Rank recommends songs similar to req.TrackID for the age group of
// req.Age. It is a pure function of its arguments.
//
// Errors wrap ErrInvalidInput for out-of-range age or count and
// ErrNotFound for an unknown track. An empty catalog yields an empty
// result without error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func Rank(nc *NormalizedCatalog, cfg *Config, req Request) (*Result, error) {
	return rank(context.Background(), nc, cfg, req)
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func rank(ctx context.Context, nc *NormalizedCatalog, cfg *Config, req Request) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	count, err := cfg.validate(req.Age, req.Count)
	if err != nil {
		return nil, err
	}

	group := Classify(req.Age)
	result := &Result{Items: []ScoredSong{}, AgeGroup: group}
	if nc == nil || nc.Len() == 0 {
		return result, nil
	}

	q, err := nc.resolve(req.TrackID)
	if err != nil {
		return nil, err
	}

	profile := profiles[group]
	cat := nc.catalog
	candidates := make([]candidate, 0, nc.Len()-1)
	for i := 0; i < nc.Len(); i++ {
		if i == q {
			continue
		}
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		song := cat.At(i)
		sim := nc.similarityAt(q, i)
		affinity := profile.Affinity(&song)
		adjusted := AdjustSimilarity(sim, affinity, cfg.MaxAgeAdjustment)
		candidates = append(candidates, candidate{
			index:      i,
			id:         song.ID,
			popularity: song.Popularity,
			score:      CombinedScore(adjusted, PopularityScore(song.Popularity)),
			similarity: sim,
			adjusted:   adjusted,
			affinity:   affinity,
		})
	}
	result.Candidates = len(candidates)

	sort.Slice(candidates, func(i, j int) bool {
		return rankLess(&candidates[i], &candidates[j])
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}

	result.Items = make([]ScoredSong, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		song := cat.At(c.index)
		result.Items[i] = ScoredSong{
			Song:               song,
			Score:              c.score,
			Similarity:         c.similarity,
			AdjustedSimilarity: c.adjusted,
			AgeAffinity:        c.affinity,
			PopularityScore:    PopularityScore(song.Popularity),
		}
	}
	return result, nil
}

// RankForAge returns the most popular songs for an age group without a
// seed song. It prefers songs matching both the group's genres and all of
// its mood thresholds, falls back to genre only, and finally to the whole
// catalog. Score is the popularity score.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func RankForAge(nc *NormalizedCatalog, cfg *Config, req AgeRequest) (*Result, error) {
	return rankForAge(context.Background(), nc, cfg, req)
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func rankForAge(ctx context.Context, nc *NormalizedCatalog, cfg *Config, req AgeRequest) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	count, err := cfg.validate(req.Age, req.Count)
	if err != nil {
		return nil, err
	}

	group := Classify(req.Age)
	result := &Result{Items: []ScoredSong{}, AgeGroup: group, Selection: SelectionAll}
	if nc == nil || nc.Len() == 0 {
		return result, nil
	}

	profile := profiles[group]
	cat := nc.catalog

	var genreAndMood, genreOnly []int
	for i := 0; i < cat.Len(); i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		song := cat.At(i)
		if !profile.MatchesGenre(song.Genre) {
			continue
		}
		genreOnly = append(genreOnly, i)
		if profile.MeetsMood(song.Features) {
			genreAndMood = append(genreAndMood, i)
		}
	}

	var pool []int
	switch {
	case len(genreAndMood) > 0:
		pool, result.Selection = genreAndMood, SelectionGenreAndMood
	case len(genreOnly) > 0:
		pool, result.Selection = genreOnly, SelectionGenre
	default:
		pool = make([]int, cat.Len())
		for i := range pool {
			pool[i] = i
		}
	}
	result.Candidates = len(pool)

	candidates := make([]candidate, len(pool))
	for k, i := range pool {
		song := cat.At(i)
		candidates[k] = candidate{
			index:      i,
			id:         song.ID,
			popularity: song.Popularity,
			score:      PopularityScore(song.Popularity),
			affinity:   profile.Affinity(&song),
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return rankLess(&candidates[i], &candidates[j])
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}

	result.Items = make([]ScoredSong, len(candidates))
	for k := range candidates {
		c := &candidates[k]
		result.Items[k] = ScoredSong{
			Song:            cat.At(c.index),
			Score:           c.score,
			AgeAffinity:     c.affinity,
			PopularityScore: c.score,
		}
	}
	return result, nil
}
