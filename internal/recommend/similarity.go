// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/tunematch/internal/catalog"
)

// CosineSimilarity returns the cosine of the angle between a and b, clamped
// to [-1, 1]. It is 0 when either vector has zero length or the lengths
// differ.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	return cosine(dot, math.Sqrt(na), math.Sqrt(nb))
}

// cosine is symmetric in its norm arguments because multiplication is
// commutative in IEEE 754.
func cosine(dot, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	s := dot / (normA * normB)
	switch {
	case math.IsNaN(s):
		return 0
	case s > 1:
		return 1
	case s < -1:
		return -1
	}
	return s
}

// similarityAt computes the cosine similarity between catalog positions i and j.
func (nc *NormalizedCatalog) similarityAt(i, j int) float64 {
	a, b := &nc.vectors[i], &nc.vectors[j]
	var dot float64
	for f := range a {
		dot += a[f] * b[f]
	}
	return cosine(dot, nc.norms[i], nc.norms[j])
}

// Similarity returns the cosine similarity between two songs by ID.
func (nc *NormalizedCatalog) Similarity(a, b string) (float64, error) {
	i, err := nc.resolve(a)
	if err != nil {
		return 0, err
	}
	j, err := nc.resolve(b)
	if err != nil {
		return 0, err
	}
	return nc.similarityAt(i, j), nil
}

// SimilarityScore pairs a catalog song with its similarity to a query.
type SimilarityScore struct {
	Index      int     `json:"-"`
	ID         string  `json:"id"`
	Similarity float64 `json:"similarity"`
}

// RankBySimilarity scores every song except the query, in catalog order.
// Callers sort as needed.
func (nc *NormalizedCatalog) RankBySimilarity(queryID string) ([]SimilarityScore, error) {
	q, err := nc.resolve(queryID)
	if err != nil {
		return nil, err
	}
	out := make([]SimilarityScore, 0, nc.Len()-1)
	for i := 0; i < nc.Len(); i++ {
		if i == q {
			continue
		}
		out = append(out, SimilarityScore{
			Index:      i,
			ID:         nc.catalog.At(i).ID,
			Similarity: nc.similarityAt(q, i),
		})
	}
	return out, nil
}

func (nc *NormalizedCatalog) resolve(id string) (int, error) {
	i, ok := nc.catalog.IndexOf(strings.TrimSpace(id))
	if !ok {
		return 0, fmt.Errorf("track %q: %w", id, catalog.ErrNotFound)
	}
	return i, nil
}
