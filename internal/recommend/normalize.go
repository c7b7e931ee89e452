// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tunematch/internal/catalog"
)

// degenerateStdDev is the standard deviation below which a feature column
// is treated as constant.
const degenerateStdDev = 1e-12

// vector is a normalized feature vector in catalog.FeatureNames order.
type vector = [catalog.FeatureCount]float64

// FeatureStats describes one feature column before normalization.
type FeatureStats struct {
	Name       string  `json:"name"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Degenerate bool    `json:"degenerate"`
}

// NormalizedCatalog pairs a catalog with z-score normalized feature vectors
// and their norms. It is built once and shared read-only between requests.
type NormalizedCatalog struct {
	catalog *catalog.Catalog
	vectors []vector
	norms   []float64
	stats   [catalog.FeatureCount]FeatureStats
}

// Normalize rescales every audio feature to zero mean and unit variance
// across the catalog. A zero-variance feature is logged as degenerate and
// set to 0 for every song, so it contributes nothing to similarity.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Normalize(cat *catalog.Catalog, logger zerolog.Logger) *NormalizedCatalog {
	if cat == nil {
		cat = catalog.New(nil)
	}
	n := cat.Len()
	nc := &NormalizedCatalog{
		catalog: cat,
		vectors: make([]vector, n),
		norms:   make([]float64, n),
	}

	raw := make([]vector, n)
	for i := 0; i < n; i++ {
		raw[i] = cat.At(i).Features.Vector()
	}

	for f := 0; f < catalog.FeatureCount; f++ {
		st := FeatureStats{Name: catalog.FeatureNames[f]}
		if n > 0 {
			var sum float64
			for i := range raw {
				sum += raw[i][f]
			}
			st.Mean = sum / float64(n)

			var sq float64
			for i := range raw {
				d := raw[i][f] - st.Mean
				sq += d * d
			}
			st.StdDev = math.Sqrt(sq / float64(n))
			st.Degenerate = st.StdDev < degenerateStdDev || math.IsNaN(st.StdDev)
		}
		nc.stats[f] = st

		if st.Degenerate {
			logger.Warn().
				Str("component", "recommend").
				Str("warning", "DegenerateFeatureWarning").
				Str("feature", st.Name).
				Float64("value", st.Mean).
				Msg("Feature has zero variance and will not contribute to similarity")
			continue // vectors already hold 0
		}
		if n == 0 {
			continue
		}
		for i := range raw {
			nc.vectors[i][f] = (raw[i][f] - st.Mean) / st.StdDev
		}
	}

	for i := range nc.vectors {
		nc.norms[i] = norm(&nc.vectors[i])
	}
	return nc
}

// Catalog returns the underlying catalog.
func (nc *NormalizedCatalog) Catalog() *catalog.Catalog {
	return nc.catalog
}

// Len returns the number of songs.
func (nc *NormalizedCatalog) Len() int {
	return len(nc.vectors)
}

// Vector returns the normalized features of the song at catalog position i.
func (nc *NormalizedCatalog) Vector(i int) []float64 {
	v := nc.vectors[i]
	return v[:]
}

// Stats returns per-feature statistics in catalog.FeatureNames order.
func (nc *NormalizedCatalog) Stats() []FeatureStats {
	out := make([]FeatureStats, len(nc.stats))
	copy(out, nc.stats[:])
	return out
}

// DegenerateFeatures returns the names of constant feature columns.
func (nc *NormalizedCatalog) DegenerateFeatures() []string {
	var names []string
	for _, st := range nc.stats {
		if st.Degenerate {
			names = append(names, st.Name)
		}
	}
	return names
}

func norm(v *vector) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
