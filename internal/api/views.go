// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/models"
	"github.com/tomtom215/tunematch/internal/recommend"
)

//nolint:gocritic // hugeParam: Song is copied once per view
func newSongView(s catalog.Song) models.SongView {
	return models.SongView{
		ID:         s.ID,
		Title:      s.Title,
		Artists:    s.Artists,
		Album:      s.Album,
		Genre:      s.Genre,
		Duration:   s.DurationLabel(),
		DurationMS: s.DurationMS,
		Popularity: s.Popularity,
		Explicit:   s.Explicit,
		Features:   models.AudioFeaturesView(s.Features),
	}
}

func newSongViews(songs []catalog.Song) []models.SongView {
	out := make([]models.SongView, len(songs))
	for i := range songs {
		out[i] = newSongView(songs[i])
	}
	return out
}

// newRecommendationsResponse converts an engine response. seed is nil in
// age-group mode.
func newRecommendationsResponse(resp *recommend.Response, seed *catalog.Song) models.RecommendationsResponse {
	items := make([]models.RecommendationItem, len(resp.Items))
	for i := range resp.Items {
		it := &resp.Items[i]
		items[i] = models.RecommendationItem{
			Rank:               i + 1,
			SongView:           newSongView(it.Song),
			Score:              it.Score,
			Similarity:         it.Similarity,
			AdjustedSimilarity: it.AdjustedSimilarity,
			AgeAffinity:        it.AgeAffinity,
			PopularityScore:    it.PopularityScore,
		}
	}

	out := models.RecommendationsResponse{
		Mode:       resp.Metadata.Mode,
		TrackID:    resp.Metadata.TrackID,
		Age:        resp.Metadata.Age,
		AgeGroup:   resp.AgeGroup.String(),
		Count:      len(items),
		Candidates: resp.Candidates,
		Selection:  string(resp.Selection),
		Items:      items,
	}
	if seed != nil {
		v := newSongView(*seed)
		out.Seed = &v
	}
	return out
}

func newAgeGroupView(p *recommend.Profile) models.AgeGroupView {
	return models.AgeGroupView{
		Group:           p.Group.String(),
		Name:            p.Name,
		AgeRange:        p.AgeRange,
		Description:     p.Description,
		Genres:          p.Genres,
		MinDanceability: p.MinDanceability,
		MinEnergy:       p.MinEnergy,
		MinValence:      p.MinValence,
	}
}

func newCatalogStats(nc *recommend.NormalizedCatalog) models.CatalogStatsResponse {
	st := nc.Catalog().Stats()
	out := models.CatalogStatsResponse{
		TotalSongs:         st.TotalSongs,
		Genres:             st.Genres,
		AveragePopularity:  st.AveragePopularity,
		DuplicatesDropped:  st.DuplicatesDropped,
		MalformedRows:      st.MalformedRows,
		GenreCounts:        st.GenreCounts,
		DegenerateFeatures: nc.DegenerateFeatures(),
	}
	if out.DegenerateFeatures == nil {
		out.DegenerateFeatures = []string{}
	}
	for _, fs := range nc.Stats() {
		out.Features = append(out.Features, models.FeatureStatsView{
			Feature:    fs.Name,
			Mean:       fs.Mean,
			StdDev:     fs.StdDev,
			Degenerate: fs.Degenerate,
		})
	}
	return out
}
