// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Column names of the cleaned dataset.
const (
	ColTrackID          = "track_id"
	ColArtists          = "artists"
	ColAlbum            = "album_name"
	ColTitle            = "track_name"
	ColPopularity       = "popularity"
	ColDurationMS       = "duration_ms"
	ColExplicit         = "explicit"
	ColDanceability     = "danceability"
	ColEnergy           = "energy"
	ColLoudness         = "loudness"
	ColSpeechiness      = "speechiness"
	ColAcousticness     = "acousticness"
	ColInstrumentalness = "instrumentalness"
	ColLiveness         = "liveness"
	ColValence          = "valence"
	ColTempo            = "tempo"
	ColGenre            = "track_genre"
)

// RequiredColumns lists every column a dataset must provide, in the order
// decodeRow expects its values.
var RequiredColumns = []string{
	ColTrackID, ColArtists, ColAlbum, ColTitle, ColPopularity, ColDurationMS,
	ColExplicit, ColDanceability, ColEnergy, ColLoudness, ColSpeechiness,
	ColAcousticness, ColInstrumentalness, ColLiveness, ColValence, ColTempo,
	ColGenre,
}

// normalizeHeader lower-cases a header cell and strips whitespace and a UTF-8 BOM.
func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "\ufeff")))
}

// decodeRow builds a Song from values ordered like RequiredColumns.
func decodeRow(values []string) (Song, error) {
	if len(values) != len(RequiredColumns) {
		return Song{}, fmt.Errorf("expected %d values, got %d", len(RequiredColumns), len(values))
	}
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}

	s := Song{
		ID:      values[0],
		Artists: values[1],
		Album:   values[2],
		Title:   values[3],
		Genre:   values[16],
	}
	if s.ID == "" {
		return Song{}, fmt.Errorf("empty %s", ColTrackID)
	}
	if !ValidID(s.ID) {
		return Song{}, fmt.Errorf("%s %q is not a valid track ID", ColTrackID, s.ID)
	}

	popularity, err := parseInt(values[4])
	if err != nil {
		return Song{}, fmt.Errorf("%s: %w", ColPopularity, err)
	}
	if popularity < 0 || popularity > 100 {
		return Song{}, fmt.Errorf("%s %d outside 0-100", ColPopularity, popularity)
	}
	s.Popularity = int(popularity)

	if s.DurationMS, err = parseInt(values[5]); err != nil {
		return Song{}, fmt.Errorf("%s: %w", ColDurationMS, err)
	}
	if s.Explicit, err = parseBool(values[6]); err != nil {
		return Song{}, fmt.Errorf("%s: %w", ColExplicit, err)
	}

	targets := []*float64{
		&s.Features.Danceability,
		&s.Features.Energy,
		&s.Features.Loudness,
		&s.Features.Speechiness,
		&s.Features.Acousticness,
		&s.Features.Instrumentalness,
		&s.Features.Liveness,
		&s.Features.Valence,
		&s.Features.Tempo,
	}
	for i, dst := range targets {
		col := RequiredColumns[7+i]
		v, err := strconv.ParseFloat(values[7+i], 64)
		if err != nil {
			return Song{}, fmt.Errorf("%s: %w", col, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Song{}, fmt.Errorf("%s %q is not a finite number", col, values[7+i])
		}
		*dst = v
	}
	return s, nil
}

// parseInt accepts plain integers and integral floats such as "55.0",
// which pandas writes for integer columns that once held NaN.
func parseInt(v string) (int64, error) {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("%q is not an integer", v)
	}
	return int64(f), nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "1", "t", "yes":
		return true, nil
	case "false", "0", "f", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", v)
}
