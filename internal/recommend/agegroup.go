// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/tunematch/internal/catalog"
)

// AgeGroup is a listener cohort derived from age.
type AgeGroup int

// Age groups in ascending age order.
const (
	Teen AgeGroup = iota
	YoungAdult
	Adult
	Senior
)

var ageGroupNames = [...]string{"teen", "young_adult", "adult", "senior"}

// String returns the machine-readable name, e.g. "young_adult".
func (g AgeGroup) String() string {
	if g < Teen || g > Senior {
		return fmt.Sprintf("AgeGroup(%d)", int(g))
	}
	return ageGroupNames[g]
}

// MarshalText encodes the group by name.
func (g AgeGroup) MarshalText() ([]byte, error) {
	if g < Teen || g > Senior {
		return nil, fmt.Errorf("invalid age group %d", int(g))
	}
	return []byte(g.String()), nil
}

// ParseAgeGroup is the inverse of String.
func ParseAgeGroup(s string) (AgeGroup, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range ageGroupNames {
		if key == name {
			return AgeGroup(i), nil
		}
	}
	return 0, fmt.Errorf("unknown age group %q", s)
}

// Classify maps an age to its group. It is total over int; range checks
// belong to the caller.
func Classify(age int) AgeGroup {
	switch {
	case age < 20:
		return Teen
	case age < 30:
		return YoungAdult
	case age < 50:
		return Adult
	default:
		return Senior
	}
}

// Affinity weights. A genre match outweighs all mood thresholds together.
const (
	genreAffinityWeight = 0.6
	moodAffinityWeight  = 0.4
	moodThresholds      = 3
)

// Profile is the static genre and mood preference of an age group.
type Profile struct {
	Group       AgeGroup `json:"group"`
	Name        string   `json:"name"`
	AgeRange    string   `json:"age_range"`
	Genres      []string `json:"genres"`
	Description string   `json:"description"`

	MinDanceability float64 `json:"min_danceability"`
	MinEnergy       float64 `json:"min_energy"`
	MinValence      float64 `json:"min_valence"`

	genreSet map[string]struct{}
}

var profiles = [...]Profile{
	Teen: {
		Group:           Teen,
		Name:            "Teen",
		AgeRange:        "under 20",
		Genres:          []string{"pop", "hip-hop", "edm", "dance", "electronic"},
		Description:     "High energy, danceable pop and hip-hop hits",
		MinDanceability: 0.6,
		MinEnergy:       0.7,
		MinValence:      0.5,
	},
	YoungAdult: {
		Group:           YoungAdult,
		Name:            "Young Adult",
		AgeRange:        "20-29",
		Genres:          []string{"pop", "indie", "rock", "alternative", "hip-hop"},
		Description:     "Mix of popular and indie tracks with good energy",
		MinDanceability: 0.5,
		MinEnergy:       0.6,
		MinValence:      0.4,
	},
	Adult: {
		Group:           Adult,
		Name:            "Adult",
		AgeRange:        "30-49",
		Genres:          []string{"rock", "jazz", "acoustic", "blues", "folk", "country"},
		Description:     "More mature sounds with acoustic and rock elements",
		MinDanceability: 0.4,
		MinEnergy:       0.5,
		MinValence:      0.3,
	},
	Senior: {
		Group:           Senior,
		Name:            "Senior",
		AgeRange:        "50+",
		Genres:          []string{"classical", "jazz", "acoustic", "blues", "folk", "oldies"},
		Description:     "Timeless classics and acoustic sounds",
		MinDanceability: 0.3,
		MinEnergy:       0.4,
		MinValence:      0.3,
	},
}

//nolint:gochecknoinits // the profile table is static and indexed once
func init() {
	for i := range profiles {
		p := &profiles[i]
		p.genreSet = make(map[string]struct{}, len(p.Genres))
		for _, g := range p.Genres {
			p.genreSet[g] = struct{}{}
		}
	}
}

// ProfileFor returns the preference profile of g. Unknown groups get Senior's
// profile, mirroring Classify's open upper bound.
func ProfileFor(g AgeGroup) Profile {
	if g < Teen || g > Senior {
		g = Senior
	}
	p := profiles[g]
	p.Genres = append([]string(nil), p.Genres...)
	return p
}

// Profiles returns every profile in age order.
func Profiles() []Profile {
	out := make([]Profile, 0, len(profiles))
	for g := Teen; g <= Senior; g++ {
		out = append(out, ProfileFor(g))
	}
	return out
}

// MatchesGenre reports whether genre is one of the profile's preferred genres.
func (p *Profile) MatchesGenre(genre string) bool {
	_, ok := p.genreSet[strings.ToLower(strings.TrimSpace(genre))]
	return ok
}

// moodMatches counts the mood thresholds f meets.
func (p *Profile) moodMatches(f catalog.AudioFeatures) int {
	n := 0
	if f.Danceability >= p.MinDanceability {
		n++
	}
	if f.Energy >= p.MinEnergy {
		n++
	}
	if f.Valence >= p.MinValence {
		n++
	}
	return n
}

// MeetsMood reports whether f meets every mood threshold.
func (p *Profile) MeetsMood(f catalog.AudioFeatures) bool {
	return p.moodMatches(f) == moodThresholds
}

// Affinity scores how well s fits the profile, in [0, 1]. Raw (not
// normalized) features are compared against the thresholds.
func (p *Profile) Affinity(s *catalog.Song) float64 {
	a := moodAffinityWeight * float64(p.moodMatches(s.Features)) / moodThresholds
	if p.MatchesGenre(s.Genre) {
		a += genreAffinityWeight
	}
	return a
}
