// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/tomtom215/tunematch/internal/catalog"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		age  int
		want AgeGroup
	}{
		{-5, Teen},
		{13, Teen},
		{19, Teen},
		{20, YoungAdult},
		{29, YoungAdult},
		{30, Adult},
		{49, Adult},
		{50, Senior},
		{100, Senior},
		{150, Senior},
	}
	for _, tt := range tests {
		if got := Classify(tt.age); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestAgeGroupNames(t *testing.T) {
	t.Parallel()

	for g := Teen; g <= Senior; g++ {
		parsed, err := ParseAgeGroup(g.String())
		if err != nil || parsed != g {
			t.Errorf("ParseAgeGroup(%q) = %v, %v, want %v", g.String(), parsed, err, g)
		}
	}
	if _, err := ParseAgeGroup("toddler"); err == nil {
		t.Error("ParseAgeGroup(toddler) = nil error")
	}
	if got := AgeGroup(9).String(); got != "AgeGroup(9)" {
		t.Errorf("String() of invalid group = %q", got)
	}

	data, err := json.Marshal(map[string]AgeGroup{"group": YoungAdult})
	if err != nil {
		t.Fatalf("json.Marshal error = %v", err)
	}
	if string(data) != `{"group":"young_adult"}` {
		t.Errorf("json = %s", data)
	}
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	ps := Profiles()
	if len(ps) != 4 {
		t.Fatalf("len(Profiles()) = %d, want 4", len(ps))
	}
	for i, p := range ps {
		if p.Group != AgeGroup(i) {
			t.Errorf("Profiles()[%d].Group = %v", i, p.Group)
		}
		if len(p.Genres) == 0 || p.Description == "" {
			t.Errorf("profile %v incomplete: %+v", p.Group, p)
		}
	}

	teen := ProfileFor(Teen)
	if !teen.MatchesGenre("EDM") || !teen.MatchesGenre(" hip-hop ") || teen.MatchesGenre("classical") {
		t.Errorf("Teen genre matching wrong: %v", teen.Genres)
	}
	senior := ProfileFor(Senior)
	if !senior.MatchesGenre("classical") || senior.MatchesGenre("edm") {
		t.Errorf("Senior genre matching wrong: %v", senior.Genres)
	}

	// callers cannot modify the shared table
	teen.Genres[0] = "polka"
	if ProfileFor(Teen).Genres[0] != "pop" {
		t.Error("modifying a returned profile changed the table")
	}
}

func TestAffinity(t *testing.T) {
	t.Parallel()

	teen := ProfileFor(Teen)

	tests := []struct {
		name string
		song catalog.Song
		want float64
	}{
		{"genre and all moods", song("a", 50, "pop", features(0.8, 0.9, -5, 0, 0, 0, 0, 0.7, 120)), 1},
		{"genre only", song("b", 50, "pop", features(0.1, 0.1, -5, 0, 0, 0, 0, 0.1, 120)), 0.6},
		{"moods only", song("c", 50, "classical", features(0.6, 0.7, -5, 0, 0, 0, 0, 0.5, 120)), 0.4},
		{"one mood", song("d", 50, "jazz", features(0.9, 0.1, -5, 0, 0, 0, 0, 0.1, 120)), 0.4 / 3},
		{"nothing", song("e", 50, "jazz", features(0.1, 0.1, -5, 0, 0, 0, 0, 0.1, 120)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := teen.Affinity(&tt.song)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Affinity() = %v, want %v", got, tt.want)
			}
		})
	}

	if !teen.MeetsMood(features(0.6, 0.7, 0, 0, 0, 0, 0, 0.5, 0)) {
		t.Error("MeetsMood at exact thresholds = false, want true")
	}
}
