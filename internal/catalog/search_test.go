// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"reflect"
	"testing"
)

func ids(songs []Song) []string {
	out := make([]string, len(songs))
	for i, s := range songs {
		out[i] = s.ID
	}
	return out
}

func TestSearch(t *testing.T) {
	t.Parallel()

	c := New(testSongs())

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		// b and d tie at 80 and keep catalog order.
		{"title and artist matches by popularity", "blue", 0, []string{"b", "d", "a"}},
		{"case insensitive", "BLUE", 0, []string{"b", "d", "a"}},
		{"artist only", "kai", 0, []string{"c"}},
		{"trimmed query", "  morning ", 0, []string{"c"}},
		{"limit applied", "blue", 2, []string{"b", "d"}},
		{"no match", "metal", 0, []string{}},
		{"blank query", "   ", 0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ids(c.Search(tt.query, tt.limit))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q, %d) = %v, want %v", tt.query, tt.limit, got, tt.want)
			}
		})
	}
}

func TestSearchDefaultLimit(t *testing.T) {
	t.Parallel()

	songs := make([]Song, 30)
	for i := range songs {
		songs[i] = Song{ID: string(rune('A' + i)), Title: "Same Title", Popularity: i}
	}
	got := New(songs).Search("same", 0)
	if len(got) != DefaultSearchLimit {
		t.Fatalf("len(Search) = %d, want %d", len(got), DefaultSearchLimit)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Popularity < got[i].Popularity {
			t.Fatalf("results not ordered by popularity at %d: %d < %d", i, got[i-1].Popularity, got[i].Popularity)
		}
	}
}

func TestSearchEmptyCatalog(t *testing.T) {
	t.Parallel()

	if got := New(nil).Search("anything", 5); len(got) != 0 {
		t.Errorf("Search on empty catalog = %v, want empty", got)
	}
}
