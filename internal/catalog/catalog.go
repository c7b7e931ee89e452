// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"fmt"
	"strings"
)

// Catalog is the in-memory, read-only song store. It is safe for concurrent
// use because nothing mutates it after New returns.
type Catalog struct {
	songs      []Song
	index      map[string]int
	duplicates int
	malformed  int
	// search keys, lower-cased once at build time
	titles  []string
	artists []string
}

// New builds a catalog from songs in the given order. Songs whose ID fails
// ValidID, including empty ones, are skipped. When an ID repeats, the first
// occurrence wins; the public dataset lists the same track under several
// genres.
func New(songs []Song) *Catalog {
	c := &Catalog{
		songs:   make([]Song, 0, len(songs)),
		index:   make(map[string]int, len(songs)),
		titles:  make([]string, 0, len(songs)),
		artists: make([]string, 0, len(songs)),
	}
	for i := range songs {
		s := songs[i]
		s.ID = strings.TrimSpace(s.ID)
		if !ValidID(s.ID) {
			continue
		}
		if _, exists := c.index[s.ID]; exists {
			c.duplicates++
			continue
		}
		c.index[s.ID] = len(c.songs)
		c.songs = append(c.songs, s)
		c.titles = append(c.titles, strings.ToLower(s.Title))
		c.artists = append(c.artists, strings.ToLower(s.Artists))
	}
	return c
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.songs)
}

// Duplicates returns how many rows New dropped because their ID repeated.
func (c *Catalog) Duplicates() int {
	return c.duplicates
}

// Malformed returns how many dataset rows the loader rejected.
func (c *Catalog) Malformed() int {
	return c.malformed
}

// At returns the song at position i in catalog order.
func (c *Catalog) At(i int) Song {
	return c.songs[i]
}

// Songs returns a copy of the catalog in order.
func (c *Catalog) Songs() []Song {
	out := make([]Song, len(c.songs))
	copy(out, c.songs)
	return out
}

// IndexOf returns the catalog position of id.
func (c *Catalog) IndexOf(id string) (int, bool) {
	if c == nil {
		return 0, false
	}
	i, ok := c.index[id]
	return i, ok
}

// Lookup returns the song with the given ID or an error wrapping ErrNotFound.
func (c *Catalog) Lookup(id string) (Song, error) {
	i, ok := c.IndexOf(strings.TrimSpace(id))
	if !ok {
		return Song{}, fmt.Errorf("track %q: %w", id, ErrNotFound)
	}
	return c.songs[i], nil
}

// Stats summarizes the dataset.
type Stats struct {
	TotalSongs        int            `json:"total_songs"`
	Genres            int            `json:"genres"`
	AveragePopularity float64        `json:"average_popularity"`
	DuplicatesDropped int            `json:"duplicates_dropped"`
	MalformedRows     int            `json:"malformed_rows"`
	GenreCounts       map[string]int `json:"genre_counts"`
}

// Stats computes dataset statistics over the whole catalog.
func (c *Catalog) Stats() Stats {
	st := Stats{
		TotalSongs:        c.Len(),
		DuplicatesDropped: c.duplicates,
		MalformedRows:     c.malformed,
		GenreCounts:       make(map[string]int),
	}
	if st.TotalSongs == 0 {
		return st
	}
	var total int64
	for i := range c.songs {
		total += int64(c.songs[i].Popularity)
		st.GenreCounts[c.songs[i].Genre]++
	}
	st.Genres = len(st.GenreCounts)
	st.AveragePopularity = float64(total) / float64(st.TotalSongs)
	return st
}
