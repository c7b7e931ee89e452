// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package catalog

import (
	"sort"
	"strings"
)

// DefaultSearchLimit caps search results when the caller passes no limit.
const DefaultSearchLimit = 20

// Search returns songs whose title or artists contain query, ignoring case.
// Matches are ordered by popularity descending; equal popularity keeps
// catalog order. A blank query matches nothing.
func (c *Catalog) Search(query string, limit int) []Song {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" || c.Len() == 0 {
		return []Song{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	matches := make([]Song, 0, 16)
	for i := range c.songs {
		if strings.Contains(c.titles[i], needle) || strings.Contains(c.artists[i], needle) {
			matches = append(matches, c.songs[i])
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Popularity > matches[j].Popularity
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
