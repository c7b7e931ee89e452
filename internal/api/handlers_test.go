// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/tunematch/internal/models"
)

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec, env := get(t, srv, "/api/v1/health/live")
	if rec.Code != http.StatusOK || env.Status != "success" {
		t.Fatalf("live: status %d / %q", rec.Code, env.Status)
	}

	rec, env = get(t, srv, "/api/v1/health/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("ready: status %d, want 200", rec.Code)
	}
	var health models.HealthResponse
	decodeData(t, env, &health)
	if !health.CatalogLoaded || health.CatalogSongs != 10 {
		t.Errorf("ready: %+v", health)
	}
}

func TestHealthReady_EmptyCatalog(t *testing.T) {
	t.Parallel()
	srv := newTestServerWith(t, nil, nil)

	rec, env := get(t, srv, "/api/v1/health/ready")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if env.Status != "not_ready" {
		t.Errorf("envelope status = %q, want not_ready", env.Status)
	}

	// liveness does not depend on the catalog
	rec, _ = get(t, srv, "/api/v1/health/live")
	if rec.Code != http.StatusOK {
		t.Errorf("live status = %d, want 200", rec.Code)
	}
}

func TestSearchSongs(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantIDs    []string
		wantErr    string
	}{
		{
			name:       "popularity order",
			target:     "/api/v1/songs/search?q=love",
			wantStatus: http.StatusOK,
			wantIDs:    []string{"pop001", "pop002", "blue01"},
		},
		{
			name:       "case insensitive artist match",
			target:     "/api/v1/songs/search?q=ORCHESTRA",
			wantStatus: http.StatusOK,
			wantIDs:    []string{"clas01"},
		},
		{
			name:       "limit",
			target:     "/api/v1/songs/search?q=love&limit=2",
			wantStatus: http.StatusOK,
			wantIDs:    []string{"pop001", "pop002"},
		},
		{
			name:       "no match",
			target:     "/api/v1/songs/search?q=zzzz",
			wantStatus: http.StatusOK,
			wantIDs:    []string{},
		},
		{
			name:       "missing query",
			target:     "/api/v1/songs/search",
			wantStatus: http.StatusBadRequest,
			wantErr:    "q is required",
		},
		{
			name:       "blank query",
			target:     "/api/v1/songs/search?q=%20%20",
			wantStatus: http.StatusBadRequest,
			wantErr:    "q is required",
		},
		{
			name:       "non-numeric limit",
			target:     "/api/v1/songs/search?q=love&limit=ten",
			wantStatus: http.StatusBadRequest,
			wantErr:    `limit must be an integer, got "ten"`,
		},
		{
			name:       "limit too large",
			target:     "/api/v1/songs/search?q=love&limit=1000",
			wantStatus: http.StatusBadRequest,
			wantErr:    "limit must be at most 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := get(t, srv, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantErr != "" {
				if env.Error == nil || env.Error.Code != ErrCodeValidation || env.Error.Message != tt.wantErr {
					t.Errorf("error = %+v, want %s %q", env.Error, ErrCodeValidation, tt.wantErr)
				}
				return
			}
			var got models.SearchResponse
			decodeData(t, env, &got)
			if len(got.Results) != len(tt.wantIDs) || got.Total != len(tt.wantIDs) {
				t.Fatalf("got %d results, want %d", len(got.Results), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got.Results[i].ID != id {
					t.Errorf("result[%d] = %s, want %s", i, got.Results[i].ID, id)
				}
			}
		})
	}
}

func TestGetSong(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec, env := get(t, srv, "/api/v1/songs/jazz01")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var song models.SongView
	decodeData(t, env, &song)
	if song.Title != "Blue Evening" || song.Duration != "3:30" || song.DurationMS != 210000 {
		t.Errorf("song = %+v", song)
	}
	if song.Features.Acousticness != 0.80 {
		t.Errorf("features = %+v", song.Features)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("missing ETag")
	}

	rec, env = get(t, srv, "/api/v1/songs/nothere")
	if rec.Code != http.StatusNotFound || env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("unknown track: %d %+v", rec.Code, env.Error)
	}
	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("error Cache-Control = %q, want no-store", rec.Header().Get("Cache-Control"))
	}

	rec, env = get(t, srv, "/api/v1/songs/bad-id!")
	if rec.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != ErrCodeValidation {
		t.Errorf("malformed id: %d %+v", rec.Code, env.Error)
	}
}

func TestRecommendations(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec, env := get(t, srv, "/api/v1/recommendations?track_id=pop001&age=16&count=5")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var got models.RecommendationsResponse
	decodeData(t, env, &got)
	if got.Mode != "similar" || got.AgeGroup != "teen" || got.Age != 16 {
		t.Errorf("header fields = %+v", got)
	}
	if got.Seed == nil || got.Seed.ID != "pop001" {
		t.Errorf("seed = %+v, want pop001", got.Seed)
	}
	if len(got.Items) != 5 || got.Count != 5 {
		t.Fatalf("items = %d, want 5", len(got.Items))
	}
	if got.Candidates != 9 {
		t.Errorf("candidates = %d, want 9", got.Candidates)
	}
	for i, it := range got.Items {
		if it.ID == "pop001" {
			t.Error("seed song returned as a recommendation")
		}
		if it.Rank != i+1 {
			t.Errorf("item %d rank = %d", i, it.Rank)
		}
		if i > 0 && it.Score > got.Items[i-1].Score {
			t.Errorf("scores not descending at %d: %v > %v", i, it.Score, got.Items[i-1].Score)
		}
		if it.Duration != "3:30" {
			t.Errorf("item duration = %q", it.Duration)
		}
	}
}

func TestRecommendations_DefaultCount(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	_, env := get(t, srv, "/api/v1/recommendations?track_id=jazz01&age=45")
	var got models.RecommendationsResponse
	decodeData(t, env, &got)
	// default 10, but only nine other songs exist
	if len(got.Items) != 9 {
		t.Errorf("items = %d, want 9", len(got.Items))
	}
	if got.AgeGroup != "adult" {
		t.Errorf("age_group = %q, want adult", got.AgeGroup)
	}
}

func TestRecommendations_Errors(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
		wantMsg    string
		wantField  string
	}{
		{"age too low", "/api/v1/recommendations?track_id=pop001&age=7", http.StatusBadRequest, ErrCodeValidation,
			"age must be between 13 and 100, got 7", "age"},
		{"age too high", "/api/v1/recommendations?track_id=pop001&age=101", http.StatusBadRequest, ErrCodeValidation,
			"age must be between 13 and 100, got 101", "age"},
		{"count too low", "/api/v1/recommendations?track_id=pop001&age=30&count=3", http.StatusBadRequest, ErrCodeValidation,
			"count must be between 5 and 20, got 3", "count"},
		{"count too high", "/api/v1/recommendations?track_id=pop001&age=30&count=21", http.StatusBadRequest, ErrCodeValidation,
			"count must be between 5 and 20, got 21", "count"},
		{"missing track", "/api/v1/recommendations?age=30", http.StatusBadRequest, ErrCodeValidation,
			"track_id is required", "track_id"},
		{"missing age", "/api/v1/recommendations?track_id=pop001", http.StatusBadRequest, ErrCodeValidation,
			"age is required", "age"},
		{"non-numeric age", "/api/v1/recommendations?track_id=pop001&age=old", http.StatusBadRequest, ErrCodeValidation,
			`age must be an integer, got "old"`, ""},
		{"unknown track", "/api/v1/recommendations?track_id=missing1&age=30", http.StatusNotFound, ErrCodeNotFound,
			`Track "missing1" not found in catalog`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := get(t, srv, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if env.Status != "error" || env.Error == nil {
				t.Fatalf("envelope = %+v", env)
			}
			if env.Error.Code != tt.wantCode || env.Error.Message != tt.wantMsg {
				t.Errorf("error = %s %q, want %s %q", env.Error.Code, env.Error.Message, tt.wantCode, tt.wantMsg)
			}
			if tt.wantField != "" && env.Error.Details["field"] != tt.wantField {
				t.Errorf("details.field = %v, want %s", env.Error.Details["field"], tt.wantField)
			}
		})
	}
}

func TestAgeRecommendations(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec, env := get(t, srv, "/api/v1/recommendations/age?age=16&count=5")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got models.RecommendationsResponse
	decodeData(t, env, &got)

	if got.Mode != "age_group" || got.Seed != nil || got.Selection != "genre_and_mood" {
		t.Errorf("response = %+v", got)
	}
	want := []string{"pop001", "pop002", "hip001", "edm001"}
	if len(got.Items) != len(want) {
		t.Fatalf("items = %d, want %d", len(got.Items), len(want))
	}
	for i, id := range want {
		if got.Items[i].ID != id {
			t.Errorf("item[%d] = %s, want %s", i, got.Items[i].ID, id)
		}
	}

	rec, env = get(t, srv, "/api/v1/recommendations/age?age=12")
	if rec.Code != http.StatusBadRequest || env.Error == nil || !strings.Contains(env.Error.Message, "between 13 and 100") {
		t.Errorf("age 12: %d %+v", rec.Code, env.Error)
	}
}

func TestAgeGroups(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	_, env := get(t, srv, "/api/v1/age-groups")
	var groups []models.AgeGroupView
	decodeData(t, env, &groups)

	want := []string{"teen", "young_adult", "adult", "senior"}
	if len(groups) != len(want) {
		t.Fatalf("groups = %d, want %d", len(groups), len(want))
	}
	for i, g := range want {
		if groups[i].Group != g || len(groups[i].Genres) == 0 {
			t.Errorf("group[%d] = %+v, want %s", i, groups[i], g)
		}
	}
}

func TestCatalogStats(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	_, env := get(t, srv, "/api/v1/catalog/stats")
	var st models.CatalogStatsResponse
	decodeData(t, env, &st)

	if st.TotalSongs != 10 || st.Genres != 9 {
		t.Errorf("stats = %+v", st)
	}
	if st.GenreCounts["pop"] != 2 {
		t.Errorf("pop count = %d, want 2", st.GenreCounts["pop"])
	}
	// these columns are constant across the test catalog
	wantDegenerate := []string{"speechiness", "instrumentalness", "liveness"}
	if len(st.DegenerateFeatures) != len(wantDegenerate) {
		t.Fatalf("degenerate = %v, want %v", st.DegenerateFeatures, wantDegenerate)
	}
	for i, name := range wantDegenerate {
		if st.DegenerateFeatures[i] != name {
			t.Errorf("degenerate[%d] = %s, want %s", i, st.DegenerateFeatures[i], name)
		}
	}
	if len(st.Features) != 9 {
		t.Errorf("features = %d, want 9", len(st.Features))
	}
}

func TestNewHandler_NilEngine(t *testing.T) {
	t.Parallel()
	if _, err := NewHandler(nil, HandlerConfig{}); err == nil {
		t.Error("NewHandler(nil) error = nil")
	}
}
