// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/recommend"
)

// testSongs is a small catalog spanning every age group's genres.
func testSongs() []catalog.Song {
	mk := func(id, title, artists, genre string, pop int, dance, energy, valence, acoustic, tempo float64) catalog.Song {
		return catalog.Song{
			ID: id, Title: title, Artists: artists, Album: title + " (Album)", Genre: genre,
			Popularity: pop, DurationMS: 210000,
			Features: catalog.AudioFeatures{
				Danceability: dance, Energy: energy, Loudness: -6 - 10*acoustic, Speechiness: 0.05,
				Acousticness: acoustic, Instrumentalness: 0.01, Liveness: 0.12, Valence: valence, Tempo: tempo,
			},
		}
	}
	return []catalog.Song{
		mk("pop001", "Love Song", "Alice", "pop", 90, 0.80, 0.85, 0.70, 0.10, 124),
		mk("pop002", "Summer Love", "Bob", "pop", 75, 0.75, 0.80, 0.80, 0.15, 120),
		mk("edm001", "Drop It", "DJ Carol", "edm", 60, 0.85, 0.95, 0.60, 0.02, 128),
		mk("hip001", "Street Lines", "Dave", "hip-hop", 70, 0.82, 0.70, 0.55, 0.08, 95),
		mk("rock01", "Loud Guitars", "Eve Band", "rock", 65, 0.45, 0.90, 0.40, 0.05, 140),
		mk("jazz01", "Blue Evening", "Frank Trio", "jazz", 40, 0.50, 0.30, 0.35, 0.80, 90),
		mk("folk01", "Old Road", "Grace", "folk", 35, 0.40, 0.35, 0.45, 0.85, 100),
		mk("clas01", "Nocturne", "Henry Orchestra", "classical", 50, 0.20, 0.10, 0.20, 0.95, 70),
		mk("blue01", "Delta Love", "Ivy", "blues", 30, 0.55, 0.45, 0.50, 0.60, 85),
		mk("acou01", "Quiet Room", "Jack", "acoustic", 45, 0.50, 0.30, 0.30, 0.90, 80),
	}
}

func newTestEngine(t *testing.T, songs []catalog.Song) *recommend.Engine {
	t.Helper()
	nc := recommend.Normalize(catalog.New(songs), zerolog.Nop())
	engine, err := recommend.NewEngine(nc, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

// newTestServer returns the full router over testSongs with rate limiting off.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	return newTestServerWith(t, testSongs(), nil)
}

func newTestServerWith(t *testing.T, songs []catalog.Song, mwCfg *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	h, err := NewHandler(newTestEngine(t, songs), DefaultHandlerConfig())
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	if mwCfg == nil {
		mwCfg = DefaultChiMiddlewareConfig()
		mwCfg.CORSAllowedOrigins = []string{"*"}
		mwCfg.RateLimitDisabled = true
	}
	return NewRouter(h, NewChiMiddleware(mwCfg)).SetupChi()
}

// envelope mirrors models.APIResponse with a raw data payload.
type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata struct {
		RequestID   string `json:"request_id"`
		QueryTimeMS int64  `json:"query_time_ms"`
	} `json:"metadata"`
	Error *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("GET %s: decode body %q: %v", target, rec.Body.String(), err)
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func decodeBody(rec *httptest.ResponseRecorder, env *envelope) error {
	return json.Unmarshal(rec.Body.Bytes(), env)
}
