// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/tunematch/internal/recommend"
)

func TestParseIntQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query   string
		want    int
		wantErr string
	}{
		{"", 0, ""},
		{"n=", 0, ""},
		{"n=15", 15, ""},
		{"n=%2015%20", 15, ""},
		{"n=-3", -3, ""},
		{"n=1.5", 0, `n must be an integer, got "1.5"`},
		{"n=abc", 0, `n must be an integer, got "abc"`},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got, err := parseIntQuery(req, "n")
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseIntQueries_StopsAtFirstError(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/?age=x&count=y", nil)
	_, err := parseIntQueries(req, "age", "count")
	if err == nil || err.Error() != `age must be an integer, got "x"` {
		t.Errorf("error = %v", err)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
		{"ünïcode", "ünïcode"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()
	a := generateETag([]byte(`{"a":1}`))
	b := generateETag([]byte(`{"a":1}`))
	c := generateETag([]byte(`{"a":2}`))

	if a != b {
		t.Errorf("same body gave different tags: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("different bodies gave the same tag %s", a)
	}
	if len(a) < 3 || a[0] != '"' || a[len(a)-1] != '"' {
		t.Errorf("tag %s is not quoted", a)
	}
}

func TestRespondRecommendError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"input", &recommend.InputError{Field: "age", Value: 5, Min: 13, Max: 100}, http.StatusBadRequest, ErrCodeValidation},
		{"not found", fmt.Errorf("lookup: %w", recommend.ErrNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, ErrCodeTimeout},
		{"canceled", context.Canceled, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?track_id=abc", nil)
			rec := httptest.NewRecorder()
			respondRecommendError(rec, req, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var env envelope
			if err := decodeBody(rec, &env); err != nil {
				t.Fatal(err)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
			if tt.wantStatus == http.StatusInternalServerError && env.Error.Message == "boom" {
				t.Error("internal error text leaked to client")
			}
		})
	}
}
