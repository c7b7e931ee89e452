// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestNewEngine(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(nil, nil, discard()); err == nil {
		t.Error("NewEngine(nil catalog) error = nil")
	}

	bad := DefaultConfig()
	bad.Count.Min = 0
	if _, err := NewEngine(exampleCatalog(t), bad, discard()); err == nil {
		t.Error("NewEngine(invalid config) error = nil")
	}

	e, err := NewEngine(exampleCatalog(t), nil, discard())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if e.Catalog().Len() != 3 {
		t.Errorf("Catalog().Len() = %d, want 3", e.Catalog().Len())
	}
	cfg := e.GetConfig()
	cfg.MaxAgeAdjustment = 0.4
	if e.GetConfig().MaxAgeAdjustment != 0.15 {
		t.Error("GetConfig() returned the engine's own config")
	}
}

func TestEngineRecommend(t *testing.T) {
	t.Parallel()

	e, err := NewEngine(exampleCatalog(t), nil, discard())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	resp, err := e.Recommend(context.Background(), Request{TrackID: "A", Age: 25, Count: 5, RequestID: "req-1"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Items) != 2 || resp.Items[0].Song.ID != "B" {
		t.Errorf("Items = %+v", resp.Items)
	}

	meta := resp.Metadata
	if meta.RequestID != "req-1" || meta.Mode != ModeSimilar || meta.TrackID != "A" || meta.Age != 25 || meta.Count != 2 {
		t.Errorf("Metadata = %+v", meta)
	}
	if meta.Timestamp.IsZero() {
		t.Error("Metadata.Timestamp is zero")
	}
}

func TestEngineGeneratesRequestID(t *testing.T) {
	t.Parallel()

	e, _ := NewEngine(exampleCatalog(t), nil, discard())
	resp, err := e.RecommendForAge(context.Background(), AgeRequest{Age: 40, Count: 5})
	if err != nil {
		t.Fatalf("RecommendForAge() error = %v", err)
	}
	if len(resp.Metadata.RequestID) != 36 {
		t.Errorf("RequestID = %q, want a UUID", resp.Metadata.RequestID)
	}
	if resp.Metadata.Mode != ModeAgeGroup {
		t.Errorf("Mode = %q, want %q", resp.Metadata.Mode, ModeAgeGroup)
	}
}

func TestEngineMetrics(t *testing.T) {
	t.Parallel()

	e, _ := NewEngine(exampleCatalog(t), nil, discard())
	ctx := context.Background()

	_, _ = e.Recommend(ctx, Request{TrackID: "A", Age: 30, Count: 5})
	_, _ = e.Recommend(ctx, Request{TrackID: "A", Age: 30, Count: 5})
	_, err := e.Recommend(ctx, Request{TrackID: "missing", Age: 30, Count: 5})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Recommend(missing) error = %v, want ErrNotFound", err)
	}
	_, err = e.Recommend(ctx, Request{TrackID: "A", Age: 8, Count: 5})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Recommend(age 8) error = %v, want ErrInvalidInput", err)
	}

	m := e.GetMetrics()
	if m.RequestCount != 4 || m.NotFoundCount != 1 || m.InvalidCount != 1 || m.ErrorCount != 0 {
		t.Errorf("GetMetrics() = %+v", m)
	}
	if m.AverageLatencyMS < 0 {
		t.Errorf("AverageLatencyMS = %v", m.AverageLatencyMS)
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	t.Parallel()

	nc := randomCatalog(t, 200, 21)
	e, _ := NewEngine(nc, nil, discard())
	want, err := e.Recommend(context.Background(), Request{TrackID: nc.Catalog().At(0).ID, Age: 22, Count: 20})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Recommend(context.Background(), Request{TrackID: nc.Catalog().At(0).ID, Age: 22, Count: 20})
			if err != nil {
				errs <- err.Error()
				return
			}
			for i := range want.Items {
				if got.Items[i].Song.ID != want.Items[i].Song.ID {
					errs <- "concurrent result differs"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
	if got := e.GetMetrics().RequestCount; got != 17 {
		t.Errorf("RequestCount = %d, want 17", got)
	}
}
