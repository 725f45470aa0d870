package aggregate

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/claimradar/claimradar/internal/cache"
	"github.com/claimradar/claimradar/internal/model"
	"github.com/claimradar/claimradar/internal/provider"
)

// stubProvider returns a canned result and counts calls
type stubProvider struct {
	name   string
	result model.ProviderResult
	calls  atomic.Int64
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Verify(ctx context.Context, claimText string) model.ProviderResult {
	s.calls.Add(1)
	return s.result
}

func TestAggregator_AllProvidersFail(t *testing.T) {
	failing := &stubProvider{
		name:   "Broken",
		result: model.ProviderResult{Err: "service unavailable"},
	}
	empty := &stubProvider{
		name:   "Empty",
		result: model.ProviderResult{Found: false},
	}

	agg := New([]provider.Provider{failing, empty}, nil, time.Second)
	result := agg.Verify(context.Background(), "Unverifiable claim.")

	if result.Verified {
		t.Error("Expected unverified result")
	}
	if result.Status != model.StatusError {
		t.Errorf("Expected error status, got %s", result.Status)
	}
	if result.Error == "" {
		t.Error("Expected aggregated failure message")
	}
	if len(result.Facts) != 0 || len(result.Sources) != 0 {
		t.Errorf("Expected empty facts and sources, got %v / %v", result.Facts, result.Sources)
	}
	if result.Confidence != 0 {
		t.Errorf("Expected zero confidence, got %f", result.Confidence)
	}
}

func TestAggregator_PartialFailureStillSucceeds(t *testing.T) {
	failing := &stubProvider{
		name:   "Broken",
		result: model.ProviderResult{Err: "timeout"},
	}
	working := &stubProvider{
		name: "Working",
		result: model.ProviderResult{
			Found:      true,
			Facts:      []model.Fact{{Text: "reviewed", Rating: "FALSE", Publisher: "P"}},
			Source:     "Working",
			Confidence: 0.0,
		},
	}

	agg := New([]provider.Provider{failing, working}, nil, time.Second)
	result := agg.Verify(context.Background(), "Some claim.")

	if !result.Verified {
		t.Fatal("Expected verified result despite one provider failing")
	}
	if result.Status != model.StatusSuccess {
		t.Errorf("Expected success status, got %s", result.Status)
	}
	if len(result.Facts) != 1 {
		t.Fatalf("Expected 1 fact, got %d", len(result.Facts))
	}
	// Fact publisher and provider name both appear as sources
	wantSources := map[string]bool{"P": false, "Working": false}
	for _, s := range result.Sources {
		if _, ok := wantSources[s]; !ok {
			t.Errorf("Unexpected source %q", s)
		}
		wantSources[s] = true
	}
	for s, seen := range wantSources {
		if !seen {
			t.Errorf("Missing source %q", s)
		}
	}
	if result.Confidence != 0.0 {
		t.Errorf("Expected confidence 0.0, got %f", result.Confidence)
	}
}

func TestAggregator_FactDeduplication(t *testing.T) {
	first := &stubProvider{
		name: "First",
		result: model.ProviderResult{
			Found:      true,
			Facts:      []model.Fact{{Text: "same review", Rating: "FALSE", URL: "https://example.com/fc"}},
			Source:     "First",
			Confidence: 0.2,
		},
	}
	second := &stubProvider{
		name: "Second",
		result: model.ProviderResult{
			Found: true,
			Facts: []model.Fact{
				{Text: "same review", Rating: "FALSE", URL: "https://example.com/fc"},
				{Text: "different review", Rating: "MIXED"},
			},
			Source:     "Second",
			Confidence: 0.4,
		},
	}

	agg := New([]provider.Provider{first, second}, nil, time.Second)
	result := agg.Verify(context.Background(), "Duplicated claim.")

	if len(result.Facts) != 2 {
		t.Fatalf("Expected 2 deduplicated facts, got %d", len(result.Facts))
	}
	want := (0.2 + 0.4) / 2
	if diff := result.Confidence - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected averaged confidence %.2f, got %f", want, result.Confidence)
	}
}

func TestAggregator_FactsWithoutFoundStillMerge(t *testing.T) {
	odd := &stubProvider{
		name: "Odd",
		result: model.ProviderResult{
			Found:      false,
			Facts:      []model.Fact{{Text: "orphan review", Rating: "MIXED"}},
			Source:     "Odd",
			Confidence: 0.9,
		},
	}

	agg := New([]provider.Provider{odd}, nil, time.Second)
	result := agg.Verify(context.Background(), "Odd claim.")

	if !result.Verified {
		t.Fatal("Expected merge when facts are present without the found flag")
	}
	if len(result.Facts) != 1 {
		t.Errorf("Expected 1 fact, got %d", len(result.Facts))
	}
	// Not-found providers never enter the confidence average
	if result.Confidence != 0 {
		t.Errorf("Expected zero confidence, got %f", result.Confidence)
	}
}

func TestAggregator_CacheSuppressesRepeatFanOut(t *testing.T) {
	p := &stubProvider{
		name: "Counted",
		result: model.ProviderResult{
			Found:      true,
			Facts:      []model.Fact{{Text: "review", Rating: "TRUE"}},
			Source:     "Counted",
			Confidence: 1.0,
		},
	}

	resultCache := cache.NewResultCache(time.Minute, 0)
	agg := New([]provider.Provider{p}, resultCache, time.Second)

	first := agg.Verify(context.Background(), "Cached claim.")
	second := agg.Verify(context.Background(), "Cached claim.")

	if p.calls.Load() != 1 {
		t.Errorf("Expected 1 provider call, got %d", p.calls.Load())
	}
	if first.Confidence != second.Confidence || len(first.Facts) != len(second.Facts) {
		t.Error("Cached result differs from original")
	}
}

func TestAggregator_ErrorsAreCachedToo(t *testing.T) {
	p := &stubProvider{
		name:   "Flaky",
		result: model.ProviderResult{Err: "boom"},
	}

	resultCache := cache.NewResultCache(time.Minute, 0)
	agg := New([]provider.Provider{p}, resultCache, time.Second)

	agg.Verify(context.Background(), "Failing claim.")
	result := agg.Verify(context.Background(), "Failing claim.")

	if p.calls.Load() != 1 {
		t.Errorf("Expected failure to be cached, provider called %d times", p.calls.Load())
	}
	if result.Status != model.StatusError {
		t.Errorf("Expected cached error status, got %s", result.Status)
	}
}
