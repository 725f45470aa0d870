package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/claimradar/claimradar/internal/cache"
	"github.com/claimradar/claimradar/internal/metrics"
	"github.com/claimradar/claimradar/internal/model"
	"github.com/claimradar/claimradar/internal/provider"
)

// Aggregator fans a claim out to every configured provider, merges the
// successes, and tolerates partial failure. Results are cached by raw claim
// text so repeated lookups (including repeated failures) stay inside the
// cache window.
type Aggregator struct {
	providers   []provider.Provider
	cache       *cache.ResultCache
	callTimeout time.Duration
	log         *slog.Logger
}

// New creates an aggregator over a fixed-order provider set. cache may be
// nil to disable caching (every call fans out).
func New(providers []provider.Provider, resultCache *cache.ResultCache, callTimeout time.Duration) *Aggregator {
	if callTimeout <= 0 {
		callTimeout = 10 * time.Second
	}
	if len(providers) == 0 {
		slog.Warn("aggregator created with no providers")
	}
	return &Aggregator{
		providers:   providers,
		cache:       resultCache,
		callTimeout: callTimeout,
		log:         slog.Default().With("component", "aggregator"),
	}
}

// Verify produces one unified verification result for the claim text.
// Every provider is attempted; the claim is unverifiable only when all of
// them fail or come back empty-handed.
func (a *Aggregator) Verify(ctx context.Context, claimText string) model.FactCheckResult {
	if a.cache == nil {
		return a.fanOut(ctx, claimText)
	}

	// The per-claim lock makes miss-then-fill atomic: a second request for
	// the same claim waits here instead of fanning out again.
	lock := a.cache.Lock(claimText)
	lock.Lock()
	defer lock.Unlock()

	if cached, ok := a.cache.Get(claimText); ok {
		metrics.VerificationCache.WithLabelValues("hit").Inc()
		return cached
	}
	metrics.VerificationCache.WithLabelValues("miss").Inc()

	result := a.fanOut(ctx, claimText)

	// Cache errors too, so repeated failing lookups are rate-limited by the
	// cache window rather than hammering providers.
	a.cache.Set(claimText, result)

	return result
}

// fanOut calls every provider concurrently and merges what comes back
func (a *Aggregator) fanOut(ctx context.Context, claimText string) model.FactCheckResult {
	results := make([]model.ProviderResult, len(a.providers))

	var wg sync.WaitGroup
	for i, p := range a.providers {
		wg.Add(1)
		go func(idx int, p provider.Provider) {
			defer wg.Done()
			results[idx] = a.callProvider(ctx, p, claimText)
		}(i, p)
	}
	wg.Wait()

	return a.merge(results)
}

// callProvider runs one provider with a bounded timeout. A timed-out
// provider is indistinguishable from one that returned not-found with an
// error message.
func (a *Aggregator) callProvider(ctx context.Context, p provider.Provider, claimText string) model.ProviderResult {
	callCtx, cancel := context.WithTimeout(ctx, a.callTimeout)
	defer cancel()

	start := time.Now()
	result := p.Verify(callCtx, claimText)
	metrics.ProviderDuration.WithLabelValues(p.Name()).Observe(time.Since(start).Seconds())

	if result.Source == "" {
		result.Source = p.Name()
	}

	switch {
	case result.Err != "":
		metrics.ProviderRequests.WithLabelValues(p.Name(), "error").Inc()
	case result.Found || len(result.Facts) > 0:
		metrics.ProviderRequests.WithLabelValues(p.Name(), "found").Inc()
	default:
		metrics.ProviderRequests.WithLabelValues(p.Name(), "not_found").Inc()
	}

	return result
}

// merge folds the per-provider results into one FactCheckResult. A provider
// contributes whenever it produced content, regardless of its Found flag;
// only Found providers enter the confidence average.
func (a *Aggregator) merge(results []model.ProviderResult) model.FactCheckResult {
	var (
		facts        []model.Fact
		seenFacts    = make(map[string]bool)
		sources      []string
		seenSources  = make(map[string]bool)
		confidence   float64
		foundCount   int
		contributed  int
		failureParts []string
	)

	for _, r := range results {
		usable := r.Found || len(r.Facts) > 0
		if r.Err != "" && !usable {
			failureParts = append(failureParts, fmt.Sprintf("%s: %s", r.Source, r.Err))
			continue
		}
		if !usable {
			failureParts = append(failureParts, fmt.Sprintf("%s: no fact checks found", r.Source))
			continue
		}

		contributed++

		addSource := func(name string) {
			if name != "" && !seenSources[name] {
				seenSources[name] = true
				sources = append(sources, name)
			}
		}

		// Dedupe by URL when present, full structural equality otherwise.
		// Fact publishers count as sources alongside the provider itself.
		for _, f := range r.Facts {
			addSource(f.Publisher)
			key := f.Key()
			if seenFacts[key] {
				continue
			}
			seenFacts[key] = true
			facts = append(facts, f)
		}
		addSource(r.Source)

		if r.Found {
			confidence += r.Confidence
			foundCount++
		}
	}

	if contributed == 0 {
		errMsg := "all providers failed: " + strings.Join(failureParts, "; ")
		a.log.Warn("claim unverifiable", "providers", len(results))
		return model.FactCheckResult{
			Verified:   false,
			Facts:      []model.Fact{},
			Sources:    []string{},
			Confidence: 0.0,
			Status:     model.StatusError,
			Error:      errMsg,
		}
	}

	if foundCount > 0 {
		confidence /= float64(foundCount)
	}

	return model.FactCheckResult{
		Verified:   true,
		Facts:      facts,
		Sources:    sources,
		Confidence: confidence,
		Status:     model.StatusSuccess,
	}
}
