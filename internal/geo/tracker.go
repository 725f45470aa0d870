package geo

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/claimradar/claimradar/internal/metrics"
	"github.com/claimradar/claimradar/internal/model"
	"github.com/google/uuid"
)

// TrackedClaim is the scored-claim input folded into geo analytics
type TrackedClaim struct {
	Claim   model.Claim
	Score   model.CredibilityScore
	Sources []string
}

// Tracker folds scored claims into per-country counters and an append-only
// history, and serves the derived hotspot/timeline/trending views.
//
// All state is guarded by one RWMutex; per-country contention is expected to
// be low. Counters only ever increase for the process lifetime. The history
// grows unbounded; retention is an open question upstream and is deliberately
// not guessed at here.
type Tracker struct {
	mu      sync.RWMutex
	records map[string]*model.GeoRecord
	history []model.ClaimHistoryEntry
	now     func() time.Time // Injectable for tests
}

// NewTracker creates an empty geo tracker
func NewTracker() *Tracker {
	return &Tracker{
		records: make(map[string]*model.GeoRecord),
		now:     time.Now,
	}
}

// Track folds one scored claim tagged with a location into the running
// per-country statistics and appends it to the claim history.
func (t *Tracker) Track(claim TrackedClaim, location model.Location) {
	country := CanonicalCountry(location.Country)
	isFalse := claim.Score.RiskLevel == model.RiskHigh

	t.mu.Lock()
	defer t.mu.Unlock()

	rec := t.records[country]
	if rec == nil {
		rec = &model.GeoRecord{
			Country:        country,
			TrendingTopics: make(map[string]int),
			Sources:        make(map[string]int),
		}
		t.records[country] = rec
	}

	rec.TotalClaims++
	if isFalse {
		rec.FalseClaims++
	}

	for _, entity := range claim.Claim.Entities {
		rec.TrendingTopics[entity.Text]++
	}
	for _, source := range claim.Sources {
		rec.Sources[source]++
	}

	t.history = append(t.history, model.ClaimHistoryEntry{
		ID:        uuid.NewString(),
		Text:      claim.Claim.Text,
		Timestamp: t.now().UTC(),
		Country:   country,
		RiskLevel: claim.Score.RiskLevel,
		Sources:   claim.Sources,
		IsFalse:   isFalse,
	})

	metrics.ClaimsTracked.WithLabelValues(country, string(claim.Score.RiskLevel)).Inc()
}

// Hotspots returns one entry per country with claims, ranked by false-claim
// volume. Ties are broken by country name ascending so the ordering is
// stable across calls.
func (t *Tracker) Hotspots() []model.Hotspot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	hotspots := make([]model.Hotspot, 0, len(t.records))
	for _, rec := range t.records {
		if rec.TotalClaims == 0 {
			continue
		}
		ratio := float64(rec.FalseClaims) / float64(rec.TotalClaims)
		hotspots = append(hotspots, model.Hotspot{
			Country:        rec.Country,
			TotalClaims:    rec.TotalClaims,
			FalseClaims:    rec.FalseClaims,
			RiskLevel:      ratioRiskLevel(ratio),
			TrendingTopics: copyCounts(rec.TrendingTopics),
			Sources:        copyCounts(rec.Sources),
		})
	}

	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].FalseClaims != hotspots[j].FalseClaims {
			return hotspots[i].FalseClaims > hotspots[j].FalseClaims
		}
		return hotspots[i].Country < hotspots[j].Country
	})

	return hotspots
}

// RegionalTrends returns the trend snapshot for one country, zero-valued if
// the country has never been seen. Read-only: it never creates a record.
func (t *Tracker) RegionalTrends(countryCodeOrName string) model.RegionStats {
	country := CanonicalCountry(countryCodeOrName)

	t.mu.RLock()
	defer t.mu.RUnlock()

	rec := t.records[country]
	if rec == nil {
		return model.RegionStats{
			Country:        country,
			RiskLevel:      model.RiskLow,
			TrendingTopics: map[string]int{},
			Sources:        map[string]int{},
		}
	}

	ratio := 0.0
	if rec.TotalClaims > 0 {
		ratio = float64(rec.FalseClaims) / float64(rec.TotalClaims)
	}

	return model.RegionStats{
		Country:        rec.Country,
		TotalClaims:    rec.TotalClaims,
		FalseClaims:    rec.FalseClaims,
		RiskLevel:      ratioRiskLevel(ratio),
		TrendingTopics: copyCounts(rec.TrendingTopics),
		Sources:        copyCounts(rec.Sources),
	}
}

// Timeline groups the claim history by UTC calendar date, ascending
func (t *Tracker) Timeline() []model.TimelinePoint {
	t.mu.RLock()
	defer t.mu.RUnlock()

	daily := make(map[string]*model.TimelinePoint)
	for _, entry := range t.history {
		date := entry.Timestamp.UTC().Format("2006-01-02")
		point := daily[date]
		if point == nil {
			point = &model.TimelinePoint{Date: date}
			daily[date] = point
		}
		if entry.IsFalse {
			point.FalseClaims++
		} else {
			point.TrueClaims++
		}
	}

	timeline := make([]model.TimelinePoint, 0, len(daily))
	for _, point := range daily {
		timeline = append(timeline, *point)
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Date < timeline[j].Date
	})

	return timeline
}

// TrendingTopics aggregates topic counts across all countries and returns
// the top limit topics by count. A limit <= 0 defaults to 5.
func (t *Tracker) TrendingTopics(limit int) map[string]int {
	if limit <= 0 {
		limit = 5
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	all := make(map[string]int)
	for _, rec := range t.records {
		for topic, count := range rec.TrendingTopics {
			all[topic] += count
		}
	}

	type topicCount struct {
		topic string
		count int
	}
	ranked := make([]topicCount, 0, len(all))
	for topic, count := range all {
		ranked = append(ranked, topicCount{topic, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].topic < ranked[j].topic
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	top := make(map[string]int, len(ranked))
	for _, tc := range ranked {
		top[tc.topic] = tc.count
	}
	return top
}

// AccuracyRate is the percentage of tracked claims not assessed as false,
// rounded to one decimal. An empty history reads as 100.0.
func (t *Tracker) AccuracyRate() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.history) == 0 {
		return 100.0
	}

	falseCount := 0
	for _, entry := range t.history {
		if entry.IsFalse {
			falseCount++
		}
	}

	rate := (1 - float64(falseCount)/float64(len(t.history))) * 100
	return math.Round(rate*10) / 10
}

// TotalClaims returns the number of claims tracked so far
func (t *Tracker) TotalClaims() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.history)
}

// ActiveCountries lists countries with at least one tracked claim
func (t *Tracker) ActiveCountries() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	countries := make([]string, 0, len(t.records))
	for _, rec := range t.records {
		if rec.TotalClaims > 0 {
			countries = append(countries, rec.Country)
		}
	}
	sort.Strings(countries)
	return countries
}

// RecentClaims returns up to limit history entries, newest first
func (t *Tracker) RecentClaims(limit int) []model.ClaimHistoryEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	recent := make([]model.ClaimHistoryEntry, len(t.history))
	copy(recent, t.history)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})

	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// ratioRiskLevel maps a false-claim ratio to risk bands 0.7/0.4. Same bands
// as credibility scoring but applied to the ratio, not a score.
func ratioRiskLevel(ratio float64) model.RiskLevel {
	switch {
	case ratio >= 0.7:
		return model.RiskHigh
	case ratio >= 0.4:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
