package model

import "time"

// Location tags an analyzed claim with where it was observed
type Location struct {
	Country string `json:"country,omitempty"` // ISO-ish country code or free-form name
}

// GeoRecord holds running per-country counters. Counters are monotonically
// non-decreasing for the process lifetime; FalseClaims <= TotalClaims always.
type GeoRecord struct {
	Country        string         `json:"country"`
	TotalClaims    uint64         `json:"total_claims"`
	FalseClaims    uint64         `json:"false_claims"`
	TrendingTopics map[string]int `json:"trending_topics"`
	Sources        map[string]int `json:"sources"`
}

// Hotspot is one entry of the ranked per-country misinformation view
type Hotspot struct {
	Country        string         `json:"country"`
	TotalClaims    uint64         `json:"total_claims"`
	FalseClaims    uint64         `json:"false_claims"`
	RiskLevel      RiskLevel      `json:"risk_level"` // Derived from the false-claim ratio
	TrendingTopics map[string]int `json:"trending_topics"`
	Sources        map[string]int `json:"sources"`
}

// RegionStats is the per-country trend snapshot, zero-valued for unseen countries
type RegionStats struct {
	Country        string         `json:"country"`
	TotalClaims    uint64         `json:"total_claims"`
	FalseClaims    uint64         `json:"false_claims"`
	RiskLevel      RiskLevel      `json:"risk_level"`
	TrendingTopics map[string]int `json:"trending_topics"`
	Sources        map[string]int `json:"sources"`
}

// ClaimHistoryEntry is an append-only log record of one tracked claim
type ClaimHistoryEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"` // UTC
	Country   string    `json:"country"`
	RiskLevel RiskLevel `json:"risk_level"`
	Sources   []string  `json:"sources"`
	IsFalse   bool      `json:"is_false"`
}

// TimelinePoint aggregates claim outcomes for one UTC calendar date
type TimelinePoint struct {
	Date        string `json:"date"` // YYYY-MM-DD
	TrueClaims  int    `json:"true_claims"`
	FalseClaims int    `json:"false_claims"`
}
