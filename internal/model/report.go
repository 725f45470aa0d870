package model

import "time"

// ClaimAnalysis bundles one extracted claim with its verification outcome
// and credibility assessment
type ClaimAnalysis struct {
	Claim     Claim            `json:"claim"`
	FactCheck FactCheckResult  `json:"fact_check"`
	Score     CredibilityScore `json:"credibility"`
}

// AnalysisResult is the complete pipeline output for one piece of content
type AnalysisResult struct {
	ID         string          `json:"id"`
	Location   Location        `json:"location,omitzero"`
	AnalyzedAt time.Time       `json:"analyzed_at"` // UTC
	Claims     []ClaimAnalysis `json:"claims"`
}

// HighRiskCount returns how many analyzed claims landed in the high risk band
func (r AnalysisResult) HighRiskCount() int {
	n := 0
	for _, ca := range r.Claims {
		if ca.Score.RiskLevel == RiskHigh {
			n++
		}
	}
	return n
}
