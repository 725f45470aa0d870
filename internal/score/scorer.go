package score

import (
	"fmt"

	"github.com/claimradar/claimradar/internal/model"
)

// Weights for the credibility terms. Fixed; they must sum to 1.0.
const (
	weightSourceReliability = 0.4
	weightFactMatches       = 0.3
	weightClaimConfidence   = 0.3
)

// Scorer combines a verification result and the claim-extraction confidence
// into a single credibility score
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score is a pure function: it never fails, and missing or empty inputs
// default to zero contributions.
func (s *Scorer) Score(claim model.Claim, factCheck model.FactCheckResult) model.CredibilityScore {
	var (
		total     float64
		reasoning []string
	)

	// Source reliability only counts for verified claims
	sourceScore := 0.0
	if factCheck.Verified {
		sourceScore = evaluateSources(factCheck.Sources)
		total += sourceScore * weightSourceReliability
		if sourceScore > 0 {
			reasoning = append(reasoning, fmt.Sprintf("Source reliability: %.2f", sourceScore))
		}
	}

	factScore := 0.0
	if len(factCheck.Facts) > 0 {
		factScore = float64(len(factCheck.Facts)) * 0.2
		if factScore > 1.0 {
			factScore = 1.0
		}
		total += factScore * weightFactMatches
		reasoning = append(reasoning, fmt.Sprintf("Fact check matches: %.2f", factScore))
	}

	confidenceScore := claim.Confidence
	if confidenceScore > 0 {
		total += confidenceScore * weightClaimConfidence
		reasoning = append(reasoning, fmt.Sprintf("Claim confidence: %.2f", confidenceScore))
	}

	if total < 0 {
		total = 0
	}
	if total > 1 {
		total = 1
	}

	return model.CredibilityScore{
		Score:           total,
		RiskLevel:       RiskLevelFor(total),
		Reasoning:       reasoning,
		SourceScore:     sourceScore,
		FactScore:       factScore,
		ConfidenceScore: confidenceScore,
	}
}

// evaluateSources scores source trust from the number of distinct sources,
// capped at 0.8
func evaluateSources(sources []string) float64 {
	s := float64(len(sources)) * 0.2
	if s > 0.8 {
		s = 0.8
	}
	return s
}

// RiskLevelFor maps a clamped credibility score to its risk band:
// [0.7,1.0] low, [0.4,0.7) medium, [0,0.4) high.
func RiskLevelFor(score float64) model.RiskLevel {
	switch {
	case score >= 0.7:
		return model.RiskLow
	case score >= 0.4:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}
