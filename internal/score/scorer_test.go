package score

import (
	"math"
	"strings"
	"testing"

	"github.com/claimradar/claimradar/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScorer_VerifiedClaim(t *testing.T) {
	scorer := NewScorer()

	claim := model.Claim{Text: "Test claim.", Confidence: 0.8}
	factCheck := model.FactCheckResult{
		Verified: true,
		Facts: []model.Fact{
			{Text: "reviewed claim", Rating: "TRUE", Publisher: "Checker"},
			{Text: "another review", Rating: "MOSTLY TRUE", Publisher: "Other"},
		},
		Sources: []string{"Checker", "Other", "Google Fact Check"},
		Status:  model.StatusSuccess,
	}

	result := scorer.Score(claim, factCheck)

	// sources: 3*0.2=0.6, facts: 2*0.2=0.4, confidence: 0.8
	want := 0.6*0.4 + 0.4*0.3 + 0.8*0.3
	if !almostEqual(result.Score, want) {
		t.Errorf("Expected score %.4f, got %.4f", want, result.Score)
	}
	if result.RiskLevel != model.RiskMedium {
		t.Errorf("Expected medium risk, got %s", result.RiskLevel)
	}
	if len(result.Reasoning) != 3 {
		t.Fatalf("Expected 3 reasoning lines, got %d: %v", len(result.Reasoning), result.Reasoning)
	}
	if !strings.HasPrefix(result.Reasoning[0], "Source reliability:") {
		t.Errorf("Expected source line first, got %q", result.Reasoning[0])
	}
}

func TestScorer_UnverifiedClaimSkipsSources(t *testing.T) {
	scorer := NewScorer()

	claim := model.Claim{Text: "Test claim.", Confidence: 0.5}
	factCheck := model.FactCheckResult{
		Verified: false,
		Sources:  []string{"Local Database"},
		Status:   model.StatusError,
	}

	result := scorer.Score(claim, factCheck)

	if result.SourceScore != 0 {
		t.Errorf("Expected no source contribution for unverified claim, got %f", result.SourceScore)
	}
	if !almostEqual(result.Score, 0.5*0.3) {
		t.Errorf("Expected score 0.15, got %f", result.Score)
	}
	if result.RiskLevel != model.RiskHigh {
		t.Errorf("Expected high risk, got %s", result.RiskLevel)
	}
}

func TestScorer_ZeroInputs(t *testing.T) {
	scorer := NewScorer()

	result := scorer.Score(model.Claim{}, model.FactCheckResult{})

	if result.Score != 0 {
		t.Errorf("Expected zero score, got %f", result.Score)
	}
	if result.RiskLevel != model.RiskHigh {
		t.Errorf("Expected high risk, got %s", result.RiskLevel)
	}
	if len(result.Reasoning) != 0 {
		t.Errorf("Expected no reasoning lines, got %v", result.Reasoning)
	}
}

func TestScorer_FactScoreCapped(t *testing.T) {
	scorer := NewScorer()

	facts := make([]model.Fact, 8)
	for i := range facts {
		facts[i] = model.Fact{Text: "fact", Rating: "TRUE"}
	}

	result := scorer.Score(model.Claim{}, model.FactCheckResult{Verified: true, Facts: facts})

	if !almostEqual(result.FactScore, 1.0) {
		t.Errorf("Expected fact score capped at 1.0, got %f", result.FactScore)
	}
}

func TestEvaluateSources_Cap(t *testing.T) {
	if got := evaluateSources([]string{"a", "b", "c", "d", "e", "f"}); !almostEqual(got, 0.8) {
		t.Errorf("Expected cap 0.8, got %f", got)
	}
	if got := evaluateSources(nil); got != 0 {
		t.Errorf("Expected 0 for no sources, got %f", got)
	}
}

func TestRiskLevelFor_Bands(t *testing.T) {
	cases := []struct {
		score float64
		want  model.RiskLevel
	}{
		{1.0, model.RiskLow},
		{0.7, model.RiskLow},
		{0.69, model.RiskMedium},
		{0.4, model.RiskMedium},
		{0.39, model.RiskHigh},
		{0.0, model.RiskHigh},
	}

	for _, tc := range cases {
		if got := RiskLevelFor(tc.score); got != tc.want {
			t.Errorf("RiskLevelFor(%.2f) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
