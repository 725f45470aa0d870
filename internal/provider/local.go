package provider

import (
	"context"
	"strings"

	"github.com/claimradar/claimradar/internal/model"
)

// LocalProvider matches claims against a built-in fact table. It performs no
// network I/O, so the pipeline always has at least one provider that can
// answer even with zero configured network services.
type LocalProvider struct {
	name  string
	facts map[string]model.Fact
}

// NewLocalProvider creates the offline fallback provider
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{
		name: "Local Database",
		facts: map[string]model.Fact{
			"vaccine": {
				Text:      "Claims about vaccines containing microchips are false.",
				Rating:    "False",
				URL:       "https://www.example.com/facts/vaccines",
				Publisher: "Fact Check Database",
			},
			"moon": {
				Text:      "While the Moon has ice deposits, there are no vast liquid oceans under its surface.",
				Rating:    "False",
				URL:       "https://www.example.com/facts/moon",
				Publisher: "Space Facts Database",
			},
			"5g": {
				Text:      "There is no evidence linking 5G networks to illness.",
				Rating:    "False",
				URL:       "https://www.example.com/facts/5g",
				Publisher: "Fact Check Database",
			},
		},
	}
}

// Name returns the provider name
func (p *LocalProvider) Name() string {
	return p.name
}

// Verify matches the claim text against the keyword fact table
func (p *LocalProvider) Verify(_ context.Context, claimText string) model.ProviderResult {
	lower := strings.ToLower(claimText)

	var matched []model.Fact
	total := 0.0
	for keyword, fact := range p.facts {
		if strings.Contains(lower, keyword) {
			matched = append(matched, fact)
			total += RatingScore(fact.Rating)
		}
	}

	result := model.ProviderResult{
		Found:  len(matched) > 0,
		Facts:  matched,
		Source: p.name,
	}
	if len(matched) > 0 {
		result.Confidence = total / float64(len(matched))
	}
	return result
}
