package extract

import (
	"strings"
	"unicode"

	"github.com/claimradar/claimradar/internal/model"
)

// ClaimExtractor flags sentences that look like factual claims
type ClaimExtractor struct {
	indicators []string
}

// NewClaimExtractor creates a new claim extractor
func NewClaimExtractor() *ClaimExtractor {
	return &ClaimExtractor{
		indicators: []string{
			"according to", "reported", "estimates", "shows", "found", "suggests",
			"stated", "announced", "revealed", "confirmed", "indicates", "claims",
			"discovered", "proves", "demonstrates", "recently", "new study",
			"research shows", "scientists", "experts say", "evidence",
		},
	}
}

// Extract splits text into sentences and returns the ones that read as
// factual claims. It never fails: any internal anomaly degrades to an empty
// result, and "no claims found" is a normal outcome for the caller.
func (e *ClaimExtractor) Extract(text string) (claims []model.Claim) {
	defer func() {
		if r := recover(); r != nil {
			claims = nil
		}
	}()

	for _, sentence := range splitSentences(text) {
		tokens := strings.Fields(sentence)
		if len(tokens) < 3 {
			continue
		}

		hasIndicator := e.matchIndicator(sentence)
		hasDigit := containsDigit(sentence)
		entities := detectEntities(tokens)

		// A sentence qualifies when it carries an indicator phrase, or is a
		// statement with entities, or combines entities with numbers.
		isStatement := len(tokens) >= 4 && len(entities) > 0
		if !hasIndicator && !isStatement && !(len(entities) > 0 && hasDigit) {
			continue
		}

		claims = append(claims, model.Claim{
			Text:       restorePeriod(sentence),
			Entities:   entities,
			Confidence: confidence(tokens, entities, hasIndicator),
		})
	}

	return claims
}

// matchIndicator checks for claim-indicator phrases, case-insensitive
func (e *ClaimExtractor) matchIndicator(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, indicator := range e.indicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// detectEntities tags capitalized tokens as entities and digit-bearing tokens
// as numbers. A single token can yield both tags.
func detectEntities(tokens []string) []model.Entity {
	var entities []model.Entity
	for _, token := range tokens {
		runes := []rune(token)
		if len(runes) > 1 && unicode.IsUpper(runes[0]) {
			entities = append(entities, model.Entity{Text: token, Kind: model.EntityKindEntity})
		}
		if containsDigit(token) {
			entities = append(entities, model.Entity{Text: token, Kind: model.EntityKindNumber})
		}
	}
	return entities
}

// confidence starts at 0.5 and accumulates fixed increments. The ordering and
// thresholds must stay exactly as written: callers depend on output parity.
func confidence(tokens []string, entities []model.Entity, hasIndicator bool) float64 {
	score := 0.5

	if len(entities) > 2 {
		score += 0.2
	} else if len(entities) > 0 {
		score += 0.1
	}

	if hasIndicator {
		score += 0.2
	}

	if len(tokens) > 5 {
		score += 0.1
	}

	if len(entities) > 0 && len(tokens) >= 3 {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// splitSentences splits on sentence-terminating punctuation and trims fragments
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return sentences
}

// restorePeriod puts the terminating period back on the extracted sentence
func restorePeriod(sentence string) string {
	if strings.HasSuffix(sentence, ".") {
		return sentence
	}
	return sentence + "."
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
