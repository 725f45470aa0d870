package extract

import (
	"math"
	"strings"
	"testing"

	"github.com/claimradar/claimradar/internal/model"
)

func TestClaimExtractor_ReportedStatistic(t *testing.T) {
	extractor := NewClaimExtractor()

	claims := extractor.Extract("The FDA reported 1000 new cases.")

	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}

	claim := claims[0]
	if claim.Text != "The FDA reported 1000 new cases." {
		t.Errorf("Expected original sentence with period, got %q", claim.Text)
	}
	if !claim.HasNumber() {
		t.Error("Expected a number entity for '1000'")
	}
	if math.Abs(claim.Confidence-1.0) > 1e-9 {
		t.Errorf("Expected confidence 1.0, got %f", claim.Confidence)
	}
}

func TestClaimExtractor_IndicatorPhrases(t *testing.T) {
	extractor := NewClaimExtractor()

	text := "According to historians, the tradition spread to coastal regions. " +
		"A new study shows promising results. " +
		"Scientists discovered water on the surface."

	claims := extractor.Extract(text)

	if len(claims) != 3 {
		t.Fatalf("Expected 3 claims, got %d", len(claims))
	}
	for _, claim := range claims {
		if claim.Confidence < 0.5 || claim.Confidence > 1.0 {
			t.Errorf("Confidence out of range for %q: %f", claim.Text, claim.Confidence)
		}
	}
}

func TestClaimExtractor_ShortSentencesDiscarded(t *testing.T) {
	extractor := NewClaimExtractor()

	claims := extractor.Extract("Hi there. Yes! No? NASA confirmed the launch date yesterday.")

	if len(claims) != 1 {
		t.Fatalf("Expected only the NASA sentence, got %d claims", len(claims))
	}
	if !strings.Contains(claims[0].Text, "NASA") {
		t.Errorf("Unexpected claim: %q", claims[0].Text)
	}
}

func TestClaimExtractor_NonClaimText(t *testing.T) {
	extractor := NewClaimExtractor()

	claims := extractor.Extract("it would be nice to walk outside every single day.")

	if len(claims) != 0 {
		t.Errorf("Expected no claims from an opinion, got %d", len(claims))
	}
}

func TestClaimExtractor_EmptyInput(t *testing.T) {
	extractor := NewClaimExtractor()

	if claims := extractor.Extract(""); len(claims) != 0 {
		t.Errorf("Expected no claims from empty input, got %d", len(claims))
	}
	if claims := extractor.Extract("   \n\t  "); len(claims) != 0 {
		t.Errorf("Expected no claims from whitespace, got %d", len(claims))
	}
}

func TestDetectEntities_Kinds(t *testing.T) {
	tokens := strings.Fields("The WHO counted 42 cases in Geneva")

	entities := detectEntities(tokens)

	var entityCount, numberCount int
	for _, e := range entities {
		switch e.Kind {
		case model.EntityKindEntity:
			entityCount++
		case model.EntityKindNumber:
			numberCount++
		}
	}

	// The, WHO, Geneva
	if entityCount != 3 {
		t.Errorf("Expected 3 capitalized entities, got %d", entityCount)
	}
	if numberCount != 1 {
		t.Errorf("Expected 1 number entity, got %d", numberCount)
	}
}

func TestDetectEntities_TokenCanBeBoth(t *testing.T) {
	entities := detectEntities([]string{"B12"})

	if len(entities) != 2 {
		t.Fatalf("Expected token tagged as entity and number, got %d tags", len(entities))
	}
	if entities[0].Kind != model.EntityKindEntity || entities[1].Kind != model.EntityKindNumber {
		t.Errorf("Unexpected tag kinds: %v, %v", entities[0].Kind, entities[1].Kind)
	}
}

func TestSplitSentences(t *testing.T) {
	sentences := splitSentences("First one. Second one! Third one? Trailing fragment")

	if len(sentences) != 4 {
		t.Fatalf("Expected 4 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[3] != "Trailing fragment" {
		t.Errorf("Expected trailing fragment kept, got %q", sentences[3])
	}
}
