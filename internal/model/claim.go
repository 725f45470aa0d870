package model

// Claim represents a factual assertion extracted from input text
type Claim struct {
	Text       string   `json:"text"`                 // The claim sentence, with trailing period restored
	Entities   []Entity `json:"entities"`             // Detected entities in sentence order
	Confidence float64  `json:"confidence"`           // Extraction confidence in [0,1]
}

// Entity is a surface form detected inside a claim sentence
type Entity struct {
	Text string     `json:"text"` // Surface form as it appears in the sentence
	Kind EntityKind `json:"kind"`
}

// EntityKind categorizes a detected entity
type EntityKind string

const (
	EntityKindEntity EntityKind = "ENTITY" // Capitalized token (proper noun heuristic)
	EntityKindNumber EntityKind = "NUMBER" // Token containing at least one digit
)

// HasNumber reports whether any entity is number-tagged
func (c Claim) HasNumber() bool {
	for _, e := range c.Entities {
		if e.Kind == EntityKindNumber {
			return true
		}
	}
	return false
}
