package model

// Fact is a single fact-check record returned by a provider
type Fact struct {
	Text      string `json:"text"`                // Text of the matched claim as reviewed
	Rating    string `json:"rating"`              // Free-form label, e.g. "FALSE", "MOSTLY TRUE"
	URL       string `json:"url,omitempty"`       // Link to the published fact check
	Publisher string `json:"publisher,omitempty"` // Publisher of the fact check
}

// Key returns the deduplication identity for a fact: the URL when present,
// otherwise the full structural content.
func (f Fact) Key() string {
	if f.URL != "" {
		return f.URL
	}
	return f.Text + "\x00" + f.Rating + "\x00" + f.Publisher
}

// ProviderResult is the per-provider outcome of a single verification attempt.
// It is ephemeral: the aggregator merges it and throws it away.
type ProviderResult struct {
	Found      bool    `json:"found"`
	Facts      []Fact  `json:"facts,omitempty"`
	Source     string  `json:"source"`               // Provider name
	Confidence float64 `json:"confidence"`           // Rating-derived confidence in [0,1]
	Err        string  `json:"error,omitempty"`      // Failure captured at the provider boundary
}

// VerificationStatus indicates whether aggregation produced a usable result
type VerificationStatus string

const (
	StatusSuccess VerificationStatus = "success"
	StatusError   VerificationStatus = "error"
)

// FactCheckResult is the aggregator's unified verification result
type FactCheckResult struct {
	Verified   bool               `json:"verified"`
	Facts      []Fact             `json:"matching_facts"`   // Deduplicated
	Sources    []string           `json:"sources"`          // Set semantics, insertion order
	Confidence float64            `json:"confidence"`       // Averaged over providers that found something
	Status     VerificationStatus `json:"status"`
	Error      string             `json:"error,omitempty"`  // Set when Status == StatusError
}
