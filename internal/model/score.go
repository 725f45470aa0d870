package model

// RiskLevel classifies how likely a claim is to be misinformation
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// CredibilityScore is the derived credibility assessment of one claim.
// Never mutated after creation.
type CredibilityScore struct {
	Score           float64   `json:"score"`            // Weighted sum clamped to [0,1]
	RiskLevel       RiskLevel `json:"risk_level"`       // Pure function of Score
	Reasoning       []string  `json:"reasoning"`        // One line per non-zero term, source -> fact -> confidence
	SourceScore     float64   `json:"source_score"`
	FactScore       float64   `json:"fact_score"`
	ConfidenceScore float64   `json:"confidence_score"`
}
