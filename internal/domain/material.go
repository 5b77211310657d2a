package domain

// MaterialEntry represents a textile fiber in the sustainability catalog.
// Entries are loaded once at startup and never mutated afterwards, so they
// are safe for unsynchronized concurrent reads.
type MaterialEntry struct {
	Key            string   `json:"key"`
	DisplayName    string   `json:"displayName"`
	EcoScore       float64  `json:"ecoScore"`
	Description    string   `json:"description,omitempty"`
	Biodegradable  bool     `json:"biodegradable"`
	Recyclable     bool     `json:"recyclable"`
	Certifications []string `json:"certifications,omitempty"`
	Aliases        []string `json:"aliases,omitempty"`
	Sources        []string `json:"sources,omitempty"`
}

// MatchResult records a catalog entry found in the input text along with
// the aliases that actually occurred.
type MatchResult struct {
	Entry          MaterialEntry `json:"entry"`
	MatchedAliases []string      `json:"matchedAliases,omitempty"`
}

// Label is the four-tier categorical verdict derived from the final score.
type Label string

const (
	LabelExcellent            Label = "Excellent Choice"
	LabelGood                 Label = "Good Choice"
	LabelCouldBeBetter        Label = "Could Be Better"
	LabelConsiderAlternatives Label = "Consider Alternatives"
)

// AnalyzeRequest is the payload for a textile analysis request.
type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

// MaterialSummary is the per-match slice of an AnalysisResult.
type MaterialSummary struct {
	Name           string   `json:"name"`
	EcoScore       float64  `json:"ecoScore"`
	Description    string   `json:"description,omitempty"`
	Biodegradable  bool     `json:"biodegradable"`
	Recyclable     bool     `json:"recyclable"`
	Certifications []string `json:"certifications,omitempty"`
	MatchedAliases []string `json:"matchedAliases,omitempty"`
}

// AnalysisResult is the JSON response for a textile analysis.
// OverallScore is always within [0, MaxScore] for the configured scale.
type AnalysisResult struct {
	OverallScore       float64           `json:"overallScore"`
	ScoreScale         string            `json:"scoreScale"`
	Summary            Label             `json:"summary"`
	Materials          []MaterialSummary `json:"materials"`
	Recommendation     string            `json:"recommendation"`
	EnvironmentalClaim bool              `json:"environmentalClaim"`
	WebVerification    []string          `json:"webVerification,omitempty"`
	ExtractedText      string            `json:"extractedText,omitempty"`
	FallbackUsed       bool              `json:"fallbackUsed"`
	FallbackReason     string            `json:"fallbackReason,omitempty"`
}

// ClaimVerdict is the outcome of the external environmental-claim classifier.
type ClaimVerdict struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}
