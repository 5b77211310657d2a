package domain

// PackagingMaterial represents a packaging material in the static catalog.
type PackagingMaterial struct {
	MatID    string   `json:"matId"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	EcoScore float64  `json:"ecoScore"`
	Aliases  []string `json:"aliases,omitempty"`
}

// RecyclabilityOutcome is the city-specific recycling result for a material.
type RecyclabilityOutcome struct {
	Outcome string `json:"outcome"`
	Notes   string `json:"notes"`
}

// Alternative is a sustainable swap suggestion for a packaging material.
type Alternative struct {
	Name    string `json:"name"`
	Benefit string `json:"benefit"`
}

// Regulation is a national packaging regulation entry.
type Regulation struct {
	Name          string `json:"name"`
	Summary       string `json:"summary"`
	EffectiveFrom string `json:"effectiveFrom,omitempty"`
}

// PackagingRequest is the payload for a packaging analysis request.
type PackagingRequest struct {
	Material string `json:"material" binding:"required"`
	City     string `json:"city" binding:"required"`
}

// PackagingQuery echoes the resolved material and city back to the caller.
type PackagingQuery struct {
	Material string `json:"material"`
	City     string `json:"city"`
}

// StrategicInsights groups the ESG and brand-positioning output of a
// packaging analysis.
type StrategicInsights struct {
	ESGReportingPoints []string `json:"esgReportingPoints"`
	MarketingAdvantage string   `json:"marketingAdvantage"`
	InvestorRelations  string   `json:"investorRelations"`
}

// ComplianceUpdates carries the regulations relevant to a packaging query.
type ComplianceUpdates struct {
	NationalRegulations []Regulation `json:"nationalRegulations"`
}

// PackagingReport is the JSON response for a packaging analysis.
type PackagingReport struct {
	Query                   PackagingQuery       `json:"query"`
	EcoScore                float64              `json:"ecoScore"`
	ScoreScale              string               `json:"scoreScale"`
	Summary                 Label                `json:"summary"`
	Recommendation          string               `json:"recommendation"`
	LocalizedOutcome        RecyclabilityOutcome `json:"localizedOutcome"`
	SustainableAlternatives []Alternative        `json:"sustainableAlternatives"`
	StrategicInsights       StrategicInsights    `json:"strategicInsights"`
	ComplianceUpdates       ComplianceUpdates    `json:"complianceUpdates"`
}
