package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ecoscore/backend/internal/catalog"
	"github.com/ecoscore/backend/internal/domain"
	"github.com/ecoscore/backend/internal/scoring"
)

// PackagingService answers packaging analysis queries by joining the static
// material table against the city recycling-infrastructure, alternatives,
// regulation and ESG tables, and scoring the material on the shared scale.
type PackagingService struct {
	catalog            *catalog.PackagingCatalog
	aggregator         *scoring.Aggregator
	enableDebugLogging bool
}

// NewPackagingService creates a packaging service with dependencies.
func NewPackagingService(c *catalog.PackagingCatalog, scale scoring.Scale, enableDebugLogging bool) *PackagingService {
	return &PackagingService{
		catalog:            c,
		aggregator:         scoring.NewAggregator(scale),
		enableDebugLogging: enableDebugLogging,
	}
}

// Analyze builds the full packaging report for a material and city.
func (s *PackagingService) Analyze(ctx context.Context, materialName, city string) (*domain.PackagingReport, error) {
	materialName = strings.TrimSpace(materialName)
	city = strings.TrimSpace(city)
	if materialName == "" || city == "" {
		return nil, domain.ErrInvalidRequest
	}

	material, ok := s.catalog.FindMaterial(materialName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrMaterialNotFound, materialName)
	}

	if s.enableDebugLogging {
		log.Printf("[PACKAGING] material=%q (%s) city=%q", material.Name, material.MatID, city)
	}

	matches := []domain.MatchResult{{
		Entry: domain.MaterialEntry{Key: material.MatID, DisplayName: material.Name, EcoScore: material.EcoScore},
	}}
	score := s.aggregator.Aggregate(matches, nil)

	return &domain.PackagingReport{
		Query: domain.PackagingQuery{
			Material: material.Name,
			City:     titleCase(city),
		},
		EcoScore:                score,
		ScoreScale:              s.aggregator.Scale().Suffix(),
		Summary:                 s.aggregator.Label(score),
		Recommendation:          s.aggregator.Recommendation(score),
		LocalizedOutcome:        s.catalog.OutcomeFor(city, material.MatID),
		SustainableAlternatives: s.catalog.AlternativesFor(material.MatID),
		StrategicInsights: domain.StrategicInsights{
			ESGReportingPoints: s.catalog.ESGPoints(material.Category),
			MarketingAdvantage: fmt.Sprintf(
				"Highlighting a switch from %s to a sustainable alternative can improve brand perception among eco-conscious consumers.",
				material.Name),
			InvestorRelations: "Demonstrating proactive management of packaging waste strengthens ESG credentials, appealing to modern investors.",
		},
		ComplianceUpdates: domain.ComplianceUpdates{
			NationalRegulations: s.catalog.Regulations(),
		},
	}, nil
}

// titleCase capitalizes the first letter of each word in a city name.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
