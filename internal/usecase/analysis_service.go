package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/ecoscore/backend/internal/catalog"
	"github.com/ecoscore/backend/internal/domain"
	"github.com/ecoscore/backend/internal/metrics"
	"github.com/ecoscore/backend/internal/scoring"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// AnalysisConfig holds configuration for the analysis service
type AnalysisConfig struct {
	CacheTTL           time.Duration
	ClaimThreshold     float64
	EnvClaimBonus      float64
	EnvClaimCap        float64
	WebHitBonus        float64
	WebBonusCap        float64
	EnableDebugLogging bool
}

// AnalysisService runs the textile analysis pipeline: match fibers in the
// input text, gather external signals, aggregate the score and build the
// response. The classifier and verifier are optional; when either is absent
// or failing, its signal simply stays inactive.
type AnalysisService struct {
	catalog    *catalog.FiberCatalog
	classifier domain.ClaimClassifier
	verifier   domain.VerificationClient
	cache      domain.CacheRepository
	aggregator *scoring.Aggregator
	config     AnalysisConfig
}

// NewAnalysisService creates an analysis service with dependencies.
func NewAnalysisService(
	fibers *catalog.FiberCatalog,
	classifier domain.ClaimClassifier,
	verifier domain.VerificationClient,
	cache domain.CacheRepository,
	scale scoring.Scale,
	config AnalysisConfig,
) *AnalysisService {
	if config.ClaimThreshold <= 0 {
		config.ClaimThreshold = 0.5
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = 24 * time.Hour
	}

	return &AnalysisService{
		catalog:    fibers,
		classifier: classifier,
		verifier:   verifier,
		cache:      cache,
		aggregator: scoring.NewAggregator(scale),
		config:     config,
	}
}

// AnalyzeText analyzes free-form label text and returns the scored result.
func (s *AnalysisService) AnalyzeText(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrInvalidRequest
	}

	matches := MatchMaterials(text, s.catalog.Entries())
	if s.config.EnableDebugLogging {
		log.Printf("[ANALYZE] input=%q matched=%d fibers", text, len(matches))
	}

	claim := s.detectClaim(ctx, text)
	sources := s.verifySources(ctx, matches)

	// Fixed declaration order: claim bonus first, then web verification.
	signals := []scoring.Signal{
		{
			Name:   "envClaim",
			Amount: s.config.EnvClaimBonus,
			Cap:    s.config.EnvClaimCap,
			Active: claim && len(matches) > 0,
		},
		{
			Name:   "webVerification",
			Amount: float64(len(sources)) * s.config.WebHitBonus,
			Cap:    s.config.WebBonusCap,
			Active: len(sources) > 0,
		},
	}

	score := s.aggregator.Aggregate(matches, signals)
	if s.config.EnableDebugLogging {
		log.Printf("[ANALYZE] score=%.1f%s claim=%v sources=%d",
			score, s.aggregator.Scale().Suffix(), claim, len(sources))
	}

	return &domain.AnalysisResult{
		OverallScore:       score,
		ScoreScale:         s.aggregator.Scale().Suffix(),
		Summary:            s.aggregator.Label(score),
		Materials:          summarizeMatches(matches),
		Recommendation:     s.aggregator.Recommendation(score),
		EnvironmentalClaim: claim,
		WebVerification:    sources,
		ExtractedText:      text,
	}, nil
}

// AnalyzeFallback produces an analysis when no usable text was extracted.
// The highest-scoring catalog fiber is used as a deterministic prior.
func (s *AnalysisService) AnalyzeFallback(ctx context.Context) (*domain.AnalysisResult, error) {
	entries := s.catalog.Entries()
	prior := entries[0]
	for _, e := range entries[1:] {
		if e.EcoScore > prior.EcoScore {
			prior = e
		}
	}

	result, err := s.AnalyzeText(ctx, fmt.Sprintf("approximate fabric detected: %s", prior.DisplayName))
	if err != nil {
		return nil, err
	}
	result.FallbackUsed = true
	result.FallbackReason = "Extracted text was empty. Fabric inferred using material priors."
	return result, nil
}

// detectClaim asks the external classifier whether the text carries an
// environmental claim, caching verdicts by normalized text. A missing or
// failing classifier means no signal, never a failed analysis.
func (s *AnalysisService) detectClaim(ctx context.Context, text string) bool {
	if s.classifier == nil {
		return false
	}

	cacheKey := "claim:" + normalizeForCacheKey(text)
	if verdict, ok := s.claimFromCache(ctx, cacheKey); ok {
		return s.isClaim(verdict)
	}

	verdict, err := s.classifier.ClassifyClaim(ctx, text)
	if err != nil {
		metrics.ExternalClientErrors.WithLabelValues("classifier").Inc()
		log.Printf("[ANALYZE] classifier unavailable, continuing without claim signal: %v", err)
		return false
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, verdict, s.config.CacheTTL); err != nil && s.config.EnableDebugLogging {
			log.Printf("[ANALYZE] claim cache write failed: %v", err)
		}
	}

	return s.isClaim(verdict)
}

func (s *AnalysisService) isClaim(verdict *domain.ClaimVerdict) bool {
	return verdict != nil &&
		verdict.Label == "environmental" &&
		verdict.Confidence > s.config.ClaimThreshold
}

// claimFromCache retrieves a cached classifier verdict.
func (s *AnalysisService) claimFromCache(ctx context.Context, key string) (*domain.ClaimVerdict, bool) {
	if s.cache == nil {
		return nil, false
	}

	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	if verdict, ok := value.(*domain.ClaimVerdict); ok {
		return verdict, true
	}
	// Cache stores JSON round-tripped values, so maps are the common case.
	if m, ok := value.(map[string]interface{}); ok {
		verdict := &domain.ClaimVerdict{}
		if v, ok := m["label"].(string); ok {
			verdict.Label = v
		}
		if v, ok := m["confidence"].(float64); ok {
			verdict.Confidence = v
		}
		return verdict, true
	}

	return nil, false
}

// verifySources collects third-party market sources for the matched fibers.
// Verification failures skip the fiber rather than failing the analysis.
func (s *AnalysisService) verifySources(ctx context.Context, matches []domain.MatchResult) []string {
	if s.verifier == nil {
		return nil
	}

	var sources []string
	for _, m := range matches {
		found, err := s.verifier.VerifyMaterial(ctx, m.Entry.DisplayName)
		if err != nil {
			metrics.ExternalClientErrors.WithLabelValues("search").Inc()
			log.Printf("[ANALYZE] web verification failed for %q: %v", m.Entry.DisplayName, err)
			continue
		}
		sources = append(sources, found...)
	}
	return sources
}

func summarizeMatches(matches []domain.MatchResult) []domain.MaterialSummary {
	summaries := make([]domain.MaterialSummary, 0, len(matches))
	for _, m := range matches {
		summaries = append(summaries, domain.MaterialSummary{
			Name:           m.Entry.DisplayName,
			EcoScore:       m.Entry.EcoScore,
			Description:    m.Entry.Description,
			Biodegradable:  m.Entry.Biodegradable,
			Recyclable:     m.Entry.Recyclable,
			Certifications: m.Entry.Certifications,
			MatchedAliases: m.MatchedAliases,
		})
	}
	return summaries
}

// normalizeForCacheKey normalizes a string for use as cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
