package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ecoscore/backend/config"
	"github.com/ecoscore/backend/internal/catalog"
	httpDelivery "github.com/ecoscore/backend/internal/delivery/http"
	"github.com/ecoscore/backend/internal/domain"
	"github.com/ecoscore/backend/internal/infrastructure/cache"
	"github.com/ecoscore/backend/internal/infrastructure/classifier"
	"github.com/ecoscore/backend/internal/infrastructure/websearch"
	"github.com/ecoscore/backend/internal/scoring"
	"github.com/ecoscore/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting EcoScore Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Score scale: %s", cfg.Scoring.Scale)
	log.Printf("Cache Type: %s (TTL: %s)", cfg.Cache.Type, cfg.Cache.TTL)

	scale, err := scoring.ScaleByName(cfg.Scoring.Scale)
	if err != nil {
		log.Fatalf("Failed to resolve score scale: %v", err)
	}

	// Load static catalogs; the service cannot run without them.
	fibers, err := catalog.LoadFibers(cfg.Catalog.FibersPath)
	if err != nil {
		log.Fatalf("Failed to load fiber catalog: %v", err)
	}
	log.Printf("Fiber catalog loaded: %d entries from %s", fibers.Len(), cfg.Catalog.FibersPath)

	packagingCatalog, err := catalog.LoadPackaging(catalog.PackagingPaths{
		Materials:    cfg.Catalog.MaterialsPath,
		Infra:        cfg.Catalog.InfraPath,
		Alternatives: cfg.Catalog.AlternativesPath,
		Regulations:  cfg.Catalog.RegulationsPath,
		ESG:          cfg.Catalog.ESGPath,
	})
	if err != nil {
		log.Fatalf("Failed to load packaging catalog: %v", err)
	}
	log.Printf("Packaging catalog loaded: %d materials", len(packagingCatalog.Materials()))

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache(0)
	defer memoryCache.Close()

	var claimClassifier domain.ClaimClassifier
	if cfg.Classifier.Enabled {
		client := classifier.NewClient(cfg.Classifier.APIKey, cfg.Classifier.BaseURL)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
			log.Printf("Classifier client debug mode enabled")
		}
		log.Printf("Claim classifier configured: %s", cfg.Classifier.BaseURL)
		claimClassifier = client
	} else {
		log.Printf("Claim classifier disabled; analyses run without the claim signal")
	}

	var verifier domain.VerificationClient
	if cfg.Search.Enabled {
		verifier = websearch.NewClient(cfg.Search.APIKey, cfg.Search.BaseURL, cfg.Search.MaxResults)
		log.Printf("Web verification configured: %s (max %d results)", cfg.Search.BaseURL, cfg.Search.MaxResults)
	} else {
		log.Printf("Web verification disabled; analyses run without the source signal")
	}

	// Initialize usecase layer
	analysisService := usecase.NewAnalysisService(
		fibers,
		claimClassifier,
		verifier,
		memoryCache,
		scale,
		usecase.AnalysisConfig{
			CacheTTL:           cfg.Cache.TTL,
			ClaimThreshold:     cfg.Classifier.ConfidenceThreshold,
			EnvClaimBonus:      cfg.Scoring.EnvClaimBonus,
			EnvClaimCap:        cfg.Scoring.EnvClaimCap,
			WebHitBonus:        cfg.Scoring.WebHitBonus,
			WebBonusCap:        cfg.Scoring.WebBonusCap,
			EnableDebugLogging: cfg.Scoring.EnableDebugLogging,
		},
	)

	packagingService := usecase.NewPackagingService(packagingCatalog, scale, cfg.Scoring.EnableDebugLogging)

	log.Printf("Scoring: envClaim=+%.1f (cap %.1f), webHit=+%.1f (cap %.1f)",
		cfg.Scoring.EnvClaimBonus,
		cfg.Scoring.EnvClaimCap,
		cfg.Scoring.WebHitBonus,
		cfg.Scoring.WebBonusCap)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(analysisService, packagingService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
