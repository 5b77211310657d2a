package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ecoscore/backend/internal/scoring"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Classifier ClassifierConfig
	Search     SearchConfig
	Scoring    ScoringConfig
	Catalog    CatalogConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ClassifierConfig holds the external claim-classifier configuration
type ClassifierConfig struct {
	Enabled             bool    `mapstructure:"enabled"`
	APIKey              string  `mapstructure:"api_key"`
	BaseURL             string  `mapstructure:"base_url"`
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
}

// SearchConfig holds the web verification API configuration
type SearchConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	MaxResults int    `mapstructure:"max_results"`
}

// ScoringConfig selects the score scale and the signal bonuses
type ScoringConfig struct {
	Scale              string  `mapstructure:"scale"`
	EnvClaimBonus      float64 `mapstructure:"env_claim_bonus"`
	EnvClaimCap        float64 `mapstructure:"env_claim_cap"`
	WebHitBonus        float64 `mapstructure:"web_hit_bonus"`
	WebBonusCap        float64 `mapstructure:"web_bonus_cap"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// CatalogConfig points at the static data tables
type CatalogConfig struct {
	FibersPath       string `mapstructure:"fibers_path"`
	MaterialsPath    string `mapstructure:"materials_path"`
	InfraPath        string `mapstructure:"infra_path"`
	AlternativesPath string `mapstructure:"alternatives_path"`
	RegulationsPath  string `mapstructure:"regulations_path"`
	ESGPath          string `mapstructure:"esg_path"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/ecoscore/")

	v.SetEnvPrefix("ECOSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5500", "http://127.0.0.1:5500"})

	// Classifier defaults
	v.SetDefault("classifier.enabled", true)
	v.SetDefault("classifier.api_key", "")
	v.SetDefault("classifier.base_url", "https://inference.ecoscore.dev")
	v.SetDefault("classifier.confidence_threshold", 0.5)

	// Search defaults
	v.SetDefault("search.enabled", false)
	v.SetDefault("search.api_key", "")
	v.SetDefault("search.base_url", "https://search.ecoscore.dev")
	v.SetDefault("search.max_results", 5)

	// Scoring defaults: the 0-30 fiber scale with its historical bonuses
	v.SetDefault("scoring.scale", "fiber30")
	v.SetDefault("scoring.env_claim_bonus", 2.0)
	v.SetDefault("scoring.env_claim_cap", 2.0)
	v.SetDefault("scoring.web_hit_bonus", 1.0)
	v.SetDefault("scoring.web_bonus_cap", 3.0)
	v.SetDefault("scoring.enable_debug_logging", false)

	// Catalog defaults
	v.SetDefault("catalog.fibers_path", "data/fibers.json")
	v.SetDefault("catalog.materials_path", "data/materials.json")
	v.SetDefault("catalog.infra_path", "data/recycling_infra.json")
	v.SetDefault("catalog.alternatives_path", "data/alternatives.json")
	v.SetDefault("catalog.regulations_path", "data/regulations.json")
	v.SetDefault("catalog.esg_path", "data/esg.json")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Classifier.Enabled && config.Classifier.APIKey == "" {
		return fmt.Errorf("classifier API key is required (set ECOSCORE_CLASSIFIER_API_KEY)")
	}

	if config.Search.Enabled && config.Search.APIKey == "" {
		return fmt.Errorf("search API key is required (set ECOSCORE_SEARCH_API_KEY)")
	}

	if _, err := scoring.ScaleByName(config.Scoring.Scale); err != nil {
		return err
	}

	if config.Scoring.EnvClaimBonus < 0 || config.Scoring.EnvClaimCap < 0 ||
		config.Scoring.WebHitBonus < 0 || config.Scoring.WebBonusCap < 0 {
		return fmt.Errorf("scoring bonuses and caps must be non-negative")
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	return nil
}
