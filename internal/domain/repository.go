package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ClaimClassifier defines the interface for the external environmental-claim
// text classifier. The core never depends on the model itself, only on the
// verdict it produces.
type ClaimClassifier interface {
	ClassifyClaim(ctx context.Context, text string) (*ClaimVerdict, error)
}

// VerificationClient defines the interface for third-party web verification
// of a material's market sources.
type VerificationClient interface {
	VerifyMaterial(ctx context.Context, material string) ([]string, error)
}
