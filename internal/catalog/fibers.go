package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ecoscore/backend/internal/domain"
)

// FiberCatalog is the immutable table of known textile fibers. It is loaded
// once at startup and read concurrently without synchronization; entries keep
// their file order so matching stays deterministic.
type FiberCatalog struct {
	entries []domain.MaterialEntry
}

// LoadFibers reads and validates the fiber table from a JSON file.
// Malformed entries fail the load immediately rather than surfacing
// mid-request.
func LoadFibers(path string) (*FiberCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fiber catalog: %w", err)
	}

	var entries []domain.MaterialEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogInvalid, err)
	}

	return NewFiberCatalog(entries)
}

// NewFiberCatalog validates the entries and builds a catalog around them.
func NewFiberCatalog(entries []domain.MaterialEntry) (*FiberCatalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: fiber catalog is empty", domain.ErrCatalogInvalid)
	}

	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("%w: entry %d has no key", domain.ErrCatalogInvalid, i)
		}
		if e.DisplayName == "" {
			return nil, fmt.Errorf("%w: entry %q has no display name", domain.ErrCatalogInvalid, e.Key)
		}
		if e.EcoScore < 0 {
			return nil, fmt.Errorf("%w: entry %q has negative score %v", domain.ErrCatalogInvalid, e.Key, e.EcoScore)
		}
		if seen[e.Key] {
			return nil, fmt.Errorf("%w: duplicate key %q", domain.ErrCatalogInvalid, e.Key)
		}
		seen[e.Key] = true
	}

	return &FiberCatalog{entries: entries}, nil
}

// Entries returns the fiber table in file order. The returned slice is shared
// and must not be modified.
func (c *FiberCatalog) Entries() []domain.MaterialEntry {
	return c.entries
}

// Len returns the number of fibers in the catalog.
func (c *FiberCatalog) Len() int {
	return len(c.entries)
}
