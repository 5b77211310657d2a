package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ecoscore/backend/internal/domain"
)

// PackagingPaths lists the static table files backing the packaging catalog.
type PackagingPaths struct {
	Materials    string
	Infra        string
	Alternatives string
	Regulations  string
	ESG          string
}

// PackagingCatalog holds the packaging material table joined with the
// city-level recycling infrastructure, alternatives, regulation and ESG
// tables. Immutable after load.
type PackagingCatalog struct {
	materials    []domain.PackagingMaterial
	infra        map[string]map[string]domain.RecyclabilityOutcome
	alternatives map[string][]domain.Alternative
	regulations  []domain.Regulation
	esg          map[string][]string
}

// LoadPackaging reads and validates all packaging tables. Any malformed file
// fails the load.
func LoadPackaging(paths PackagingPaths) (*PackagingCatalog, error) {
	c := &PackagingCatalog{}

	if err := readJSON(paths.Materials, &c.materials); err != nil {
		return nil, fmt.Errorf("materials table: %w", err)
	}
	if err := readJSON(paths.Infra, &c.infra); err != nil {
		return nil, fmt.Errorf("recycling infrastructure table: %w", err)
	}
	if err := readJSON(paths.Alternatives, &c.alternatives); err != nil {
		return nil, fmt.Errorf("alternatives table: %w", err)
	}
	if err := readJSON(paths.Regulations, &c.regulations); err != nil {
		return nil, fmt.Errorf("regulations table: %w", err)
	}
	if err := readJSON(paths.ESG, &c.esg); err != nil {
		return nil, fmt.Errorf("esg table: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewPackagingCatalog builds a catalog from already-loaded tables.
func NewPackagingCatalog(
	materials []domain.PackagingMaterial,
	infra map[string]map[string]domain.RecyclabilityOutcome,
	alternatives map[string][]domain.Alternative,
	regulations []domain.Regulation,
	esg map[string][]string,
) (*PackagingCatalog, error) {
	c := &PackagingCatalog{
		materials:    materials,
		infra:        infra,
		alternatives: alternatives,
		regulations:  regulations,
		esg:          esg,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *PackagingCatalog) validate() error {
	if len(c.materials) == 0 {
		return fmt.Errorf("%w: packaging material table is empty", domain.ErrCatalogInvalid)
	}

	seen := make(map[string]bool, len(c.materials))
	for i, m := range c.materials {
		if m.MatID == "" || m.Name == "" {
			return fmt.Errorf("%w: material %d missing id or name", domain.ErrCatalogInvalid, i)
		}
		if m.EcoScore < 0 {
			return fmt.Errorf("%w: material %q has negative score %v", domain.ErrCatalogInvalid, m.MatID, m.EcoScore)
		}
		if seen[m.MatID] {
			return fmt.Errorf("%w: duplicate material id %q", domain.ErrCatalogInvalid, m.MatID)
		}
		seen[m.MatID] = true
	}

	return nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogInvalid, err)
	}
	return nil
}

// FindMaterial looks up a packaging material by name or alias,
// case-insensitively.
func (c *PackagingCatalog) FindMaterial(name string) (domain.PackagingMaterial, bool) {
	for _, m := range c.materials {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
		for _, alias := range m.Aliases {
			if strings.EqualFold(alias, name) {
				return m, true
			}
		}
	}
	return domain.PackagingMaterial{}, false
}

// Materials returns the material table in file order.
func (c *PackagingCatalog) Materials() []domain.PackagingMaterial {
	return c.materials
}

// OutcomeFor returns the city-specific recyclability outcome for a material,
// or a "Data Unavailable" placeholder when the city has no data for it.
func (c *PackagingCatalog) OutcomeFor(city, matID string) domain.RecyclabilityOutcome {
	if cityInfra, ok := c.infra[strings.ToLower(city)]; ok {
		if outcome, ok := cityInfra[matID]; ok {
			return outcome
		}
	}
	return domain.RecyclabilityOutcome{
		Outcome: "Data Unavailable",
		Notes:   "No specific recycling data for this material in this city.",
	}
}

// AlternativesFor returns the sustainable swaps for a material, possibly
// empty.
func (c *PackagingCatalog) AlternativesFor(matID string) []domain.Alternative {
	return c.alternatives[matID]
}

// Regulations returns the national regulation table.
func (c *PackagingCatalog) Regulations() []domain.Regulation {
	return c.regulations
}

// ESGPoints returns the ESG reporting points for a material category.
func (c *PackagingCatalog) ESGPoints(category string) []string {
	return c.esg[category]
}
