package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecoscore/backend/internal/domain"
)

func writePackagingTables(t *testing.T) PackagingPaths {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
		return path
	}

	return PackagingPaths{
		Materials: write("materials.json", `[
			{"matId": "PET01", "name": "PET Bottle", "category": "plastic", "ecoScore": 12, "aliases": ["pet", "polyethylene terephthalate"]},
			{"matId": "CARD01", "name": "Corrugated Cardboard", "category": "paper", "ecoScore": 24}
		]`),
		Infra: write("infra.json", `{
			"mumbai": {
				"PET01": {"outcome": "Widely Recycled", "notes": "Collected by most municipal programs."}
			}
		}`),
		Alternatives: write("alternatives.json", `{
			"PET01": [{"name": "rPET Bottle", "benefit": "Uses recycled feedstock."}]
		}`),
		Regulations: write("regulations.json", `[
			{"name": "Plastic Waste Management Rules", "summary": "EPR obligations for producers.", "effectiveFrom": "2022-07-01"}
		]`),
		ESG: write("esg.json", `{
			"plastic": ["Report share of recycled content in packaging."]
		}`),
	}
}

func TestLoadPackaging(t *testing.T) {
	t.Run("loads all tables", func(t *testing.T) {
		catalog, err := LoadPackaging(writePackagingTables(t))
		if err != nil {
			t.Fatalf("LoadPackaging() error = %v", err)
		}
		if len(catalog.Materials()) != 2 {
			t.Errorf("Materials() len = %d, want 2", len(catalog.Materials()))
		}
		if len(catalog.Regulations()) != 1 {
			t.Errorf("Regulations() len = %d, want 1", len(catalog.Regulations()))
		}
	})

	t.Run("fails when a table file is missing", func(t *testing.T) {
		paths := writePackagingTables(t)
		paths.ESG = filepath.Join(t.TempDir(), "missing.json")
		if _, err := LoadPackaging(paths); err == nil {
			t.Error("LoadPackaging() = nil error, want error")
		}
	})

	t.Run("fails for duplicate material ids", func(t *testing.T) {
		paths := writePackagingTables(t)
		dup := `[
			{"matId": "PET01", "name": "PET Bottle", "category": "plastic", "ecoScore": 12},
			{"matId": "PET01", "name": "PET Jar", "category": "plastic", "ecoScore": 11}
		]`
		if err := os.WriteFile(paths.Materials, []byte(dup), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadPackaging(paths)
		if !errors.Is(err, domain.ErrCatalogInvalid) {
			t.Errorf("error = %v, want ErrCatalogInvalid", err)
		}
	})
}

func TestFindMaterial(t *testing.T) {
	catalog, err := LoadPackaging(writePackagingTables(t))
	if err != nil {
		t.Fatalf("LoadPackaging() error = %v", err)
	}

	t.Run("finds by name regardless of case", func(t *testing.T) {
		m, ok := catalog.FindMaterial("pet bottle")
		if !ok {
			t.Fatal("FindMaterial() = false, want true")
		}
		if m.MatID != "PET01" {
			t.Errorf("MatID = %q, want PET01", m.MatID)
		}
	})

	t.Run("finds by alias", func(t *testing.T) {
		m, ok := catalog.FindMaterial("Polyethylene Terephthalate")
		if !ok || m.MatID != "PET01" {
			t.Errorf("FindMaterial() = %v/%v, want PET01/true", m.MatID, ok)
		}
	})

	t.Run("reports unknown material", func(t *testing.T) {
		if _, ok := catalog.FindMaterial("styrofoam"); ok {
			t.Error("FindMaterial() = true, want false")
		}
	})
}

func TestOutcomeFor(t *testing.T) {
	catalog, err := LoadPackaging(writePackagingTables(t))
	if err != nil {
		t.Fatalf("LoadPackaging() error = %v", err)
	}

	t.Run("returns city-specific outcome", func(t *testing.T) {
		outcome := catalog.OutcomeFor("Mumbai", "PET01")
		if outcome.Outcome != "Widely Recycled" {
			t.Errorf("Outcome = %q, want Widely Recycled", outcome.Outcome)
		}
	})

	t.Run("falls back when city has no data", func(t *testing.T) {
		outcome := catalog.OutcomeFor("Nagpur", "PET01")
		if outcome.Outcome != "Data Unavailable" {
			t.Errorf("Outcome = %q, want Data Unavailable", outcome.Outcome)
		}
	})

	t.Run("falls back when material has no city data", func(t *testing.T) {
		outcome := catalog.OutcomeFor("Mumbai", "CARD01")
		if outcome.Outcome != "Data Unavailable" {
			t.Errorf("Outcome = %q, want Data Unavailable", outcome.Outcome)
		}
	})
}
