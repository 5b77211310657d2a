package scoring

import "testing"

func TestScaleValidate(t *testing.T) {
	t.Run("presets are valid", func(t *testing.T) {
		for _, scale := range []Scale{Fiber30(), Textile100()} {
			if err := scale.Validate(); err != nil {
				t.Errorf("%s: Validate() = %v, want nil", scale.Name, err)
			}
		}
	})

	t.Run("rejects non-ascending thresholds", func(t *testing.T) {
		scale := Fiber30()
		scale.Thresholds = Thresholds{Excellent: 12, Good: 18, Fair: 24}
		if err := scale.Validate(); err == nil {
			t.Error("Validate() = nil, want error for descending thresholds")
		}
	})

	t.Run("rejects neutral default above ceiling", func(t *testing.T) {
		scale := Fiber30()
		scale.NeutralDefault = 45
		if err := scale.Validate(); err == nil {
			t.Error("Validate() = nil, want error for neutral default above max")
		}
	})

	t.Run("rejects non-positive max score", func(t *testing.T) {
		scale := Fiber30()
		scale.MaxScore = 0
		if err := scale.Validate(); err == nil {
			t.Error("Validate() = nil, want error for zero max score")
		}
	})
}

func TestScaleByName(t *testing.T) {
	t.Run("resolves known presets", func(t *testing.T) {
		for _, name := range []string{"fiber30", "textile100"} {
			scale, err := ScaleByName(name)
			if err != nil {
				t.Fatalf("ScaleByName(%q) error = %v", name, err)
			}
			if scale.Name != name {
				t.Errorf("scale.Name = %q, want %q", scale.Name, name)
			}
		}
	})

	t.Run("rejects unknown preset", func(t *testing.T) {
		if _, err := ScaleByName("percentile"); err == nil {
			t.Error("ScaleByName() = nil error, want error for unknown scale")
		}
	})
}

func TestScaleSuffix(t *testing.T) {
	if got := Fiber30().Suffix(); got != "/30" {
		t.Errorf("Suffix() = %q, want /30", got)
	}
	if got := Textile100().Suffix(); got != "/100" {
		t.Errorf("Suffix() = %q, want /100", got)
	}
}
