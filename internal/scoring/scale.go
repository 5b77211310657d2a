package scoring

import (
	"fmt"
	"math"
)

// Thresholds are the ascending score cut-offs separating the four verdict
// bands. A score >= Excellent maps to the top band, >= Good to the second,
// >= Fair to the third, anything below to the bottom band.
type Thresholds struct {
	Excellent float64
	Good      float64
	Fair      float64
}

// BandText holds the advisory string for each threshold band, in the same
// order as the labels.
type BandText struct {
	Excellent string
	Good      string
	Fair      string
	Low       string
}

// Scale is the complete scoring configuration for one deployment: the score
// ceiling, the neutral score used when nothing matched, the label thresholds
// and the band advice. The two historical scales ship as presets; custom
// scales must pass Validate.
type Scale struct {
	Name            string
	MaxScore        float64
	NeutralDefault  float64
	Thresholds      Thresholds
	Recommendations BandText
}

// Validate checks that the scale is internally consistent: thresholds strictly
// ascending, everything within [0, MaxScore].
func (s Scale) Validate() error {
	if s.MaxScore <= 0 {
		return fmt.Errorf("max score must be positive, got %v", s.MaxScore)
	}
	if s.NeutralDefault < 0 || s.NeutralDefault > s.MaxScore {
		return fmt.Errorf("neutral default %v outside [0, %v]", s.NeutralDefault, s.MaxScore)
	}
	t := s.Thresholds
	if !(t.Fair < t.Good && t.Good < t.Excellent) {
		return fmt.Errorf("thresholds must be strictly ascending, got fair=%v good=%v excellent=%v",
			t.Fair, t.Good, t.Excellent)
	}
	if t.Fair < 0 || t.Excellent > s.MaxScore {
		return fmt.Errorf("thresholds outside [0, %v]", s.MaxScore)
	}
	return nil
}

// Suffix returns the display suffix for scores on this scale, e.g. "/30".
func (s Scale) Suffix() string {
	if s.MaxScore == math.Trunc(s.MaxScore) {
		return fmt.Sprintf("/%d", int(s.MaxScore))
	}
	return fmt.Sprintf("/%g", s.MaxScore)
}

// Fiber30 is the 0-30 fiber scale used by the label-scanning deployment.
func Fiber30() Scale {
	return Scale{
		Name:           "fiber30",
		MaxScore:       30,
		NeutralDefault: 15,
		Thresholds:     Thresholds{Excellent: 24, Good: 18, Fair: 12},
		Recommendations: BandText{
			Excellent: "Excellent choice. Focus on durability and mindful care to extend garment life.",
			Good:      "A fairly sustainable option. Washing less and air-drying can further reduce impact.",
			Fair:      "Moderate impact garment. Consider natural or recycled fibers next time.",
			Low:       "High environmental impact. Prefer materials like hemp, linen, or recycled fibers.",
		},
	}
}

// Textile100 is the 0-100 garment scale used by the original textile
// deployment.
func Textile100() Scale {
	return Scale{
		Name:           "textile100",
		MaxScore:       100,
		NeutralDefault: 45,
		Thresholds:     Thresholds{Excellent: 85, Good: 60, Fair: 40},
		Recommendations: BandText{
			Excellent: "Excellent choice. Care for this garment well and it will last for years.",
			Good:      "A good pick overall. Look for certified or recycled versions to do even better.",
			Fair:      "This blend has a moderate footprint. Natural fibers would lower it.",
			Low:       "High environmental impact. Prefer materials like hemp, linen, or recycled fibers.",
		},
	}
}

// ScaleByName resolves a configured scale preset.
func ScaleByName(name string) (Scale, error) {
	switch name {
	case "fiber30":
		return Fiber30(), nil
	case "textile100":
		return Textile100(), nil
	default:
		return Scale{}, fmt.Errorf("unknown scoring scale: %q", name)
	}
}
