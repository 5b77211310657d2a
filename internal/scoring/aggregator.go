package scoring

import (
	"math"

	"github.com/ecoscore/backend/internal/domain"
)

// Signal is a bounded score adjustment from an external source, e.g. the
// environmental-claim classifier or web verification hits. Each signal's cap
// is applied independently before the sum is clamped to the scale ceiling.
type Signal struct {
	Name   string
	Amount float64
	Cap    float64
	Active bool
}

// Aggregator turns matched catalog entries and external signals into a final
// bounded score. It holds no mutable state and is safe for concurrent use.
type Aggregator struct {
	scale Scale
}

// NewAggregator creates an Aggregator for the given scale. The scale must
// have been validated at load time.
func NewAggregator(scale Scale) *Aggregator {
	return &Aggregator{scale: scale}
}

// Scale returns the scale the aggregator was built with.
func (a *Aggregator) Scale() Scale {
	return a.scale
}

// Aggregate computes the overall score for a set of matches and signals:
//
//	base  = mean(entry scores), rounded to one decimal
//	base += min(amount, cap) for each active signal, in declaration order
//	final = min(base, MaxScore)
//
// An empty match set yields the scale's neutral default with no signals
// applied. The result is deterministic for fixed inputs.
func (a *Aggregator) Aggregate(matches []domain.MatchResult, signals []Signal) float64 {
	if len(matches) == 0 {
		return a.scale.NeutralDefault
	}

	var total float64
	for _, m := range matches {
		total += m.Entry.EcoScore
	}
	score := round1(total / float64(len(matches)))

	for _, sig := range signals {
		if !sig.Active {
			continue
		}
		score += math.Min(sig.Amount, sig.Cap)
	}

	return round1(math.Min(score, a.scale.MaxScore))
}

// Label maps a score to its verdict band, evaluated highest threshold first.
func (a *Aggregator) Label(score float64) domain.Label {
	t := a.scale.Thresholds
	switch {
	case score >= t.Excellent:
		return domain.LabelExcellent
	case score >= t.Good:
		return domain.LabelGood
	case score >= t.Fair:
		return domain.LabelCouldBeBetter
	default:
		return domain.LabelConsiderAlternatives
	}
}

// Recommendation returns the advisory string for the band the score falls in.
// It uses the same thresholds as Label, so the two never disagree.
func (a *Aggregator) Recommendation(score float64) string {
	r := a.scale.Recommendations
	t := a.scale.Thresholds
	switch {
	case score >= t.Excellent:
		return r.Excellent
	case score >= t.Good:
		return r.Good
	case score >= t.Fair:
		return r.Fair
	default:
		return r.Low
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
