// Package scorer computes the compatibility score between two roommate profiles.
//
// Each of the five factors is rounded to an integer before it is weighted,
// and the weighted average is rounded once more. Keeping full precision end
// to end gives different totals, so do not fold the steps together.
package scorer

import (
	"github.com/vijay-prabhu/roommate-match/internal/profile"
)

// Weights configures how much each factor contributes to the total
type Weights struct {
	Budget    int `toml:"budget" json:"budget"`
	Location  int `toml:"location" json:"location"`
	Lifestyle int `toml:"lifestyle" json:"lifestyle"`
	Interests int `toml:"interests" json:"interests"`
	Habits    int `toml:"habits" json:"habits"`
}

// DefaultWeights returns the standard 30/25/20/15/10 split
func DefaultWeights() Weights {
	return Weights{
		Budget:    30,
		Location:  25,
		Lifestyle: 20,
		Interests: 15,
		Habits:    10,
	}
}

// Total returns the sum of all weights
func (w Weights) Total() int {
	return w.Budget + w.Location + w.Lifestyle + w.Interests + w.Habits
}

// Breakdown holds the per-factor scores behind a total
type Breakdown struct {
	Budget        int     `json:"budget"`
	Location      int     `json:"location"`
	Lifestyle     int     `json:"lifestyle"`
	Interests     int     `json:"interests"`
	Habits        int     `json:"habits"`
	DistanceMiles float64 `json:"distance_miles"`
	Total         int     `json:"total"`
}

// Scorer calculates weighted compatibility scores
type Scorer struct {
	weights Weights
}

// NewScorer creates a new Scorer with the given weights.
// A zero Weights value falls back to DefaultWeights.
func NewScorer(weights Weights) *Scorer {
	if weights.Total() <= 0 {
		weights = DefaultWeights()
	}
	return &Scorer{weights: weights}
}

// Score returns the compatibility of a and b in [0, 100]
func (s *Scorer) Score(a, b *profile.Profile) int {
	return s.Breakdown(a, b).Total
}

// Breakdown computes every factor and the weighted total
func (s *Scorer) Breakdown(a, b *profile.Profile) Breakdown {
	pa, pb := a.Preferences, b.Preferences

	bd := Breakdown{
		Budget:        BudgetScore(pa.Budget, pb.Budget),
		Location:      LocationScore(a.Location, b.Location),
		Lifestyle:     TagScore(pa.Lifestyle, pb.Lifestyle),
		Interests:     TagScore(pa.Interests, pb.Interests),
		Habits:        TagScore(pa.Habits, pb.Habits),
		DistanceMiles: Distance(a.Location.Coordinates, b.Location.Coordinates),
	}

	w := s.weights
	weighted := bd.Budget*w.Budget +
		bd.Location*w.Location +
		bd.Lifestyle*w.Lifestyle +
		bd.Interests*w.Interests +
		bd.Habits*w.Habits

	bd.Total = round(float64(weighted) / float64(w.Total()))
	return bd
}

// Explain returns a short human-readable tier for a total score
func (s *Scorer) Explain(total int) string {
	return Tier(total)
}

// Tier maps a total score to a label
func Tier(total int) string {
	switch {
	case total >= 80:
		return "excellent"
	case total >= 60:
		return "good"
	case total >= 40:
		return "fair"
	default:
		return "low"
	}
}

var defaultScorer = NewScorer(DefaultWeights())

// Compatibility scores a and b with the default weights
func Compatibility(a, b *profile.Profile) int {
	return defaultScorer.Score(a, b)
}
