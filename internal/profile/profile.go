package profile

import (
	"errors"
	"fmt"
)

// Duration is the preferred lease length
type Duration string

const (
	DurationShort  Duration = "short"
	DurationMedium Duration = "medium"
	DurationLong   Duration = "long"
)

// Valid reports whether d is one of the known lease lengths
func (d Duration) Valid() bool {
	switch d {
	case DurationShort, DurationMedium, DurationLong:
		return true
	default:
		return false
	}
}

// Profile holds a user's roommate-search attributes
type Profile struct {
	ID            string      `json:"id"`
	Email         string      `json:"email,omitempty"`
	Name          string      `json:"name"`
	Age           int         `json:"age"`
	Bio           string      `json:"bio,omitempty"`
	ProfileImage  string      `json:"profileImage,omitempty"`
	Location      Location    `json:"location"`
	Preferences   Preferences `json:"preferences"`
	Compatibility *int        `json:"compatibility,omitempty"` // Set by callers after scoring
}

// Location is where a user wants to live
type Location struct {
	City         string      `json:"city"`
	Neighborhood string      `json:"neighborhood"`
	Coordinates  Coordinates `json:"coordinates"`
}

// Preferences are the housing and lifestyle preferences of a user
type Preferences struct {
	Budget     Budget   `json:"budget"`
	MoveInDate Date     `json:"moveInDate"`
	Duration   Duration `json:"duration"`
	Lifestyle  Tags     `json:"lifestyle"`
	Habits     Tags     `json:"habits"`
	Interests  Tags     `json:"interests"`
}

// Budget is a monthly rent range
type Budget struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Overlap returns the length of the intersection of both ranges.
// A result <= 0 means the ranges do not overlap.
func (b Budget) Overlap(other Budget) int {
	return min(b.Max, other.Max) - max(b.Min, other.Min)
}

// Span returns the extent covered by both ranges together
func (b Budget) Span(other Budget) int {
	return max(b.Max, other.Max) - min(b.Min, other.Min)
}

// WithCompatibility returns a copy of p annotated with the given score
func (p Profile) WithCompatibility(score int) Profile {
	p.Compatibility = &score
	return p
}

// Validate checks the structural invariants that the scoring engine assumes
// but never enforces. Call it where profiles enter the system.
func (p *Profile) Validate() error {
	var errs []error

	if p.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if p.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if p.Age < 0 {
		errs = append(errs, fmt.Errorf("age must not be negative, got %d", p.Age))
	}

	b := p.Preferences.Budget
	if b.Min < 0 {
		errs = append(errs, fmt.Errorf("budget.min must not be negative, got %d", b.Min))
	}
	if b.Min > b.Max {
		errs = append(errs, fmt.Errorf("budget.min (%d) must not exceed budget.max (%d)", b.Min, b.Max))
	}

	if err := p.Location.Coordinates.Validate(); err != nil {
		errs = append(errs, err)
	}

	if p.Preferences.MoveInDate.IsZero() {
		errs = append(errs, errors.New("preferences.moveInDate is required"))
	}
	if d := p.Preferences.Duration; d != "" && !d.Valid() {
		errs = append(errs, fmt.Errorf("preferences.duration must be 'short', 'medium' or 'long', got '%s'", d))
	}

	if len(errs) > 0 {
		return fmt.Errorf("profile %q: %w", p.ID, errors.Join(errs...))
	}

	return nil
}
