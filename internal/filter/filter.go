package filter

import (
	"github.com/vijay-prabhu/roommate-match/internal/config"
	"github.com/vijay-prabhu/roommate-match/internal/profile"
)

// Rule identifies which eligibility rule made the decision
type Rule string

const (
	RuleSelf     Rule = "self"
	RuleBudget   Rule = "budget"
	RuleMoveIn   Rule = "move_in"
	RuleDistance Rule = "distance"
	RuleEligible Rule = "eligible"
)

// DefaultMaxMoveInDays is the widest accepted gap between move-in dates
const DefaultMaxMoveInDays = 30

// Result represents the outcome of checking one candidate
type Result struct {
	Include bool   // Whether the candidate survives
	Rule    Rule   // Which rule made the decision
	Reason  string // Human-readable reason
}

// FilteredProfile combines a candidate with its filter result
type FilteredProfile struct {
	Profile profile.Profile
	Result  Result
}

// Filter applies hard eligibility constraints to candidates
type Filter struct {
	config config.FilterConfig
}

// New creates a new Filter with the given configuration
func New(cfg config.FilterConfig) *Filter {
	return &Filter{config: cfg}
}

// Default creates a Filter with the standard 30-day move-in window
func Default() *Filter {
	return New(config.FilterConfig{MaxMoveInDays: DefaultMaxMoveInDays})
}

// Apply runs a candidate through the eligibility rules against reference
func (f *Filter) Apply(candidate, reference *profile.Profile) Result {
	// Rule 1: never match with yourself
	if result := checkSelf(candidate, reference); result != nil {
		return *result
	}

	// Rule 2: budgets must overlap
	if result := checkBudget(candidate, reference); result != nil {
		return *result
	}

	// Rule 3: move-in dates close enough
	if result := f.checkMoveIn(candidate, reference); result != nil {
		return *result
	}

	// Rule 4: optional search radius
	if result := f.checkDistance(candidate, reference); result != nil {
		return *result
	}

	return Result{
		Include: true,
		Rule:    RuleEligible,
		Reason:  "passes all eligibility rules",
	}
}

// ApplyBatch checks every candidate, preserving order
func (f *Filter) ApplyBatch(candidates []profile.Profile, reference *profile.Profile) []FilteredProfile {
	results := make([]FilteredProfile, 0, len(candidates))

	for i := range candidates {
		results = append(results, FilteredProfile{
			Profile: candidates[i],
			Result:  f.Apply(&candidates[i], reference),
		})
	}

	return results
}

// Candidates returns the eligible candidates in their input order
func (f *Filter) Candidates(candidates []profile.Profile, reference *profile.Profile) []profile.Profile {
	included := make([]profile.Profile, 0, len(candidates))
	for i := range candidates {
		if f.Apply(&candidates[i], reference).Include {
			included = append(included, candidates[i])
		}
	}
	return included
}

// Candidates filters with the default rules
func Candidates(candidates []profile.Profile, reference *profile.Profile) []profile.Profile {
	return Default().Candidates(candidates, reference)
}

// FilterIncluded returns only candidates that passed
func FilterIncluded(filtered []FilteredProfile) []FilteredProfile {
	var included []FilteredProfile
	for _, f := range filtered {
		if f.Result.Include {
			included = append(included, f)
		}
	}
	return included
}

// Stats returns filtering statistics
type Stats struct {
	Total    int `json:"total"`
	Eligible int `json:"eligible"`
	Self     int `json:"self"`
	Budget   int `json:"budget"`
	MoveIn   int `json:"move_in"`
	Distance int `json:"distance"`
}

// GetStats returns statistics about filtered candidates
func GetStats(filtered []FilteredProfile) Stats {
	stats := Stats{Total: len(filtered)}

	for _, f := range filtered {
		switch f.Result.Rule {
		case RuleEligible:
			stats.Eligible++
		case RuleSelf:
			stats.Self++
		case RuleBudget:
			stats.Budget++
		case RuleMoveIn:
			stats.MoveIn++
		case RuleDistance:
			stats.Distance++
		}
	}

	return stats
}
