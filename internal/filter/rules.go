package filter

import (
	"fmt"

	"github.com/vijay-prabhu/roommate-match/internal/profile"
	"github.com/vijay-prabhu/roommate-match/internal/scorer"
)

// checkSelf excludes the reference profile itself
func checkSelf(candidate, reference *profile.Profile) *Result {
	if candidate.ID != reference.ID {
		return nil
	}
	return &Result{
		Include: false,
		Rule:    RuleSelf,
		Reason:  "candidate is the reference profile",
	}
}

// checkBudget excludes candidates whose rent range does not overlap.
// Uses the same overlap as the budget factor, but as a hard cutoff.
func checkBudget(candidate, reference *profile.Profile) *Result {
	cb, rb := candidate.Preferences.Budget, reference.Preferences.Budget

	overlap := cb.Overlap(rb)
	if overlap > 0 {
		return nil
	}
	return &Result{
		Include: false,
		Rule:    RuleBudget,
		Reason:  fmt.Sprintf("no budget overlap: $%d-$%d vs $%d-$%d", cb.Min, cb.Max, rb.Min, rb.Max),
	}
}

// checkMoveIn excludes candidates moving in too far from the reference date
func (f *Filter) checkMoveIn(candidate, reference *profile.Profile) *Result {
	days := profile.DaysBetween(candidate.Preferences.MoveInDate, reference.Preferences.MoveInDate)
	if days <= f.config.MaxMoveInDays {
		return nil
	}
	return &Result{
		Include: false,
		Rule:    RuleMoveIn,
		Reason:  fmt.Sprintf("move-in dates %d days apart (max %d)", days, f.config.MaxMoveInDays),
	}
}

// checkDistance excludes candidates outside the search radius, when one is set
func (f *Filter) checkDistance(candidate, reference *profile.Profile) *Result {
	if f.config.MaxDistanceMiles <= 0 {
		return nil
	}

	miles := scorer.Distance(candidate.Location.Coordinates, reference.Location.Coordinates)
	if miles <= f.config.MaxDistanceMiles {
		return nil
	}
	return &Result{
		Include: false,
		Rule:    RuleDistance,
		Reason:  fmt.Sprintf("%.1f miles away (max %.1f)", miles, f.config.MaxDistanceMiles),
	}
}
