package tracker

import (
	"fmt"
	"sort"
	"time"

	"github.com/vijay-prabhu/roommate-match/internal/database"
)

// MatchSummary describes where a user stands with one counterpart
type MatchSummary struct {
	UserID        string                `json:"user_id"` // The counterpart
	Status        database.MatchStatus  `json:"status"`
	MyAction      *database.SwipeAction `json:"my_action,omitempty"`
	TheirAction   *database.SwipeAction `json:"their_action,omitempty"`
	Compatibility *int                  `json:"compatibility,omitempty"`
	LastActivity  time.Time             `json:"last_activity"`
}

// ComputeStatus determines the match status between me and other from the
// swipes either of them made on the other. Any pass rejects the pair.
func ComputeStatus(swipes []database.Swipe, me, other string) database.MatchStatus {
	mine, theirs := actionsBetween(swipes, me, other)

	switch {
	case mine == nil && theirs == nil:
		return database.MatchNone
	case isPass(mine) || isPass(theirs):
		return database.MatchRejected
	case mine != nil && theirs != nil:
		return database.MatchAccepted
	default:
		return database.MatchPending
	}
}

// actionsBetween returns the latest action each side took on the other
func actionsBetween(swipes []database.Swipe, me, other string) (mine, theirs *database.SwipeAction) {
	var mineAt, theirsAt time.Time

	for i := range swipes {
		s := swipes[i]
		switch {
		case s.UserID == me && s.TargetUserID == other:
			if mine == nil || s.CreatedAt.After(mineAt) {
				mine, mineAt = &s.Action, s.CreatedAt
			}
		case s.UserID == other && s.TargetUserID == me:
			if theirs == nil || s.CreatedAt.After(theirsAt) {
				theirs, theirsAt = &s.Action, s.CreatedAt
			}
		}
	}

	return mine, theirs
}

func isPass(a *database.SwipeAction) bool {
	return a != nil && *a == database.ActionPass
}

// Summarize builds one summary per counterpart of me, newest activity first
func Summarize(swipes []database.Swipe, me string) []MatchSummary {
	byUser := make(map[string]*MatchSummary)
	var order []string

	for _, s := range swipes {
		var other string
		switch me {
		case s.UserID:
			other = s.TargetUserID
		case s.TargetUserID:
			other = s.UserID
		default:
			continue
		}

		sum, ok := byUser[other]
		if !ok {
			sum = &MatchSummary{UserID: other}
			byUser[other] = sum
			order = append(order, other)
		}

		if s.CreatedAt.After(sum.LastActivity) || sum.LastActivity.IsZero() {
			sum.LastActivity = s.CreatedAt
			if s.Compatibility != nil {
				sum.Compatibility = s.Compatibility
			}
		} else if sum.Compatibility == nil {
			sum.Compatibility = s.Compatibility
		}
	}

	summaries := make([]MatchSummary, 0, len(order))
	for _, other := range order {
		sum := byUser[other]
		sum.MyAction, sum.TheirAction = actionsBetween(swipes, me, other)
		sum.Status = ComputeStatus(swipes, me, other)
		summaries = append(summaries, *sum)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastActivity.After(summaries[j].LastActivity)
	})

	return summaries
}

// FormatActivity returns a human-readable age of t relative to now
func FormatActivity(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)

	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return formatDays(days) + " ago"
	case days < 30:
		return formatWeeks(days/7) + " ago"
	default:
		return formatDays(days) + " ago"
	}
}

func formatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func formatWeeks(weeks int) string {
	if weeks == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", weeks)
}
