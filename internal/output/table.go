package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/vijay-prabhu/roommate-match/internal/database"
	"github.com/vijay-prabhu/roommate-match/internal/filter"
	"github.com/vijay-prabhu/roommate-match/internal/profile"
	"github.com/vijay-prabhu/roommate-match/internal/ranking"
	"github.com/vijay-prabhu/roommate-match/internal/scorer"
	"github.com/vijay-prabhu/roommate-match/internal/tracker"
)

// formatScore renders a 0-100 score. The CLI swaps it for a coloured
// version when writing to a terminal.
var formatScore = strconv.Itoa

// SetScoreFormatter overrides how scores are rendered in tables
func SetScoreFormatter(f func(int) string) {
	if f == nil {
		f = strconv.Itoa
	}
	formatScore = f
}

// now is replaced in tests
var now = time.Now

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []profile.Profile:
		return profilesTable(w, v)
	case *profile.Profile:
		return profileDetail(w, v)
	case []ranking.Match:
		return matchesTable(w, v)
	case *scorer.Breakdown:
		return breakdownTable(w, v)
	case []filter.FilteredProfile:
		return candidatesTable(w, v)
	case []tracker.MatchSummary:
		return summariesTable(w, v)
	case *tracker.SwipeResult:
		return swipeResult(w, v)
	case *database.Stats:
		return statsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func render(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func profilesTable(w io.Writer, profiles []profile.Profile) error {
	if len(profiles) == 0 {
		fmt.Fprintln(w, "No profiles found.")
		return nil
	}

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			p.ID,
			truncate(p.Name, 24),
			strconv.Itoa(p.Age),
			formatLocation(p.Location),
			formatBudget(p.Preferences.Budget),
			p.Preferences.MoveInDate.String(),
		})
	}

	return render(w, []string{"ID", "NAME", "AGE", "LOCATION", "BUDGET", "MOVE-IN"}, rows)
}

func profileDetail(w io.Writer, p *profile.Profile) error {
	fmt.Fprintf(w, "ID:          %s\n", p.ID)
	fmt.Fprintf(w, "Name:        %s\n", p.Name)
	if p.Email != "" {
		fmt.Fprintf(w, "Email:       %s\n", p.Email)
	}
	fmt.Fprintf(w, "Age:         %d\n", p.Age)
	fmt.Fprintf(w, "Location:    %s (%s)\n", formatLocation(p.Location), p.Location.Coordinates)
	fmt.Fprintf(w, "Budget:      %s\n", formatBudget(p.Preferences.Budget))
	fmt.Fprintf(w, "Move-in:     %s\n", p.Preferences.MoveInDate)
	if p.Preferences.Duration != "" {
		fmt.Fprintf(w, "Duration:    %s\n", p.Preferences.Duration)
	}
	fmt.Fprintf(w, "Lifestyle:   %s\n", p.Preferences.Lifestyle)
	fmt.Fprintf(w, "Habits:      %s\n", p.Preferences.Habits)
	fmt.Fprintf(w, "Interests:   %s\n", p.Preferences.Interests)
	if p.Bio != "" {
		fmt.Fprintf(w, "Bio:         %s\n", p.Bio)
	}

	return nil
}

func matchesTable(w io.Writer, matches []ranking.Match) error {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No compatible candidates found.")
		return nil
	}

	rows := make([][]string, 0, len(matches))
	for i, m := range matches {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			m.Profile.ID,
			truncate(m.Profile.Name, 24),
			formatScore(m.Score),
			m.Tier,
			strconv.Itoa(m.Breakdown.Budget),
			strconv.Itoa(m.Breakdown.Location),
			strconv.Itoa(m.Breakdown.Lifestyle),
			strconv.Itoa(m.Breakdown.Interests),
			strconv.Itoa(m.Breakdown.Habits),
		})
	}

	return render(w,
		[]string{"#", "ID", "NAME", "SCORE", "TIER", "BUDGET", "LOCATION", "LIFESTYLE", "INTERESTS", "HABITS"},
		rows,
	)
}

func breakdownTable(w io.Writer, b *scorer.Breakdown) error {
	rows := [][]string{
		{"Budget", strconv.Itoa(b.Budget)},
		{"Location", fmt.Sprintf("%d (%.1f mi)", b.Location, b.DistanceMiles)},
		{"Lifestyle", strconv.Itoa(b.Lifestyle)},
		{"Interests", strconv.Itoa(b.Interests)},
		{"Habits", strconv.Itoa(b.Habits)},
		{"Total", fmt.Sprintf("%s (%s)", formatScore(b.Total), scorer.Tier(b.Total))},
	}

	return render(w, []string{"FACTOR", "SCORE"}, rows)
}

func candidatesTable(w io.Writer, filtered []filter.FilteredProfile) error {
	if len(filtered) == 0 {
		fmt.Fprintln(w, "No profiles found.")
		return nil
	}

	rows := make([][]string, 0, len(filtered))
	for _, f := range filtered {
		decision := "excluded"
		if f.Result.Include {
			decision = "eligible"
		}
		rows = append(rows, []string{
			f.Profile.ID,
			truncate(f.Profile.Name, 24),
			decision,
			string(f.Result.Rule),
			f.Result.Reason,
		})
	}

	if err := render(w, []string{"ID", "NAME", "RESULT", "RULE", "REASON"}, rows); err != nil {
		return err
	}

	stats := filter.GetStats(filtered)
	fmt.Fprintf(w, "%d of %d eligible\n", stats.Eligible, stats.Total)
	return nil
}

func summariesTable(w io.Writer, summaries []tracker.MatchSummary) error {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No matches yet.")
		return nil
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		score := "-"
		if s.Compatibility != nil {
			score = formatScore(*s.Compatibility)
		}
		rows = append(rows, []string{
			s.UserID,
			string(s.Status),
			formatAction(s.MyAction),
			formatAction(s.TheirAction),
			score,
			tracker.FormatActivity(s.LastActivity, now()),
		})
	}

	return render(w, []string{"USER", "STATUS", "YOU", "THEM", "SCORE", "LAST ACTIVITY"}, rows)
}

func swipeResult(w io.Writer, r *tracker.SwipeResult) error {
	score := "-"
	if r.Swipe.Compatibility != nil {
		score = formatScore(*r.Swipe.Compatibility)
	}
	fmt.Fprintf(w, "%s -> %s: %s (compatibility %s)\n", r.Swipe.UserID, r.Swipe.TargetUserID, r.Swipe.Action, score)
	fmt.Fprintf(w, "Match status: %s\n", r.Status)
	return nil
}

func statsTable(w io.Writer, s *database.Stats) error {
	fmt.Fprintln(w, "Roommate Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Profiles:               %d\n", s.TotalProfiles)
	fmt.Fprintf(w, "Cities:                 %d\n", s.Cities)
	fmt.Fprintf(w, "Swipes:                 %d\n", s.TotalSwipes)
	fmt.Fprintf(w, "Likes:                  %d\n", s.Likes)
	fmt.Fprintf(w, "Passes:                 %d\n", s.Passes)
	fmt.Fprintf(w, "Mutual matches:         %d\n", s.MutualMatches)

	if s.TotalSwipes > 0 {
		fmt.Fprintf(w, "Avg compatibility:      %.1f\n", s.AvgCompatibility)
	}

	return nil
}

func formatAction(a *database.SwipeAction) string {
	if a == nil {
		return "-"
	}
	return string(*a)
}

func formatLocation(l profile.Location) string {
	if l.Neighborhood == "" {
		return l.City
	}
	return l.City + ", " + l.Neighborhood
}

func formatBudget(b profile.Budget) string {
	return fmt.Sprintf("$%d - $%d", b.Min, b.Max)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
