package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/roommate-match/internal/database"
	"github.com/vijay-prabhu/roommate-match/internal/output"
	"github.com/vijay-prabhu/roommate-match/internal/tracker"
)

var matchesCmd = &cobra.Command{
	Use:   "matches <id>",
	Short: "List a user's matches and their status",
	Long: `List everyone a user has swiped on or been swiped on by, with the match
status (pending, accepted or rejected), newest activity first.

Examples:
  roommate matches 1
  roommate matches 1 --status=accepted`,
	Args: cobra.ExactArgs(1),
	RunE: runMatches,
}

var matchesStatus string

func init() {
	rootCmd.AddCommand(matchesCmd)
	matchesCmd.Flags().StringVar(&matchesStatus, "status", "", "Filter by status (pending, accepted, rejected)")
}

func runMatches(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	summaries, err := s.tracker.Matches(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if matchesStatus != "" {
		kept := make([]tracker.MatchSummary, 0, len(summaries))
		for _, m := range summaries {
			if m.Status == database.MatchStatus(matchesStatus) {
				kept = append(kept, m)
			}
		}
		summaries = kept
	}

	return output.Output(outputFmt, summaries)
}
