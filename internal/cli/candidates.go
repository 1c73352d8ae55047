package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/roommate-match/internal/filter"
	"github.com/vijay-prabhu/roommate-match/internal/output"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates <id>",
	Short: "Show which stored profiles are eligible for a user",
	Long: `Run every stored profile through the eligibility rules for a user and
show the decision and reason for each.

Examples:
  roommate candidates 1
  roommate candidates 1 --eligible   # Only eligible candidates`,
	Args: cobra.ExactArgs(1),
	RunE: runCandidates,
}

var candidatesEligible bool

func init() {
	rootCmd.AddCommand(candidatesCmd)
	candidatesCmd.Flags().BoolVar(&candidatesEligible, "eligible", false, "Only show eligible candidates")
}

func runCandidates(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	filtered, err := s.tracker.Candidates(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if candidatesEligible {
		filtered = filter.FilterIncluded(filtered)
	}

	return output.Output(outputFmt, filtered)
}
