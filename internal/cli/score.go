package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/roommate-match/internal/output"
)

var scoreCmd = &cobra.Command{
	Use:   "score <id-a> <id-b>",
	Short: "Score the compatibility of two profiles",
	Long: `Show the per-factor breakdown and total compatibility of two stored profiles.
The score is symmetric: swapping the ids gives the same result.

Examples:
  roommate score 1 2
  roommate score 1 3 -o json`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	bd, err := s.tracker.Score(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	return output.Output(outputFmt, bd)
}
