package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/roommate-match/internal/output"
	"github.com/vijay-prabhu/roommate-match/internal/ranking"
)

var rankCmd = &cobra.Command{
	Use:   "rank <id>",
	Short: "Rank compatible roommates for a user",
	Long: `Filter the stored profiles for a user, score the eligible ones and list
them best first.

Examples:
  roommate rank 1
  roommate rank 1 --limit=5 --min-score=50
  roommate rank 1 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

var (
	rankLimit    int
	rankMinScore int
)

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.Flags().IntVar(&rankLimit, "limit", -1, "Maximum number of matches (default from config, 0 = no limit)")
	rankCmd.Flags().IntVar(&rankMinScore, "min-score", -1, "Drop matches scoring below this (default from config)")
}

func runRank(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	opts := ranking.Options{
		Limit:    s.cfg.Ranking.Limit,
		MinScore: s.cfg.Ranking.MinScore,
	}
	if rankLimit >= 0 {
		opts.Limit = rankLimit
	}
	if rankMinScore >= 0 {
		opts.MinScore = rankMinScore
	}

	matches, err := s.tracker.Rank(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, matches)
}
