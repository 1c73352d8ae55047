package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/roommate-match/internal/database"
	"github.com/vijay-prabhu/roommate-match/internal/output"
)

var swipeCmd = &cobra.Command{
	Use:   "swipe <id> <target-id> <like|pass>",
	Short: "Record a like or pass on a candidate",
	Long: `Record a user's decision on a candidate. Swiping again on the same
candidate replaces the earlier decision.

Examples:
  roommate swipe 1 3 like
  roommate swipe 3 1 like    # Mutual like, match accepted
  roommate swipe 1 2 pass`,
	Args:      cobra.ExactArgs(3),
	ValidArgs: []string{string(database.ActionLike), string(database.ActionPass)},
	RunE:      runSwipe,
}

func init() {
	rootCmd.AddCommand(swipeCmd)
}

func runSwipe(cmd *cobra.Command, args []string) error {
	action := database.SwipeAction(args[2])
	if !action.Valid() {
		return fmt.Errorf("invalid action %q: must be 'like' or 'pass'", args[2])
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := s.tracker.Swipe(cmd.Context(), args[0], args[1], action)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, result)
}
