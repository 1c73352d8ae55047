package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/roommate-match/internal/fixtures"
	"github.com/vijay-prabhu/roommate-match/internal/output"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo profiles",
	Long: `Load the built-in demo profiles (Alex, Sarah and Mike in San Francisco).
Running it again resets those profiles to their demo values.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	profiles := fixtures.Profiles()
	if err := s.db.UpsertProfiles(ctx, profiles); err != nil {
		return fmt.Errorf("failed to seed profiles: %w", err)
	}

	s.log.Info("seeded demo profiles", zap.Int("count", len(profiles)))

	return output.Output(outputFmt, profiles)
}
