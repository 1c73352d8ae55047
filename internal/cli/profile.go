package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/roommate-match/internal/database"
	"github.com/vijay-prabhu/roommate-match/internal/output"
	"github.com/vijay-prabhu/roommate-match/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored profiles",
}

var profileAddCmd = &cobra.Command{
	Use:   "add <file.json>",
	Short: "Add profiles from a JSON file",
	Long: `Add one profile (a JSON object) or several (a JSON array) to the store.
Profiles without an id are assigned one.

Examples:
  roommate profile add alex.json
  roommate profile add team.json --upsert   # Overwrite existing ids`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileAdd,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update <file.json>",
	Short: "Replace a stored profile from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileUpdate,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	Long: `List stored profiles in the order they were added.

Examples:
  roommate profile list
  roommate profile list --city="San Francisco"
  roommate profile list --limit=20 --offset=20`,
	Args: cobra.NoArgs,
	RunE: runProfileList,
}

var profileSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search profiles by name, bio, location or tags",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSearch,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileTextCmd = &cobra.Command{
	Use:   "text <id>",
	Short: "Print the plain-text summary of a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileText,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a profile and its swipes",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

var (
	profileUpsert bool
	profileCity   string
	profileLimit  int
	profileOffset int
	searchLimit   int
)

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileAddCmd, profileUpdateCmd, profileListCmd, profileSearchCmd,
		profileShowCmd, profileTextCmd, profileDeleteCmd)

	profileAddCmd.Flags().BoolVar(&profileUpsert, "upsert", false, "Overwrite profiles that already exist")
	profileListCmd.Flags().StringVar(&profileCity, "city", "", "Only profiles in this city")
	profileListCmd.Flags().IntVar(&profileLimit, "limit", 0, "Maximum number of results")
	profileListCmd.Flags().IntVar(&profileOffset, "offset", 0, "Skip this many results (with --limit)")
	profileSearchCmd.Flags().IntVar(&searchLimit, "limit", 20, "Maximum number of results")
}

// readProfiles decodes a JSON object or array of profiles
func readProfiles(path string) ([]profile.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var profiles []profile.Profile
		if err := json.Unmarshal(data, &profiles); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return profiles, nil
	}

	var p profile.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return []profile.Profile{p}, nil
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	profiles, err := readProfiles(args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if profileUpsert {
		if err := s.db.UpsertProfiles(ctx, profiles); err != nil {
			return err
		}
	} else {
		for i := range profiles {
			if err := s.db.CreateProfile(ctx, &profiles[i]); err != nil {
				return fmt.Errorf("failed to add profile %q: %w", profiles[i].Name, err)
			}
		}
	}

	s.log.Info("added profiles", zap.Int("count", len(profiles)), zap.Bool("upsert", profileUpsert))

	if output.IsJSON(outputFmt) {
		return output.Output(outputFmt, profiles)
	}
	for _, p := range profiles {
		fmt.Printf("Added %s (%s)\n", p.Name, p.ID)
	}
	return nil
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	profiles, err := readProfiles(args[0])
	if err != nil {
		return err
	}
	if len(profiles) != 1 {
		return fmt.Errorf("expected exactly one profile in %s, got %d", args[0], len(profiles))
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.db.UpdateProfile(ctx, &profiles[0]); err != nil {
		return err
	}

	fmt.Printf("Updated %s (%s)\n", profiles[0].Name, profiles[0].ID)
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	opts := database.ListOptions{
		Limit:  profileLimit,
		Offset: profileOffset,
	}
	if profileCity != "" {
		opts.City = &profileCity
	}

	profiles, err := s.db.ListProfiles(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	return output.Output(outputFmt, profiles)
}

func runProfileSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	profiles, err := s.db.Search(ctx, args[0], searchLimit)
	if err != nil {
		return fmt.Errorf("failed to search profiles: %w", err)
	}

	return output.Output(outputFmt, profiles)
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := s.tracker.Profile(ctx, args[0])
	if err != nil {
		return err
	}

	return output.Output(outputFmt, p)
}

func runProfileText(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := s.tracker.Profile(ctx, args[0])
	if err != nil {
		return err
	}

	text := profile.Text(p)
	if output.IsJSON(outputFmt) {
		return output.Output(outputFmt, map[string]string{"id": p.ID, "text": text})
	}
	fmt.Println(text)
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.db.DeleteProfile(ctx, args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted profile %s\n", args[0])
	return nil
}
