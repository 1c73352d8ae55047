package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/roommate-match/internal/config"
	"github.com/vijay-prabhu/roommate-match/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file already exists at %s\n", configPath)
		fmt.Println("Use 'roommate config show' to view current configuration")
		return nil
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	fmt.Printf("Created config file at %s\n", configPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Run 'roommate seed' to load the demo profiles")
	fmt.Println("  2. Run 'roommate rank 1' to rank candidates for Alex")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if output.IsJSON(outputFmt) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return output.Output(outputFmt, cfg)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found, using defaults. Run 'roommate config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# Roommate Match Configuration

[database]
path = "~/.local/share/roommate/roommate.db"

# Factor weights. Only their ratio matters.
[scoring]
budget = 30
location = 25
lifestyle = 20
interests = 15
habits = 10

[filters]
max_move_in_days = 30     # Widest accepted gap between move-in dates
max_distance_miles = 0    # 0 disables the radius check

[ranking]
limit = 10                # 0 = no limit
min_score = 0

[logging]
level = "info"            # debug, info, warn, error
json = false
`
