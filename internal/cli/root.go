package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/roommate-match/internal/config"
	"github.com/vijay-prabhu/roommate-match/internal/database"
	"github.com/vijay-prabhu/roommate-match/internal/logger"
	"github.com/vijay-prabhu/roommate-match/internal/output"
	"github.com/vijay-prabhu/roommate-match/internal/tracker"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	configPath string
	outputFmt  string
	verbose    bool
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "roommate",
	Short: "Roommate compatibility scoring and matching",
	Long: `roommate scores how well two people would live together and ranks
candidate roommates for a user.

It provides:
  - Weighted compatibility scores over budget, location, lifestyle, interests and habits
  - Eligibility filtering by budget overlap, move-in date and distance
  - Ranked candidate lists from a local profile store
  - Swipe tracking with mutual match detection`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		t := NewTerminal()
		if t.UseColor && !output.IsJSON(outputFmt) {
			output.SetScoreFormatter(t.Score)
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: ~/.config/roommate/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table",
		"output format (table, json, jsonl)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(home, ".config", "roommate", "config.toml")
	}
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roommate %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", buildTime)
	},
}

// session holds what a command needs to reach the profile store
type session struct {
	cfg     *config.Config
	db      *database.DB
	log     *zap.Logger
	tracker *tracker.Tracker
}

// openSession loads configuration, builds the logger and opens the database
func openSession() (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.JSON)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	log.Debug("opened database", zap.String("path", cfg.Database.Path))

	return &session{
		cfg:     cfg,
		db:      db,
		log:     log,
		tracker: tracker.New(db, cfg, log),
	}, nil
}

func (s *session) Close() {
	_ = s.log.Sync()
	s.db.Close()
}
