package config

import "github.com/vijay-prabhu/roommate-match/internal/scorer"

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Scoring  scorer.Weights `toml:"scoring"`
	Filters  FilterConfig   `toml:"filters"`
	Ranking  RankingConfig  `toml:"ranking"`
	Logging  LoggingConfig  `toml:"logging"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// FilterConfig contains the candidate eligibility rules
type FilterConfig struct {
	MaxMoveInDays    int     `toml:"max_move_in_days"`
	MaxDistanceMiles float64 `toml:"max_distance_miles"` // 0 disables the radius check
}

// RankingConfig controls how many ranked matches are returned
type RankingConfig struct {
	Limit    int `toml:"limit"`     // 0 = no limit
	MinScore int `toml:"min_score"` // Drop matches scoring below this
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/roommate/roommate.db",
		},
		Scoring: scorer.DefaultWeights(),
		Filters: FilterConfig{
			MaxMoveInDays:    30,
			MaxDistanceMiles: 0,
		},
		Ranking: RankingConfig{
			Limit:    10,
			MinScore: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
