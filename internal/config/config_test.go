package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vijay-prabhu/roommate-match/internal/scorer"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Scoring.Budget != 30 || cfg.Scoring.Location != 25 || cfg.Scoring.Lifestyle != 20 ||
		cfg.Scoring.Interests != 15 || cfg.Scoring.Habits != 10 {
		t.Errorf("unexpected default weights: %+v", cfg.Scoring)
	}

	if cfg.Filters.MaxMoveInDays != 30 {
		t.Errorf("expected MaxMoveInDays=30, got %d", cfg.Filters.MaxMoveInDays)
	}

	if cfg.Ranking.Limit != 10 {
		t.Errorf("expected Limit=10, got %d", cfg.Ranking.Limit)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "negative weight",
			modify: func(c *Config) {
				c.Scoring.Habits = -1
			},
			wantErr: true,
		},
		{
			name: "all weights zero",
			modify: func(c *Config) {
				c.Scoring = scorer.Weights{}
			},
			wantErr: true,
		},
		{
			name: "negative move-in window",
			modify: func(c *Config) {
				c.Filters.MaxMoveInDays = -1
			},
			wantErr: true,
		},
		{
			name: "min score out of range",
			modify: func(c *Config) {
				c.Ranking.MinScore = 101
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			modify: func(c *Config) {
				c.Logging.Level = "verbose"
			},
			wantErr: true,
		},
		{
			name: "missing database path",
			modify: func(c *Config) {
				c.Database.Path = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	data := `
[database]
path = "/tmp/roommate-test.db"

[scoring]
budget = 50
location = 50
lifestyle = 0
interests = 0
habits = 0

[filters]
max_move_in_days = 14
max_distance_miles = 12.5
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Database.Path != "/tmp/roommate-test.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Scoring.Budget != 50 || cfg.Scoring.Lifestyle != 0 {
		t.Errorf("Scoring = %+v", cfg.Scoring)
	}
	if cfg.Filters.MaxMoveInDays != 14 || cfg.Filters.MaxDistanceMiles != 12.5 {
		t.Errorf("Filters = %+v", cfg.Filters)
	}
	// Sections absent from the file keep their defaults
	if cfg.Ranking.Limit != 10 {
		t.Errorf("Ranking.Limit = %d, want default 10", cfg.Ranking.Limit)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Filters.MaxMoveInDays != 30 {
		t.Errorf("expected default MaxMoveInDays, got %d", cfg.Filters.MaxMoveInDays)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[scoring\nbudget = "), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		result, err := expandPath(tt.input)
		if err != nil {
			t.Errorf("expandPath(%q) error: %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
