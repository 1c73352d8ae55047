package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file.
// A missing file yields the defaults so the tool works out of the box.
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(expandedPath)
	switch {
	case os.IsNotExist(err):
		// Fall through with defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Database.Path, err = expandPath(c.Database.Path)
	return err
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Database validation
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	// Scoring validation
	w := c.Scoring
	weights := []struct {
		name  string
		value int
	}{
		{"budget", w.Budget},
		{"location", w.Location},
		{"lifestyle", w.Lifestyle},
		{"interests", w.Interests},
		{"habits", w.Habits},
	}
	for _, wt := range weights {
		if wt.value < 0 {
			errs = append(errs, fmt.Errorf("scoring.%s must not be negative, got %d", wt.name, wt.value))
		}
	}
	if w.Total() <= 0 {
		errs = append(errs, errors.New("scoring weights must sum to a positive value"))
	}

	// Filter validation
	if c.Filters.MaxMoveInDays < 0 {
		errs = append(errs, errors.New("filters.max_move_in_days must not be negative"))
	}
	if c.Filters.MaxDistanceMiles < 0 {
		errs = append(errs, errors.New("filters.max_distance_miles must not be negative"))
	}

	// Ranking validation
	if c.Ranking.Limit < 0 {
		errs = append(errs, errors.New("ranking.limit must not be negative"))
	}
	if c.Ranking.MinScore < 0 || c.Ranking.MinScore > 100 {
		errs = append(errs, errors.New("ranking.min_score must be between 0 and 100"))
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Errorf("logging.level must be one of debug, info, warn, error, got '%s'", c.Logging.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates necessary directories for the database
func (c *Config) EnsureDirectories() error {
	dir := filepath.Dir(c.Database.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
