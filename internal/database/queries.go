package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vijay-prabhu/roommate-match/internal/profile"
)

const profileColumns = `
	id, email, name, age, bio, profile_image, city, neighborhood, lat, lon,
	budget_min, budget_max, move_in_date, duration, lifestyle, habits, interests`

// execer is satisfied by both *DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

// profileArgs returns the column values for p in profileColumns order
func profileArgs(p *profile.Profile) ([]any, error) {
	lifestyle, err := encodeTags(p.Preferences.Lifestyle)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lifestyle: %w", err)
	}
	habits, err := encodeTags(p.Preferences.Habits)
	if err != nil {
		return nil, fmt.Errorf("failed to encode habits: %w", err)
	}
	interests, err := encodeTags(p.Preferences.Interests)
	if err != nil {
		return nil, fmt.Errorf("failed to encode interests: %w", err)
	}

	return []any{
		p.ID, NullString(p.Email), p.Name, p.Age, NullString(p.Bio), NullString(p.ProfileImage),
		p.Location.City, p.Location.Neighborhood,
		p.Location.Coordinates.Lat, p.Location.Coordinates.Lon,
		p.Preferences.Budget.Min, p.Preferences.Budget.Max,
		p.Preferences.MoveInDate.String(), NullString(string(p.Preferences.Duration)),
		lifestyle, habits, interests,
	}, nil
}

// scanProfile reads one row selected with profileColumns. Scan errors are
// returned unwrapped so callers can compare against sql.ErrNoRows.
func scanProfile(s scanner) (*profile.Profile, error) {
	p := &profile.Profile{}
	var email, bio, image, duration sql.NullString
	var moveIn, lifestyle, habits, interests string

	if err := s.Scan(
		&p.ID, &email, &p.Name, &p.Age, &bio, &image,
		&p.Location.City, &p.Location.Neighborhood,
		&p.Location.Coordinates.Lat, &p.Location.Coordinates.Lon,
		&p.Preferences.Budget.Min, &p.Preferences.Budget.Max,
		&moveIn, &duration, &lifestyle, &habits, &interests,
	); err != nil {
		return nil, err
	}

	p.Email = email.String
	p.Bio = bio.String
	p.ProfileImage = image.String
	p.Preferences.Duration = profile.Duration(duration.String)

	if moveIn != "" {
		d, err := profile.ParseDate(moveIn)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", p.ID, err)
		}
		p.Preferences.MoveInDate = d
	}

	var err error
	if p.Preferences.Lifestyle, err = decodeTags(lifestyle); err != nil {
		return nil, fmt.Errorf("profile %s: failed to decode lifestyle: %w", p.ID, err)
	}
	if p.Preferences.Habits, err = decodeTags(habits); err != nil {
		return nil, fmt.Errorf("profile %s: failed to decode habits: %w", p.ID, err)
	}
	if p.Preferences.Interests, err = decodeTags(interests); err != nil {
		return nil, fmt.Errorf("profile %s: failed to decode interests: %w", p.ID, err)
	}

	return p, nil
}

func scanProfiles(rows *sql.Rows) ([]profile.Profile, error) {
	defer rows.Close()

	var profiles []profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}

	return profiles, rows.Err()
}

// CreateProfile inserts a new profile, assigning an ID when empty
func (db *DB) CreateProfile(ctx context.Context, p *profile.Profile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := p.Validate(); err != nil {
		return err
	}

	args, err := profileArgs(p)
	if err != nil {
		return err
	}
	now := time.Now()
	args = append(args, now, now)

	_, err = db.ExecContext(ctx, `
		INSERT INTO profiles (`+profileColumns+`, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, args...)
	return err
}

// UpsertProfile inserts p or overwrites the stored profile with the same ID.
// Swipes involving the profile are kept.
func (db *DB) UpsertProfile(ctx context.Context, p *profile.Profile) error {
	return upsertProfile(ctx, db, p)
}

// UpsertProfiles upserts all profiles in one transaction
func (db *DB) UpsertProfiles(ctx context.Context, profiles []profile.Profile) error {
	return db.Transaction(ctx, func(tx *sql.Tx) error {
		for i := range profiles {
			if err := upsertProfile(ctx, tx, &profiles[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertProfile(ctx context.Context, ex execer, p *profile.Profile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := p.Validate(); err != nil {
		return err
	}

	args, err := profileArgs(p)
	if err != nil {
		return err
	}
	now := time.Now()
	args = append(args, now, now)

	_, err = ex.ExecContext(ctx, `
		INSERT INTO profiles (`+profileColumns+`, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email, name = excluded.name, age = excluded.age,
			bio = excluded.bio, profile_image = excluded.profile_image,
			city = excluded.city, neighborhood = excluded.neighborhood,
			lat = excluded.lat, lon = excluded.lon,
			budget_min = excluded.budget_min, budget_max = excluded.budget_max,
			move_in_date = excluded.move_in_date, duration = excluded.duration,
			lifestyle = excluded.lifestyle, habits = excluded.habits, interests = excluded.interests,
			updated_at = excluded.updated_at
	`, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", p.ID, err)
	}
	return nil
}

// GetProfile retrieves a profile by ID
func (db *DB) GetProfile(ctx context.Context, id string) (*profile.Profile, error) {
	row := db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)

	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProfile updates an existing profile
func (db *DB) UpdateProfile(ctx context.Context, p *profile.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	args, err := profileArgs(p)
	if err != nil {
		return err
	}
	// Drop the ID from the front and move it to the WHERE clause
	args = append(args[1:], time.Now(), p.ID)

	result, err := db.ExecContext(ctx, `
		UPDATE profiles SET
			email = ?, name = ?, age = ?, bio = ?, profile_image = ?,
			city = ?, neighborhood = ?, lat = ?, lon = ?,
			budget_min = ?, budget_max = ?, move_in_date = ?, duration = ?,
			lifestyle = ?, habits = ?, interests = ?, updated_at = ?
		WHERE id = ?
	`, args...)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("profile not found: %s", p.ID)
	}
	return nil
}

// DeleteProfile removes a profile and every swipe involving it
func (db *DB) DeleteProfile(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("profile not found: %s", id)
	}
	return nil
}

// ListProfiles retrieves profiles in insertion order
func (db *DB) ListProfiles(ctx context.Context, opts ListOptions) ([]profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE 1=1`
	args := []any{}

	if opts.City != nil {
		query += " AND LOWER(city) = LOWER(?)"
		args = append(args, *opts.City)
	}

	query += " ORDER BY created_at ASC, rowid ASC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
		if opts.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", opts.Offset)
		}
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanProfiles(rows)
}

// Search finds profiles whose name, bio, location or tags contain query
func (db *DB) Search(ctx context.Context, query string, limit int) ([]profile.Profile, error) {
	if limit <= 0 {
		limit = 20
	}

	searchPattern := "%" + query + "%"
	rows, err := db.QueryContext(ctx, `
		SELECT `+profileColumns+` FROM profiles
		WHERE name LIKE ? OR bio LIKE ? OR city LIKE ? OR neighborhood LIKE ?
		   OR lifestyle LIKE ? OR habits LIKE ? OR interests LIKE ?
		ORDER BY created_at ASC, rowid ASC
		LIMIT ?
	`, searchPattern, searchPattern, searchPattern, searchPattern,
		searchPattern, searchPattern, searchPattern, limit)
	if err != nil {
		return nil, err
	}
	return scanProfiles(rows)
}

// RecordSwipe stores a swipe. A repeated swipe on the same target replaces
// the earlier decision and keeps its ID.
func (db *DB) RecordSwipe(ctx context.Context, s *Swipe) error {
	if !s.Action.Valid() {
		return fmt.Errorf("invalid swipe action: %q", s.Action)
	}
	if s.UserID == s.TargetUserID {
		return fmt.Errorf("cannot swipe on own profile: %s", s.UserID)
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.CreatedAt = time.Now()

	err := db.QueryRowContext(ctx, `
		INSERT INTO swipes (id, user_id, target_user_id, action, compatibility, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, target_user_id) DO UPDATE SET
			action = excluded.action,
			compatibility = excluded.compatibility,
			created_at = excluded.created_at
		RETURNING id
	`, s.ID, s.UserID, s.TargetUserID, s.Action, NullInt64(s.Compatibility), s.CreatedAt).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to record swipe: %w", err)
	}
	return nil
}

// ListSwipesFor retrieves swipes made by or on userID, newest first
func (db *DB) ListSwipesFor(ctx context.Context, userID string) ([]Swipe, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, user_id, target_user_id, action, compatibility, created_at
		FROM swipes
		WHERE user_id = ? OR target_user_id = ?
		ORDER BY created_at DESC
	`, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var swipes []Swipe
	for rows.Next() {
		s := Swipe{}
		var compatibility sql.NullInt64

		if err := rows.Scan(&s.ID, &s.UserID, &s.TargetUserID, &s.Action, &compatibility, &s.CreatedAt); err != nil {
			return nil, err
		}

		s.Compatibility = IntPtr(compatibility)
		swipes = append(swipes, s)
	}

	return swipes, rows.Err()
}

// GetStats returns aggregate statistics
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM profiles),
			(SELECT COUNT(DISTINCT LOWER(city)) FROM profiles WHERE city != ''),
			(SELECT COUNT(*) FROM swipes),
			(SELECT COUNT(*) FROM swipes WHERE action = 'like'),
			(SELECT COUNT(*) FROM swipes WHERE action = 'pass'),
			(SELECT COUNT(*) FROM swipes a
			   JOIN swipes b ON a.user_id = b.target_user_id AND a.target_user_id = b.user_id
			  WHERE a.action = 'like' AND b.action = 'like' AND a.user_id < b.user_id),
			(SELECT COALESCE(AVG(compatibility), 0.0) FROM swipes WHERE compatibility IS NOT NULL)
	`).Scan(
		&stats.TotalProfiles, &stats.Cities, &stats.TotalSwipes,
		&stats.Likes, &stats.Passes, &stats.MutualMatches, &stats.AvgCompatibility,
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
