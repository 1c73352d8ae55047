package database

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vijay-prabhu/roommate-match/internal/fixtures"
	"github.com/vijay-prabhu/roommate-match/internal/profile"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "roommate-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return db, cleanup
}

func seedFixtures(t *testing.T, db *DB) {
	t.Helper()
	if err := db.UpsertProfiles(context.Background(), fixtures.Profiles()); err != nil {
		t.Fatalf("UpsertProfiles failed: %v", err)
	}
}

func TestOpen(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	if db == nil {
		t.Fatal("expected non-nil database")
	}

	for _, table := range []string{"profiles", "swipes"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil {
			t.Fatalf("failed to query tables: %v", err)
		}
		if count != 1 {
			t.Errorf("expected %s table to exist", table)
		}
	}

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health failed: %v", err)
	}
}

func TestOpen_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	seedFixtures(t, db)
	db.Close()

	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	profiles, err := db.ListProfiles(context.Background(), ListOptions{})
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(profiles) != 3 {
		t.Errorf("expected 3 profiles after reopen, got %d", len(profiles))
	}
}

func TestOpen_CompletesPartialSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	seedFixtures(t, db)
	if _, err := db.Exec("DROP TABLE swipes"); err != nil {
		t.Fatalf("failed to drop swipes: %v", err)
	}
	db.Close()

	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.RecordSwipe(ctx, &Swipe{UserID: "1", TargetUserID: "3", Action: ActionLike}); err != nil {
		t.Errorf("RecordSwipe after reopen failed: %v", err)
	}

	profiles, err := db.ListProfiles(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(profiles) != 3 {
		t.Errorf("expected existing profiles to survive, got %d", len(profiles))
	}
}

func TestProfileCRUD(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	// Create
	p := fixtures.Alex()
	p.ID = ""
	if err := db.CreateProfile(ctx, &p); err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	if p.ID == "" {
		t.Error("expected ID to be set after create")
	}

	// Read
	fetched, err := db.GetProfile(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected profile to be found")
	}
	if fetched.Name != "Alex Chen" {
		t.Errorf("expected Name=Alex Chen, got %s", fetched.Name)
	}
	if fetched.Preferences.MoveInDate.String() != "2024-02-01" {
		t.Errorf("expected move-in 2024-02-01, got %s", fetched.Preferences.MoveInDate)
	}
	if fetched.Location.Coordinates != p.Location.Coordinates {
		t.Errorf("expected coordinates %v, got %v", p.Location.Coordinates, fetched.Location.Coordinates)
	}
	if fetched.Preferences.Interests.String() != "hiking, cooking, tech" {
		t.Errorf("expected interests to round-trip, got %q", fetched.Preferences.Interests)
	}
	if fetched.Preferences.Duration != profile.DurationLong {
		t.Errorf("expected Duration=long, got %s", fetched.Preferences.Duration)
	}

	// Update
	p.Preferences.Budget.Max = 2600
	p.Preferences.Habits = nil
	if err := db.UpdateProfile(ctx, &p); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	fetched, _ = db.GetProfile(ctx, p.ID)
	if fetched.Preferences.Budget.Max != 2600 {
		t.Errorf("expected Budget.Max=2600, got %d", fetched.Preferences.Budget.Max)
	}
	if len(fetched.Preferences.Habits) != 0 {
		t.Errorf("expected no habits, got %v", fetched.Preferences.Habits)
	}

	// Delete
	if err := db.DeleteProfile(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}
	fetched, err = db.GetProfile(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if fetched != nil {
		t.Error("expected profile to be gone after delete")
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	p, err := db.GetProfile(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if p != nil {
		t.Error("expected nil for missing profile")
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	p := fixtures.Alex()
	if err := db.UpdateProfile(context.Background(), &p); err == nil {
		t.Error("expected error updating missing profile")
	}
	if err := db.DeleteProfile(context.Background(), p.ID); err == nil {
		t.Error("expected error deleting missing profile")
	}
}

func TestCreateProfile_Invalid(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	p := fixtures.Alex()
	p.Preferences.Budget = profile.Budget{Min: 3000, Max: 1000}

	if err := db.CreateProfile(context.Background(), &p); err == nil {
		t.Error("expected validation error")
	}
}

func TestUpsertProfile(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedFixtures(t, db)
	// Seeding twice must not duplicate
	seedFixtures(t, db)

	sarah := fixtures.Sarah()
	sarah.Age = 27
	if err := db.UpsertProfile(ctx, &sarah); err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}

	profiles, err := db.ListProfiles(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(profiles))
	}

	fetched, _ := db.GetProfile(ctx, "2")
	if fetched.Age != 27 {
		t.Errorf("expected Age=27 after upsert, got %d", fetched.Age)
	}
}

func TestUpsertProfiles_RollsBack(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	batch := fixtures.Profiles()
	batch[2].Name = "" // invalid

	if err := db.UpsertProfiles(ctx, batch); err == nil {
		t.Fatal("expected error for invalid profile")
	}

	profiles, err := db.ListProfiles(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("expected rollback to leave no profiles, got %d", len(profiles))
	}
}

func TestListProfiles(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedFixtures(t, db)

	all, err := db.ListProfiles(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	wantIDs := []string{"1", "2", "3"}
	for i, p := range all {
		if p.ID != wantIDs[i] {
			t.Errorf("profile[%d].ID = %s, want %s", i, p.ID, wantIDs[i])
		}
	}

	city := "san francisco"
	inCity, err := db.ListProfiles(ctx, ListOptions{City: &city})
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(inCity) != 3 {
		t.Errorf("expected 3 profiles in city, got %d", len(inCity))
	}

	other := "Oakland"
	none, _ := db.ListProfiles(ctx, ListOptions{City: &other})
	if len(none) != 0 {
		t.Errorf("expected 0 profiles in Oakland, got %d", len(none))
	}

	page, _ := db.ListProfiles(ctx, ListOptions{Limit: 1, Offset: 1})
	if len(page) != 1 || page[0].ID != "2" {
		t.Errorf("expected second profile on page, got %v", page)
	}
}

func TestSearch(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedFixtures(t, db)

	tests := []struct {
		query string
		want  int
	}{
		{"yoga", 1},
		{"Mission", 1},
		{"San Francisco", 3},
		{"nobody", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results, err := db.Search(ctx, tt.query, 0)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(results) != tt.want {
				t.Errorf("Search(%q) returned %d results, want %d", tt.query, len(results), tt.want)
			}
		})
	}
}

func TestRecordSwipe(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedFixtures(t, db)

	score := 35
	s := &Swipe{UserID: "1", TargetUserID: "2", Action: ActionLike, Compatibility: &score}
	if err := db.RecordSwipe(ctx, s); err != nil {
		t.Fatalf("RecordSwipe failed: %v", err)
	}
	firstID := s.ID

	// Re-swipe replaces the decision
	again := &Swipe{UserID: "1", TargetUserID: "2", Action: ActionPass, Compatibility: &score}
	if err := db.RecordSwipe(ctx, again); err != nil {
		t.Fatalf("RecordSwipe failed: %v", err)
	}
	if again.ID != firstID {
		t.Errorf("expected re-swipe to keep ID %s, got %s", firstID, again.ID)
	}

	swipes, err := db.ListSwipesFor(ctx, "2")
	if err != nil {
		t.Fatalf("ListSwipesFor failed: %v", err)
	}
	if len(swipes) != 1 {
		t.Fatalf("expected 1 swipe, got %d", len(swipes))
	}
	if swipes[0].Action != ActionPass {
		t.Errorf("expected Action=pass, got %s", swipes[0].Action)
	}
	if swipes[0].Compatibility == nil || *swipes[0].Compatibility != 35 {
		t.Errorf("expected Compatibility=35, got %v", swipes[0].Compatibility)
	}
}

func TestRecordSwipe_Invalid(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedFixtures(t, db)

	tests := []struct {
		name  string
		swipe Swipe
	}{
		{"unknown action", Swipe{UserID: "1", TargetUserID: "2", Action: "maybe"}},
		{"self swipe", Swipe{UserID: "1", TargetUserID: "1", Action: ActionLike}},
		{"unknown target", Swipe{UserID: "1", TargetUserID: "99", Action: ActionLike}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := db.RecordSwipe(ctx, &tt.swipe); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDeleteProfile_CascadesSwipes(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedFixtures(t, db)

	if err := db.RecordSwipe(ctx, &Swipe{UserID: "1", TargetUserID: "3", Action: ActionLike}); err != nil {
		t.Fatalf("RecordSwipe failed: %v", err)
	}
	if err := db.DeleteProfile(ctx, "3"); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}

	swipes, err := db.ListSwipesFor(ctx, "1")
	if err != nil {
		t.Fatalf("ListSwipesFor failed: %v", err)
	}
	if len(swipes) != 0 {
		t.Errorf("expected swipes to cascade, got %d", len(swipes))
	}
}

func TestGetStats(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedFixtures(t, db)

	s35, s54 := 35, 54
	swipes := []*Swipe{
		{UserID: "1", TargetUserID: "2", Action: ActionLike, Compatibility: &s35},
		{UserID: "2", TargetUserID: "1", Action: ActionLike, Compatibility: &s35},
		{UserID: "1", TargetUserID: "3", Action: ActionPass, Compatibility: &s54},
	}
	for _, s := range swipes {
		if err := db.RecordSwipe(ctx, s); err != nil {
			t.Fatalf("RecordSwipe failed: %v", err)
		}
	}

	stats, err := db.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.TotalProfiles != 3 {
		t.Errorf("expected TotalProfiles=3, got %d", stats.TotalProfiles)
	}
	if stats.Cities != 1 {
		t.Errorf("expected Cities=1, got %d", stats.Cities)
	}
	if stats.TotalSwipes != 3 || stats.Likes != 2 || stats.Passes != 1 {
		t.Errorf("unexpected swipe counts: %+v", stats)
	}
	if stats.MutualMatches != 1 {
		t.Errorf("expected MutualMatches=1, got %d", stats.MutualMatches)
	}
	if math.Abs(stats.AvgCompatibility-124.0/3.0) > 1e-9 {
		t.Errorf("expected AvgCompatibility=%v, got %v", 124.0/3.0, stats.AvgCompatibility)
	}
}

func TestTransaction(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedFixtures(t, db)

	errAbort := errors.New("abort")
	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM profiles"); err != nil {
			return err
		}
		return errAbort
	})
	if !errors.Is(err, errAbort) {
		t.Fatalf("expected abort error, got %v", err)
	}

	stats, _ := db.GetStats(ctx)
	if stats.TotalProfiles != 3 {
		t.Errorf("expected rollback to keep 3 profiles, got %d", stats.TotalProfiles)
	}
}
