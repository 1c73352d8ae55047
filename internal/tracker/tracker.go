package tracker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/roommate-match/internal/config"
	"github.com/vijay-prabhu/roommate-match/internal/database"
	"github.com/vijay-prabhu/roommate-match/internal/filter"
	"github.com/vijay-prabhu/roommate-match/internal/logger"
	"github.com/vijay-prabhu/roommate-match/internal/profile"
	"github.com/vijay-prabhu/roommate-match/internal/ranking"
	"github.com/vijay-prabhu/roommate-match/internal/scorer"
)

// Tracker ties the stored profiles and swipes to the matching engine
type Tracker struct {
	db     *database.DB
	filter *filter.Filter
	scorer *scorer.Scorer
	ranker *ranking.Ranker
	log    *zap.Logger
}

// New creates a new Tracker
func New(db *database.DB, cfg *config.Config, log *zap.Logger) *Tracker {
	log = logger.OrNop(log)
	f := filter.New(cfg.Filters)
	s := scorer.NewScorer(cfg.Scoring)

	return &Tracker{
		db:     db,
		filter: f,
		scorer: s,
		ranker: ranking.New(f, s, log.Named("ranking")),
		log:    log,
	}
}

// SwipeResult is the outcome of recording a swipe
type SwipeResult struct {
	Swipe  database.Swipe       `json:"swipe"`
	Status database.MatchStatus `json:"status"`
}

// Profile loads a profile, failing when it does not exist
func (t *Tracker) Profile(ctx context.Context, id string) (*profile.Profile, error) {
	p, err := t.db.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("profile not found: %s", id)
	}
	return p, nil
}

// pool loads every stored profile as a candidate pool
func (t *Tracker) pool(ctx context.Context) ([]profile.Profile, error) {
	profiles, err := t.db.ListProfiles(ctx, database.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// Score returns the factor breakdown for two stored profiles
func (t *Tracker) Score(ctx context.Context, idA, idB string) (*scorer.Breakdown, error) {
	a, err := t.Profile(ctx, idA)
	if err != nil {
		return nil, err
	}
	b, err := t.Profile(ctx, idB)
	if err != nil {
		return nil, err
	}

	bd := t.scorer.Breakdown(a, b)
	return &bd, nil
}

// Candidates runs every stored profile through the filter for userID
func (t *Tracker) Candidates(ctx context.Context, userID string) ([]filter.FilteredProfile, error) {
	ref, err := t.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	pool, err := t.pool(ctx)
	if err != nil {
		return nil, err
	}

	return t.filter.ApplyBatch(pool, ref), nil
}

// Rank returns the stored profiles best suited to userID
func (t *Tracker) Rank(ctx context.Context, userID string, opts ranking.Options) ([]ranking.Match, error) {
	ref, err := t.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	pool, err := t.pool(ctx)
	if err != nil {
		return nil, err
	}

	return t.ranker.Rank(ref, pool, opts), nil
}

// Swipe records userID's decision on targetID along with their current
// compatibility, and returns the resulting match status.
func (t *Tracker) Swipe(ctx context.Context, userID, targetID string, action database.SwipeAction) (*SwipeResult, error) {
	bd, err := t.Score(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}

	s := database.Swipe{
		UserID:        userID,
		TargetUserID:  targetID,
		Action:        action,
		Compatibility: &bd.Total,
	}
	if err := t.db.RecordSwipe(ctx, &s); err != nil {
		return nil, err
	}

	swipes, err := t.db.ListSwipesFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list swipes: %w", err)
	}
	status := ComputeStatus(swipes, userID, targetID)

	t.log.Info("recorded swipe",
		zap.String("user", userID),
		zap.String("target", targetID),
		zap.String("action", string(action)),
		zap.Int("compatibility", bd.Total),
		zap.String("status", string(status)),
	)

	return &SwipeResult{Swipe: s, Status: status}, nil
}

// Matches summarizes every counterpart userID has swiped with
func (t *Tracker) Matches(ctx context.Context, userID string) ([]MatchSummary, error) {
	if _, err := t.Profile(ctx, userID); err != nil {
		return nil, err
	}

	swipes, err := t.db.ListSwipesFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list swipes: %w", err)
	}

	return Summarize(swipes, userID), nil
}
