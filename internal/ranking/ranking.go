// Package ranking runs a candidate pool through the eligibility filter and
// orders the survivors by compatibility with a reference profile.
package ranking

import (
	"sort"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/roommate-match/internal/filter"
	"github.com/vijay-prabhu/roommate-match/internal/logger"
	"github.com/vijay-prabhu/roommate-match/internal/profile"
	"github.com/vijay-prabhu/roommate-match/internal/scorer"
)

// Match is a ranked candidate
type Match struct {
	Profile   profile.Profile  `json:"profile"` // Copy annotated with Compatibility
	Score     int              `json:"score"`
	Tier      string           `json:"tier"`
	Breakdown scorer.Breakdown `json:"breakdown"`
}

// Options configures a ranking run
type Options struct {
	Limit    int // 0 = no limit
	MinScore int
}

// Ranker combines a Filter and a Scorer
type Ranker struct {
	filter *filter.Filter
	scorer *scorer.Scorer
	log    *zap.Logger
}

// New creates a new Ranker. A nil logger disables logging.
func New(f *filter.Filter, s *scorer.Scorer, log *zap.Logger) *Ranker {
	return &Ranker{
		filter: f,
		scorer: s,
		log:    logger.OrNop(log),
	}
}

// Rank filters pool against reference, scores the survivors and returns them
// best first. Ties keep their pool order. Neither argument is modified.
func (r *Ranker) Rank(reference *profile.Profile, pool []profile.Profile, opts Options) []Match {
	filtered := r.filter.ApplyBatch(pool, reference)

	matches := make([]Match, 0, len(filtered))
	for _, fp := range filtered {
		if !fp.Result.Include {
			r.log.Debug("candidate excluded",
				zap.String("candidate", fp.Profile.ID),
				zap.String("rule", string(fp.Result.Rule)),
				zap.String("reason", fp.Result.Reason),
			)
			continue
		}

		bd := r.scorer.Breakdown(reference, &fp.Profile)
		if bd.Total < opts.MinScore {
			r.log.Debug("candidate below minimum score",
				zap.String("candidate", fp.Profile.ID),
				zap.Int("score", bd.Total),
				zap.Int("min_score", opts.MinScore),
			)
			continue
		}

		matches = append(matches, Match{
			Profile:   fp.Profile.WithCompatibility(bd.Total),
			Score:     bd.Total,
			Tier:      r.scorer.Explain(bd.Total),
			Breakdown: bd,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if opts.Limit > 0 && len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}

	stats := filter.GetStats(filtered)
	r.log.Info("ranked candidates",
		zap.String("reference", reference.ID),
		zap.Int("pool", stats.Total),
		zap.Int("eligible", stats.Eligible),
		zap.Int("returned", len(matches)),
	)

	return matches
}

// Rank ranks pool with the default filter and weights
func Rank(reference *profile.Profile, pool []profile.Profile) []Match {
	return New(filter.Default(), scorer.NewScorer(scorer.DefaultWeights()), nil).Rank(reference, pool, Options{})
}
