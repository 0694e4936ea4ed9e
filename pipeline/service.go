package pipeline

import (
	"context"
	"time"

	"newspulse/cache"
	"newspulse/scoring"
	"newspulse/types"
)

// cacheKey namespaces the one live pipeline result. Category filtering is a
// post-hoc projection of the same entry, so a single key is enough.
const cacheKey = "all"

// TrendingOptions are the per-request overrides for a trending query. Zero
// values fall back to the service defaults.
type TrendingOptions struct {
	Category string
	Hours    int
	MinScore float64
	Limit    int
}

// Counts distinguishes "no data fetched at all" from "nothing cleared the
// threshold": Fetched is the post-dedup input size, Selected the primary
// list length.
type Counts struct {
	Fetched    int `json:"fetched"`
	Selected   int `json:"selected"`
	HiddenGems int `json:"hidden_gems"`
}

// TrendingResult is what the generation frontend consumes.
type TrendingResult struct {
	Trending   []types.ScoredArticle `json:"trending"`
	HiddenGems []types.ScoredArticle `json:"hidden_gems"`
	Counts     Counts                `json:"counts"`
}

// Service ties the pipeline, cache, and ranking together behind the two
// operations callers use: Trending and Refresh.
type Service struct {
	Pipeline *Pipeline
	Cache    *cache.Manager

	DefaultMinScore float64
	DefaultLimit    int

	// Now is the injectable clock used for scoring; nil means time.Now.
	Now func() time.Time
}

// Trending returns the ranked primary list plus the hidden-gems near-miss
// band, serving from cache when fresh.
func (s *Service) Trending(ctx context.Context, opts TrendingOptions) (TrendingResult, error) {
	items, err := s.Cache.Get(ctx, cacheKey, false, s.Pipeline.Run)
	if err != nil {
		return TrendingResult{}, err
	}

	if opts.Category != "" {
		filtered := make([]*types.Article, 0, len(items))
		for _, a := range items {
			if a.Category == opts.Category {
				filtered = append(filtered, a)
			}
		}
		items = filtered
	}

	horizon := scoring.DefaultHorizon
	if opts.Hours > 0 {
		horizon = time.Duration(opts.Hours) * time.Hour
	}
	scorer := scoring.NewScorer(horizon)
	if s.Now != nil {
		scorer.Now = s.Now
	}
	scored := scorer.ScoreAll(items)

	minScore := s.DefaultMinScore
	if opts.MinScore > 0 {
		minScore = opts.MinScore
	}
	limit := s.DefaultLimit
	if opts.Limit > 0 {
		limit = opts.Limit
	}

	selection := scoring.Selector{MinScore: minScore, Limit: limit}.Select(scored)

	return TrendingResult{
		Trending:   selection.Trending,
		HiddenGems: selection.HiddenGems,
		Counts: Counts{
			Fetched:    len(items),
			Selected:   len(selection.Trending),
			HiddenGems: len(selection.HiddenGems),
		},
	}, nil
}

// Refresh forces a pipeline execution regardless of TTL, still under
// single-flight. Used by the scheduled job and the refresh endpoint.
func (s *Service) Refresh(ctx context.Context) ([]*types.Article, error) {
	return s.Cache.Get(ctx, cacheKey, true, s.Pipeline.Run)
}
