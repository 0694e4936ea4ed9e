package scoring

import (
	"sort"

	"newspulse/types"
)

const (
	// hiddenGemsBand is how far below MinScore the near-miss band extends.
	hiddenGemsBand = 0.12

	// hiddenGemsLimit caps the near-miss list.
	hiddenGemsLimit = 6
)

// Selection is the ranked output of one selection pass. Trending is the
// primary list; HiddenGems are near-misses just below the threshold, never a
// subset of Trending.
type Selection struct {
	Trending   []types.ScoredArticle
	HiddenGems []types.ScoredArticle
}

// Selector applies threshold-based selection with a guaranteed fallback.
type Selector struct {
	MinScore float64
	Limit    int
}

// Select sorts descending by score and picks the primary and near-miss
// lists. The sort is stable: equal scores keep their input order, which is
// provider registration order then feed order within a provider. If nothing
// clears MinScore the top Limit items are returned regardless of score, so a
// caller only ever sees an empty result when the input itself was empty.
func (s Selector) Select(scored []types.ScoredArticle) Selection {
	ranked := make([]types.ScoredArticle, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	limit := s.Limit
	if limit <= 0 {
		limit = len(ranked)
	}

	trending := make([]types.ScoredArticle, 0, limit)
	for _, a := range ranked {
		if a.Score < s.MinScore {
			break
		}
		trending = append(trending, a)
		if len(trending) == limit {
			break
		}
	}

	// Fallback: never return an empty primary list because the threshold
	// was too strict. Empty output is reserved for empty input.
	if len(trending) == 0 {
		trending = append(trending, ranked[:min(limit, len(ranked))]...)
	}

	// Near-miss band. Items already surfaced by the fallback are excluded
	// so the gems list is never a subset of the primary list.
	surfaced := make(map[string]struct{}, len(trending))
	for _, a := range trending {
		surfaced[a.ID] = struct{}{}
	}

	gemsFloor := s.MinScore - hiddenGemsBand
	gems := make([]types.ScoredArticle, 0, hiddenGemsLimit)
	for _, a := range ranked {
		if a.Score >= s.MinScore {
			continue
		}
		if a.Score < gemsFloor {
			break
		}
		if _, ok := surfaced[a.ID]; ok {
			continue
		}
		gems = append(gems, a)
		if len(gems) == hiddenGemsLimit {
			break
		}
	}

	return Selection{Trending: trending, HiddenGems: gems}
}
