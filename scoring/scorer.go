package scoring

import (
	"math"
	"strings"
	"time"

	"newspulse/types"
)

const (
	// DefaultHorizon is the window over which recency decays toward zero.
	DefaultHorizon = 72 * time.Hour

	// neutralRecency is used when publishedAt is unknown: neither penalized
	// to zero nor rewarded as if fresh.
	neutralRecency = 0.6

	// Blend weights. Constants, not configuration, so scores stay
	// comparable across calls.
	recencyWeight = 0.55
	keywordWeight = 0.40

	// Heat bucket thresholds.
	veryHotThreshold = 0.75
	hotThreshold     = 0.60
	warmThreshold    = 0.45
)

// viralTokens is the fixed vocabulary for keyword heat. Matching is
// case-insensitive substring matching against title + summary.
var viralTokens = []string{
	"leak", "vs", "viral", "record", "banned", "exclusive", "breaking",
	"shock", "first ever", "exposed", "scandal", "surge", "crash",
	"controversy", "showdown", "feud", "debut", "논란", "충격", "속보",
}

// sourceBonuses is a static per-publisher credibility bonus, additive and
// capped at 0.1 so no single source can dominate the score. Lookup is by
// lowercased source name; unknown sources get 0.
var sourceBonuses = map[string]float64{
	"reuters":           0.10,
	"bbc news":          0.08,
	"channel news asia": 0.06,
	"straits times":     0.06,
	"technology review": 0.05,
	"the guardian":      0.05,
	"associated press":  0.08,
}

// Scorer computes trending relevance scores. The clock is injectable for
// tests; a nil Now falls back to time.Now.
type Scorer struct {
	Horizon time.Duration
	Now     func() time.Time
}

// NewScorer creates a scorer with the given horizon (DefaultHorizon if zero).
func NewScorer(horizon time.Duration) *Scorer {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	return &Scorer{Horizon: horizon, Now: time.Now}
}

// Score blends recency, keyword heat, and source bonus into a single [0,1]
// relevance score.
func (s *Scorer) Score(a *types.Article) float64 {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	r := recency(a.PublishedAt, now, s.Horizon)
	k := keywordHeat(a.Title + " " + a.Summary)
	b := sourceBonus(a.Source)

	return clamp01(recencyWeight*r + keywordWeight*k + b)
}

// ScoreAll scores every article, preserving input order.
func (s *Scorer) ScoreAll(articles []*types.Article) []types.ScoredArticle {
	scored := make([]types.ScoredArticle, 0, len(articles))
	for _, a := range articles {
		score := s.Score(a)
		scored = append(scored, types.ScoredArticle{
			Article: *a,
			Score:   score,
			Heat:    HeatFor(score),
		})
	}
	return scored
}

// HeatFor maps a score onto its coarse heat bucket.
func HeatFor(score float64) string {
	switch {
	case score >= veryHotThreshold:
		return types.HeatVeryHot
	case score >= hotThreshold:
		return types.HeatHot
	case score >= warmThreshold:
		return types.HeatWarm
	default:
		return types.HeatWatch
	}
}

// recency applies exponential decay with a half-life of horizon/2. A missing
// timestamp yields the fixed neutral constant; a future-dated timestamp
// clamps to fully fresh.
func recency(publishedAt *time.Time, now time.Time, horizon time.Duration) float64 {
	if publishedAt == nil {
		return neutralRecency
	}

	hoursOld := now.Sub(*publishedAt).Hours()
	if hoursOld < 0 {
		hoursOld = 0
	}

	halfLife := horizon.Hours() / 2
	return clamp01(math.Pow(0.5, hoursOld/halfLife))
}

// keywordHeat counts viral-token hits and squashes them through a logistic
// so 1-2 hits barely move the score but 3+ saturates it. Zero hits
// contribute nothing at all.
func keywordHeat(text string) float64 {
	lowered := strings.ToLower(text)

	hits := 0
	for _, token := range viralTokens {
		if strings.Contains(lowered, token) {
			hits++
		}
	}
	if hits == 0 {
		return 0
	}
	return sigmoid(float64(hits) - 1.5)
}

func sourceBonus(source string) float64 {
	return sourceBonuses[strings.ToLower(strings.TrimSpace(source))]
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
