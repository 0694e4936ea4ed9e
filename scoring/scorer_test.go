package scoring

import (
	"math"
	"testing"
	"time"

	"newspulse/types"
)

// plainArticle has no viral-token hits and no source bonus, so its score is
// purely the weighted recency term.
func plainArticle(publishedAt *time.Time) *types.Article {
	return &types.Article{
		ID:          "a1",
		Title:       "Quiet gardening update",
		URL:         "https://example.com/gardening",
		Source:      "Unknown Blog",
		PublishedAt: publishedAt,
	}
}

func fixedScorer(now time.Time, horizon time.Duration) *Scorer {
	s := NewScorer(horizon)
	s.Now = func() time.Time { return now }
	return s
}

func TestRecencyFreshArticleScoresFull(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := fixedScorer(now, 72*time.Hour)

	pub := now
	got := s.Score(plainArticle(&pub))
	want := recencyWeight * 1.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected score %.4f for article published now, got %.4f", want, got)
	}
}

func TestRecencyHalfLife(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := fixedScorer(now, 72*time.Hour)

	// Published exactly one half-life (36h) ago: r = 0.5, score = 0.275.
	pub := now.Add(-36 * time.Hour)
	got := s.Score(plainArticle(&pub))
	if math.Abs(got-0.275) > 0.001 {
		t.Fatalf("expected score ~0.275 at half-life, got %.4f", got)
	}
}

func TestRecencyAtHorizon(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := fixedScorer(now, 72*time.Hour)

	// Two half-lives: r = 0.25.
	pub := now.Add(-72 * time.Hour)
	got := s.Score(plainArticle(&pub))
	want := recencyWeight * 0.25
	if math.Abs(got-want) > 0.001 {
		t.Fatalf("expected score ~%.4f at horizon, got %.4f", want, got)
	}
}

func TestMissingPublishedAtUsesNeutralConstant(t *testing.T) {
	// The neutral recency must not depend on the clock.
	for _, now := range []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 12, 31, 23, 59, 0, 0, time.UTC),
	} {
		s := fixedScorer(now, 72*time.Hour)
		got := s.Score(plainArticle(nil))
		want := recencyWeight * neutralRecency
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("expected score %.4f for unknown recency at %s, got %.4f", want, now, got)
		}
	}
}

func TestScoreAlwaysInUnitInterval(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := fixedScorer(now, 72*time.Hour)

	future := now.Add(48 * time.Hour)
	ancient := now.Add(-10000 * time.Hour)

	cases := []*types.Article{
		{},
		{Title: ""},
		{Title: "BREAKING: viral leak exposed, record crash scandal vs banned showdown", Source: "Reuters", PublishedAt: &now},
		{Title: "anything", PublishedAt: &future},
		{Title: "old news", PublishedAt: &ancient},
		{Title: "plain", Source: "never-heard-of-it"},
	}

	for i, a := range cases {
		got := s.Score(a)
		if got < 0 || got > 1 {
			t.Fatalf("case %d: score %.4f out of [0,1]", i, got)
		}
	}
}

func TestFutureDatedClampsToFresh(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := fixedScorer(now, 72*time.Hour)

	future := now.Add(24 * time.Hour)
	got := s.Score(plainArticle(&future))
	want := recencyWeight * 1.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected future-dated article to score as fresh (%.4f), got %.4f", want, got)
	}
}

func TestKeywordHeatSaturatesWithHits(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := fixedScorer(now, 72*time.Hour)
	pub := now

	none := &types.Article{Title: "Quiet gardening update", PublishedAt: &pub}
	one := &types.Article{Title: "Gardening leak update", PublishedAt: &pub}
	many := &types.Article{Title: "Viral leak exposed in record scandal", PublishedAt: &pub}

	sNone := s.Score(none)
	sOne := s.Score(one)
	sMany := s.Score(many)

	if !(sNone < sOne && sOne < sMany) {
		t.Fatalf("expected monotonic keyword heat: %.4f < %.4f < %.4f", sNone, sOne, sMany)
	}

	// Zero hits contribute nothing beyond recency.
	if math.Abs(sNone-recencyWeight) > 1e-9 {
		t.Fatalf("expected zero-hit score %.4f, got %.4f", recencyWeight, sNone)
	}
}

func TestSourceBonusIsAdditiveAndCapped(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := fixedScorer(now, 72*time.Hour)
	pub := now

	unknown := s.Score(&types.Article{Title: "Quiet gardening update", Source: "nobody", PublishedAt: &pub})
	known := s.Score(&types.Article{Title: "Quiet gardening update", Source: "Reuters", PublishedAt: &pub})

	diff := known - unknown
	if diff <= 0 || diff > 0.1+1e-9 {
		t.Fatalf("expected source bonus in (0, 0.1], got %.4f", diff)
	}
}

func TestHeatBuckets(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.90, types.HeatVeryHot},
		{0.75, types.HeatVeryHot},
		{0.74, types.HeatHot},
		{0.60, types.HeatHot},
		{0.59, types.HeatWarm},
		{0.45, types.HeatWarm},
		{0.44, types.HeatWatch},
		{0.0, types.HeatWatch},
	}
	for _, tc := range cases {
		if got := HeatFor(tc.score); got != tc.want {
			t.Fatalf("HeatFor(%.2f) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
