package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"newspulse/cache"
	"newspulse/providers"
	"newspulse/types"
)

// mockProvider returns a fixed article set, optionally failing or blocking
// until the context expires.
type mockProvider struct {
	name     string
	articles []*types.Article
	err      error
	block    bool
	calls    int32
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Fetch(ctx context.Context, q providers.Query) ([]*types.Article, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.articles, nil
}

func article(id, title, source string, publishedAt *time.Time) *types.Article {
	return &types.Article{
		ID:          id,
		Title:       title,
		URL:         "https://example.com/" + id,
		Source:      source,
		PublishedAt: publishedAt,
	}
}

func TestRunDeduplicatesAcrossProviders(t *testing.T) {
	now := time.Now()
	hourAgo := now.Add(-time.Hour)

	p := New([]providers.Provider{
		&mockProvider{name: "a", articles: []*types.Article{article("1", "X", "Wire", &now)}},
		&mockProvider{name: "b", articles: []*types.Article{article("2", "x", "Wire", &hourAgo)}},
		&mockProvider{name: "c"},
	}, time.Second, providers.Query{})

	items, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected case-insensitive title collision to leave 1 article, got %d", len(items))
	}
	if items[0].ID != "1" {
		t.Fatalf("expected first provider's article to win, got %s", items[0].ID)
	}
}

func TestRunIsolatesProviderFailure(t *testing.T) {
	now := time.Now()
	good := &mockProvider{name: "good", articles: []*types.Article{article("1", "Fine Story", "Wire", &now)}}
	bad := &mockProvider{name: "bad", err: errors.New("upstream exploded")}

	p := New([]providers.Provider{bad, good}, time.Second, providers.Query{})

	items, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != "1" {
		t.Fatalf("expected the healthy provider's article, got %d items", len(items))
	}

	statuses := p.LastStatuses()
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].Error == "" {
		t.Fatal("expected failing provider's error to be recorded")
	}
	if statuses[1].Error != "" || statuses[1].Count != 1 {
		t.Fatalf("expected clean status for healthy provider, got %+v", statuses[1])
	}
}

func TestRunTimesOutSlowProvider(t *testing.T) {
	now := time.Now()
	slow := &mockProvider{name: "slow", block: true}
	fast := &mockProvider{name: "fast", articles: []*types.Article{article("1", "Quick Story", "Wire", &now)}}

	p := New([]providers.Provider{slow, fast}, 50*time.Millisecond, providers.Query{})

	start := time.Now()
	items, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("slow provider blocked the pipeline for %s", elapsed)
	}
	if len(items) != 1 {
		t.Fatalf("expected the fast provider's article, got %d items", len(items))
	}
}

func TestRunAssignsCategories(t *testing.T) {
	now := time.Now()
	p := New([]providers.Provider{
		&mockProvider{name: "a", articles: []*types.Article{
			article("1", "Semiconductor startup raises funding", "Wire", &now),
			article("2", "zzzz qqqq", "Wire", &now),
		}},
	}, time.Second, providers.Query{})

	items, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if items[0].Category != "technology" {
		t.Fatalf("expected technology, got %s", items[0].Category)
	}
	if items[1].Category != "uncategorized" {
		t.Fatalf("expected uncategorized, got %s", items[1].Category)
	}
}

func TestTrendingFallbackServesSurvivor(t *testing.T) {
	now := time.Now()
	hourAgo := now.Add(-time.Hour)

	p := New([]providers.Provider{
		&mockProvider{name: "a", articles: []*types.Article{article("1", "X", "Wire", &now)}},
		&mockProvider{name: "b", articles: []*types.Article{article("2", "x", "Wire", &hourAgo)}},
		&mockProvider{name: "c"},
	}, time.Second, providers.Query{})

	svc := &Service{
		Pipeline:        p,
		Cache:           cache.NewManager(cache.NewMemoryStore(), time.Hour),
		DefaultMinScore: 0.9,
		DefaultLimit:    10,
	}

	result, err := svc.Trending(context.Background(), TrendingOptions{})
	if err != nil {
		t.Fatalf("trending failed: %v", err)
	}
	if result.Counts.Fetched != 1 {
		t.Fatalf("expected 1 fetched article after dedup, got %d", result.Counts.Fetched)
	}
	if len(result.Trending) != 1 {
		t.Fatalf("expected fallback to surface the surviving article, got %d", len(result.Trending))
	}
	if result.Trending[0].Score >= 0.9 {
		t.Fatalf("expected fallback item below threshold, got %.2f", result.Trending[0].Score)
	}
}

func TestTrendingEmptyWhenNothingFetched(t *testing.T) {
	p := New([]providers.Provider{&mockProvider{name: "a"}}, time.Second, providers.Query{})
	svc := &Service{
		Pipeline:        p,
		Cache:           cache.NewManager(cache.NewMemoryStore(), time.Hour),
		DefaultMinScore: 0.5,
		DefaultLimit:    10,
	}

	result, err := svc.Trending(context.Background(), TrendingOptions{})
	if err != nil {
		t.Fatalf("trending failed: %v", err)
	}
	if result.Counts.Fetched != 0 || len(result.Trending) != 0 {
		t.Fatal("expected empty result when no provider fetched anything")
	}
}

func TestTrendingServesFromCache(t *testing.T) {
	now := time.Now()
	prov := &mockProvider{name: "a", articles: []*types.Article{article("1", "Story", "Wire", &now)}}
	p := New([]providers.Provider{prov}, time.Second, providers.Query{})
	svc := &Service{
		Pipeline:        p,
		Cache:           cache.NewManager(cache.NewMemoryStore(), time.Hour),
		DefaultMinScore: 0.1,
		DefaultLimit:    10,
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Trending(context.Background(), TrendingOptions{}); err != nil {
			t.Fatalf("trending failed: %v", err)
		}
	}
	if calls := atomic.LoadInt32(&prov.calls); calls != 1 {
		t.Fatalf("expected 1 provider call across cached requests, got %d", calls)
	}

	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if calls := atomic.LoadInt32(&prov.calls); calls != 2 {
		t.Fatalf("expected forced refresh to call the provider again, got %d", calls)
	}
}

func TestTrendingCategoryFilter(t *testing.T) {
	now := time.Now()
	p := New([]providers.Provider{
		&mockProvider{name: "a", articles: []*types.Article{
			article("1", "Semiconductor startup raises funding", "Wire", &now),
			article("2", "Parliament passes election bill", "Wire", &now),
		}},
	}, time.Second, providers.Query{})
	svc := &Service{
		Pipeline:        p,
		Cache:           cache.NewManager(cache.NewMemoryStore(), time.Hour),
		DefaultMinScore: 0.1,
		DefaultLimit:    10,
	}

	result, err := svc.Trending(context.Background(), TrendingOptions{Category: "technology"})
	if err != nil {
		t.Fatalf("trending failed: %v", err)
	}
	if result.Counts.Fetched != 1 {
		t.Fatalf("expected 1 technology article, got %d", result.Counts.Fetched)
	}
	if result.Trending[0].ID != "1" {
		t.Fatalf("expected the technology article, got %s", result.Trending[0].ID)
	}
}
