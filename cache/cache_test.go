package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"newspulse/types"
)

func countingRefresh(counter *int32, delay time.Duration) RefreshFunc {
	return func(ctx context.Context) ([]*types.Article, error) {
		atomic.AddInt32(counter, 1)
		if delay > 0 {
			time.Sleep(delay)
		}
		return []*types.Article{{ID: "a", Title: "cached"}}, nil
	}
}

func TestColdCacheSingleFlight(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)

	var calls int32
	refresh := countingRefresh(&calls, 50*time.Millisecond)

	const concurrency = 20
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := m.Get(context.Background(), "all", false, refresh)
			if err != nil {
				t.Errorf("get failed: %v", err)
				return
			}
			if len(items) != 1 {
				t.Errorf("expected 1 item, got %d", len(items))
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly 1 pipeline execution, got %d", got)
	}
}

func TestCacheHitSkipsRefresh(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)

	var calls int32
	refresh := countingRefresh(&calls, 0)

	for i := 0; i < 3; i++ {
		if _, err := m.Get(context.Background(), "all", false, refresh); err != nil {
			t.Fatalf("get failed: %v", err)
		}
	}

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected 1 execution across warm hits, got %d", got)
	}
}

func TestTTLExpiryTriggersRefresh(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	var calls int32
	refresh := countingRefresh(&calls, 0)

	if _, err := m.Get(context.Background(), "all", false, refresh); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	// Just under the TTL: still a hit.
	now = now.Add(59 * time.Minute)
	if _, err := m.Get(context.Background(), "all", false, refresh); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected cache hit before TTL, got %d executions", got)
	}

	// Past the TTL: entry is stale.
	now = now.Add(2 * time.Minute)
	if _, err := m.Get(context.Background(), "all", false, refresh); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected refresh after TTL, got %d executions", got)
	}
}

func TestForceRefreshBypassesTTL(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)

	var calls int32
	refresh := countingRefresh(&calls, 0)

	if _, err := m.Get(context.Background(), "all", false, refresh); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if _, err := m.Get(context.Background(), "all", true, refresh); err != nil {
		t.Fatalf("forced get failed: %v", err)
	}

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected forced refresh to run the pipeline again, got %d", got)
	}
}

func TestSeparateKeysRefreshIndependently(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)

	var calls int32
	refresh := countingRefresh(&calls, 0)

	if _, err := m.Get(context.Background(), "all", false, refresh); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if _, err := m.Get(context.Background(), "technology", false, refresh); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected one execution per key, got %d", got)
	}
}
