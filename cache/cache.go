package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"newspulse/types"
)

// DefaultTTL is how long a cache entry stays fresh.
const DefaultTTL = time.Hour

// Entry is one cached pipeline result.
type Entry struct {
	Items     []*types.Article `json:"items"`
	FetchedAt time.Time        `json:"fetched_at"`
}

// Store persists cache entries. Implementations must be safe for concurrent
// use; the single-flight coordination lives in the Manager, not the store.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, bool, error)
	Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error
}

// RefreshFunc executes the full fetch pipeline for a cache key.
type RefreshFunc func(ctx context.Context) ([]*types.Article, error)

// flight is one in-progress refresh shared by all callers that missed.
type flight struct {
	done  chan struct{}
	items []*types.Article
	err   error
}

// Manager wraps the fetch pipeline behind a TTL cache with per-key
// single-flight: at most one refresh per key runs at a time, and concurrent
// callers during a miss await that refresh's result instead of triggering
// duplicate upstream fetches.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time

	mu       sync.Mutex
	inflight map[string]*flight
}

// NewManager creates a cache manager over the given store. A zero ttl means
// DefaultTTL.
func NewManager(store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		store:    store,
		ttl:      ttl,
		now:      time.Now,
		inflight: make(map[string]*flight),
	}
}

// Get returns the cached items for key, refreshing through refresh on a miss.
// force bypasses the TTL check but still respects single-flight. The refresh
// itself runs detached from the caller's context so a disconnecting caller
// still populates the cache for everyone behind it; the caller's context only
// bounds how long this call waits.
func (m *Manager) Get(ctx context.Context, key string, force bool, refresh RefreshFunc) ([]*types.Article, error) {
	if !force {
		if items, ok := m.lookup(ctx, key); ok {
			return items, nil
		}
	}

	m.mu.Lock()
	if f, ok := m.inflight[key]; ok {
		m.mu.Unlock()
		return m.await(ctx, f)
	}

	f := &flight{done: make(chan struct{})}
	m.inflight[key] = f
	m.mu.Unlock()

	// Another flight may have completed between our lookup and taking
	// ownership; serve its result instead of refetching.
	if !force {
		if items, ok := m.lookup(ctx, key); ok {
			m.finish(key, f, items, nil)
			return items, nil
		}
	}

	go func() {
		items, err := refresh(context.Background())
		if err == nil {
			entry := &Entry{Items: items, FetchedAt: m.now()}
			if serr := m.store.Set(context.Background(), key, entry, m.ttl); serr != nil {
				log.Printf("Warning: failed to store cache entry for %q: %v", key, serr)
			}
		}
		m.finish(key, f, items, err)
	}()

	return m.await(ctx, f)
}

// lookup returns the cached items when a fresh entry exists.
func (m *Manager) lookup(ctx context.Context, key string) ([]*types.Article, bool) {
	entry, ok, err := m.store.Get(ctx, key)
	if err != nil {
		log.Printf("Warning: cache lookup for %q failed: %v", key, err)
		return nil, false
	}
	if !ok || entry == nil {
		return nil, false
	}
	if m.now().Sub(entry.FetchedAt) >= m.ttl {
		return nil, false
	}
	return entry.Items, true
}

func (m *Manager) finish(key string, f *flight, items []*types.Article, err error) {
	f.items = items
	f.err = err

	m.mu.Lock()
	if m.inflight[key] == f {
		delete(m.inflight, key)
	}
	m.mu.Unlock()

	close(f.done)
}

func (m *Manager) await(ctx context.Context, f *flight) ([]*types.Article, error) {
	select {
	case <-f.done:
		return f.items, f.err
	case <-ctx.Done():
		// The flight keeps running; only this caller gives up waiting.
		return nil, ctx.Err()
	}
}
