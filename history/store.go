package history

import (
	"context"
	"sort"
	"sync"

	"newspulse/types"
)

// SnapshotStore persists daily trend snapshots. Put replaces the full row
// set for a date, which makes re-running a day's job an upsert rather than a
// duplicate append. Range returns rows for all dates in [from, to],
// inclusive, dates formatted YYYY-MM-DD.
type SnapshotStore interface {
	Put(ctx context.Context, date string, rows []types.DailySnapshot) error
	Range(ctx context.Context, from, to string) ([]types.DailySnapshot, error)
}

// MemoryStore keeps snapshots in process memory. Used in tests and as the
// fallback when no S3 bucket is configured.
type MemoryStore struct {
	mu   sync.Mutex
	days map[string][]types.DailySnapshot
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{days: make(map[string][]types.DailySnapshot)}
}

func (s *MemoryStore) Put(ctx context.Context, date string, rows []types.DailySnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]types.DailySnapshot, len(rows))
	copy(stored, rows)
	s.days[date] = stored
	return nil
}

func (s *MemoryStore) Range(ctx context.Context, from, to string) ([]types.DailySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dates := make([]string, 0, len(s.days))
	for date := range s.days {
		// YYYY-MM-DD compares correctly as a string.
		if date >= from && date <= to {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	var out []types.DailySnapshot
	for _, date := range dates {
		out = append(out, s.days[date]...)
	}
	return out, nil
}
