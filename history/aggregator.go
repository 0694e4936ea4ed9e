package history

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"newspulse/scoring"
	"newspulse/types"
)

// Period names accepted by Summarize.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

const dateLayout = "2006-01-02"

// DefaultTopN is how many top items each snapshot run records.
const DefaultTopN = 10

// Aggregator writes daily trend snapshots and rolls them up into
// frequency-ranked period summaries. The write path and the live cache are
// fully independent; they share no locks.
type Aggregator struct {
	// Refresh forces a pipeline execution and returns the fresh article set.
	Refresh func(ctx context.Context) ([]*types.Article, error)
	Store   SnapshotStore
	TopN    int

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (a *Aggregator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// SnapshotNow force-refreshes the pipeline and appends one snapshot row per
// top (keyword, source) for the current date. Persistence failures propagate
// to the caller: silently losing historical data is a correctness issue, not
// a degraded-availability one.
func (a *Aggregator) SnapshotNow(ctx context.Context) error {
	items, err := a.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("snapshot refresh failed: %w", err)
	}
	if len(items) == 0 {
		log.Println("Snapshot skipped: no articles fetched")
		return nil
	}

	topN := a.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	now := a.now()
	scorer := scoring.NewScorer(0)
	scorer.Now = a.now
	scored := scorer.ScoreAll(items)
	// MinScore 0 so the selector simply ranks and truncates.
	top := scoring.Selector{MinScore: 0, Limit: topN}.Select(scored).Trending

	date := now.Format(dateLayout)
	rows := make([]types.DailySnapshot, 0, len(top))
	for _, item := range top {
		rows = append(rows, types.DailySnapshot{
			Keyword:   item.Title,
			Source:    item.Source,
			TrendDate: date,
			Direction: direction(item.Heat),
		})
	}

	if err := a.Store.Put(ctx, date, rows); err != nil {
		return err
	}
	log.Printf("Snapshot written: %d rows for %s", len(rows), date)
	return nil
}

// Summarize aggregates snapshot rows since the period start into summaries
// grouped by (source, keyword), ranked by recurrence: appearance count
// descending, then keyword ascending for determinism.
func (a *Aggregator) Summarize(ctx context.Context, period string) ([]types.PeriodSummary, error) {
	now := a.now()

	var from time.Time
	switch period {
	case PeriodWeek:
		from = now.AddDate(0, 0, -7)
	case PeriodMonth:
		from = now.AddDate(0, -1, 0)
	case PeriodYear:
		from = now.AddDate(-1, 0, 0)
	default:
		return nil, fmt.Errorf("unknown period %q", period)
	}

	rows, err := a.Store.Range(ctx, from.Format(dateLayout), now.Format(dateLayout))
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		source  string
		keyword string
	}
	groups := make(map[groupKey]map[string]struct{})
	for _, row := range rows {
		key := groupKey{source: row.Source, keyword: row.Keyword}
		if groups[key] == nil {
			groups[key] = make(map[string]struct{})
		}
		groups[key][row.TrendDate] = struct{}{}
	}

	summaries := make([]types.PeriodSummary, 0, len(groups))
	for key, dates := range groups {
		sorted := make([]string, 0, len(dates))
		for d := range dates {
			sorted = append(sorted, d)
		}
		sort.Strings(sorted)
		summaries = append(summaries, types.PeriodSummary{
			Keyword:     key.keyword,
			Source:      key.source,
			Appearances: len(sorted),
			Dates:       sorted,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Appearances != summaries[j].Appearances {
			return summaries[i].Appearances > summaries[j].Appearances
		}
		return summaries[i].Keyword < summaries[j].Keyword
	})
	return summaries, nil
}

// Partition splits summaries by source, preserving rank order within each
// bucket. Convenience projection for the historical endpoint's per-source
// views.
func Partition(summaries []types.PeriodSummary) map[string][]types.PeriodSummary {
	out := make(map[string][]types.PeriodSummary)
	for _, s := range summaries {
		out[s.Source] = append(out[s.Source], s)
	}
	return out
}

func direction(heat string) string {
	switch heat {
	case types.HeatVeryHot, types.HeatHot:
		return "up"
	case types.HeatWarm:
		return "flat"
	default:
		return "down"
	}
}
