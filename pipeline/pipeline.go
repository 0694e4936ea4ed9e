package pipeline

import (
	"context"
	"log"
	"sync"
	"time"

	"newspulse/classify"
	"newspulse/dedup"
	"newspulse/providers"
	"newspulse/types"
)

// DefaultProviderTimeout bounds each provider's upstream call.
const DefaultProviderTimeout = 12 * time.Second

// ProviderStatus is per-provider diagnostics from the most recent run,
// surfaced on a dedicated endpoint and never on the hot path.
type ProviderStatus struct {
	Name      string `json:"name"`
	Count     int    `json:"count"`
	Error     string `json:"error,omitempty"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// Pipeline runs one fetch cycle: fan out to all providers concurrently,
// fan in, deduplicate, categorize, optionally enrich summaries.
type Pipeline struct {
	Providers        []providers.Provider
	Timeout          time.Duration
	Query            providers.Query
	ExtractSummaries bool

	mu   sync.RWMutex
	last []ProviderStatus
}

// New creates a pipeline over the given providers.
func New(provs []providers.Provider, timeout time.Duration, query providers.Query) *Pipeline {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &Pipeline{Providers: provs, Timeout: timeout, Query: query}
}

// Run executes the full fetch cycle. Provider failures are recovered to
// empty results and recorded in the diagnostics; a slow or failing provider
// never blocks or fails the others. The returned error is always nil today
// but kept in the signature so the cache layer's contract stays honest.
func (p *Pipeline) Run(ctx context.Context) ([]*types.Article, error) {
	results := make([][]*types.Article, len(p.Providers))
	statuses := make([]ProviderStatus, len(p.Providers))

	var wg sync.WaitGroup
	for i, prov := range p.Providers {
		wg.Add(1)
		go func(i int, prov providers.Provider) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, p.Timeout)
			defer cancel()

			start := time.Now()
			articles, err := prov.Fetch(fetchCtx, p.Query)
			elapsed := time.Since(start)

			status := ProviderStatus{
				Name:      prov.Name(),
				Count:     len(articles),
				ElapsedMS: elapsed.Milliseconds(),
			}
			if err != nil {
				// Recovered locally: this provider contributes nothing.
				status.Error = err.Error()
				articles = nil
				log.Printf("Provider %s failed after %s: %v", prov.Name(), elapsed, err)
			}

			results[i] = articles
			statuses[i] = status
		}(i, prov)
	}
	wg.Wait()

	// Fan-in in provider registration order so dedup's first-seen-wins and
	// the selector's tie order are deterministic.
	merged := make([]*types.Article, 0)
	for _, batch := range results {
		merged = append(merged, batch...)
	}

	merged = dedup.Collapse(merged)

	for _, a := range merged {
		a.Category = classify.Classify(a.Title + " " + a.Summary)
	}

	if p.ExtractSummaries {
		EnrichSummaries(merged)
	}

	p.mu.Lock()
	p.last = statuses
	p.mu.Unlock()

	log.Printf("Pipeline run complete: %d articles after dedup from %d providers", len(merged), len(p.Providers))
	return merged, nil
}

// LastStatuses returns the per-provider diagnostics from the most recent run.
func (p *Pipeline) LastStatuses() []ProviderStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]ProviderStatus, len(p.last))
	copy(out, p.last)
	return out
}
