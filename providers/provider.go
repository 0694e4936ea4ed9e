package providers

import (
	"context"

	"newspulse/config"
	"newspulse/types"
)

// Query carries the parameters of one fetch cycle.
type Query struct {
	Text     string
	Limit    int
	Language string
}

// Provider fetches raw items from one upstream source and maps them onto the
// canonical Article shape. Each provider is an isolated failure domain: it
// must apply its own upstream timeout and must not retry. A provider that is
// not configured (missing API key) returns (nil, nil), which callers treat as
// "provider disabled", not as a failure.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]*types.Article, error)
}

// FromConfig builds the enabled provider set in deterministic order. Provider
// registration order matters: the deduplicator keeps the first-seen article
// for a colliding key, and the selector preserves this order for score ties.
func FromConfig(cfg config.Config) []Provider {
	providers := []Provider{
		NewNewsData(cfg.NewsDataAPIKey),
		NewGNews(cfg.GNewsAPIKey),
	}

	presets := cfg.RSSPresets
	if len(presets) == 0 {
		presets = DefaultRSSPresets
	}
	for _, preset := range presets {
		if feed, ok := FeedPresets[preset]; ok {
			providers = append(providers, NewRSS(feed))
		}
	}
	return providers
}
