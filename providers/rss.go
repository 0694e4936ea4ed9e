package providers

import (
	"context"
	"fmt"

	"newspulse/types"

	"github.com/mmcdole/gofeed"
)

// FeedConfig represents the configuration for a single RSS feed
type FeedConfig struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FeedPresets maps friendly keys to RSS feed configurations
var FeedPresets = map[string]FeedConfig{
	"cna": {
		Name: "Channel News Asia",
		URL:  "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
	},
	"st": {
		Name: "Straits Times",
		URL:  "https://www.straitstimes.com/news/singapore/rss.xml",
	},
	"hn": {
		Name: "Hacker News",
		URL:  "https://hnrss.org/newest",
	},
	"tr": {
		Name: "Technology Review",
		URL:  "https://www.technologyreview.com/feed/",
	},
	"bbc": {
		Name: "BBC News",
		URL:  "https://feeds.bbci.co.uk/news/world/rss.xml",
	},
}

// DefaultRSSPresets are the feeds used when RSS_PRESETS is unset.
var DefaultRSSPresets = []string{"cna", "st", "bbc"}

// RSS fetches articles from a single RSS/Atom feed.
type RSS struct {
	feed   FeedConfig
	parser *gofeed.Parser
}

// NewRSS creates an RSS provider for the given feed.
func NewRSS(feed FeedConfig) *RSS {
	return &RSS{feed: feed, parser: gofeed.NewParser()}
}

func (r *RSS) Name() string {
	return "rss:" + r.feed.Name
}

// Fetch retrieves and parses the feed, returning normalized article metadata.
// The caller's context carries the upstream timeout.
func (r *RSS) Fetch(ctx context.Context, q Query) ([]*types.Article, error) {
	feed, err := r.parser.ParseURLWithContext(r.feed.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %s: %w", r.feed.URL, err)
	}

	count := min(len(feed.Items), q.Limit)
	if q.Limit <= 0 {
		count = len(feed.Items)
	}
	articles := make([]*types.Article, 0, count)

	for i := 0; i < count; i++ {
		item := feed.Items[i]
		if item.Title == "" || item.Link == "" {
			continue
		}

		// Use GUID if available, otherwise generate from URL
		id := item.GUID
		if id == "" {
			id = types.GenerateID(item.Link)
		}

		article := &types.Article{
			ID:      id,
			Title:   item.Title,
			URL:     item.Link,
			Summary: StripHTML(item.Description),
			Source:  r.feed.Name,
		}

		if item.PublishedParsed != nil {
			t := *item.PublishedParsed
			article.PublishedAt = &t
		} else if item.UpdatedParsed != nil {
			t := *item.UpdatedParsed
			article.PublishedAt = &t
		}

		if item.Image != nil {
			article.ImageURL = item.Image.URL
		}

		articles = append(articles, article)
	}

	return articles, nil
}
