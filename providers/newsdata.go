package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"newspulse/types"
)

const newsDataBaseURL = "https://newsdata.io/api/1/latest"

// NewsData is a client for the newsdata.io latest-news API. Constructed with
// an empty API key it is a disabled provider: Fetch returns (nil, nil).
type NewsData struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// newsDataResponse mirrors the wire shape; none of these field names leak
// past this adapter.
type newsDataResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Description string `json:"description"`
		PubDate     string `json:"pubDate"`
		ImageURL    string `json:"image_url"`
		SourceName  string `json:"source_name"`
		SourceID    string `json:"source_id"`
	} `json:"results"`
}

// NewNewsData creates a newsdata.io provider.
func NewNewsData(apiKey string) *NewsData {
	return &NewsData{
		apiKey:     apiKey,
		baseURL:    newsDataBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (n *NewsData) Name() string { return "newsdata" }

func (n *NewsData) Fetch(ctx context.Context, q Query) ([]*types.Article, error) {
	if n.apiKey == "" {
		// Provider not configured; silently contribute nothing.
		return nil, nil
	}

	params := url.Values{}
	params.Set("apikey", n.apiKey)
	if q.Text != "" {
		params.Set("q", q.Text)
	}
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if q.Limit > 0 {
		params.Set("size", strconv.Itoa(min(q.Limit, 50)))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsdata request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsdata returned status %d", resp.StatusCode)
	}

	var payload newsDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("newsdata malformed payload: %w", err)
	}

	articles := make([]*types.Article, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.Title == "" || r.Link == "" {
			continue
		}
		source := r.SourceName
		if source == "" {
			source = r.SourceID
		}
		articles = append(articles, &types.Article{
			ID:          types.GenerateID(r.Link),
			Title:       r.Title,
			URL:         r.Link,
			Summary:     StripHTML(r.Description),
			ImageURL:    r.ImageURL,
			Source:      source,
			PublishedAt: parseTime(r.PubDate, "2006-01-02 15:04:05", time.RFC3339),
		})
	}
	return articles, nil
}
