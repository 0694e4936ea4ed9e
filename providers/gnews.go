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

const gnewsBaseURL = "https://gnews.io/api/v4/search"

// GNews is a client for the gnews.io search API. Constructed with an empty
// API key it is a disabled provider: Fetch returns (nil, nil).
type GNews struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type gnewsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Image       string `json:"image"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// NewGNews creates a gnews.io provider.
func NewGNews(apiKey string) *GNews {
	return &GNews{
		apiKey:     apiKey,
		baseURL:    gnewsBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *GNews) Name() string { return "gnews" }

func (g *GNews) Fetch(ctx context.Context, q Query) ([]*types.Article, error) {
	if g.apiKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("apikey", g.apiKey)
	params.Set("q", q.Text)
	if q.Language != "" {
		params.Set("lang", q.Language)
	}
	if q.Limit > 0 {
		params.Set("max", strconv.Itoa(min(q.Limit, 25)))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gnews request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews returned status %d", resp.StatusCode)
	}

	var payload gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("gnews malformed payload: %w", err)
	}

	articles := make([]*types.Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		if a.Title == "" || a.URL == "" {
			continue
		}
		articles = append(articles, &types.Article{
			ID:          types.GenerateID(a.URL),
			Title:       a.Title,
			URL:         a.URL,
			Summary:     StripHTML(a.Description),
			ImageURL:    a.Image,
			Source:      a.Source.Name,
			PublishedAt: parseTime(a.PublishedAt, time.RFC3339),
		})
	}
	return articles, nil
}
