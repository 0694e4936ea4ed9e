package tui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"newspulse/pipeline"
)

// APIClient is a thin HTTP client for the aggregator API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client for the given base URL.
func NewAPIClient(baseURL string) *APIClient {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetTrending fetches the ranked trending list, optionally filtered by
// category.
func (c *APIClient) GetTrending(category string) (*pipeline.TrendingResult, error) {
	endpoint := c.baseURL + "/api/trending"
	if category != "" {
		endpoint += "?category=" + url.QueryEscape(category)
	}

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var result pipeline.TrendingResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TriggerRefresh asks the service to force-refresh its cache.
func (c *APIClient) TriggerRefresh() error {
	resp, err := c.httpClient.Post(c.baseURL+"/api/refresh", "application/json", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}
	return nil
}
