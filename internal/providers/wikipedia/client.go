package wikipedia

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://en.wikipedia.org/api/rest_v1/
// Sample request: https://en.wikipedia.org/api/rest_v1/page/summary/Tokyo_Tower
const (
	baseSummaryURL = "https://en.wikipedia.org/api/rest_v1/page/summary/"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseSummaryURL,
		logger:     logger.With("component", "wikipedia-client"),
	}
}

// Summary fetches the page summary for the given lookup key (a page title
// with spaces as underscores). Missing pages return an error.
func (c *Client) Summary(key string) (*SummaryResponse, error) {
	c.logger.Debug("fetching page summary", "key", key)

	resp, err := c.httpClient.Get(c.baseURL + url.PathEscape(key))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp SummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
