package overpass

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API
const (
	baseURL = "https://overpass-api.de/api/interpreter"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		// Overpass evaluates the query server-side and can be slow on
		// broad area searches
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		logger:     logger.With("component", "overpass-client"),
	}
}

// Query executes an Overpass QL query and returns the flat element list.
func (c *Client) Query(query string) (*InterpreterResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("data", query)
	u.RawQuery = q.Encode()

	c.logger.Debug("executing overpass query", "query_bytes", len(query))

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to execute overpass query", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("overpass API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp InterpreterResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode overpass response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("overpass query returned", "element_count", len(apiResp.Elements))

	return &apiResp, nil
}
