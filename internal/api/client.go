// Package api is the client for the remote briefings search endpoint.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/lokeshkumar99/ai-competition-scout/internal/briefing"
)

// AllCompetitors is the selector sentinel meaning "no competitor filter".
const AllCompetitors = "All"

const searchPath = "/api/briefings/search"

// Client talks to one briefings API base URL. The search call carries no
// client-side timeout; the passed context is the only cancellation path.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// searchQuery builds the query string. Absence of a filter is signaled by
// omitting the parameter entirely, never by a wildcard value: the competitor
// parameter is dropped for "All" or empty, product_line for empty.
func searchQuery(competitor, productLine string) url.Values {
	q := url.Values{}
	if competitor != "" && competitor != AllCompetitors {
		q.Set("competitor", competitor)
	}
	if productLine != "" {
		q.Set("product_line", productLine)
	}
	return q
}

// Search issues exactly one GET against the search endpoint and decodes the
// JSON array response. Any transport error or non-2xx status comes back as a
// single generic error; there is no retry and no error taxonomy beyond that.
func (c *Client) Search(ctx context.Context, competitor, productLine string) ([]briefing.Briefing, error) {
	u := c.baseURL + searchPath
	if q := searchQuery(competitor, productLine); len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching briefings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("searching briefings: unexpected status %d", resp.StatusCode)
	}

	var briefings []briefing.Briefing
	if err := json.NewDecoder(resp.Body).Decode(&briefings); err != nil {
		return nil, fmt.Errorf("decoding briefings: %w", err)
	}
	return briefings, nil
}
