// HTTP client for the listing-fetch service (a JobSpy-compatible
// search API). The actual board scraping mechanics live behind that
// service; this client only speaks its JSON contract and must tolerate
// total failure on any single call.

package boards

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-codingbuddy-automation/internal/scraper"
)

const (
	searchPath  = "/api/v1/search_jobs"
	httpTimeout = 30 * time.Second
)

type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient constructs a client with a shared HTTP client and a bounded
// per-call timeout, so a hung board never stalls the whole run.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: httpTimeout},
	}
}

// SearchRequest mirrors the search_jobs request body. SiteName carries
// one site-group: boards queried together in a single call, isolated
// from other groups for failure containment.
type SearchRequest struct {
	SiteName      []string `json:"site_name"`
	SearchTerm    string   `json:"search_term"`
	Location      string   `json:"location"`
	ResultsWanted int      `json:"results_wanted"`
	HoursOld      int      `json:"hours_old"`
	CountryIndeed string   `json:"country_indeed,omitempty"`
}

type searchResponse struct {
	Count int          `json:"count"`
	Jobs  []listingRow `json:"jobs"`
}

// listingRow mirrors one listing in the response. date_posted arrives
// as whatever the board produced (ISO string, bare number, null, free
// text); RawMessage keeps odd shapes from breaking the decode so the
// value can be coerced to a string at this edge.
type listingRow struct {
	JobURL      string          `json:"job_url"`
	Title       string          `json:"title"`
	Company     string          `json:"company"`
	Location    string          `json:"location"`
	JobType     string          `json:"job_type"`
	Description string          `json:"description"`
	DatePosted  json.RawMessage `json:"date_posted"`
	Site        string          `json:"site"`
}

// Search runs one site-group query and returns normalized listings.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]scraper.Job, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http POST: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("board api returned %d: %s", resp.StatusCode, data)
	}

	var apiResp searchResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	jobs := make([]scraper.Job, 0, len(apiResp.Jobs))
	for _, r := range apiResp.Jobs {
		jobs = append(jobs, scraper.Job{
			URL:         r.JobURL,
			Title:       r.Title,
			Company:     r.Company,
			Location:    r.Location,
			JobType:     r.JobType,
			Description: r.Description,
			DatePosted:  stringifyDate(r.DatePosted),
			Source:      r.Site,
		})
	}
	return jobs, nil
}

// stringifyDate coerces the raw date value to the string every
// downstream consumer expects. null and absent become empty strings.
func stringifyDate(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}
