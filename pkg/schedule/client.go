// Package schedule talks to the GrafikPlus backend: it requests a
// generated schedule spreadsheet for a date range and reports backend
// errors in the backend's own words.
package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Request is the body sent to the schedule-generation route. Field names
// are fixed by the backend API.
type Request struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	IsPersonal bool   `json:"isPersonal"`
}

// APIError is a structured failure returned by the backend. Message may be
// empty when the error body was absent or unparseable; callers substitute
// their own fallback text then.
type APIError struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *APIError) Error() string {
	switch {
	case e.Title != "" && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Title, e.Message)
	case e.Message != "":
		return e.Message
	default:
		return fmt.Sprintf("schedule: backend returned status %d", e.StatusCode)
	}
}

// Client fetches schedule documents over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the backend at baseURL. The timeout
// matches the backend's own upstream request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch requests the schedule document for r and returns the raw file
// bytes. A non-2xx response comes back as *APIError; transport failures
// are wrapped and returned as-is.
func (c *Client) Fetch(ctx context.Context, r Request) ([]byte, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("schedule: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/api/schedule", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("schedule: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schedule: requesting schedule: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		// A broken error body must not mask the failure itself, so
		// decode errors leave Message empty instead of propagating.
		_ = json.NewDecoder(res.Body).Decode(apiErr)
		return nil, apiErr
	}

	blob, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("schedule: reading schedule document: %w", err)
	}
	return blob, nil
}

// Health checks the backend's health route.
func (c *Client) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/api/health", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("schedule: creating request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("schedule: requesting health: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("schedule: backend unhealthy, status %d", res.StatusCode)
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(res.Body).Decode(&status); err != nil {
		return fmt.Errorf("schedule: decoding health response: %w", err)
	}
	if status.Status != "ok" {
		return fmt.Errorf("schedule: backend reports status %q", status.Status)
	}
	return nil
}
