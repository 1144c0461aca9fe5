package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mastrophot/agent-wars-oracle/pkg/version"
)

// Result is the outcome of a single successful fetch.
type Result struct {
	Body    []byte
	Status  int
	Bytes   int
	Latency time.Duration
}

// Client issues one GET request per call with a fixed per-request timeout.
// Payload decoding is left to the per-source parsers.
type Client struct {
	http      *http.Client
	userAgent string
}

// New creates a fetch client with the given per-request timeout.
func New(timeout time.Duration) *Client {
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: version.AgentString(),
	}
}

// Fetch performs exactly one network call against url. Transport failures and
// timeouts surface as wrapped errors; a non-2xx status is ErrUnexpectedStatus.
func (c *Client) Fetch(ctx context.Context, url string) (*Result, error) {
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return &Result{
		Body:    body,
		Status:  resp.StatusCode,
		Bytes:   len(body),
		Latency: time.Since(started),
	}, nil
}
