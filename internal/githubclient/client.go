package githubclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const userAgent = "devwrapped/1.0"

// Failure kinds a caller can branch on. A timeout is reported distinctly
// from an HTTP error so callers can decide whether to degrade or propagate.
var (
	ErrTimeout     = errors.New("github: request timed out")
	ErrNotFound    = errors.New("github: not found")
	ErrRateLimited = errors.New("github: rate limit exceeded")
)

// HTTPError is a non-2xx response that isn't one of the sentinel kinds.
type HTTPError struct {
	Status int
	URL    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("github: status %d from %s", e.Status, e.URL)
}

// Client fetches single JSON pages from the GitHub REST API (or a proxy
// that forwards to it). It carries no retry policy; retries, if any,
// belong to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client against baseURL. When token is non-empty the
// underlying transport injects it on every request.
func New(baseURL, token string) *Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Get fetches one page at path (relative to the base URL) and decodes the
// JSON body into v. Each call is bounded by its own timeout, independent
// of any budget on ctx.
func (c *Client) Get(ctx context.Context, path string, timeout time.Duration, v interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return ErrTimeout
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		return ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &HTTPError{Status: resp.StatusCode, URL: c.baseURL + path}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
