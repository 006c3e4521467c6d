// Package fetch provides the HTTP collaborator used to retrieve artifact
// bytes. Retry policy lives here, at the network layer; the verifier above
// it performs exactly one fetch call per download.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 5 * time.Minute
	// DefaultRetries is the default number of fetch retries.
	DefaultRetries = 3
	// DefaultUserAgent is the User-Agent header sent with requests.
	DefaultUserAgent = "dlx/1.0"
)

// StatusError reports a non-2xx response. It is a hard failure and is
// propagated to the caller unchanged.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d fetching %s", e.Code, e.URL)
}

// Client performs HTTP GETs with timeout, a redirect cap, and retry with
// exponential backoff on transient failures.
type Client struct {
	client    *http.Client
	userAgent string
	retries   int
}

// NewClient creates a fetch client with default settings.
func NewClient() *Client {
	return &Client{
		client: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Allow up to 10 redirects
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		userAgent: DefaultUserAgent,
		retries:   DefaultRetries,
	}
}

// NewClientWith creates a fetch client with an explicit http.Client and
// retry count. Used by tests and callers with special transport needs.
func NewClientWith(hc *http.Client, retries int) *Client {
	return &Client{
		client:    hc,
		userAgent: DefaultUserAgent,
		retries:   retries,
	}
}

// Get fetches a URL and returns the full response body.
//
// Connection errors and 5xx responses are retried with exponential backoff.
// Client errors (4xx) are not retried: the response will not change, and the
// status is reported to the caller as a StatusError.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.retries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if attempt > 0 {
			// Exponential backoff: 1s, 2s, 4s
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := c.getOnce(ctx, url)
		if err == nil {
			return body, nil
		}

		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if statusErr, ok := err.(*StatusError); ok && statusErr.Code < 500 {
			return nil, err
		}
	}

	return nil, fmt.Errorf("fetch failed after %d retries: %w", c.retries, lastErr)
}

// getOnce performs a single fetch attempt.
func (c *Client) getOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return body, nil
}
