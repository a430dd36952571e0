package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// StatusError is returned when the server answers with a non-200 status.
//
// It carries enough information for the caller to decide whether the
// failure is transient (worth retrying) and how long to wait before the
// next attempt.
type StatusError struct {
	// URL is the request URL that produced the error.
	URL string

	// Code is the HTTP status code.
	Code int

	// RetryAfter is the wait requested by the server via the
	// Retry-After header. Zero when the header is absent or unparsable.
	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("HTTP %d (retry after %s): %s", e.Code, e.RetryAfter, e.URL)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.URL)
}

// Transient reports whether the failure is worth retrying.
//
// Rate limiting (429), temporary unavailability (503) and other server
// errors are transient. Client errors such as 400 or 404 are not.
func (e *StatusError) Transient() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// Client wraps HTTP operations with MusicBrainz-specific configuration.
//
// Client provides:
//   - The descriptive User-Agent header required by the MusicBrainz
//     usage policy
//   - An Accept: application/json header on every request
//   - Per-request timeout handling
//   - Typed status errors that expose Retry-After
//
// Example usage:
//
//	client := NewClient("arrlist-generator/0.1.0 (https://...)", 30*time.Second)
//
//	var result dto.SearchResponse
//	err := client.GetJSON(ctx, searchURL, &result)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client for the MusicBrainz web service.
//
// userAgent must identify the application per the MusicBrainz usage
// policy. timeout bounds each individual request so a hung connection
// cannot stall a batch indefinitely; zero means no timeout.
func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// GetJSON performs a GET request and decodes the JSON response into v.
//
// Returns an error if:
//   - The request cannot be built or fails at the network level
//   - The response status is not 200 OK (a *StatusError)
//   - The body is not valid JSON for v
//
// Example:
//
//	var resp dto.SearchResponse
//	if err := client.GetJSON(ctx, url, &resp); err != nil {
//	    var se *http.StatusError
//	    if errors.As(err, &se) && se.Transient() {
//	        // back off and retry
//	    }
//	}
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{
			URL:        url,
			Code:       resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}

// parseRetryAfter parses a Retry-After header value given in seconds.
//
// MusicBrainz sends the delay-seconds form (possibly fractional).
// The HTTP-date form and unparsable values yield zero, leaving the
// caller to fall back to its own backoff.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}
