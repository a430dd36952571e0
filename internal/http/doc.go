// Package http provides an HTTP client configured for MusicBrainz API
// requests.
//
// The Client in this package handles:
//   - The User-Agent header required by the MusicBrainz usage policy
//   - JSON response decoding
//   - Timeout handling
//   - Typed non-200 errors carrying Retry-After information
//
// # Basic Usage
//
//	client := http.NewClient(userAgent, 30*time.Second)
//
//	var resp dto.SearchResponse
//	err := client.GetJSON(ctx, searchURL, &resp)
//
// # Transient Failures
//
// Non-200 responses are returned as *StatusError. Callers classify them
// with Transient() and respect RetryAfter when waiting:
//
//	var se *http.StatusError
//	if errors.As(err, &se) && se.Transient() {
//	    time.Sleep(max(se.RetryAfter, backoff))
//	}
package http
