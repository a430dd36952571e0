package musicbrainz

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jtreveset/arrlist/internal/http"
	"github.com/jtreveset/arrlist/internal/model"
	"github.com/jtreveset/arrlist/internal/musicbrainz/dto"
)

// ErrNoMatch is returned when a search completes successfully but the
// service knows no artist for the query.
//
// This is a definitive answer, not a failure: callers must not retry it.
var ErrNoMatch = errors.New("no matching artist found")

// Client performs artist lookups against the MusicBrainz ws/2 search
// endpoint.
//
// Client is a thin layer over the shared HTTP client: it builds the
// Lucene phrase query, decodes the response and picks the best match.
// It does no pacing and no retries; the resolver owns both.
//
// Example usage:
//
//	hc := http.NewClient(userAgent, 30*time.Second)
//	client := musicbrainz.NewClient(hc, "https://musicbrainz.org/ws/2/artist", 25)
//
//	artist, err := client.SearchArtist(ctx, "Radiohead")
//	if errors.Is(err, musicbrainz.ErrNoMatch) {
//	    // definitive: the name is unknown to MusicBrainz
//	}
type Client struct {
	httpClient *http.Client
	baseURL    string
	limit      int
}

// NewClient creates a search client for the given ws/2 artist endpoint.
//
// limit caps how many candidates one search returns (1-100); more
// candidates give exact-name matching a better chance on common names.
func NewClient(httpClient *http.Client, baseURL string, limit int) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		limit:      limit,
	}
}

// SearchArtist looks up name and returns the best matching artist.
//
// Among the returned candidates, artists whose normalized name equals
// the normalized query are preferred; within that group the highest
// search score wins.
//
// Returns an error if:
//   - The request fails (network error or *http.StatusError)
//   - The response cannot be decoded
//   - No artist matches (ErrNoMatch)
func (c *Client) SearchArtist(ctx context.Context, name string) (model.Artist, error) {
	var resp dto.SearchResponse
	if err := c.httpClient.GetJSON(ctx, c.searchURL(name), &resp); err != nil {
		return model.Artist{}, err
	}

	if len(resp.Artists) == 0 {
		return model.Artist{}, ErrNoMatch
	}

	best := selectBestMatch(name, resp.Artists)
	if best.ID == "" {
		return model.Artist{}, ErrNoMatch
	}
	return best.ToArtist(), nil
}

// searchURL builds the full ws/2 search URL for name.
func (c *Client) searchURL(name string) string {
	params := url.Values{}
	params.Set("query", phraseQuery(name))
	params.Set("fmt", "json")
	params.Set("limit", strconv.Itoa(c.limit))
	return fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
}

// phraseQuery builds a quoted phrase search on the artist field.
//
// Embedded quotes are escaped so the phrase stays a valid Lucene query:
//
//	phraseQuery(`The "Fifth" Beatle`) // artist:"The \"Fifth\" Beatle"
func phraseQuery(name string) string {
	safe := strings.ReplaceAll(name, `"`, `\"`)
	return fmt.Sprintf(`artist:"%s"`, safe)
}

// selectBestMatch picks the candidate to use for a query.
//
// Exact matches on the normalized name are preferred over everything
// else; the highest score wins within the considered group, and ties
// keep the earliest candidate (the service's own ordering).
func selectBestMatch(name string, artists []dto.Artist) dto.Artist {
	target := normalizeName(name)

	var exact []dto.Artist
	for _, a := range artists {
		if normalizeName(a.Name) == target {
			exact = append(exact, a)
		}
	}

	pool := artists
	if len(exact) > 0 {
		pool = exact
	}

	best := pool[0]
	for _, a := range pool[1:] {
		if a.Score > best.Score {
			best = a
		}
	}
	return best
}

// normalizeName collapses inner whitespace, trims and lowercases a name
// so that "  The  Beatles " and "the beatles" compare equal.
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
