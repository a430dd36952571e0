// Package musicbrainz implements artist lookups against the
// MusicBrainz ws/2 search API.
//
// A lookup is a single search request:
//
//	https://musicbrainz.org/ws/2/artist?query=artist:"Name"&fmt=json&limit=25
//
// The response candidates are ranked client-side: exact name matches
// (after whitespace/case normalization) beat fuzzy ones, then the
// service's relevance score decides.
//
// # Usage
//
//	client := musicbrainz.NewClient(httpClient, baseURL, 25)
//	artist, err := client.SearchArtist(ctx, "Radiohead")
//
// A successful search with zero candidates returns ErrNoMatch, which is
// a definitive answer and must not be retried. Transport-level failures
// come back unchanged from the http package so the caller can classify
// them.
package musicbrainz
