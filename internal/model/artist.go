package model

// Artist represents a single artist match returned by the MusicBrainz
// search API.
//
// Artist carries the fields arrlist cares about when picking the best
// match for an input name:
//   - Name for exact-match comparison against the query
//   - MBID as the stable identifier written to the output file
//   - Score as the service's own relevance ranking (0-100)
//   - Disambiguation for log messages when several artists share a name
//
// Example:
//
//	artist := Artist{
//	    Name:  "Radiohead",
//	    MBID:  "a74b1b7f-71a5-4011-9441-d0b5e4122711",
//	    Score: 100,
//	}
type Artist struct {
	// Name is the artist name as known to MusicBrainz.
	Name string

	// MBID is the MusicBrainz identifier (an opaque UUID string).
	MBID string

	// Score is the search relevance score assigned by MusicBrainz,
	// from 0 to 100. Higher is a better match.
	Score int

	// Disambiguation is a short comment distinguishing artists with
	// the same name (e.g. "UK rock band"). Often empty.
	Disambiguation string
}

// Resolution is the outcome of resolving one input name.
//
// Exactly one of MBID or Err is meaningful: a non-empty MBID means the
// name resolved; otherwise Err explains why it did not. Resolutions are
// produced in the same order as the input names.
type Resolution struct {
	// Name is the input artist name, as read from the list (trimmed).
	Name string

	// MBID is the resolved MusicBrainz identifier.
	// Empty when the name could not be resolved.
	MBID string

	// Err records why the name could not be resolved.
	// Nil when MBID is set.
	Err error
}

// Resolved reports whether the name was successfully resolved to an MBID.
func (r Resolution) Resolved() bool {
	return r.MBID != ""
}

// OutputRecord is one entry of the generated artists.json array.
//
// The JSON key is "MusicBrainzId" to match the importer format the
// file feeds into.
type OutputRecord struct {
	MusicBrainzId string `json:"MusicBrainzId"`
}
