// Package arrio provides file input/output for arrlist.
//
// This package contains functions for:
//   - Reading artist name lists (one name per line, '#' comments)
//   - Writing the artists.json output atomically
//
// The output writer reproduces the exact layout consumed downstream:
// one { "MusicBrainzId": "..." } object per line inside a JSON array.
package arrio
