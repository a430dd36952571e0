// Package model defines the core data structures used throughout
// arrlist.
//
// # Artist
//
// Artist represents a single MusicBrainz search match:
//
//	artist := model.Artist{Name: "Radiohead", MBID: "a74b1b7f-...", Score: 100}
//
// # Resolution
//
// Resolution is the per-name outcome of a resolver run. Resolutions are
// produced in input order; unresolved names carry the error explaining
// why:
//
//	res := model.Resolution{Name: "Radiohead", MBID: "a74b1b7f-..."}
//	if res.Resolved() {
//	    records = append(records, model.OutputRecord{MusicBrainzId: res.MBID})
//	}
//
// # OutputRecord
//
// OutputRecord is one entry of the generated artists.json array, with
// the "MusicBrainzId" key expected by the importer the file feeds into.
package model
