package dto

import (
	"github.com/jtreveset/arrlist/internal/model"
)

// SearchResponse represents the deserialized body of a ws/2 artist
// search query with fmt=json.
type SearchResponse struct {
	Created string   `json:"created"`
	Count   int      `json:"count"`
	Offset  int      `json:"offset"`
	Artists []Artist `json:"artists"`
}

// Artist represents one artist entry of a search response.
//
// Only the fields arrlist uses are mapped; the full ws/2 artist
// document carries many more.
type Artist struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SortName       string `json:"sort-name"`
	Score          int    `json:"score"`
	Type           string `json:"type"`
	Disambiguation string `json:"disambiguation"`
}

// ToArtist converts the wire representation to a model.Artist.
func (a Artist) ToArtist() model.Artist {
	return model.Artist{
		Name:           a.Name,
		MBID:           a.ID,
		Score:          a.Score,
		Disambiguation: a.Disambiguation,
	}
}
