package musicbrainz

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jtreveset/arrlist/internal/http"
	"github.com/jtreveset/arrlist/internal/musicbrainz/dto"
)

func TestPhraseQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "Radiohead", `artist:"Radiohead"`},
		{"name with spaces", "The Beatles", `artist:"The Beatles"`},
		{"embedded quotes", `The "Fifth" Beatle`, `artist:"The \"Fifth\" Beatle"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := phraseQuery(tt.input); got != tt.want {
				t.Errorf("phraseQuery(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Radiohead", "radiohead"},
		{"  The  Beatles ", "the beatles"},
		{"MF\tDOOM", "mf doom"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeName(tt.input); got != tt.want {
				t.Errorf("normalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSelectBestMatch(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		artists []dto.Artist
		wantID  string
	}{
		{
			name:  "exact match beats higher-scored fuzzy match",
			query: "Nirvana",
			artists: []dto.Artist{
				{ID: "fuzzy", Name: "Nirvana 2002", Score: 100},
				{ID: "exact", Name: "Nirvana", Score: 90},
			},
			wantID: "exact",
		},
		{
			name:  "highest score among exact matches",
			query: "Nirvana",
			artists: []dto.Artist{
				{ID: "uk", Name: "Nirvana", Score: 60, Disambiguation: "60s band from the UK"},
				{ID: "us", Name: "Nirvana", Score: 100, Disambiguation: "90s US grunge band"},
			},
			wantID: "us",
		},
		{
			name:  "no exact match falls back to best score",
			query: "Beatles",
			artists: []dto.Artist{
				{ID: "a", Name: "The Beatles", Score: 95},
				{ID: "b", Name: "The Beatles Revival Band", Score: 40},
			},
			wantID: "a",
		},
		{
			name:  "case and whitespace insensitive exact match",
			query: "  the   beatles ",
			artists: []dto.Artist{
				{ID: "other", Name: "Beatles Tribute", Score: 100},
				{ID: "fab4", Name: "The Beatles", Score: 80},
			},
			wantID: "fab4",
		},
		{
			name:  "score tie keeps service order",
			query: "Nirvana",
			artists: []dto.Artist{
				{ID: "first", Name: "Nirvana", Score: 100},
				{ID: "second", Name: "Nirvana", Score: 100},
			},
			wantID: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectBestMatch(tt.query, tt.artists)
			if got.ID != tt.wantID {
				t.Errorf("selectBestMatch picked %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}

func TestClient_SearchArtist(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		q := r.URL.Query()
		if q.Get("fmt") != "json" {
			t.Errorf("fmt = %q, want json", q.Get("fmt"))
		}
		if q.Get("query") != `artist:"Radiohead"` {
			t.Errorf("query = %q, want artist phrase query", q.Get("query"))
		}
		w.Write([]byte(`{
			"count": 2,
			"artists": [
				{"id": "a74b1b7f-71a5-4011-9441-d0b5e4122711", "name": "Radiohead", "score": 100},
				{"id": "other", "name": "Radiohead Tribute", "score": 50}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(http.NewClient("test/1.0", 5*time.Second), server.URL, 25)

	artist, err := client.SearchArtist(context.Background(), "Radiohead")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if artist.MBID != "a74b1b7f-71a5-4011-9441-d0b5e4122711" {
		t.Errorf("MBID = %q, want Radiohead's", artist.MBID)
	}
	if artist.Name != "Radiohead" {
		t.Errorf("Name = %q, want Radiohead", artist.Name)
	}
}

func TestClient_SearchArtist_NoMatch(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(`{"count": 0, "artists": []}`))
	}))
	defer server.Close()

	client := NewClient(http.NewClient("test/1.0", 5*time.Second), server.URL, 25)

	_, err := client.SearchArtist(context.Background(), "NotARealArtistXYZ")
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("expected ErrNoMatch, got %v", err)
	}
}

func TestClient_SearchArtist_StatusErrorPassthrough(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(nethttp.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(http.NewClient("test/1.0", 5*time.Second), server.URL, 25)

	_, err := client.SearchArtist(context.Background(), "Radiohead")

	var se *http.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *http.StatusError, got %T: %v", err, err)
	}
	if !se.Transient() {
		t.Error("503 should be transient")
	}
	if se.RetryAfter != 3*time.Second {
		t.Errorf("RetryAfter = %v, want 3s", se.RetryAfter)
	}
}
