package arrio

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadArtistNames(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "plain list",
			content: "Radiohead\nPortishead\n",
			want:    []string{"Radiohead", "Portishead"},
		},
		{
			name:    "blank lines skipped",
			content: "Radiohead\n\n\nPortishead\n",
			want:    []string{"Radiohead", "Portishead"},
		},
		{
			name:    "comment lines skipped",
			content: "# favorites\nRadiohead\n  # indented comment\nPortishead\n",
			want:    []string{"Radiohead", "Portishead"},
		},
		{
			name:    "surrounding whitespace trimmed",
			content: "  Radiohead  \n\tPortishead\n",
			want:    []string{"Radiohead", "Portishead"},
		},
		{
			name:    "order preserved",
			content: "Zeal & Ardor\nAir\nMadvillain\n",
			want:    []string{"Zeal & Ardor", "Air", "Madvillain"},
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
		{
			name:    "no trailing newline",
			content: "Radiohead",
			want:    []string{"Radiohead"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "artists.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			got, err := ReadArtistNames(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadArtistNames_MissingFile(t *testing.T) {
	if _, err := ReadArtistNames(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestWriteArtistsJSON(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{
			name: "empty list",
			ids:  nil,
			want: "[\n]\n",
		},
		{
			name: "single id",
			ids:  []string{"aaaa-bbbb"},
			want: "[\n  { \"MusicBrainzId\": \"aaaa-bbbb\" }\n]\n",
		},
		{
			name: "multiple ids keep order and trailing commas",
			ids:  []string{"first", "second", "third"},
			want: "[\n" +
				"  { \"MusicBrainzId\": \"first\" },\n" +
				"  { \"MusicBrainzId\": \"second\" },\n" +
				"  { \"MusicBrainzId\": \"third\" }\n" +
				"]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "artists.json")
			if err := WriteArtistsJSON(path, tt.ids); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", data, tt.want)
			}
		})
	}
}

func TestWriteArtistsJSON_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artists.json")
	if err := os.WriteFile(path, []byte("old content"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteArtistsJSON(path, []string{"new"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "[\n  { \"MusicBrainzId\": \"new\" }\n]\n" {
		t.Errorf("existing file was not replaced, got:\n%s", data)
	}
}

func TestWriteArtistsJSON_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artists.json")

	if err := WriteArtistsJSON(path, []string{"id"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "artists.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory should only contain artists.json, got %v", names)
	}
}
