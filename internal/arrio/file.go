package arrio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadArtistNames reads a list of artist names from a text file.
//
// The file is expected to contain one UTF-8 artist name per line.
// Lines are trimmed of surrounding whitespace; blank lines and lines
// starting with '#' are skipped. Input order is preserved.
//
// Returns an error if the file cannot be opened or read.
//
// Example:
//
//	names, err := arrio.ReadArtistNames("artists.txt")
func ReadArtistNames(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return names, nil
}

// WriteArtistsJSON writes the resolved IDs to path as a JSON array.
//
// The layout matches what the downstream importer expects: one compact
// object per line with two-space indent,
//
//	[
//	  { "MusicBrainzId": "aaaa" },
//	  { "MusicBrainzId": "bbbb" }
//	]
//
// ending with a newline. An empty id list produces an empty array.
//
// The content is written to a temporary file in the target directory
// and renamed into place, so a failed run never leaves a truncated
// output file behind.
func WriteArtistsJSON(path string, ids []string) error {
	var b strings.Builder
	b.WriteString("[\n")
	for i, id := range ids {
		quoted, err := json.Marshal(id)
		if err != nil {
			return err
		}
		b.WriteString(fmt.Sprintf("  { \"MusicBrainzId\": %s }", quoted))
		if i < len(ids)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]\n")

	return writeFileAtomic(path, []byte(b.String()))
}

// writeFileAtomic writes data to path via a temp file and rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
