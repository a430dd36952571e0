package audio

import (
	"fmt"
	"os"

	"github.com/bogem/id3v2"
)

// StripResult reports what was (or would be) removed from one file.
type StripResult struct {
	// Path is the processed file.
	Path string

	// HadID3v2 reports whether an ID3v2 tag was present at the start
	// of the file.
	HadID3v2 bool

	// HadID3v1 reports whether a 128-byte ID3v1 "TAG" block was
	// present at the end of the file.
	HadID3v1 bool
}

// Stripped reports whether the file carried any metadata at all.
func (r StripResult) Stripped() bool {
	return r.HadID3v2 || r.HadID3v1
}

// TagStripper removes ID3 metadata from MP3 files.
//
// Both tag generations are handled:
//   - ID3v2 tags at the start of the file are detected and rewritten
//     away via the id3v2 library (which copies the audio data to a
//     temporary file and renames it into place)
//   - ID3v1 tags are removed by truncating the trailing 128 bytes
//
// File permissions and modification times are preserved across the
// rewrite. Files with unreadable or corrupt tags are left untouched and
// reported as errors.
//
// Example usage:
//
//	stripper := &audio.TagStripper{DryRun: true}
//	res, err := stripper.StripFile("/music/song.mp3")
//	if res.Stripped() {
//	    fmt.Printf("would strip %s\n", res.Path)
//	}
type TagStripper struct {
	// DryRun reports what would be stripped without writing changes.
	DryRun bool
}

// StripFile removes any ID3v1/ID3v2 metadata from the file at path.
//
// Returns the detection result even in dry-run mode, so callers can
// report what a real run would do.
func (s *TagStripper) StripFile(path string) (StripResult, error) {
	result := StripResult{Path: path}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return result, fmt.Errorf("reading ID3v2 tag of %s: %w", path, err)
	}
	result.HadID3v2 = tag.Count() > 0

	hadV1, err := hasID3v1(path)
	if err != nil {
		tag.Close()
		return result, err
	}
	result.HadID3v1 = hadV1

	if s.DryRun || !result.Stripped() {
		tag.Close()
		return result, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		tag.Close()
		return result, err
	}

	if result.HadID3v2 {
		tag.DeleteAllFrames()
		// With no frames left, Save rewrites the file without a tag.
		if err := tag.Save(); err != nil {
			tag.Close()
			return result, fmt.Errorf("stripping ID3v2 tag of %s: %w", path, err)
		}
	}
	if err := tag.Close(); err != nil {
		return result, err
	}

	if result.HadID3v1 {
		if err := truncateID3v1(path); err != nil {
			return result, fmt.Errorf("stripping ID3v1 tag of %s: %w", path, err)
		}
	}

	// The rewrite goes through a temp file; restore the original
	// permissions and timestamps.
	if err := os.Chmod(path, info.Mode().Perm()); err != nil {
		return result, err
	}
	if err := os.Chtimes(path, info.ModTime(), info.ModTime()); err != nil {
		return result, err
	}

	return result, nil
}

// hasID3v1 reports whether the file ends with a 128-byte ID3v1 block.
func hasID3v1(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() < 128 {
		return false, nil
	}

	marker := make([]byte, 3)
	if _, err := file.ReadAt(marker, info.Size()-128); err != nil {
		return false, err
	}
	return string(marker) == "TAG", nil
}

// truncateID3v1 drops the trailing 128-byte ID3v1 block.
func truncateID3v1(path string) error {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}
	if info.Size() < 128 {
		return nil
	}
	return file.Truncate(info.Size() - 128)
}
