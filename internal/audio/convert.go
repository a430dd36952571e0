package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ConvertResult is the outcome of re-encoding one FLAC file.
type ConvertResult struct {
	// FlacPath is the source file.
	FlacPath string

	// Mp3Path is the target file ffmpeg wrote (or would write).
	Mp3Path string

	// Skipped is true in dry-run mode.
	Skipped bool

	// Removed reports whether the original FLAC was deleted after a
	// successful conversion.
	Removed bool
}

// FlacConverter re-encodes FLAC files to 320kbps MP3 using ffmpeg.
//
// Each file is converted with:
//
//	ffmpeg -y -i <in.flac> -vn -codec:a libmp3lame -b:a 320k <out.mp3>
//
// Conversions run one at a time; ffmpeg already saturates the CPU on
// its own. The MP3 is written next to the source file with the same
// base name.
//
// Example usage:
//
//	conv := &audio.FlacConverter{RemoveOriginal: true}
//	results, err := conv.Convert(ctx, "/music", func(res audio.ConvertResult) {
//	    fmt.Printf("encoded %s\n", res.Mp3Path)
//	})
type FlacConverter struct {
	// FFmpeg is the executable to invoke. Empty means "ffmpeg" from PATH.
	FFmpeg string

	// DryRun lists the conversions without invoking ffmpeg or
	// removing files.
	DryRun bool

	// RemoveOriginal deletes each FLAC file after its conversion
	// succeeds.
	RemoveOriginal bool
}

// Convert re-encodes every .flac file under root recursively.
//
// onResult, when non-nil, is called after each file so callers can
// report progress. The first ffmpeg failure aborts the run: a broken
// ffmpeg setup would fail for every remaining file too.
func (c *FlacConverter) Convert(ctx context.Context, root string, onResult func(ConvertResult)) ([]ConvertResult, error) {
	files, err := FindFiles(root, ".flac", true)
	if err != nil {
		return nil, err
	}

	results := make([]ConvertResult, 0, len(files))
	for _, flacPath := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := c.convertOne(ctx, flacPath)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if onResult != nil {
			onResult(res)
		}
	}
	return results, nil
}

func (c *FlacConverter) convertOne(ctx context.Context, flacPath string) (ConvertResult, error) {
	result := ConvertResult{
		FlacPath: flacPath,
		Mp3Path:  mp3Target(flacPath),
	}

	if c.DryRun {
		result.Skipped = true
		return result, nil
	}

	ffmpeg := c.FFmpeg
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}

	cmd := exec.CommandContext(ctx, ffmpeg,
		"-y",
		"-i", flacPath,
		"-vn",
		"-codec:a", "libmp3lame",
		"-b:a", "320k",
		result.Mp3Path,
	)
	if err := cmd.Run(); err != nil {
		return result, fmt.Errorf("encoding %s: %w", flacPath, err)
	}

	if c.RemoveOriginal {
		if err := os.Remove(flacPath); err != nil {
			return result, fmt.Errorf("removing %s: %w", flacPath, err)
		}
		result.Removed = true
	}

	return result, nil
}

// mp3Target returns the MP3 path for a FLAC source, preserving the
// base name. The extension match is case-insensitive ("X.FLAC" works).
func mp3Target(flacPath string) string {
	ext := filepath.Ext(flacPath)
	return strings.TrimSuffix(flacPath, ext) + ".mp3"
}
