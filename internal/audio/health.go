package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ProbeResult is the outcome of probing one MP3 file.
type ProbeResult struct {
	// Path is the probed file.
	Path string

	// OK reports whether ffmpeg decoded the file without errors.
	OK bool

	// Detail is the first error line emitted by ffmpeg.
	// Empty when OK is true.
	Detail string
}

// HealthChecker verifies MP3 files by decoding them with ffmpeg.
//
// Each file is probed with:
//
//	ffmpeg -v error -xerror -i <file> -f null -
//
// Files are probed in parallel workers for throughput; results are
// returned in the same order the files were found. A corrupt file is a
// result, not an error: Check only fails when the tree cannot be walked
// or the context is cancelled.
//
// Example usage:
//
//	checker := audio.NewHealthChecker("ffmpeg", 8)
//	results, err := checker.Check(ctx, "/music")
//	for _, res := range results {
//	    if !res.OK {
//	        fmt.Printf("[BAD] %s: %s\n", res.Path, res.Detail)
//	    }
//	}
type HealthChecker struct {
	ffmpeg  string
	workers int
}

// NewHealthChecker creates a HealthChecker.
//
// ffmpeg is the executable to invoke (empty means "ffmpeg" from PATH).
// workers caps the number of concurrent probes; values below 1 fall
// back to one worker per CPU, at most 32.
func NewHealthChecker(ffmpeg string, workers int) *HealthChecker {
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	if workers < 1 {
		workers = runtime.NumCPU()
		if workers > 32 {
			workers = 32
		}
		if workers < 1 {
			workers = 1
		}
	}
	return &HealthChecker{ffmpeg: ffmpeg, workers: workers}
}

// Check probes every .mp3 file under root recursively.
func (h *HealthChecker) Check(ctx context.Context, root string) ([]ProbeResult, error) {
	files, err := FindFiles(root, ".mp3", true)
	if err != nil {
		return nil, err
	}

	results := make([]ProbeResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.workers)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = h.probe(ctx, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// probe runs a single ffmpeg decode check.
func (h *HealthChecker) probe(ctx context.Context, path string) ProbeResult {
	cmd := exec.CommandContext(ctx, h.ffmpeg,
		"-v", "error",
		"-xerror",
		"-i", path,
		"-f", "null", "-",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := firstErrorLine(stderr.String() + "\n" + stdout.String())
		if detail == "" {
			detail = fmt.Sprintf("ffmpeg failed: %v", err)
		}
		return ProbeResult{Path: path, Detail: detail}
	}
	return ProbeResult{Path: path, OK: true}
}

// firstErrorLine returns the first non-blank line of ffmpeg output.
func firstErrorLine(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
