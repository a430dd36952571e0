package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jtreveset/arrlist/internal/audio"
)

func main() {
	var (
		ffmpegFlag  = flag.String("ffmpeg", "ffmpeg", "ffmpeg executable to use")
		workersFlag = flag.Int("workers", 0, "Number of parallel ffmpeg checks (0 = one per CPU)")
		quietFlag   = flag.Bool("quiet", false, "Only report corrupt files")
	)

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("mp3check - Verify MP3 files in a directory tree with ffmpeg")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  mp3check [options] <directory>")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}
	root := flag.Arg(0)

	info, err := os.Stat(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: %s is not a directory\n", root)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	checker := audio.NewHealthChecker(*ffmpegFlag, *workersFlag)

	results, err := checker.Check(ctx, root)
	if err != nil {
		if ctx.Err() != nil {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bad := 0
	for _, res := range results {
		if !res.OK {
			bad++
			fmt.Printf("[BAD] %s: %s\n", res.Path, res.Detail)
		} else if !*quietFlag {
			fmt.Printf("[OK ] %s\n", res.Path)
		}
	}

	// Exit zero even when corrupt files were found; callers decide
	// how to react to the report.
	if bad == 0 {
		if !*quietFlag {
			fmt.Printf("Checked %d file(s); none reported errors.\n", len(results))
		}
	} else {
		fmt.Fprintf(os.Stderr, "Checked %d file(s); %d reported errors.\n", len(results), bad)
	}
}
