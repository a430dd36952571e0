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
		ffmpegFlag = flag.String("ffmpeg", "ffmpeg", "ffmpeg executable to use")
		dryRunFlag = flag.Bool("dry-run", false, "List actions without invoking ffmpeg or removing files")
		removeFlag = flag.Bool("remove-original", false, "Remove each FLAC file after a successful conversion")
	)

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("flac2mp3 - Re-encode FLAC files within a directory tree to 320kbps MP3")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  flac2mp3 [options] <directory>")
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

	conv := &audio.FlacConverter{
		FFmpeg:         *ffmpegFlag,
		DryRun:         *dryRunFlag,
		RemoveOriginal: *removeFlag,
	}

	results, err := conv.Convert(ctx, root, func(res audio.ConvertResult) {
		if res.Skipped {
			fmt.Printf("[dry-run] Would encode '%s' -> '%s'\n", res.FlacPath, res.Mp3Path)
			return
		}
		fmt.Printf("Encoded '%s' -> '%s'\n", res.FlacPath, res.Mp3Path)
		if res.Removed {
			fmt.Printf("Removed '%s'\n", res.FlacPath)
		}
	})
	if err != nil {
		if ctx.Err() != nil {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Converted %d file(s).\n", len(results))
}
