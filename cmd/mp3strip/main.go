package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jtreveset/arrlist/internal/audio"
)

func main() {
	var (
		recursiveFlag = flag.Bool("r", false, "Walk directories recursively")
		dryRunFlag    = flag.Bool("dry-run", false, "Report what would be stripped without writing changes")
	)

	flag.Parse()

	root := "."
	if flag.NArg() > 1 {
		fmt.Println("mp3strip - Remove ID3 metadata from MP3 files")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  mp3strip [options] [path]")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}
	if flag.NArg() == 1 {
		root = flag.Arg(0)
	}

	files, err := filesToProcess(root, *recursiveFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stripper := &audio.TagStripper{DryRun: *dryRunFlag}

	stripped, failed := 0, 0
	for _, path := range files {
		res, err := stripper.StripFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if !res.Stripped() {
			continue
		}

		stripped++
		verb := "stripped"
		if *dryRunFlag {
			verb = "would strip"
		}
		fmt.Printf("%s %s (%s)\n", verb, path, tagKinds(res))
	}

	fmt.Printf("Processed %d file(s); %d with metadata.\n", len(files), stripped)
	if failed > 0 {
		os.Exit(1)
	}
}

// filesToProcess resolves the argument to a list of MP3 files: a single
// file is taken as-is, a directory is scanned.
func filesToProcess(root string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	return audio.FindFiles(root, ".mp3", recursive)
}

func tagKinds(res audio.StripResult) string {
	switch {
	case res.HadID3v2 && res.HadID3v1:
		return "ID3v2+ID3v1"
	case res.HadID3v2:
		return "ID3v2"
	default:
		return "ID3v1"
	}
}
