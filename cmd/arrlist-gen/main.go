package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jtreveset/arrlist/internal/arrio"
	"github.com/jtreveset/arrlist/internal/config"
	"github.com/jtreveset/arrlist/internal/http"
	"github.com/jtreveset/arrlist/internal/musicbrainz"
	"github.com/jtreveset/arrlist/internal/resolver"
)

func main() {
	// Command line flags
	var (
		configFlag    = flag.String("config", "", "Path to config file")
		userAgentFlag = flag.String("user-agent", "", "User-Agent for MusicBrainz (overrides config)")
		delayFlag     = flag.Float64("delay", -1, "Delay between requests in seconds (overrides config)")
		retriesFlag   = flag.Int("retries", -1, "Retry attempts for transient errors (overrides config)")
		strictFlag    = flag.Bool("strict", false, "Exit with error if any artist cannot be resolved")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Println("arrlist-gen - Generate artists.json from a list of artist names")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  arrlist-gen [options] <input.txt> <artists.json>")
		fmt.Println()
		fmt.Println("The input file contains one artist name per line; blank lines and")
		fmt.Println("lines starting with '#' are ignored.")
		fmt.Println()
		fmt.Println("For interactive mode, use: arrlist-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *userAgentFlag != "" {
		settings.UserAgent = *userAgentFlag
	}
	if *delayFlag >= 0 {
		settings.RequestDelay = *delayFlag
	}
	if *retriesFlag >= 0 {
		settings.MaxRetries = *retriesFlag
	}
	if *strictFlag {
		settings.Strict = true
	}

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Read input
	names, err := arrio.ReadArtistNames(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "No artist names found in input.")
		if err := arrio.WriteArtistsJSON(outputPath, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create resolver with progress callback
	httpClient := http.NewClient(settings.UserAgent, settings.Timeout())
	mbClient := musicbrainz.NewClient(httpClient, settings.BaseURL, settings.SearchLimit)

	res := resolver.New(settings, mbClient, func(event resolver.ProgressEvent) {
		if event.Level == resolver.LevelVerbose && !*verboseFlag {
			return
		}

		switch event.Level {
		case resolver.LevelError, resolver.LevelWarning:
			fmt.Fprintln(os.Stderr, event.Message)
		default:
			fmt.Println(event.Message)
		}
	})

	fmt.Printf("Resolving %d artist(s) against MusicBrainz...\n", len(names))

	results, err := res.Resolve(ctx, names)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Resolution cancelled.")
			os.Exit(130)
		}
		// Strict-mode failure: report everything, write nothing.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Collect resolved IDs in input order; unresolved names are omitted.
	var ids []string
	for _, r := range results {
		if r.Resolved() {
			ids = append(ids, r.MBID)
		}
	}

	if err := arrio.WriteArtistsJSON(outputPath, ids); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	resolved, failed, total := res.Progress()
	fmt.Printf("Resolved %d/%d artist(s)", resolved, total)
	if failed > 0 {
		fmt.Printf(" (%d unresolved, omitted)", failed)
	}
	fmt.Printf(" -> %s\n", outputPath)
}
