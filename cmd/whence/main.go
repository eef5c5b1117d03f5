// Whence CLI — human-readable timestamps from the command line, plus
// management of the demo feed.
//
// Usage:
//
//	whence <command> [flags]
//
// Commands:
//
//	fmt       Format an instant as a readable string
//	seed      Populate the demo feed database
//	digest    Print a markdown digest of the demo feed
//	stats     Show demo feed statistics
//	version   Print version information
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/whence-dev/whence/internal/digest"
	"github.com/whence-dev/whence/internal/feed"
	"github.com/whence-dev/whence/pkg/readable"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".whence", "feed.db")

	switch os.Args[1] {
	case "fmt":
		cmdFmt()
	case "seed":
		cmdSeed(defaultDB)
	case "digest":
		cmdDigest(defaultDB)
	case "stats":
		cmdStats(defaultDB)
	case "version":
		fmt.Printf("whence v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Whence — human-readable timestamps

Usage:
  whence <command> [flags]

Commands:
  fmt        Format an instant as a readable string
  seed       Populate the demo feed database
  digest     Print a markdown digest of the demo feed
  stats      Show demo feed statistics
  version    Print version information

Run 'whence <command> --help' for details on each command.`)
}

// cmdFmt formats a single instant with the full option surface
// exposed as flags.
func cmdFmt() {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	at := fs.String("at", "", "Instant: RFC3339 or Unix milliseconds (required)")
	format := fs.String("format", string(readable.KindTimeago),
		"Output kind: timeago, clock-24, clock-long, clock-short, clock-short-pad")
	locale := fs.String("locale", readable.LocaleEnUS, "Locale identifier")

	defaults := readable.DefaultOptions()
	verbose := fs.Bool("verbose", defaults.Verbose, "Use the 'X units ago' style")
	words := fs.Bool("words", defaults.ConvertToWords, "Render small counts as words")
	ago := fs.Bool("ago", defaults.IncludeAgoSuffix, "Append the 'ago' suffix")
	today := fs.Bool("today", defaults.IncludeToday, "Allow the 'Today' label")
	justNow := fs.Bool("just-now", defaults.IncludeJustNow, "Short-circuit sub-minute deltas")
	dow := fs.Bool("dow", defaults.DaysOfWeek, "Use 'Day, Month date' for far dates")
	longform := fs.Bool("longform", defaults.Longform, "Use 'Month day, year' for far dates")
	longAgoDays := fs.Int("long-ago-days", defaults.LongTimeAgoThresholdDays,
		"Collapse to 'a long time ago' past this many days (-1 disables)")
	abbrevDays := fs.Int("abbrev-days", defaults.AbbreviateDays, "Truncate weekday names to N characters")
	abbrevMonths := fs.Int("abbrev-months", defaults.AbbreviateMonths, "Truncate month names to N characters")
	abbrevPeriod := fs.String("abbrev-period", defaults.AbbreviatePeriod, "Suffix appended after truncation")
	fs.Parse(os.Args[2:])

	if *at == "" {
		fmt.Fprintln(os.Stderr, "Error: --at is required")
		fs.Usage()
		os.Exit(1)
	}

	target, err := parseInstant(*at)
	if err != nil {
		log.Fatalf("Failed to parse --at: %v", err)
	}

	opts := readable.Options{
		Verbose:                  *verbose,
		ConvertToWords:           *words,
		IncludeAgoSuffix:         *ago,
		IncludeToday:             *today,
		IncludeJustNow:           *justNow,
		DaysOfWeek:               *dow,
		Longform:                 *longform,
		LongTimeAgoThresholdDays: *longAgoDays,
		AbbreviateDays:           *abbrevDays,
		AbbreviateMonths:         *abbrevMonths,
		AbbreviatePeriod:         *abbrevPeriod,
	}

	out, err := readable.Format(target, readable.Kind(*format), *locale, opts)
	if err != nil {
		log.Fatalf("Formatting failed: %v", err)
	}
	fmt.Println(out)
}

// parseInstant accepts RFC3339 or a Unix millisecond timestamp.
func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is neither RFC3339 nor Unix milliseconds", s)
	}
	return time.UnixMilli(ms), nil
}

// cmdSeed populates the demo feed relative to the current instant.
func cmdSeed(defaultDB string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	fs.Parse(os.Args[2:])

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	store, err := feed.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open feed database: %v", err)
	}
	defer store.Close()

	if err := feed.Seed(store, time.Now()); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	fmt.Printf("Seeded demo feed at %s\n", *dbPath)
}

// cmdDigest prints the feed digest as markdown or JSON.
func cmdDigest(defaultDB string) {
	fs := flag.NewFlagSet("digest", flag.ExitOnError)
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	outputFormat := fs.String("format", "markdown", "Output format: markdown, json")
	fs.Parse(os.Args[2:])

	store, err := feed.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open feed database: %v", err)
	}
	defer store.Close()

	d := digest.New(store)
	report, err := d.Build()
	if err != nil {
		log.Fatalf("Digest failed: %v", err)
	}

	switch *outputFormat {
	case "json":
		b, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(b))
	case "markdown":
		fmt.Print(d.FormatReport(report))
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *outputFormat)
		os.Exit(1)
	}
}

// cmdStats shows aggregate feed figures, with the boundary items
// rendered through the library itself.
func cmdStats(defaultDB string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	dbPath := fs.String("db", defaultDB, "Path to SQLite database")
	fs.Parse(os.Args[2:])

	store, err := feed.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open feed database: %v", err)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		log.Fatalf("Stats failed: %v", err)
	}

	opts := readable.DefaultOptions()
	opts.Verbose = true
	oldest := "—"
	newest := "—"
	if stats.TotalItems > 0 {
		if s, err := readable.Format(time.UnixMilli(stats.OldestMs), readable.KindTimeago, readable.LocaleEnUS, opts); err == nil {
			oldest = s
		}
		if s, err := readable.Format(time.UnixMilli(stats.NewestMs), readable.KindTimeago, readable.LocaleEnUS, opts); err == nil {
			newest = s
		}
	}

	fmt.Println("Demo feed statistics")
	fmt.Println()
	fmt.Printf("  Items:         %s\n", humanize.Comma(int64(stats.TotalItems)))
	fmt.Printf("  Authors:       %s\n", humanize.Comma(int64(stats.Authors)))
	fmt.Printf("  Oldest item:   %s\n", oldest)
	fmt.Printf("  Newest item:   %s\n", newest)
	fmt.Printf("  Database size: %s\n", humanize.Bytes(uint64(stats.DBSizeBytes)))
}
