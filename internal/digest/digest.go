// Package digest renders a markdown summary of the demo feed.
//
// The digest is deterministic for a fixed clock: every figure and
// every phrase is a pure function of the stored items and the
// injected clock's reading. Each item line carries both the concise
// and the verbose readable phrasing, so the digest doubles as a
// visual regression sheet for the cascade.
package digest

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/whence-dev/whence/internal/feed"
	"github.com/whence-dev/whence/pkg/readable"
)

// Digester builds feed digests against an injectable clock.
type Digester struct {
	store  feed.Store
	clock  clockwork.Clock
	locale string
}

// New creates a digester reading the real clock.
func New(store feed.Store) *Digester {
	return &Digester{
		store:  store,
		clock:  clockwork.NewRealClock(),
		locale: readable.LocaleEnUS,
	}
}

// WithClock returns a copy reading from the given clock. Tests pass a
// clockwork fake clock for stable output.
func (d *Digester) WithClock(clock clockwork.Clock) *Digester {
	copied := *d
	copied.clock = clock
	return &copied
}

// AuthorCount pairs an author with their item count.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// ItemLine is one digest row: a feed item with both readable
// phrasings of its timestamp.
type ItemLine struct {
	Author  string `json:"author"`
	Body    string `json:"body"`
	Concise string `json:"concise"`
	Verbose string `json:"verbose"`
}

// Report holds everything the markdown digest renders.
type Report struct {
	GeneratedAt string          `json:"generated_at"`
	Stats       *feed.FeedStats `json:"stats,omitempty"`
	Authors     []AuthorCount   `json:"authors,omitempty"`
	Items       []ItemLine      `json:"items,omitempty"`
}

// Build assembles the digest report from the current feed contents.
func (d *Digester) Build() (*Report, error) {
	now := d.clock.Now()
	report := &Report{
		GeneratedAt: now.Format(time.RFC3339),
	}

	stats, err := d.store.Stats()
	if err != nil {
		return nil, fmt.Errorf("gathering feed stats: %w", err)
	}
	report.Stats = stats

	items, err := d.store.QueryItems(feed.Filter{Limit: 100})
	if err != nil {
		return nil, fmt.Errorf("querying feed items: %w", err)
	}

	concise, err := readable.NewFormatter(readable.KindTimeago, d.locale, conciseOptions())
	if err != nil {
		return nil, fmt.Errorf("building concise formatter: %w", err)
	}
	verboseOpts := readable.DefaultOptions()
	verboseOpts.Verbose = true
	verbose, err := readable.NewFormatter(readable.KindTimeago, d.locale, verboseOpts)
	if err != nil {
		return nil, fmt.Errorf("building verbose formatter: %w", err)
	}
	concise = concise.WithClock(d.clock)
	verbose = verbose.WithClock(d.clock)

	counts := make(map[string]int)
	for _, it := range items {
		counts[it.Author]++

		// Render in the clock's location so calendar-day checks
		// agree with the captured now.
		posted := time.UnixMilli(it.PostedAt).In(now.Location())
		conciseLabel, err := concise.Render(posted)
		if err != nil {
			return nil, fmt.Errorf("formatting item %s: %w", it.ItemID, err)
		}
		verboseLabel, err := verbose.Render(posted)
		if err != nil {
			return nil, fmt.Errorf("formatting item %s: %w", it.ItemID, err)
		}

		report.Items = append(report.Items, ItemLine{
			Author:  it.Author,
			Body:    it.Body,
			Concise: conciseLabel,
			Verbose: verboseLabel,
		})
	}

	for author, count := range counts {
		report.Authors = append(report.Authors, AuthorCount{Author: author, Count: count})
	}
	// Busiest first, ties alphabetical, for stable output.
	sort.Slice(report.Authors, func(i, j int) bool {
		if report.Authors[i].Count != report.Authors[j].Count {
			return report.Authors[i].Count > report.Authors[j].Count
		}
		return report.Authors[i].Author < report.Authors[j].Author
	})

	return report, nil
}

// conciseOptions is the digest's compact style: Today and worded
// labels on, so the left column exercises the whole concise cascade.
func conciseOptions() readable.Options {
	opts := readable.DefaultOptions()
	opts.IncludeToday = true
	return opts
}

// FormatReport renders the report as markdown.
func (d *Digester) FormatReport(report *Report) string {
	var b strings.Builder

	b.WriteString("# Feed Digest\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt))

	if report.Stats != nil {
		b.WriteString("## Feed Summary\n\n")
		b.WriteString("| Metric | Value |\n")
		b.WriteString("|--------|-------|\n")
		b.WriteString(fmt.Sprintf("| Items | %d |\n", report.Stats.TotalItems))
		b.WriteString(fmt.Sprintf("| Authors | %d |\n\n", report.Stats.Authors))
	}

	if len(report.Authors) > 0 {
		b.WriteString("## Authors\n\n")
		b.WriteString("| Author | Items |\n")
		b.WriteString("|--------|-------|\n")
		for _, a := range report.Authors {
			b.WriteString(fmt.Sprintf("| %s | %d |\n", a.Author, a.Count))
		}
		b.WriteString("\n")
	}

	if len(report.Items) > 0 {
		b.WriteString("## Timeline\n\n")
		b.WriteString("| When | Relative | Author | Post |\n")
		b.WriteString("|------|----------|--------|------|\n")
		for _, line := range report.Items {
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				line.Concise, line.Verbose, line.Author, line.Body))
		}
	}

	return b.String()
}
