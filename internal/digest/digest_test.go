package digest

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/whence-dev/whence/internal/feed"
)

// digestNow is the frozen clock for digest tests: Thursday,
// August 27 2026, 22:10 UTC.
var digestNow = time.Date(2026, time.August, 27, 22, 10, 0, 0, time.UTC)

func seededDigester(t *testing.T) (*Digester, feed.Store) {
	t.Helper()
	store, err := feed.Open(":memory:")
	if err != nil {
		t.Fatalf("feed.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := feed.Seed(store, digestNow); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	return New(store).WithClock(clockwork.NewFakeClockAt(digestNow)), store
}

// TestBuildReport verifies the report carries every seeded item with
// both readable phrasings.
func TestBuildReport(t *testing.T) {
	d, _ := seededDigester(t)

	report, err := d.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if report.Stats.TotalItems != len(report.Items) {
		t.Errorf("stats count %d does not match %d item lines",
			report.Stats.TotalItems, len(report.Items))
	}
	if len(report.Authors) != 4 {
		t.Errorf("expected 4 authors, got %d", len(report.Authors))
	}

	// Newest seed item is 20 seconds old: both styles hit just-now.
	first := report.Items[0]
	if first.Concise != "just now" {
		t.Errorf("newest concise = %q, want %q", first.Concise, "just now")
	}
	if first.Verbose != "a few moments ago" {
		t.Errorf("newest verbose = %q, want %q", first.Verbose, "a few moments ago")
	}

	for _, line := range report.Items {
		if line.Concise == "" || line.Verbose == "" {
			t.Errorf("item %q has an empty phrase", line.Body)
		}
	}
}

// TestBuildDeterministic verifies two builds against the same frozen
// clock render identical markdown.
func TestBuildDeterministic(t *testing.T) {
	d, _ := seededDigester(t)

	first, err := d.Build()
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	second, err := d.Build()
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}

	if d.FormatReport(first) != d.FormatReport(second) {
		t.Error("digest output differs across builds with a frozen clock")
	}
}

// TestFormatReport verifies the markdown layout embeds the readable
// phrases for the marker seed items.
func TestFormatReport(t *testing.T) {
	d, _ := seededDigester(t)

	report, err := d.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	out := d.FormatReport(report)

	// Markers: the 20s item (just now), the 23h item (Yesterday),
	// and the 1h / 3d / 400d items in verbose form.
	for _, want := range []string{
		"# Feed Digest",
		"## Timeline",
		"just now",
		"Yesterday",
		"An hour ago",
		"A few days ago",
		"A year ago",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("digest missing %q:\n%s", want, out)
		}
	}
}
