package feed

import (
	"fmt"
	"time"
)

// seedPosts are the demo items, phrased so each one lands in a
// different branch of the readable cascade when formatted against the
// seeding instant.
var seedPosts = []struct {
	author string
	body   string
	age    time.Duration
}{
	{"ada", "Pushed the fix for the flaky websocket reconnect.", 20 * time.Second},
	{"grace", "Deploy pipeline is green again.", 5 * time.Minute},
	{"ada", "Started the migration dry run.", 1 * time.Hour},
	{"linus", "Code review round two posted.", 2 * time.Hour},
	{"grace", "Standup notes are in the wiki.", 10 * time.Hour},
	{"margaret", "Release notes drafted, review tomorrow.", 23 * time.Hour},
	{"ada", "Rolled back the cache experiment.", 26 * time.Hour},
	{"linus", "Sketched the new retry budget design.", 3 * 24 * time.Hour},
	{"margaret", "Quarterly latency report published.", 10 * 24 * time.Hour},
	{"grace", "Archived the legacy ingestion repo.", 45 * 24 * time.Hour},
	{"margaret", "First commit on this project.", 400 * 24 * time.Hour},
}

// Seed populates the store with a demo feed spread across the
// interesting timestamp buckets, relative to now. Existing items with
// the same IDs are replaced, so seeding is repeatable.
func Seed(store Store, now time.Time) error {
	items := make([]*Item, len(seedPosts))
	for i, p := range seedPosts {
		items[i] = &Item{
			ItemID:   fmt.Sprintf("seed-%03d", i),
			Author:   p.author,
			Body:     p.body,
			PostedAt: now.Add(-p.age).UnixMilli(),
			Metadata: map[string]string{"source": "seed"},
		}
	}
	if err := store.BatchInsertItems(items); err != nil {
		return fmt.Errorf("seeding feed: %w", err)
	}
	return nil
}
