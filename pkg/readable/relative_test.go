package readable

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// refNow is the frozen "current instant" for cascade tests:
// Thursday, August 27 2026, 22:10 UTC.
var refNow = time.Date(2026, time.August, 27, 22, 10, 0, 0, time.UTC)

// renderAt formats target relative to a frozen now.
func renderAt(t *testing.T, target, now time.Time, opts Options) string {
	t.Helper()
	f, err := NewFormatter(KindTimeago, LocaleEnUS, opts)
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}
	out, err := f.WithClock(clockwork.NewFakeClockAt(now)).Render(target)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return out
}

// TestJustNowShortCircuit verifies the sub-minute branch in both
// styles, and that it wins before any other option is consulted.
func TestJustNowShortCircuit(t *testing.T) {
	verbose := DefaultOptions()
	verbose.Verbose = true

	noSuffix := verbose
	noSuffix.IncludeAgoSuffix = false

	// Even a longform/today-heavy option set loses to just-now.
	loaded := DefaultOptions()
	loaded.Longform = true
	loaded.IncludeToday = true
	loaded.DaysOfWeek = true

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"concise", DefaultOptions(), "just now"},
		{"verbose", verbose, "a few moments ago"},
		{"verbose no suffix", noSuffix, "a few moments"},
		{"precedes other options", loaded, "just now"},
	}

	target := refNow.Add(-30 * time.Second)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderAt(t, target, refNow, tt.opts); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestJustNowDisabled verifies that sub-minute deltas fall through to
// the normal branches when the short circuit is off.
func TestJustNowDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeJustNow = false
	opts.IncludeToday = true

	// Same calendar day, zero elapsed minutes: the concise cascade
	// reaches the Today rule.
	got := renderAt(t, refNow.Add(-30*time.Second), refNow, opts)
	if got != "Today" {
		t.Errorf("concise got %q, want %q", got, "Today")
	}
}

// TestVerboseWording covers the small-count word ladder: bare article
// at 1, "couple of" at 2, "few" at 3 and 4, numerals from 5 up.
func TestVerboseWording(t *testing.T) {
	opts := DefaultOptions()
	opts.Verbose = true

	tests := []struct {
		name   string
		target time.Time
		want   string
	}{
		{"1 minute", refNow.Add(-90 * time.Second), "A minute ago"},
		{"2 minutes", refNow.Add(-2 * time.Minute), "A couple of minutes ago"},
		{"10 minutes", refNow.Add(-10 * time.Minute), "10 minutes ago"},
		{"1 hour", refNow.Add(-1 * time.Hour), "An hour ago"},
		{"2 hours", refNow.Add(-2 * time.Hour), "A couple of hours ago"},
		{"3 hours", refNow.Add(-3 * time.Hour), "A few hours ago"},
		{"4 hours", refNow.Add(-4 * time.Hour), "A few hours ago"},
		{"5 hours", refNow.Add(-5 * time.Hour), "5 hours ago"},
		{"3 days", refNow.Add(-3 * 24 * time.Hour), "A few days ago"},
		{"6 days", refNow.Add(-6 * 24 * time.Hour), "6 days ago"},
		{"2 weeks", refNow.Add(-14 * 24 * time.Hour), "A couple of weeks ago"},
		{"2 months", refNow.Add(-60 * 24 * time.Hour), "A couple of months ago"},
		{"1 year", refNow.Add(-400 * 24 * time.Hour), "A year ago"},
		{"2 years", refNow.Add(-800 * 24 * time.Hour), "A couple of years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderAt(t, tt.target, refNow, opts); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestVerboseNumerals verifies that word conversion off means plain
// numerals at every magnitude.
func TestVerboseNumerals(t *testing.T) {
	opts := DefaultOptions()
	opts.Verbose = true
	opts.ConvertToWords = false

	tests := []struct {
		name   string
		target time.Time
		want   string
	}{
		{"1 hour", refNow.Add(-1 * time.Hour), "1 hour ago"},
		{"2 hours", refNow.Add(-2 * time.Hour), "2 hours ago"},
		{"3 days", refNow.Add(-3 * 24 * time.Hour), "3 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderAt(t, tt.target, refNow, opts); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestLongTimeAgoThreshold verifies the verbose collapse: once days
// cross the threshold, the bucket ladder is bypassed entirely.
func TestLongTimeAgoThreshold(t *testing.T) {
	opts := DefaultOptions()
	opts.Verbose = true
	opts.LongTimeAgoThresholdDays = 30

	target := refNow.Add(-40 * 24 * time.Hour) // months bucket would say "A month ago"
	if got := renderAt(t, target, refNow, opts); got != "A long time ago" {
		t.Errorf("got %q, want %q", got, "A long time ago")
	}

	opts.IncludeAgoSuffix = false
	if got := renderAt(t, target, refNow, opts); got != "A long time" {
		t.Errorf("without suffix got %q, want %q", got, "A long time")
	}

	// Under the threshold the ladder runs as usual.
	near := refNow.Add(-20 * 24 * time.Hour)
	if got := renderAt(t, near, refNow, opts); got != "A couple of weeks" {
		t.Errorf("under threshold got %q, want %q", got, "A couple of weeks")
	}
}

// TestConciseToday verifies the same-calendar-day rule and its
// fallback to clock time when IncludeToday is off.
func TestConciseToday(t *testing.T) {
	target := refNow.Add(-10 * time.Hour) // 12:10 the same Thursday

	opts := DefaultOptions()
	opts.IncludeToday = true
	if got := renderAt(t, target, refNow, opts); got != "Today" {
		t.Errorf("IncludeToday=true got %q, want %q", got, "Today")
	}

	// Without the Today label nothing else matches within the same
	// day, so the concise style shows the clock instead.
	opts.IncludeToday = false
	if got := renderAt(t, target, refNow, opts); got != "12:10 PM" {
		t.Errorf("IncludeToday=false got %q, want %q", got, "12:10 PM")
	}
}

// TestConciseYesterday covers both arms of the yesterday rule: a
// sub-24h delta that crossed midnight, and the exact-24h boundary.
func TestConciseYesterday(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name   string
		target time.Time
		want   string
	}{
		// 23h ago is Wednesday 23:10 — crossed midnight.
		{"23 hours ago", refNow.Add(-23 * time.Hour), "Yesterday"},
		// Exactly one day of elapsed wall time still counts.
		{"exactly 24 hours ago", refNow.Add(-24 * time.Hour), "Yesterday"},
		// 25h ago is beyond the one-day window: weekday label wins.
		{"25 hours ago", refNow.Add(-25 * time.Hour), "Wednesday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderAt(t, tt.target, refNow, opts); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestFarDateWeekday verifies the bare weekday label inside the
// seven-day window and its abbreviation.
func TestFarDateWeekday(t *testing.T) {
	target := refNow.Add(-3 * 24 * time.Hour) // Monday, August 24

	opts := DefaultOptions()
	if got := renderAt(t, target, refNow, opts); got != "Monday" {
		t.Errorf("got %q, want %q", got, "Monday")
	}

	opts.AbbreviateDays = 3
	if got := renderAt(t, target, refNow, opts); got != "Mon." {
		t.Errorf("abbreviated got %q, want %q", got, "Mon.")
	}

	// The wall-clock window, not calendar weeks: six days apart
	// across a weekday wrap is still "within week".
	wrap := refNow.Add(-6 * 24 * time.Hour) // Friday, August 21
	opts.AbbreviateDays = 0
	if got := renderAt(t, wrap, refNow, opts); got != "Friday" {
		t.Errorf("week wrap got %q, want %q", got, "Friday")
	}
}

// TestFarDateLongform verifies the longform date and month
// abbreviation, including its priority over the weekday label.
func TestFarDateLongform(t *testing.T) {
	opts := DefaultOptions()
	opts.Longform = true

	old := time.Date(2023, time.January, 15, 9, 0, 0, 0, time.UTC)
	if got := renderAt(t, old, refNow, opts); got != "January 15, 2023" {
		t.Errorf("got %q, want %q", got, "January 15, 2023")
	}

	opts.AbbreviateMonths = 3
	if got := renderAt(t, old, refNow, opts); got != "Jan. 15, 2023" {
		t.Errorf("abbreviated got %q, want %q", got, "Jan. 15, 2023")
	}

	// Longform outranks the within-week weekday rule.
	recent := refNow.Add(-3 * 24 * time.Hour)
	opts.AbbreviateMonths = 0
	if got := renderAt(t, recent, refNow, opts); got != "August 24, 2026" {
		t.Errorf("within week got %q, want %q", got, "August 24, 2026")
	}
}

// TestFarDateDaysOfWeek verifies the "Day, Month date" form beyond
// the week window, with independent truncation of each name.
func TestFarDateDaysOfWeek(t *testing.T) {
	target := refNow.Add(-10 * 24 * time.Hour) // Monday, August 17

	opts := DefaultOptions()
	opts.DaysOfWeek = true
	if got := renderAt(t, target, refNow, opts); got != "Monday, August 17" {
		t.Errorf("got %q, want %q", got, "Monday, August 17")
	}

	opts.AbbreviateDays = 3
	opts.AbbreviateMonths = 3
	if got := renderAt(t, target, refNow, opts); got != "Mon., Aug. 17" {
		t.Errorf("abbreviated got %q, want %q", got, "Mon., Aug. 17")
	}
}

// TestFarDateNumeric verifies the numeric fallback: beyond a week
// with no worded rule left, and any far date once word conversion is
// off.
func TestFarDateNumeric(t *testing.T) {
	opts := DefaultOptions()

	beyondWeek := refNow.Add(-10 * 24 * time.Hour)
	if got := renderAt(t, beyondWeek, refNow, opts); got != "8/17/2026" {
		t.Errorf("beyond week got %q, want %q", got, "8/17/2026")
	}

	opts.ConvertToWords = false
	withinWeek := refNow.Add(-3 * 24 * time.Hour)
	if got := renderAt(t, withinWeek, refNow, opts); got != "8/24/2026" {
		t.Errorf("words off got %q, want %q", got, "8/24/2026")
	}
}

// TestFutureInstantClamps verifies the documented policy for targets
// ahead of the clock: the delta clamps to zero instead of erroring.
func TestFutureInstantClamps(t *testing.T) {
	target := refNow.Add(2 * time.Hour)

	if got := renderAt(t, target, refNow, DefaultOptions()); got != "just now" {
		t.Errorf("concise got %q, want %q", got, "just now")
	}

	opts := DefaultOptions()
	opts.Verbose = true
	if got := renderAt(t, target, refNow, opts); got != "a few moments ago" {
		t.Errorf("verbose got %q, want %q", got, "a few moments ago")
	}
}

// TestRelativeNeverEmpty sweeps deltas from seconds to years across
// option combinations and asserts the formatter always produces a
// non-empty string.
func TestRelativeNeverEmpty(t *testing.T) {
	deltas := []time.Duration{
		0,
		15 * time.Second,
		time.Minute,
		45 * time.Minute,
		time.Hour,
		26 * time.Hour,
		3 * 24 * time.Hour,
		8 * 24 * time.Hour,
		45 * 24 * time.Hour,
		2 * 365 * 24 * time.Hour,
	}

	variants := []Options{
		DefaultOptions(),
		{Verbose: true, ConvertToWords: true, IncludeAgoSuffix: true, LongTimeAgoThresholdDays: -1, AbbreviatePeriod: "."},
		{IncludeToday: true, ConvertToWords: true, LongTimeAgoThresholdDays: -1, AbbreviatePeriod: "."},
		{Longform: true, ConvertToWords: true, AbbreviateMonths: 3, LongTimeAgoThresholdDays: -1, AbbreviatePeriod: "."},
		{DaysOfWeek: true, ConvertToWords: true, AbbreviateDays: 2, LongTimeAgoThresholdDays: -1, AbbreviatePeriod: "."},
		{LongTimeAgoThresholdDays: 10, Verbose: true, ConvertToWords: true, AbbreviatePeriod: "."},
	}

	for _, opts := range variants {
		for _, d := range deltas {
			if got := renderAt(t, refNow.Add(-d), refNow, opts); got == "" {
				t.Errorf("empty output for delta=%v opts=%+v", d, opts)
			}
		}
	}
}
