package readable

// Options controls how a relative timestamp is phrased.
//
// An Options value is never mutated by the library; every Render call
// is a pure function of the target instant, the clock reading, the
// locale table, and the options. Start from DefaultOptions and flip
// the fields you need — several defaults are deliberately non-zero.
type Options struct {
	// Verbose selects the "X units ago" style over the compact
	// Just now / Today / Yesterday / date style.
	Verbose bool

	// ConvertToWords renders small counts as words ("A couple of
	// hours ago") instead of numerals, and enables the worded
	// concise labels (Today, Yesterday, weekday names).
	ConvertToWords bool

	// IncludeAgoSuffix appends the locale's "ago" word to verbose
	// phrases. Concise labels are standalone and never carry it.
	IncludeAgoSuffix bool

	// IncludeToday allows the concise style to say "Today" for
	// same-day instants instead of falling back to clock time.
	IncludeToday bool

	// IncludeJustNow short-circuits sub-minute deltas to the
	// locale's just-now phrase before any other rule is consulted.
	IncludeJustNow bool

	// DaysOfWeek renders far dates as "Monday, January 5" instead
	// of a numeric date, once the within-a-week window has passed.
	DaysOfWeek bool

	// Longform renders far dates as "January 5, 2026", taking
	// priority over every other far-date rule.
	Longform bool

	// LongTimeAgoThresholdDays collapses verbose output to the
	// locale's "a long time ago" phrase once that many days have
	// elapsed. Negative disables the collapse.
	LongTimeAgoThresholdDays int

	// AbbreviateDays truncates weekday names to this many
	// characters followed by AbbreviatePeriod. Zero keeps the full
	// name.
	AbbreviateDays int

	// AbbreviateMonths truncates month names the same way.
	AbbreviateMonths int

	// AbbreviatePeriod is appended after a truncated name.
	AbbreviatePeriod string
}

// DefaultOptions returns the option set most UIs want: compact
// phrasing with worded small counts, an "ago" suffix, and the
// just-now short circuit.
func DefaultOptions() Options {
	return Options{
		ConvertToWords:           true,
		IncludeAgoSuffix:         true,
		IncludeJustNow:           true,
		LongTimeAgoThresholdDays: -1,
		AbbreviatePeriod:         ".",
	}
}
