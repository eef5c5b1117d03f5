package readable

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goodsign/monday"
)

// Errors surfaced by locale lookup and registration. A request for a
// locale that was never registered is a caller error; an incomplete
// table is a programming error caught at registration time, so a
// registered table can never fail a label lookup later.
var (
	ErrUnknownLocale   = errors.New("readable: unknown locale")
	ErrIncompleteTable = errors.New("readable: incomplete label table")
	ErrUnknownFormat   = errors.New("readable: unknown format")
)

// UnitNames maps each duration bucket to its singular noun.
// Plurals are formed by appending "s".
type UnitNames struct {
	Minute string
	Hour   string
	Day    string
	Week   string
	Month  string
	Year   string
}

// LabelTable holds every label a locale must provide. All fields are
// consulted by the formatter, so all of them are required; Register
// rejects a table with any gap. Fixed phrases carry the casing they
// are emitted with — concise labels lead a line, so they arrive
// capitalized, while the just-now phrases are lowercase.
type LabelTable struct {
	// Fixed phrases.
	JustNow    string // "just now"
	FewMoments string // "a few moments", the verbose just-now phrase
	Today      string
	Yesterday  string
	LongAgo    string // "A long time", completed by the ago suffix
	Ago        string

	// Articles, phrase-initial. An is used only for a single hour.
	A  string
	An string

	// Small-count words: 2 maps to Couple, 3 and 4 map to Few.
	Couple string
	Few    string

	Units UnitNames

	// Calendar names, indexed time.Weekday (0 = Sunday) and
	// time.Month - 1 (0 = January).
	Weekdays [7]string
	Months   [12]string

	// Calendar is the locale handle for the platform time
	// formatter that renders the clock and numeric-date layouts.
	Calendar monday.Locale

	// Locale-ordered layout strings, in time.Format reference
	// notation.
	NumericDate   string // far-date numeric fallback, e.g. "1/2/2006"
	Clock24       string
	ClockLong     string
	ClockShort    string // also the concise same-day fallback
	ClockShortPad string
}

// validate reports the first missing label. Field-by-field so the
// error names the gap.
func (t LabelTable) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"JustNow", t.JustNow},
		{"FewMoments", t.FewMoments},
		{"Today", t.Today},
		{"Yesterday", t.Yesterday},
		{"LongAgo", t.LongAgo},
		{"Ago", t.Ago},
		{"A", t.A},
		{"An", t.An},
		{"Couple", t.Couple},
		{"Few", t.Few},
		{"Units.Minute", t.Units.Minute},
		{"Units.Hour", t.Units.Hour},
		{"Units.Day", t.Units.Day},
		{"Units.Week", t.Units.Week},
		{"Units.Month", t.Units.Month},
		{"Units.Year", t.Units.Year},
		{"Calendar", string(t.Calendar)},
		{"NumericDate", t.NumericDate},
		{"Clock24", t.Clock24},
		{"ClockLong", t.ClockLong},
		{"ClockShort", t.ClockShort},
		{"ClockShortPad", t.ClockShortPad},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: missing %s", ErrIncompleteTable, r.name)
		}
	}
	for i, d := range t.Weekdays {
		if d == "" {
			return fmt.Errorf("%w: missing Weekdays[%d]", ErrIncompleteTable, i)
		}
	}
	for i, m := range t.Months {
		if m == "" {
			return fmt.Errorf("%w: missing Months[%d]", ErrIncompleteTable, i)
		}
	}
	return nil
}

// LocaleEnUS is the only locale shipped built in.
const LocaleEnUS = "en-US"

var enUS = LabelTable{
	JustNow:    "just now",
	FewMoments: "a few moments",
	Today:      "Today",
	Yesterday:  "Yesterday",
	LongAgo:    "A long time",
	Ago:        "ago",
	A:          "A",
	An:         "An",
	Couple:     "couple of",
	Few:        "few",
	Units: UnitNames{
		Minute: "minute",
		Hour:   "hour",
		Day:    "day",
		Week:   "week",
		Month:  "month",
		Year:   "year",
	},
	Weekdays: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday",
		"Thursday", "Friday", "Saturday",
	},
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	Calendar:      monday.LocaleEnUS,
	NumericDate:   "1/2/2006",
	Clock24:       "15:04",
	ClockLong:     "3:04:05 PM",
	ClockShort:    "3:04 PM",
	ClockShortPad: "03:04 PM",
}

// The registry is written only by Register and read by every format
// call, so a plain RWMutex suffices; steady-state access is
// read-only.
var (
	tablesMu sync.RWMutex
	tables   = map[string]LabelTable{LocaleEnUS: enUS}
)

// Register adds a locale's label table, replacing any previous table
// under the same name. The table is validated in full; registering an
// incomplete table is a defect and fails with ErrIncompleteTable.
func Register(locale string, table LabelTable) error {
	if err := table.validate(); err != nil {
		return fmt.Errorf("registering locale %q: %w", locale, err)
	}
	tablesMu.Lock()
	tables[locale] = table
	tablesMu.Unlock()
	return nil
}

// MustRegister is Register for init-time wiring; it panics on an
// incomplete table.
func MustRegister(locale string, table LabelTable) {
	if err := Register(locale, table); err != nil {
		panic(err)
	}
}

// lookupTable resolves a locale's table.
func lookupTable(locale string) (LabelTable, error) {
	tablesMu.RLock()
	table, ok := tables[locale]
	tablesMu.RUnlock()
	if !ok {
		return LabelTable{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return table, nil
}
