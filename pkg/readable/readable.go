// Package readable converts instants into human-friendly strings for
// UIs that show timestamps: chat feeds, activity streams, logs.
//
// The interesting work is the relative-time ("timeago") style: a
// prioritized cascade that turns an elapsed duration into phrases
// like "just now", "A couple of hours ago", "Yesterday", "Tuesday",
// or "Jan. 15, 2023", steered by an Options bag. The clock-* kinds
// are thin delegations to a locale-aware calendar formatter.
//
// Every Render call reads the clock once and is otherwise a pure
// function, so identical inputs against a frozen clock produce
// identical output. Locale tables are registered up front and
// read-only afterwards; concurrent callers need no coordination.
package readable

import (
	"fmt"
	"time"

	"github.com/goodsign/monday"
	"github.com/jonboulle/clockwork"
)

// Kind selects the output style.
type Kind string

const (
	// KindTimeago is the relative style and the default.
	KindTimeago Kind = "timeago"
	// KindClock24 is 24-hour clock time, "15:04".
	KindClock24 Kind = "clock-24"
	// KindClockLong is 12-hour clock time with seconds.
	KindClockLong Kind = "clock-long"
	// KindClockShort is 12-hour clock time without a leading zero.
	KindClockShort Kind = "clock-short"
	// KindClockShortPad is KindClockShort with a zero-padded hour.
	KindClockShortPad Kind = "clock-short-pad"
)

// Formatter renders instants with a fixed kind, locale, and option
// set. The zero value is not usable; construct one with NewFormatter.
type Formatter struct {
	kind   Kind
	locale string
	opts   Options
	clock  clockwork.Clock
}

// NewFormatter builds a formatter. An empty kind means KindTimeago
// and an empty locale means en-US. The locale must already be
// registered; ErrUnknownLocale otherwise.
func NewFormatter(kind Kind, locale string, opts Options) (*Formatter, error) {
	if kind == "" {
		kind = KindTimeago
	}
	if locale == "" {
		locale = LocaleEnUS
	}
	if _, err := lookupTable(locale); err != nil {
		return nil, err
	}
	return &Formatter{
		kind:   kind,
		locale: locale,
		opts:   opts,
		clock:  clockwork.NewRealClock(),
	}, nil
}

// WithClock returns a copy of the formatter reading its "now" from
// the given clock. Pass a clockwork fake clock for deterministic
// output in tests.
func (f *Formatter) WithClock(clock clockwork.Clock) *Formatter {
	copied := *f
	copied.clock = clock
	return &copied
}

// Render formats the target instant. The current instant is read
// exactly once, before any branch is evaluated.
func (f *Formatter) Render(target time.Time) (string, error) {
	table, err := lookupTable(f.locale)
	if err != nil {
		return "", err
	}

	switch f.kind {
	case KindTimeago:
		return formatRelative(target, f.clock.Now(), table, f.opts), nil
	case KindClock24:
		return monday.Format(target, table.Clock24, table.Calendar), nil
	case KindClockLong:
		return monday.Format(target, table.ClockLong, table.Calendar), nil
	case KindClockShort:
		return monday.Format(target, table.ClockShort, table.Calendar), nil
	case KindClockShortPad:
		return monday.Format(target, table.ClockShortPad, table.Calendar), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f.kind)
	}
}

// Format is the one-shot entry point: render target using kind,
// locale, and opts against the real clock.
func Format(target time.Time, kind Kind, locale string, opts Options) (string, error) {
	f, err := NewFormatter(kind, locale, opts)
	if err != nil {
		return "", err
	}
	return f.Render(target)
}
