package readable

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goodsign/monday"
)

// buckets holds the floor-divided elapsed counts the cascade decides
// on. Weeks, months, and years are approximations (7, 30, and 365
// days), not calendar units.
type buckets struct {
	minutes int64
	hours   int64
	days    int64
	weeks   int64
	months  int64
	years   int64
}

func bucketize(delta time.Duration) buckets {
	minutes := delta.Milliseconds() / 60_000
	hours := minutes / 60
	days := hours / 24
	return buckets{
		minutes: minutes,
		hours:   hours,
		days:    days,
		weeks:   days / 7,
		months:  days / 30,
		years:   days / 365,
	}
}

// formatRelative maps an instant to a relative-time phrase. It is a
// pure function of its arguments; now is captured by the caller
// exactly once.
//
// Future instants are clamped to a zero delta rather than rejected,
// so a slightly-ahead clock still reads "just now".
func formatRelative(target, now time.Time, table LabelTable, opts Options) string {
	delta := now.Sub(target)
	if delta < 0 {
		delta = 0
	}
	b := bucketize(delta)

	// The just-now short circuit precedes every other rule.
	if opts.IncludeJustNow && b.minutes < 1 {
		if opts.Verbose {
			return table.FewMoments + agoSuffix(table, opts)
		}
		return table.JustNow
	}

	if opts.Verbose {
		return formatVerbose(b, table, opts)
	}
	return formatConcise(target, now, delta, b, table, opts)
}

// formatVerbose renders the largest non-zero bucket, years down to
// minutes, with minutes as the fallback even at zero.
func formatVerbose(b buckets, table LabelTable, opts Options) string {
	if opts.LongTimeAgoThresholdDays >= 0 && b.days >= int64(opts.LongTimeAgoThresholdDays) {
		return table.LongAgo + agoSuffix(table, opts)
	}

	delta, unit, article := b.minutes, table.Units.Minute, table.A
	switch {
	case b.years > 0:
		delta, unit = b.years, table.Units.Year
	case b.months > 0:
		delta, unit = b.months, table.Units.Month
	case b.weeks > 0:
		delta, unit = b.weeks, table.Units.Week
	case b.days > 0:
		delta, unit = b.days, table.Units.Day
	case b.hours > 0:
		delta, unit = b.hours, table.Units.Hour
		if delta == 1 {
			article = table.An
		}
	}
	return renderMagnitude(delta, unit, article, table, opts)
}

// renderMagnitude produces "<count-or-word> <unit>[s][ ago]". Counts
// under five become words when ConvertToWords is set: 2 is "couple
// of", 3 and 4 are "few", and 1 is the bare article.
func renderMagnitude(delta int64, unit, article string, table LabelTable, opts Options) string {
	var prefix string
	switch {
	case !opts.ConvertToWords || delta >= 5:
		prefix = strconv.FormatInt(delta, 10)
	case delta == 2:
		prefix = article + " " + table.Couple
	case delta == 3 || delta == 4:
		prefix = article + " " + table.Few
	default:
		prefix = article
	}

	noun := unit
	if delta != 1 {
		noun += "s"
	}
	return prefix + " " + noun + agoSuffix(table, opts)
}

// formatConcise picks among Today, Yesterday, a far-date label, and
// plain clock time. The window booleans compare elapsed wall time;
// only the midnight check consults calendar fields.
func formatConcise(target, now time.Time, delta time.Duration, b buckets, table LabelTable, opts Options) string {
	withinYesterday := delta <= 24*time.Hour
	pastMidnight := !withinYesterday || target.Weekday() != now.Weekday()
	withinWeek := delta <= 7*24*time.Hour

	switch {
	case opts.ConvertToWords && opts.IncludeToday && b.hours < 24 && !pastMidnight:
		return table.Today
	case opts.ConvertToWords && ((b.hours < 24 && pastMidnight) ||
		(b.hours >= 24 && b.hours < 48 && withinYesterday)):
		return table.Yesterday
	case !withinYesterday:
		return farDateLabel(target, withinWeek, table, opts)
	default:
		// Same-day instant with no worded label left: show the
		// clock time instead.
		return monday.Format(target, table.ClockShort, table.Calendar)
	}
}

// farDateLabel renders instants more than a day old, in strict
// priority: longform date, then bare weekday within a week, then
// "Day, Month date", then the locale's numeric date.
func farDateLabel(target time.Time, withinWeek bool, table LabelTable, opts Options) string {
	switch {
	case opts.ConvertToWords && opts.Longform:
		month := truncateName(table.Months[target.Month()-1], opts.AbbreviateMonths, opts.AbbreviatePeriod)
		return fmt.Sprintf("%s %d, %d", month, target.Day(), target.Year())
	case opts.ConvertToWords && withinWeek:
		return truncateName(table.Weekdays[target.Weekday()], opts.AbbreviateDays, opts.AbbreviatePeriod)
	case opts.ConvertToWords && opts.DaysOfWeek:
		day := truncateName(table.Weekdays[target.Weekday()], opts.AbbreviateDays, opts.AbbreviatePeriod)
		month := truncateName(table.Months[target.Month()-1], opts.AbbreviateMonths, opts.AbbreviatePeriod)
		return fmt.Sprintf("%s, %s %d", day, month, target.Day())
	default:
		return monday.Format(target, table.NumericDate, table.Calendar)
	}
}

// truncateName cuts a calendar name to n characters and appends the
// abbreviation period. n <= 0 keeps the full name, no period.
func truncateName(name string, n int, period string) string {
	if n <= 0 {
		return name
	}
	if runes := []rune(name); n < len(runes) {
		name = string(runes[:n])
	}
	return name + period
}

func agoSuffix(table LabelTable, opts Options) string {
	if opts.IncludeAgoSuffix {
		return " " + table.Ago
	}
	return ""
}
