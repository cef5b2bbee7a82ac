package datemath

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate parses a calendar date. It accepts YYYY-MM-DD and RFC 3339
// timestamps; the latter are reduced to their UTC date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return StartOfDay(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
}

// StartOfDay returns midnight UTC of t's UTC calendar date.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonthsClamped adds months to t, clamping the day to the last day of the
// target month: Jan 31 + 1 month is Feb 29 in a leap year, never Mar 2.
func AddMonthsClamped(t time.Time, months int) time.Time {
	if months == 0 {
		return t
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	day := t.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Apply moves date by d: days first, then months.
func (d Delay) Apply(date time.Time) time.Time {
	return AddMonthsClamped(StartOfDay(date).AddDate(0, 0, d.Days), d.Months)
}

// NextBillingDate applies d to start and returns the next billing anchor
// strictly after the adjusted date: the 15th or the 27th of the same month,
// otherwise the 15th of the following month.
//
// An adjusted date that already falls on an anchor is never returned.
func NextBillingDate(start time.Time, d Delay) time.Time {
	current := d.Apply(start)
	year, month := current.Year(), current.Month()

	if first := time.Date(year, month, FirstBillingDay, 0, 0, 0, 0, time.UTC); first.After(current) {
		return first
	}
	if second := time.Date(year, month, SecondBillingDay, 0, 0, 0, 0, time.UTC); second.After(current) {
		return second
	}
	return time.Date(year, month+1, FirstBillingDay, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
