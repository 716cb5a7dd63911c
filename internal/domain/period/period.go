package period

import (
	"fmt"
	"strings"
	"time"
)

// A Period is one calendar month in a specific year, the unit the contact
// tracker is organized around. Monthly sheets, completion labels and the
// "prior period" throttle all compare at this granularity.
type Period struct {
	Year  int
	Month time.Month
}

// Of returns the period containing t.
func Of(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Before reports whether p is strictly earlier than q.
func (p Period) Before(q Period) bool {
	if p.Year != q.Year {
		return p.Year < q.Year
	}
	return p.Month < q.Month
}

// After reports whether p is strictly later than q.
func (p Period) After(q Period) bool {
	return q.Before(p)
}

// Label returns the canonical month name used in completion lists and
// sheet names, e.g. "March".
func (p Period) Label() string {
	return p.Month.String()
}

// FromMonthName maps a canonical English month name to its month.
// Matching is case-insensitive and tolerant of surrounding whitespace.
// Callers are expected to skip unrecognized names, not abort.
func FromMonthName(name string) (time.Month, error) {
	trimmed := strings.TrimSpace(name)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(trimmed, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unrecognized month name: %q", name)
}

// DaysRemaining returns the number of days left in t's month, not counting
// t itself. On the last day of a month it is zero.
func DaysRemaining(t time.Time) int {
	lastDay := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return lastDay - t.Day()
}

// DaysBetween returns the whole days from a to b, ignoring time of day
// and location. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
