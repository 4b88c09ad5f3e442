package util

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used by the API and CLI.
const DateLayout = "2006-01-02"

// TodayIn returns the calendar day of now as seen in loc, expressed as UTC
// midnight. Daily sets are stored and seeded by this value.
func TodayIn(now time.Time, loc *time.Location) time.Time {
	return NormalizeDate(now.In(loc))
}

// NormalizeDate keeps the calendar fields of t and drops the time of day,
// returning UTC midnight of that date.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a normalized date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return NormalizeDate(t), nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
