package normalize

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the calendar-date layout used throughout the intake schema.
const DayLayout = "2006-01-02"

// midnightSuffix turns a calendar date into the timestamp form carriers expect.
const midnightSuffix = "T00:00:00"

// ParseDay parses a required YYYY-MM-DD date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate appends a midnight time to a date-only string.
// Returns nil if the input is empty.
func FormatDate(s string) *string {
	if s == "" {
		return nil
	}
	out := s + midnightSuffix
	return &out
}

// DayBefore returns the calendar day preceding t, formatted as a timestamp.
func DayBefore(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(DayLayout) + midnightSuffix
}
