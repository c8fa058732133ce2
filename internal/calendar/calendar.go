// Package calendar provides the date and clock arithmetic shared by the
// analytics and schedule packages.
//
// Calendar dates are represented as time.Time values at midnight UTC. Working
// in UTC keeps AddDate free of DST surprises; the caller's wall-clock date is
// captured once with DateOf.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO calendar-date layout used for every stored date.
const DateLayout = "2006-01-02"

// shortLayout is the display format for series labels.
const shortLayout = "01-02"

// FormatError reports a stored date or clock-time string that could not be
// parsed. Callers recover locally and never surface it to the user.
type FormatError struct {
	Kind  string // "date" or "clock"
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Kind, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Value)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// DateOf returns the calendar date of t, as observed in t's location, at
// midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &FormatError{Kind: "date", Value: s}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &FormatError{Kind: "date", Value: s, Err: err}
	}
	return t, nil
}

// ParseTimestampDate extracts the calendar date from a stored timestamp such
// as "2026-03-01 14:22:05". Only the leading date part is considered.
func ParseTimestampDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(DateLayout) {
		return time.Time{}, &FormatError{Kind: "date", Value: s}
	}
	return ParseDate(s[:len(DateLayout)])
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// ShortLabel renders d as MM-DD for chart axes.
func ShortLabel(d time.Time) string {
	return d.Format(shortLayout)
}

// ParseClockMinutes parses an HH:MM clock string into minutes after midnight.
func ParseClockMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || !clockField(hh) || !clockField(mm) {
		return 0, &FormatError{Kind: "clock", Value: s}
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, &FormatError{Kind: "clock", Value: s, Err: err}
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, &FormatError{Kind: "clock", Value: s, Err: err}
	}
	if h < 0 || h > 23 {
		return 0, &FormatError{Kind: "clock", Value: s, Err: fmt.Errorf("hour %d out of range", h)}
	}
	if m < 0 || m > 59 {
		return 0, &FormatError{Kind: "clock", Value: s, Err: fmt.Errorf("minute %d out of range", m)}
	}
	return h*60 + m, nil
}

// clockField reports whether f is one or two ASCII digits.
func clockField(f string) bool {
	if len(f) == 0 || len(f) > 2 {
		return false
	}
	for i := 0; i < len(f); i++ {
		if f[i] < '0' || f[i] > '9' {
			return false
		}
	}
	return true
}

// DateRange returns every date from start to end inclusive, ascending.
// It returns nil when start is after end.
func DateRange(start, end time.Time) []time.Time {
	start, end = DateOf(start), DateOf(end)
	if start.After(end) {
		return nil
	}
	days := int(end.Sub(start).Hours()/24) + 1
	out := make([]time.Time, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// DayShortLabel returns the two-letter English weekday code, e.g. "Mo".
func DayShortLabel(d time.Time) string {
	return d.Weekday().String()[:2]
}

// DayAbbrev returns the three-letter English weekday code, e.g. "Mon".
func DayAbbrev(d time.Time) string {
	return d.Weekday().String()[:3]
}

// WeekdayName returns the full English weekday name.
func WeekdayName(d time.Time) string {
	return d.Weekday().String()
}
