package model

import (
	"slices"
	"strings"
	"time"

	"github.com/blackwell-systems/focussphere/internal/calendar"
)

// CompletionSet is the set of calendar dates a habit was completed on, keyed
// by ISO date string.
type CompletionSet map[string]struct{}

// ParseCompletionSet decodes the comma-delimited stored form. Blank entries
// are ignored; entries that are not valid ISO dates are skipped and returned
// as errors. Valid entries are normalized, so "2026-1-5" style values never
// enter the set.
func ParseCompletionSet(raw string) (CompletionSet, []error) {
	set := make(CompletionSet)
	var issues []error
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := calendar.ParseDate(part)
		if err != nil {
			issues = append(issues, err)
			continue
		}
		set[calendar.FormatDate(d)] = struct{}{}
	}
	return set, issues
}

// Has reports whether the date is in the set.
func (s CompletionSet) Has(d time.Time) bool {
	_, ok := s[calendar.FormatDate(d)]
	return ok
}

// Toggle returns a copy of the set with d flipped in or out. The receiver is
// not modified.
func (s CompletionSet) Toggle(d time.Time) CompletionSet {
	key := calendar.FormatDate(d)
	out := make(CompletionSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	if _, ok := out[key]; ok {
		delete(out, key)
	} else {
		out[key] = struct{}{}
	}
	return out
}

// Dates returns the members in ascending order.
func (s CompletionSet) Dates() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// String encodes the set in its stored form, sorted for stable output.
func (s CompletionSet) String() string {
	return strings.Join(s.Dates(), ",")
}
