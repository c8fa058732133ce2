package analytics

import (
	"time"

	"github.com/blackwell-systems/focussphere/internal/calendar"
)

// DefaultWindowDays is the window used when none is requested.
const DefaultWindowDays = 7

// WindowChoices are the windows offered by the dashboard.
var WindowChoices = []int{7, 30, 90}

// Window is an analysis window: every date from Start to Today inclusive,
// so a window of N days holds N+1 dates.
type Window struct {
	Today time.Time `json:"today"`
	Start time.Time `json:"start"`
	Days  int       `json:"days"`
}

// NewWindow builds the window ending on today's calendar date. A
// non-positive days value selects DefaultWindowDays.
func NewWindow(today time.Time, days int) Window {
	if days <= 0 {
		days = DefaultWindowDays
	}
	today = calendar.DateOf(today)
	return Window{
		Today: today,
		Start: today.AddDate(0, 0, -days),
		Days:  days,
	}
}

// Dates returns the window's dates in ascending order.
func (w Window) Dates() []time.Time {
	return calendar.DateRange(w.Start, w.Today)
}

// Contains reports whether d falls inside the window.
func (w Window) Contains(d time.Time) bool {
	d = calendar.DateOf(d)
	return !d.Before(w.Start) && !d.After(w.Today)
}
