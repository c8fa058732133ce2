// Package watcher periodically refreshes analytics and emits reminders when
// something needs attention: a budget crossing, overdue tasks, a habit streak
// about to break, or an event about to start.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// Refresher produces analytics reports.
type Refresher interface {
	Refresh(ctx context.Context, days int) (*analytics.Report, error)
}

// EventLister reads the schedule events of one date.
type EventLister interface {
	ListEventsForDate(ctx context.Context, date time.Time) ([]model.ScheduleEvent, error)
}

// WatchState captures the figures the watcher compares between cycles.
type WatchState struct {
	Timestamp      time.Time
	Date           string
	PendingTasks   int
	OverdueTasks   int
	CompletedTasks int
	BudgetLevel    string
	BudgetRatio    float64
	Spent          decimal.Decimal
	HabitsDone     map[int64]DoneHabit // by habit id, done today only
	AtRisk         []HabitRisk
	Upcoming       []model.ScheduleEvent
}

// DoneHabit is a habit checked off today and its current streak.
type DoneHabit struct {
	ID     int64
	Name   string
	Streak int
}

// HabitRisk is a habit completed yesterday but not yet today.
type HabitRisk struct {
	Name   string
	Streak int // consecutive days up to yesterday within the last week
}

// Alert represents a notable event detected by the watcher.
type Alert struct {
	Level   string // LevelCritical, LevelWarning or LevelInfo
	Title   string
	Message string
	Time    time.Time
}

// Watcher refreshes analytics at a regular interval and emits alerts when
// notable changes are detected.
type Watcher struct {
	source        Refresher
	events        EventLister
	interval      time.Duration
	previous      *WatchState
	alertFn       func(Alert)     // callback for emitting alerts
	lastAlertKeys map[string]bool // dedup: suppress repeated identical alerts

	// Now supplies the current time; it defaults to time.Now.
	Now func() time.Time

	// StreakReminderHour is the hour of day from which at-risk streaks are
	// reported.
	StreakReminderHour int

	// Lead is how far ahead of an event's start a reminder fires.
	Lead time.Duration
}

// New creates a Watcher reading reports from source and today's events from
// events.
func New(source Refresher, events EventLister, interval time.Duration, alertFn func(Alert)) *Watcher {
	return &Watcher{
		source:             source,
		events:             events,
		interval:           interval,
		alertFn:            alertFn,
		lastAlertKeys:      make(map[string]bool),
		Now:                time.Now,
		StreakReminderHour: 18,
		Lead:               15 * time.Minute,
	}
}

// Run starts the watch loop. It takes an initial snapshot, then checks at
// every interval. Blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	initial, err := w.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}
	w.previous = initial

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, a := range w.Check(ctx) {
				if w.alertFn != nil {
					w.alertFn(a)
				}
			}
		}
	}
}

// Check performs a single check cycle: takes a new snapshot, compares against
// the previous state, updates the previous state, and returns any alerts.
// Identical alerts are suppressed until the underlying data changes.
func (w *Watcher) Check(ctx context.Context) []Alert {
	now := w.Now()
	curr, err := w.Snapshot(ctx)
	if err != nil {
		return []Alert{{
			Level:   LevelWarning,
			Title:   "Refresh failed",
			Message: fmt.Sprintf("Could not read records: %v", err),
			Time:    now,
		}}
	}

	var raw []Alert
	if w.previous != nil {
		raw = Compare(w.previous, curr)
	}
	raw = append(raw, w.reminders(curr, now)...)

	// Deduplicate: suppress alerts with the same title+message as last cycle.
	currentKeys := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		currentKeys[key] = true
		if !w.lastAlertKeys[key] {
			alerts = append(alerts, a)
		}
	}
	w.lastAlertKeys = currentKeys

	w.previous = curr
	return alerts
}

// reminders are raised from the current state alone, every cycle.
func (w *Watcher) reminders(curr *WatchState, now time.Time) []Alert {
	var alerts []Alert

	if now.Hour() >= w.StreakReminderHour {
		for _, r := range curr.AtRisk {
			alerts = append(alerts, Alert{
				Level:   LevelWarning,
				Title:   fmt.Sprintf("Streak at risk: %s", r.Name),
				Message: fmt.Sprintf("%d-day streak ends tonight unless you check it off", r.Streak),
				Time:    now,
			})
		}
	}

	for _, ev := range curr.Upcoming {
		alerts = append(alerts, Alert{
			Level:   LevelInfo,
			Title:   fmt.Sprintf("Starting soon: %s", ev.Title),
			Message: fmt.Sprintf("%s-%s", ev.StartTime, ev.EndTime),
			Time:    now,
		})
	}

	return alerts
}

// Snapshot refreshes analytics for the default window and reads today's
// events starting within the lead time.
func (w *Watcher) Snapshot(ctx context.Context) (*WatchState, error) {
	now := w.Now()
	report, err := w.source.Refresh(ctx, analytics.DefaultWindowDays)
	if err != nil {
		return nil, err
	}

	state := &WatchState{
		Timestamp:      now,
		Date:           calendar.FormatDate(report.Window.Today),
		PendingTasks:   report.Tasks.Pending,
		OverdueTasks:   report.Tasks.Overdue,
		CompletedTasks: report.Tasks.Completed,
		BudgetLevel:    report.Budget.Level,
		BudgetRatio:    report.Budget.Ratio,
		Spent:          report.Budget.Spent,
		HabitsDone:     make(map[int64]DoneHabit),
	}

	for _, h := range report.Habits {
		n := len(h.Days)
		if n < 2 {
			continue
		}
		if h.Days[n-1].Done {
			state.HabitsDone[h.HabitID] = DoneHabit{ID: h.HabitID, Name: h.Name, Streak: h.Streak}
			continue
		}
		if h.Days[n-2].Done {
			state.AtRisk = append(state.AtRisk, HabitRisk{Name: h.Name, Streak: trailingDone(h.Days[:n-1])})
		}
	}

	if w.events != nil {
		events, err := w.events.ListEventsForDate(ctx, report.Window.Today)
		if err != nil {
			return nil, fmt.Errorf("loading today's events: %w", err)
		}
		state.Upcoming = startingWithin(events, now, w.Lead)
	}

	return state, nil
}

// trailingDone counts consecutive done days at the end of days.
func trailingDone(days []analytics.HabitDay) int {
	n := 0
	for i := len(days) - 1; i >= 0 && days[i].Done; i-- {
		n++
	}
	return n
}

// startingWithin returns events whose start time falls in [now, now+lead].
// Events with unparseable start times are ignored.
func startingWithin(events []model.ScheduleEvent, now time.Time, lead time.Duration) []model.ScheduleEvent {
	nowMin := now.Hour()*60 + now.Minute()
	leadMin := int(lead / time.Minute)

	var out []model.ScheduleEvent
	for _, ev := range events {
		start, err := calendar.ParseClockMinutes(ev.StartTime)
		if err != nil {
			continue
		}
		if start >= nowMin && start <= nowMin+leadMin {
			out = append(out, ev)
		}
	}
	return out
}
