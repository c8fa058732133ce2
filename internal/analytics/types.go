// Package analytics derives streaks, activity scores, time series, and
// headline KPIs from productivity records.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// Report is the top-level result of one refresh.
type Report struct {
	RefreshID   string        `json:"refresh_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Window      Window        `json:"window"`
	KPIs        KPIs          `json:"kpis"`
	Series      Series        `json:"series"`
	Weekly      []DayActivity `json:"weekly"`
	Tasks       TaskStats     `json:"tasks"`
	Habits      []HabitWeek   `json:"habits"`
	Budget      BudgetStatus  `json:"budget"`
	Summary     Summary       `json:"summary"`

	// Issues lists stored values that could not be parsed and were skipped.
	Issues []string `json:"issues,omitempty"`
}

// SeriesPoint is one dated value of a time series.
type SeriesPoint struct {
	// Date is the full ISO calendar date the value belongs to.
	Date string `json:"date"`

	// Label is the short MM-DD display label.
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

func newPoint(d time.Time, v float64) SeriesPoint {
	return SeriesPoint{Date: calendar.FormatDate(d), Label: calendar.ShortLabel(d), Value: v}
}

// Series holds the three date-aligned series of the analytics view.
type Series struct {
	TaskCompletions []SeriesPoint `json:"task_completions"`
	Productivity    []SeriesPoint `json:"productivity"`
	Mood            MoodTrend     `json:"mood"`
}

// MoodTrend is the synthesized mood series.
type MoodTrend struct {
	// Synthetic is always true: only the latest mood is stored, so the
	// series is generated around it rather than measured.
	Synthetic bool          `json:"synthetic"`
	Latest    string        `json:"latest,omitempty"`
	Base      int           `json:"base"`
	Points    []SeriesPoint `json:"points"`
}

// KPIs are the headline numbers of the analytics view.
type KPIs struct {
	// CompletedTasks counts every completed task, regardless of window.
	CompletedTasks int `json:"completed_tasks"`

	// MaxHabitStreak is the longest current streak across all habits.
	MaxHabitStreak int `json:"max_habit_streak"`

	// TotalSpend sums expenses dated inside the window.
	TotalSpend decimal.Decimal `json:"total_spend"`

	// FocusHours sums scheduled event hours inside the window.
	FocusHours float64 `json:"focus_hours"`

	// MalformedExpenses counts expenses skipped for a missing or bad date.
	MalformedExpenses int `json:"malformed_expenses,omitempty"`

	// MalformedEvents counts events skipped for a missing or bad clock time.
	MalformedEvents int `json:"malformed_events,omitempty"`
}

// Activity levels for the weekly overview.
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// DayActivity is one bar of the weekly overview.
type DayActivity struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

// TaskStats summarizes the task list.
type TaskStats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	Pending      int `json:"pending"`
	HighPriority int `json:"high_priority"`
	Overdue      int `json:"overdue"`
	PercentDone  int `json:"percent_done"`
}

// HabitDay is one cell of a habit's week grid.
type HabitDay struct {
	Date       string `json:"date"`
	Label      string `json:"label"`
	DayOfMonth int    `json:"day_of_month"`
	Done       bool   `json:"done"`
}

// HabitWeek is a habit's last seven days plus its current streak.
type HabitWeek struct {
	HabitID int64      `json:"habit_id"`
	Name    string     `json:"name"`
	Streak  int        `json:"streak"`
	Days    []HabitDay `json:"days"`
}

// Budget levels.
const (
	BudgetOK      = "ok"
	BudgetWarning = "warning"
	BudgetOver    = "over"
)

// BudgetStatus compares all recorded spending with the monthly budget.
type BudgetStatus struct {
	Spent      decimal.Decimal `json:"spent"`
	Budget     decimal.Decimal `json:"budget"`
	Ratio      float64         `json:"ratio"`
	Progress   float64         `json:"progress"`
	Level      string          `json:"level"`
	Categories []CategoryTotal `json:"categories,omitempty"`
}

// CategoryTotal is the spend of one expense category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// Summary is the at-a-glance dashboard line.
type Summary struct {
	PendingTasks int             `json:"pending_tasks"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	EventsToday  int             `json:"events_today"`
	LatestMood   string          `json:"latest_mood,omitempty"`
}

// TrackedHabit is a habit together with its parsed completion set.
type TrackedHabit struct {
	model.Habit
	Days model.CompletionSet `json:"-"`
}

// EventIndex groups schedule events by ISO date.
type EventIndex map[string][]model.ScheduleEvent

// On returns the events scheduled on d.
func (x EventIndex) On(d time.Time) []model.ScheduleEvent {
	return x[calendar.FormatDate(d)]
}
