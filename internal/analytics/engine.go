package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/focussphere/internal/calendar"
)

// Engine runs refreshes against a record store.
type Engine struct {
	src    Source
	logger *slog.Logger

	// Now supplies the current time; it defaults to time.Now.
	Now func() time.Time

	// MonthlyBudget is the budget used by the budget view.
	MonthlyBudget decimal.Decimal
}

// NewEngine creates an Engine reading from src. A nil logger discards logs.
func NewEngine(src Source, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		src:           src,
		logger:        logger,
		Now:           time.Now,
		MonthlyBudget: DefaultMonthlyBudget,
	}
}

// Today returns the engine's current calendar date.
func (e *Engine) Today() time.Time {
	return calendar.DateOf(e.Now())
}

// Refresh loads a snapshot and computes the full report for a window of the
// given number of days. Malformed record content never fails a refresh;
// only store errors do.
func (e *Engine) Refresh(ctx context.Context, days int) (*Report, error) {
	now := e.Now()
	w := NewWindow(now, days)
	refreshID := uuid.NewString()
	log := e.logger.With("refresh_id", refreshID)

	// The weekly overview always needs the last seven days.
	from := w.Start
	if weekStart := w.Today.AddDate(0, 0, -6); weekStart.Before(from) {
		from = weekStart
	}

	snap, err := LoadSnapshot(ctx, e.src, from, w.Today)
	if err != nil {
		return nil, err
	}
	log.Debug("snapshot loaded",
		"tasks", len(snap.Tasks),
		"habits", len(snap.Habits),
		"expenses", len(snap.Expenses),
		"event_days", len(snap.Events),
	)

	report := &Report{
		RefreshID:   refreshID,
		GeneratedAt: now,
		Window:      w,
		KPIs:        SummarizeKPIs(w, snap.Tasks, snap.Habits, snap.Expenses, snap.Events),
		Series:      BuildSeries(w, snap.Habits, snap.Events, snap.Tasks, snap.LatestMood),
		Weekly:      WeeklyActivity(w.Today, snap.Habits, snap.Events, snap.Tasks),
		Tasks:       AnalyzeTasks(snap.Tasks, w.Today),
		Habits:      HabitWeeks(snap.Habits, w.Today),
		Budget:      AnalyzeBudget(snap.Expenses, e.MonthlyBudget),
	}
	report.Summary = Summary{
		PendingTasks: report.Tasks.Pending,
		TotalSpent:   report.Budget.Spent,
		EventsToday:  len(snap.Events.On(w.Today)),
		LatestMood:   snap.LatestMood,
	}

	for _, issue := range snap.Issues {
		log.Warn("skipped malformed habit date", "err", issue)
		report.Issues = append(report.Issues, issue.Error())
	}
	if n := report.KPIs.MalformedExpenses; n > 0 {
		log.Warn("skipped expenses with missing or invalid dates", "count", n)
	}
	if n := report.KPIs.MalformedEvents; n > 0 {
		log.Warn("skipped events with invalid clock times", "count", n)
	}

	return report, nil
}
