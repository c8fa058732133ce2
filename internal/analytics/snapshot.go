package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// Source is the read side of the record store.
type Source interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	ListHabits(ctx context.Context) ([]model.Habit, error)
	ListExpenses(ctx context.Context) ([]model.Expense, error)
	ListEventsForDate(ctx context.Context, date time.Time) ([]model.ScheduleEvent, error)

	// LatestMood returns the most recent mood label; ok is false when no
	// mood has been logged.
	LatestMood(ctx context.Context) (mood string, ok bool, err error)
}

// HabitWriter replaces a habit's completion-date set.
type HabitWriter interface {
	SetHabitCompletionDates(ctx context.Context, habitID int64, days model.CompletionSet) error
}

// loadConcurrency bounds the number of in-flight store reads.
const loadConcurrency = 8

// Snapshot is a read-only copy of every record one refresh needs.
type Snapshot struct {
	Tasks      []model.Task
	Habits     []TrackedHabit
	Expenses   []model.Expense
	Events     EventIndex
	LatestMood string

	// Issues collects stored values that failed to parse while loading.
	Issues []error
}

// LoadSnapshot reads every collection plus the events of each date from
// "from" to "to" inclusive. Reads run concurrently; the first failure
// cancels the rest and is returned.
func LoadSnapshot(ctx context.Context, src Source, from, to time.Time) (*Snapshot, error) {
	dates := calendar.DateRange(from, to)

	var (
		tasks    []model.Task
		habits   []model.Habit
		expenses []model.Expense
		mood     string
	)
	perDay := make([][]model.ScheduleEvent, len(dates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)

	g.Go(func() error {
		var err error
		if tasks, err = src.ListTasks(ctx); err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if habits, err = src.ListHabits(ctx); err != nil {
			return fmt.Errorf("loading habits: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if expenses, err = src.ListExpenses(ctx); err != nil {
			return fmt.Errorf("loading expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		m, ok, err := src.LatestMood(ctx)
		if err != nil {
			return fmt.Errorf("loading latest mood: %w", err)
		}
		if ok {
			mood = m
		}
		return nil
	})
	for i, d := range dates {
		g.Go(func() error {
			evs, err := src.ListEventsForDate(ctx, d)
			if err != nil {
				return fmt.Errorf("loading events for %s: %w", calendar.FormatDate(d), err)
			}
			perDay[i] = evs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Tasks:      tasks,
		Expenses:   expenses,
		Events:     make(EventIndex, len(dates)),
		LatestMood: mood,
	}
	snap.Habits, snap.Issues = TrackHabits(habits)
	for i, d := range dates {
		if len(perDay[i]) > 0 {
			snap.Events[calendar.FormatDate(d)] = perDay[i]
		}
	}
	return snap, nil
}
