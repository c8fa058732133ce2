package analytics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// fakeSource serves fixed records and counts per-date event lookups.
type fakeSource struct {
	tasks    []model.Task
	habits   []model.Habit
	expenses []model.Expense
	events   []model.ScheduleEvent
	mood     string
	failOn   string

	mu          sync.Mutex
	eventCalls  int
	datesLooked map[string]bool
}

func (f *fakeSource) fail(name string) error {
	if f.failOn == name {
		return errors.New(name + " unavailable")
	}
	return nil
}

func (f *fakeSource) ListTasks(context.Context) ([]model.Task, error) {
	return f.tasks, f.fail("tasks")
}

func (f *fakeSource) ListHabits(context.Context) ([]model.Habit, error) {
	return f.habits, f.fail("habits")
}

func (f *fakeSource) ListExpenses(context.Context) ([]model.Expense, error) {
	return f.expenses, f.fail("expenses")
}

func (f *fakeSource) ListEventsForDate(_ context.Context, d time.Time) ([]model.ScheduleEvent, error) {
	key := calendar.FormatDate(d)
	f.mu.Lock()
	f.eventCalls++
	if f.datesLooked == nil {
		f.datesLooked = map[string]bool{}
	}
	f.datesLooked[key] = true
	f.mu.Unlock()

	var out []model.ScheduleEvent
	for _, ev := range f.events {
		if ev.Date == key {
			out = append(out, ev)
		}
	}
	return out, f.fail("events")
}

func (f *fakeSource) LatestMood(context.Context) (string, bool, error) {
	return f.mood, f.mood != "", f.fail("mood")
}

func newTestEngine(src Source) *Engine {
	e := NewEngine(src, nil)
	e.Now = func() time.Time { return refToday.Add(14*time.Hour + 5*time.Minute) }
	return e
}

func TestEngineRefresh_EndToEnd(t *testing.T) {
	src := &fakeSource{
		habits: []model.Habit{{ID: 1, Name: "Meditate", CompletedDays: daysAgo(0)}},
		events: []model.ScheduleEvent{event(daysAgo(0), "09:00", "11:00")},
		mood:   "Awesome",
	}
	report, err := newTestEngine(src).Refresh(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, report.Weekly, 7)
	assert.Equal(t, 25.0, report.Weekly[6].Score)
	assert.Equal(t, 1, report.KPIs.MaxHabitStreak)
	assert.Equal(t, 2.0, report.KPIs.FocusHours)
	assert.Len(t, report.Series.Productivity, 8)
	assert.Equal(t, 30.0, report.Series.Productivity[7].Value)
	assert.True(t, report.Series.Mood.Synthetic)
	assert.Equal(t, 4, report.Series.Mood.Base)
	assert.Equal(t, 1, report.Summary.EventsToday)
	assert.Equal(t, "Awesome", report.Summary.LatestMood)
	assert.NotEmpty(t, report.RefreshID)
	assert.Empty(t, report.Issues)
}

func TestEngineRefresh_LoadsEachWindowDate(t *testing.T) {
	src := &fakeSource{}
	_, err := newTestEngine(src).Refresh(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, 31, src.eventCalls)
	assert.True(t, src.datesLooked[daysAgo(30)])
	assert.True(t, src.datesLooked[daysAgo(0)])
}

func TestEngineRefresh_EmptyStore(t *testing.T) {
	report, err := newTestEngine(&fakeSource{}).Refresh(context.Background(), 90)
	require.NoError(t, err)

	assert.Len(t, report.Series.TaskCompletions, 91)
	for _, p := range report.Series.TaskCompletions {
		assert.Zero(t, p.Value)
	}
	assert.Zero(t, report.KPIs.CompletedTasks)
	assert.True(t, report.KPIs.TotalSpend.IsZero())
	assert.Equal(t, 3, report.Series.Mood.Base)
	assert.Equal(t, BudgetOK, report.Budget.Level)
}

func TestEngineRefresh_MalformedDataIsReported(t *testing.T) {
	src := &fakeSource{
		habits:   []model.Habit{{ID: 7, Name: "Walk", CompletedDays: "not-a-date," + daysAgo(0)}},
		expenses: []model.Expense{{Amount: decimal.NewFromInt(3), Date: "??"}},
		events:   []model.ScheduleEvent{event(daysAgo(0), "xx", "10:00")},
		tasks:    []model.Task{{Title: "weird", Priority: "Critical", Completed: true, CreatedAt: ""}},
	}
	report, err := newTestEngine(src).Refresh(context.Background(), 7)
	require.NoError(t, err)

	assert.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "not-a-date")
	assert.Equal(t, 1, report.KPIs.MalformedExpenses)
	assert.Equal(t, 1, report.KPIs.MalformedEvents)
	assert.Equal(t, 1, report.KPIs.MaxHabitStreak)
	assert.Equal(t, 1, report.KPIs.CompletedTasks)
}

func TestEngineRefresh_StoreErrorPropagates(t *testing.T) {
	for _, name := range []string{"tasks", "habits", "expenses", "events", "mood"} {
		_, err := newTestEngine(&fakeSource{failOn: name}).Refresh(context.Background(), 7)
		assert.Error(t, err, name)
	}
}

func TestEngineRefresh_BudgetFromEngine(t *testing.T) {
	src := &fakeSource{expenses: []model.Expense{{Amount: decimal.NewFromInt(90), Date: daysAgo(200)}}}
	e := newTestEngine(src)
	e.MonthlyBudget = decimal.NewFromInt(100)

	report, err := e.Refresh(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, BudgetOver, report.Budget.Level)
	assert.True(t, report.KPIs.TotalSpend.IsZero(), "old expense is outside the window")
	assert.True(t, report.Summary.TotalSpent.Equal(decimal.NewFromInt(90)))
}
