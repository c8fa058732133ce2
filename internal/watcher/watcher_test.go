package watcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// stubRefresher returns a fixed report, or an error when err is set.
type stubRefresher struct {
	report *analytics.Report
	err    error
	calls  int
}

func (s *stubRefresher) Refresh(_ context.Context, _ int) (*analytics.Report, error) {
	s.calls++
	return s.report, s.err
}

type stubEvents []model.ScheduleEvent

func (s stubEvents) ListEventsForDate(_ context.Context, _ time.Time) ([]model.ScheduleEvent, error) {
	return s, nil
}

var watchToday = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

func habitWeek(id int64, name string, done ...bool) analytics.HabitWeek {
	w := analytics.HabitWeek{HabitID: id, Name: name}
	for i, d := range done {
		w.Days = append(w.Days, analytics.HabitDay{Date: watchToday.AddDate(0, 0, i-len(done)+1).Format("2006-01-02"), Done: d})
	}
	streak := 0
	for i := len(done) - 1; i >= 0 && done[i]; i-- {
		streak++
	}
	w.Streak = streak
	return w
}

func baseReport() *analytics.Report {
	return &analytics.Report{
		Window: analytics.NewWindow(watchToday, 7),
		Budget: analytics.BudgetStatus{Level: analytics.BudgetOK, Spent: decimal.Zero},
	}
}

func newTestWatcher(src Refresher, events EventLister, at time.Time) *Watcher {
	w := New(src, events, time.Minute, nil)
	w.Now = func() time.Time { return at }
	return w
}

func TestSnapshot_FromReport(t *testing.T) {
	report := baseReport()
	report.Tasks = analytics.TaskStats{Pending: 4, Overdue: 1, Completed: 2}
	report.Habits = []analytics.HabitWeek{
		habitWeek(1, "Read", false, false, true, true, true, true, false),
		habitWeek(2, "Run", false, false, false, false, false, true, true),
		habitWeek(3, "Floss", false, false, false, false, false, false, false),
	}

	w := newTestWatcher(&stubRefresher{report: report}, nil, watchToday.Add(19*time.Hour))
	state, err := w.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2026-10-17", state.Date)
	assert.Equal(t, 4, state.PendingTasks)
	assert.Equal(t, 1, state.OverdueTasks)
	assert.Equal(t, map[int64]DoneHabit{2: {ID: 2, Name: "Run", Streak: 2}}, state.HabitsDone)
	assert.Equal(t, []HabitRisk{{Name: "Read", Streak: 4}}, state.AtRisk)
}

func TestSnapshot_SameNameHabitsKeptApart(t *testing.T) {
	report := baseReport()
	report.Habits = []analytics.HabitWeek{
		habitWeek(4, "Stretch", false, false, false, false, false, true, true),
		habitWeek(9, "Stretch", false, false, false, false, false, false, true),
	}

	w := newTestWatcher(&stubRefresher{report: report}, nil, watchToday.Add(9*time.Hour))
	state, err := w.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int64]DoneHabit{
		4: {ID: 4, Name: "Stretch", Streak: 2},
		9: {ID: 9, Name: "Stretch", Streak: 1},
	}, state.HabitsDone)
}

func TestSnapshot_Error(t *testing.T) {
	w := newTestWatcher(&stubRefresher{err: errors.New("db locked")}, nil, watchToday)
	_, err := w.Snapshot(context.Background())
	assert.Error(t, err)

	alerts := w.Check(context.Background())
	require.Len(t, alerts, 1)
	assert.Equal(t, "Refresh failed", alerts[0].Title)
}

func TestCheck_StreakReminderAfterHour(t *testing.T) {
	report := baseReport()
	report.Habits = []analytics.HabitWeek{habitWeek(1, "Read", false, false, false, false, true, true, false)}
	src := &stubRefresher{report: report}

	morning := newTestWatcher(src, nil, watchToday.Add(9*time.Hour))
	assert.Empty(t, morning.Check(context.Background()))

	evening := newTestWatcher(src, nil, watchToday.Add(20*time.Hour))
	alerts := evening.Check(context.Background())
	require.Len(t, alerts, 1)
	assert.Equal(t, "Streak at risk: Read", alerts[0].Title)
	assert.Equal(t, "2-day streak ends tonight unless you check it off", alerts[0].Message)
}

func TestCheck_UpcomingEventsDeduplicated(t *testing.T) {
	events := stubEvents{
		{Title: "standup", StartTime: "09:10", EndTime: "09:25"},
		{Title: "lunch", StartTime: "12:00", EndTime: "13:00"},
		{Title: "past", StartTime: "08:30", EndTime: "09:00"},
		{Title: "broken", StartTime: "nine", EndTime: "ten"},
	}
	w := newTestWatcher(&stubRefresher{report: baseReport()}, events, watchToday.Add(9*time.Hour))

	alerts := w.Check(context.Background())
	require.Len(t, alerts, 1)
	assert.Equal(t, "Starting soon: standup", alerts[0].Title)
	assert.Equal(t, "09:10-09:25", alerts[0].Message)

	// Same reminder on the next cycle is suppressed.
	assert.Empty(t, w.Check(context.Background()))
}

func TestCheck_ComparesWithPrevious(t *testing.T) {
	report := baseReport()
	src := &stubRefresher{report: report}
	w := newTestWatcher(src, nil, watchToday.Add(10*time.Hour))

	assert.Empty(t, w.Check(context.Background()))

	next := baseReport()
	next.Tasks = analytics.TaskStats{Overdue: 2}
	src.report = next
	alerts := w.Check(context.Background())
	require.Len(t, alerts, 1)
	assert.Equal(t, "Tasks overdue", alerts[0].Title)
	assert.Equal(t, 2, src.calls)
}

func TestRun_StopsOnCancel(t *testing.T) {
	w := newTestWatcher(&stubRefresher{report: baseReport()}, nil, watchToday)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Run(ctx), context.Canceled)
}

func TestNew_SetsFields(t *testing.T) {
	called := false
	fn := func(a Alert) { called = true }

	src := &stubRefresher{}
	w := New(src, nil, 10*time.Minute, fn)

	if w.interval != 10*time.Minute {
		t.Errorf("expected interval 10m, got %v", w.interval)
	}
	if w.StreakReminderHour != 18 || w.Lead != 15*time.Minute {
		t.Errorf("unexpected defaults: hour %d lead %v", w.StreakReminderHour, w.Lead)
	}
	w.alertFn(Alert{})
	if !called {
		t.Error("expected alertFn to be called")
	}
}
