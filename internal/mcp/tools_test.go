package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/model"
	"github.com/blackwell-systems/focussphere/internal/schedule"
	"github.com/blackwell-systems/focussphere/internal/store"
)

// testNow is the fixed clock used by the tool tests.
var testNow = time.Date(2026, 10, 17, 14, 30, 0, 0, time.UTC)

// newTestServer creates a Server over a fresh in-memory store.
func newTestServer(t *testing.T) (*Server, *store.DB) {
	t.Helper()
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.Now = func() time.Time { return testNow }

	engine := analytics.NewEngine(db, nil)
	engine.Now = func() time.Time { return testNow }
	return NewServer(engine, db, schedule.DefaultOptions(), nil), db
}

// callTool invokes the named tool handler and returns the typed result.
func callTool(t *testing.T, s *Server, name string, args string) (any, error) {
	t.Helper()
	for _, tool := range s.tools {
		if tool.Name == name {
			return tool.Handler(context.Background(), json.RawMessage(args))
		}
	}
	t.Fatalf("tool %q not registered", name)
	return nil, nil
}

func TestAddTools_Registered(t *testing.T) {
	s, _ := newTestServer(t)
	var names []string
	for _, tool := range s.tools {
		names = append(names, tool.Name)
		assert.True(t, json.Valid(tool.InputSchema), tool.Name)
	}
	assert.Equal(t, []string{"get_kpis", "get_series", "get_weekly_activity", "get_schedule", "get_task_stats"}, names)
}

func TestGetKPIs(t *testing.T) {
	s, db := newTestServer(t)
	ctx := context.Background()

	_, err := db.AddExpense(ctx, &model.Expense{Description: "lunch", Amount: decimal.NewFromInt(12), Date: "2026-10-16"})
	require.NoError(t, err)
	_, err = db.AddEvent(ctx, &model.ScheduleEvent{Title: "focus", StartTime: "08:00", EndTime: "09:30", Date: "2026-10-17"})
	require.NoError(t, err)

	got, err := callTool(t, s, "get_kpis", `{"days":30}`)
	require.NoError(t, err)

	res, ok := got.(KPIsResult)
	require.True(t, ok)
	assert.Equal(t, 30, res.Window.Days)
	assert.True(t, res.KPIs.TotalSpend.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 1.5, res.KPIs.FocusHours)
}

func TestWindowTools_RejectUnsupportedDays(t *testing.T) {
	s, _ := newTestServer(t)
	for _, tool := range []string{"get_kpis", "get_series"} {
		for _, args := range []string{`{"days":-3}`, `{"days":3}`, `{"days":20000}`, `{"days":"week"}`} {
			_, err := callTool(t, s, tool, args)
			assert.Error(t, err, "%s %s", tool, args)
		}
		for _, args := range []string{`{}`, `{"days":0}`, `{"days":7}`, `{"days":90}`} {
			_, err := callTool(t, s, tool, args)
			assert.NoError(t, err, "%s %s", tool, args)
		}
	}
}

func TestGetSeries_DefaultWindow(t *testing.T) {
	s, _ := newTestServer(t)
	got, err := callTool(t, s, "get_series", `{}`)
	require.NoError(t, err)

	res := got.(SeriesResult)
	assert.Len(t, res.Series.TaskCompletions, 8)
	assert.Len(t, res.Series.Productivity, 8)
	assert.Len(t, res.Series.Mood.Points, 8)
	assert.True(t, res.Series.Mood.Synthetic)
}

func TestGetWeeklyActivity(t *testing.T) {
	s, db := newTestServer(t)
	ctx := context.Background()
	id, err := db.AddHabit(ctx, "Journal")
	require.NoError(t, err)
	set, _ := model.ParseCompletionSet("2026-10-17")
	require.NoError(t, db.SetHabitCompletionDates(ctx, id, set))

	got, err := callTool(t, s, "get_weekly_activity", ``)
	require.NoError(t, err)

	days := got.(WeeklyActivityResult).Days
	require.Len(t, days, 7)
	assert.Equal(t, "Sat", days[6].Label)
	assert.Equal(t, 20.0, days[6].Score)
	assert.Equal(t, analytics.LevelLow, days[6].Level)
}

func TestGetSchedule(t *testing.T) {
	s, db := newTestServer(t)
	ctx := context.Background()
	_, err := db.AddEvent(ctx, &model.ScheduleEvent{Title: "review", StartTime: "10:00", EndTime: "10:05", Date: "2026-10-17"})
	require.NoError(t, err)

	got, err := callTool(t, s, "get_schedule", `{}`)
	require.NoError(t, err)
	res := got.(schedule.Day)
	assert.Equal(t, "2026-10-17", res.Date)
	require.Len(t, res.Blocks, 1)
	assert.Equal(t, 600.0, res.Blocks[0].Offset)
	assert.Equal(t, 20.0, res.Blocks[0].Height)
	require.NotNil(t, res.NowMarker)
	assert.Equal(t, 870.0, *res.NowMarker)
	assert.Equal(t, 13, res.ScrollHour)

	got, err = callTool(t, s, "get_schedule", `{"date":"2026-10-18"}`)
	require.NoError(t, err)
	res = got.(schedule.Day)
	assert.Empty(t, res.Blocks)
	assert.Nil(t, res.NowMarker)

	_, err = callTool(t, s, "get_schedule", `{"date":"tomorrow"}`)
	assert.Error(t, err)
}

func TestGetTaskStats(t *testing.T) {
	s, db := newTestServer(t)
	ctx := context.Background()
	_, err := db.AddTask(ctx, &model.Task{Title: "late", DueDate: "2026-10-10", Priority: model.PriorityHigh})
	require.NoError(t, err)
	_, err = db.AddTask(ctx, &model.Task{Title: "done", Completed: true})
	require.NoError(t, err)

	got, err := callTool(t, s, "get_task_stats", `{}`)
	require.NoError(t, err)
	stats := got.(analytics.TaskStats)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 1, stats.HighPriority)
	assert.Equal(t, 50, stats.PercentDone)
}
