package suggest

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/focussphere/internal/analytics"
)

var morning = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
var evening = time.Date(2026, 10, 17, 19, 30, 0, 0, time.UTC)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func week(done ...bool) []analytics.HabitDay {
	days := make([]analytics.HabitDay, len(done))
	for i, d := range done {
		days[i] = analytics.HabitDay{Done: d}
	}
	return days
}

func TestOverdueTasks(t *testing.T) {
	ctx := &AnalysisContext{Report: &analytics.Report{Tasks: analytics.TaskStats{Overdue: 2}}}
	got := OverdueTasks(ctx)
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0].Priority != PriorityHigh {
		t.Errorf("Priority = %d, want %d", got[0].Priority, PriorityHigh)
	}
	if !approx(got[0].ImpactScore, 4.0) {
		t.Errorf("ImpactScore = %v, want 4", got[0].ImpactScore)
	}

	ctx.Report.Tasks.Overdue = 0
	if got := OverdueTasks(ctx); len(got) != 0 {
		t.Errorf("no overdue tasks: got %d suggestions", len(got))
	}
}

func TestHighPriorityBacklog_Threshold(t *testing.T) {
	tests := []struct {
		high int
		want int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{8, 1},
	}
	for _, tt := range tests {
		ctx := &AnalysisContext{Report: &analytics.Report{Tasks: analytics.TaskStats{HighPriority: tt.high}}}
		if got := HighPriorityBacklog(ctx); len(got) != tt.want {
			t.Errorf("HighPriority=%d: got %d suggestions, want %d", tt.high, len(got), tt.want)
		}
	}
}

func TestBudgetPressure(t *testing.T) {
	over := &AnalysisContext{Report: &analytics.Report{Budget: analytics.BudgetStatus{
		Level: analytics.BudgetOver, Spent: decimal.NewFromInt(900), Budget: decimal.NewFromInt(1000), Ratio: 0.9,
	}}}
	got := BudgetPressure(over)
	if len(got) != 1 || got[0].Priority != PriorityCritical {
		t.Fatalf("over budget: got %+v", got)
	}
	if !approx(got[0].ImpactScore, 12.0) {
		t.Errorf("ImpactScore = %v, want 12", got[0].ImpactScore)
	}

	warn := &AnalysisContext{Report: &analytics.Report{Budget: analytics.BudgetStatus{
		Level: analytics.BudgetWarning, Ratio: 0.6,
	}}}
	got = BudgetPressure(warn)
	if len(got) != 1 || got[0].Priority != PriorityMedium {
		t.Fatalf("warning: got %+v", got)
	}
	if !approx(got[0].ImpactScore, 3.6) {
		t.Errorf("ImpactScore = %v, want 3.6", got[0].ImpactScore)
	}

	ok := &AnalysisContext{Report: &analytics.Report{Budget: analytics.BudgetStatus{Level: analytics.BudgetOK}}}
	if got := BudgetPressure(ok); len(got) != 0 {
		t.Errorf("ok budget: got %d suggestions", len(got))
	}
}

func TestStreakAtRisk_EveningIsUrgent(t *testing.T) {
	report := &analytics.Report{Habits: []analytics.HabitWeek{
		{Name: "Read", Days: week(false, false, false, true, true, true, false)},
		{Name: "Run", Days: week(true, true, true, true, true, true, true)},
		{Name: "Swim", Days: week(false, false, false, false, false, false, false)},
	}}

	got := StreakAtRisk(&AnalysisContext{Report: report, Now: evening})
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0].Priority != PriorityHigh {
		t.Errorf("evening Priority = %d, want %d", got[0].Priority, PriorityHigh)
	}
	if !approx(got[0].ImpactScore, 15.0) {
		t.Errorf("evening ImpactScore = %v, want 15", got[0].ImpactScore)
	}

	got = StreakAtRisk(&AnalysisContext{Report: report, Now: morning})
	if len(got) != 1 || got[0].Priority != PriorityLow {
		t.Fatalf("morning: got %+v", got)
	}
	if !approx(got[0].ImpactScore, 4.5) {
		t.Errorf("morning ImpactScore = %v, want 4.5", got[0].ImpactScore)
	}
}

func TestLowActivityWeek(t *testing.T) {
	days := func(levels ...string) []analytics.DayActivity {
		out := make([]analytics.DayActivity, len(levels))
		for i, l := range levels {
			out[i] = analytics.DayActivity{Level: l}
		}
		return out
	}
	low, med := analytics.LevelLow, analytics.LevelMedium

	quiet := &AnalysisContext{Report: &analytics.Report{Weekly: days(low, low, low, low, med, med, med)}}
	if got := LowActivityWeek(quiet); len(got) != 1 {
		t.Errorf("4 of 7 low: got %d suggestions, want 1", len(got))
	}
	busy := &AnalysisContext{Report: &analytics.Report{Weekly: days(low, low, low, med, med, med, med)}}
	if got := LowActivityWeek(busy); len(got) != 0 {
		t.Errorf("3 of 7 low: got %d suggestions, want 0", len(got))
	}
	empty := &AnalysisContext{Report: &analytics.Report{}}
	if got := LowActivityWeek(empty); len(got) != 0 {
		t.Errorf("no days: got %d suggestions, want 0", len(got))
	}
}

func TestEmptySchedule(t *testing.T) {
	ctx := &AnalysisContext{Report: &analytics.Report{Summary: analytics.Summary{PendingTasks: 3}}}
	if got := EmptySchedule(ctx); len(got) != 1 {
		t.Errorf("pending tasks, no events: got %d suggestions, want 1", len(got))
	}
	ctx.Report.Summary.EventsToday = 1
	if got := EmptySchedule(ctx); len(got) != 0 {
		t.Errorf("event scheduled: got %d suggestions, want 0", len(got))
	}
}

func TestMoodCheckIn(t *testing.T) {
	tests := []struct {
		latest string
		want   string
	}{
		{"", "Log your mood"},
		{"Stressed", "Take a break"},
		{"tired", "Take a break"},
		{"Good", ""},
		{"Awesome", ""},
	}
	for _, tt := range tests {
		ctx := &AnalysisContext{Report: &analytics.Report{Summary: analytics.Summary{LatestMood: tt.latest}}}
		got := MoodCheckIn(ctx)
		switch {
		case tt.want == "" && len(got) != 0:
			t.Errorf("mood %q: got %+v, want none", tt.latest, got)
		case tt.want != "" && (len(got) != 1 || got[0].Title != tt.want):
			t.Errorf("mood %q: got %+v, want %q", tt.latest, got, tt.want)
		}
	}
}

func TestUnreadableRecords(t *testing.T) {
	ctx := &AnalysisContext{Report: &analytics.Report{Issues: []string{"expense 3: bad date"}}}
	if got := UnreadableRecords(ctx); len(got) != 1 || got[0].Category != "data" {
		t.Errorf("got %+v", got)
	}
}

func TestComputeImpact_ZeroEffort(t *testing.T) {
	if got := ComputeImpact(10, 1.0, 5.0, 0); got != 0 {
		t.Errorf("ComputeImpact with zero effort = %v, want 0", got)
	}
}
