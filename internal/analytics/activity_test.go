package analytics

import (
	"testing"

	"github.com/blackwell-systems/focussphere/internal/model"
)

func TestDailyActivityScore_EndToEnd(t *testing.T) {
	habits := []TrackedHabit{habit(1, daysAgo(0))}
	events := []model.ScheduleEvent{event(daysAgo(0), "09:00", "10:00")}

	got := DailyActivityScore(refToday, habits, events, nil)
	if got != 25 {
		t.Errorf("DailyActivityScore = %.0f, want 25", got)
	}
}

func TestDailyActivityScore_Components(t *testing.T) {
	tasks := []model.Task{
		doneTask(daysAgo(0)),
		doneTask(daysAgo(0)),
		doneTask(daysAgo(1)), // created another day
		{Title: "open", CreatedAt: daysAgo(0) + " 08:00:00"},
		{Title: "bad", Completed: true, CreatedAt: "garbage"},
	}
	got := DailyActivityScore(refToday, nil, nil, tasks)
	if got != 6 {
		t.Errorf("task component = %.0f, want 6", got)
	}
}

func TestDailyActivityScore_Saturates(t *testing.T) {
	var habits []TrackedHabit
	var events []model.ScheduleEvent
	var tasks []model.Task
	for i := 0; i < 50; i++ {
		habits = append(habits, habit(int64(i), daysAgo(0)))
		events = append(events, event(daysAgo(0), "09:00", "10:00"))
		tasks = append(tasks, doneTask(daysAgo(0)))
	}

	got := DailyActivityScore(refToday, habits, events, tasks)
	if got != 100 {
		t.Errorf("saturated score = %.0f, want 100", got)
	}
}

func TestDailyActivityScore_Bounds(t *testing.T) {
	for n := 0; n <= 12; n++ {
		var habits []TrackedHabit
		var events []model.ScheduleEvent
		var tasks []model.Task
		for i := 0; i < n; i++ {
			habits = append(habits, habit(int64(i), daysAgo(0)))
			events = append(events, event(daysAgo(0), "bad", "worse"))
			tasks = append(tasks, doneTask(daysAgo(0)))
		}
		got := DailyActivityScore(refToday, habits, events, tasks)
		if got < 0 || got > 100 {
			t.Errorf("n=%d: score %.0f outside [0,100]", n, got)
		}
	}
}

func TestWeeklyActivity(t *testing.T) {
	habits := []TrackedHabit{
		habit(1, daysAgo(0), daysAgo(3)),
		habit(2, daysAgo(0), daysAgo(3)),
		habit(3, daysAgo(0)),
	}
	events := indexEvents(
		event(daysAgo(0), "09:00", "10:00"),
		event(daysAgo(0), "11:00", "12:00"),
		event(daysAgo(3), "11:00", "12:00"),
	)

	week := WeeklyActivity(refToday, habits, events, nil)
	if len(week) != 7 {
		t.Fatalf("len = %d, want 7", len(week))
	}
	if week[0].Date != daysAgo(6) || week[6].Date != daysAgo(0) {
		t.Errorf("range %s..%s, want %s..%s", week[0].Date, week[6].Date, daysAgo(6), daysAgo(0))
	}
	// 2026-10-17 is a Saturday.
	if week[6].Label != "Sat" {
		t.Errorf("today label = %q, want Sat", week[6].Label)
	}

	today := week[6]
	if today.Score != 70 || today.Level != LevelMedium {
		t.Errorf("today = %.0f/%s, want 70/medium", today.Score, today.Level)
	}
	if week[3].Score != 45 || week[3].Level != LevelMedium {
		t.Errorf("3 days ago = %.0f/%s, want 45/medium", week[3].Score, week[3].Level)
	}
	if week[1].Score != 0 || week[1].Level != LevelLow {
		t.Errorf("empty day = %.0f/%s, want 0/low", week[1].Score, week[1].Level)
	}
}

func TestActivityLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, LevelHigh},
		{71, LevelHigh},
		{70, LevelMedium},
		{41, LevelMedium},
		{40, LevelLow},
		{0, LevelLow},
	}
	for _, tt := range tests {
		if got := activityLevel(tt.score); got != tt.want {
			t.Errorf("activityLevel(%.0f) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
