package analytics

import (
	"reflect"
	"testing"

	"github.com/blackwell-systems/focussphere/internal/model"
)

func TestSeries_LengthIsDaysPlusOne(t *testing.T) {
	tasks := []model.Task{doneTask(daysAgo(3))}
	habits := []TrackedHabit{habit(1, daysAgo(5))}
	events := indexEvents(event(daysAgo(2), "09:00", "10:00"))

	for _, days := range WindowChoices {
		w := NewWindow(refToday, days)
		s := BuildSeries(w, habits, events, tasks, "Good")

		for name, pts := range map[string][]SeriesPoint{
			"tasks":        s.TaskCompletions,
			"productivity": s.Productivity,
			"mood":         s.Mood.Points,
		} {
			if len(pts) != days+1 {
				t.Errorf("days=%d %s: len = %d, want %d", days, name, len(pts), days+1)
				continue
			}
			if pts[0].Date != daysAgo(days) || pts[len(pts)-1].Date != daysAgo(0) {
				t.Errorf("days=%d %s: range %s..%s", days, name, pts[0].Date, pts[len(pts)-1].Date)
			}
		}
	}
}

func TestTaskCompletionSeries(t *testing.T) {
	w := NewWindow(refToday, 7)
	tasks := []model.Task{
		doneTask(daysAgo(0)),
		doneTask(daysAgo(0)),
		doneTask(daysAgo(2)),
		doneTask(daysAgo(30)), // outside window
		{Title: "open", CreatedAt: daysAgo(1) + " 10:00:00"},
	}

	pts := TaskCompletionSeries(w, tasks)
	got := map[string]float64{}
	var total float64
	for _, p := range pts {
		got[p.Date] = p.Value
		total += p.Value
	}
	if got[daysAgo(0)] != 2 || got[daysAgo(2)] != 1 || got[daysAgo(1)] != 0 {
		t.Errorf("unexpected counts: %v", got)
	}
	if total != 3 {
		t.Errorf("total = %.0f, want 3", total)
	}
}

func TestProductivitySeries_Uncapped(t *testing.T) {
	w := NewWindow(refToday, 7)
	var habits []TrackedHabit
	for i := 0; i < 5; i++ {
		habits = append(habits, habit(int64(i), daysAgo(0)))
	}
	var evs []model.ScheduleEvent
	for i := 0; i < 4; i++ {
		evs = append(evs, event(daysAgo(0), "09:00", "10:00"))
	}

	pts := ProductivitySeries(w, habits, indexEvents(evs...))
	last := pts[len(pts)-1]
	if last.Value != 140 {
		t.Errorf("today = %.0f, want 140 (5*20 + 4*10)", last.Value)
	}
	if pts[0].Value != 0 {
		t.Errorf("first day = %.0f, want 0", pts[0].Value)
	}
}

func TestSeriesPoint_Labels(t *testing.T) {
	// A window crossing the year boundary keeps full dates apart from labels.
	w := NewWindow(refToday.AddDate(0, 0, 80), 7) // 2027-01-05
	pts := TaskCompletionSeries(w, nil)
	if pts[0].Date != "2026-12-29" || pts[0].Label != "12-29" {
		t.Errorf("first = %+v", pts[0])
	}
	if pts[len(pts)-1].Date != "2027-01-05" || pts[len(pts)-1].Label != "01-05" {
		t.Errorf("last = %+v", pts[len(pts)-1])
	}
}

func TestMoodSeries_Deterministic(t *testing.T) {
	w := NewWindow(refToday, 30)
	a := MoodSeries(w, "Tired")
	b := MoodSeries(w, "Tired")
	if !reflect.DeepEqual(a, b) {
		t.Error("two calls with identical input produced different series")
	}
	if !a.Synthetic {
		t.Error("mood series must be flagged synthetic")
	}
	if a.Base != 2 {
		t.Errorf("Base = %d, want 2", a.Base)
	}
}

func TestMoodSeries_Range(t *testing.T) {
	w := NewWindow(refToday, 90)
	for _, mood := range []string{"Awesome", "Good", "Tired", "Stressed", "", "unknown"} {
		trend := MoodSeries(w, mood)
		for _, p := range trend.Points {
			if p.Value < 1 || p.Value > 4 {
				t.Fatalf("mood %q: value %.0f outside [1,4]", mood, p.Value)
			}
			if d := p.Value - float64(trend.Base); d < -1 || d > 1 {
				t.Fatalf("mood %q: value %.0f more than 1 from base %d", mood, p.Value, trend.Base)
			}
		}
	}
}

func TestMoodSeries_AbsentMoodDefaultsToGood(t *testing.T) {
	trend := MoodSeries(NewWindow(refToday, 7), "")
	if trend.Base != 3 {
		t.Errorf("Base = %d, want 3", trend.Base)
	}
}

func TestNewWindow_Default(t *testing.T) {
	w := NewWindow(refToday, 0)
	if w.Days != DefaultWindowDays {
		t.Errorf("Days = %d, want %d", w.Days, DefaultWindowDays)
	}
	if !w.Contains(refToday) || w.Contains(refToday.AddDate(0, 0, 1)) || !w.Contains(w.Start) {
		t.Error("Contains boundaries wrong")
	}
}
