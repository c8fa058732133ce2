package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// TrackHabits parses each habit's stored completion dates. Malformed entries
// are dropped from the set and returned as issues.
func TrackHabits(habits []model.Habit) ([]TrackedHabit, []error) {
	out := make([]TrackedHabit, 0, len(habits))
	var issues []error
	for _, h := range habits {
		days, errs := model.ParseCompletionSet(h.CompletedDays)
		for _, err := range errs {
			issues = append(issues, fmt.Errorf("habit %d (%s): %w", h.ID, h.Name, err))
		}
		out = append(out, TrackedHabit{Habit: h, Days: days})
	}
	return out, issues
}

// HabitWeeks builds each habit's seven-day grid ending on today.
func HabitWeeks(habits []TrackedHabit, today time.Time) []HabitWeek {
	today = calendar.DateOf(today)
	dates := calendar.DateRange(today.AddDate(0, 0, -6), today)

	out := make([]HabitWeek, 0, len(habits))
	for _, h := range habits {
		week := HabitWeek{
			HabitID: h.ID,
			Name:    h.Name,
			Streak:  CurrentStreak(h.Days, today),
			Days:    make([]HabitDay, 0, len(dates)),
		}
		for _, d := range dates {
			week.Days = append(week.Days, HabitDay{
				Date:       calendar.FormatDate(d),
				Label:      calendar.DayShortLabel(d),
				DayOfMonth: d.Day(),
				Done:       h.Days.Has(d),
			})
		}
		out = append(out, week)
	}
	return out
}

// ToggleHabitDay flips one date in the habit's completion set and persists
// the whole set with a single replace. It returns the new set.
func ToggleHabitDay(ctx context.Context, w HabitWriter, h TrackedHabit, day time.Time) (model.CompletionSet, error) {
	next := h.Days.Toggle(calendar.DateOf(day))
	if err := w.SetHabitCompletionDates(ctx, h.ID, next); err != nil {
		return nil, fmt.Errorf("updating habit %d: %w", h.ID, err)
	}
	return next, nil
}
