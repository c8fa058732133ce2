package analytics

import (
	"time"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// CurrentStreak counts consecutive completed days ending on today. A habit
// not completed today has a streak of zero.
func CurrentStreak(days model.CompletionSet, today time.Time) int {
	streak := 0
	for d := calendar.DateOf(today); days.Has(d); d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// MaxStreak returns the longest current streak across habits.
func MaxStreak(habits []TrackedHabit, today time.Time) int {
	best := 0
	for _, h := range habits {
		if s := CurrentStreak(h.Days, today); s > best {
			best = s
		}
	}
	return best
}
