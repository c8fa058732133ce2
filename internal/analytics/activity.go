package analytics

import (
	"time"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// Daily activity weights and caps. The score is the sum of three
// independently capped parts and therefore always lies in [0, 100].
const (
	activityHabitPoints = 20
	activityHabitCap    = 60
	activityEventPoints = 5
	activityEventCap    = 25
	activityTaskPoints  = 3
	activityTaskCap     = 15
)

// DailyActivityScore scores one day from completed habits, scheduled events,
// and completed tasks. Tasks are attributed to their creation date because no
// completion date is stored.
func DailyActivityScore(date time.Time, habits []TrackedHabit, events []model.ScheduleEvent, tasks []model.Task) float64 {
	date = calendar.DateOf(date)

	score := min(activityHabitCap, habitsDoneOn(habits, date)*activityHabitPoints)
	score += min(activityEventCap, len(events)*activityEventPoints)
	score += min(activityTaskCap, tasksCompletedOn(tasks, date)*activityTaskPoints)

	return float64(score)
}

// WeeklyActivity scores the seven days ending on today, oldest first.
func WeeklyActivity(today time.Time, habits []TrackedHabit, events EventIndex, tasks []model.Task) []DayActivity {
	today = calendar.DateOf(today)
	days := calendar.DateRange(today.AddDate(0, 0, -6), today)

	out := make([]DayActivity, 0, len(days))
	for _, d := range days {
		score := DailyActivityScore(d, habits, events.On(d), tasks)
		out = append(out, DayActivity{
			Date:  calendar.FormatDate(d),
			Label: calendar.DayAbbrev(d),
			Score: score,
			Level: activityLevel(score),
		})
	}
	return out
}

func activityLevel(score float64) string {
	switch {
	case score > 70:
		return LevelHigh
	case score > 40:
		return LevelMedium
	default:
		return LevelLow
	}
}

// habitsDoneOn counts habits whose completion set contains d.
func habitsDoneOn(habits []TrackedHabit, d time.Time) int {
	n := 0
	for _, h := range habits {
		if h.Days.Has(d) {
			n++
		}
	}
	return n
}

// tasksCompletedOn counts completed tasks created on d.
func tasksCompletedOn(tasks []model.Task, d time.Time) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		created, err := calendar.ParseTimestampDate(t.CreatedAt)
		if err != nil {
			continue
		}
		if created.Equal(d) {
			n++
		}
	}
	return n
}
