package watcher

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/blackwell-systems/focussphere/internal/analytics"
)

// Alert levels, most severe first.
const (
	LevelCritical = "critical"
	LevelWarning  = "warning"
	LevelInfo     = "info"
)

// Compare returns the alerts raised by the transition from prev to curr,
// most severe first. A date change reports the new day and skips the
// counters that restart with it.
func Compare(prev, curr *WatchState) []Alert {
	var alerts []Alert
	raise := func(level, title, format string, args ...any) {
		alerts = append(alerts, Alert{Level: level, Title: title, Message: fmt.Sprintf(format, args...), Time: curr.Timestamp})
	}
	spent := func() (string, float64) { return curr.Spent.StringFixed(2), curr.BudgetRatio * 100 }

	switch {
	case curr.BudgetLevel == analytics.BudgetOver && prev.BudgetLevel != analytics.BudgetOver:
		s, pct := spent()
		raise(LevelCritical, "Budget nearly spent", "Spent %s, %.0f%% of the monthly budget", s, pct)
	case curr.BudgetLevel == analytics.BudgetWarning && prev.BudgetLevel == analytics.BudgetOK:
		s, pct := spent()
		raise(LevelWarning, "Budget past halfway", "Spent %s, %.0f%% of the monthly budget", s, pct)
	}

	if curr.OverdueTasks > prev.OverdueTasks {
		raise(LevelWarning, "Tasks overdue", "%d task(s) past their due date (was %d)", curr.OverdueTasks, prev.OverdueTasks)
	}

	if curr.Date != prev.Date {
		raise(LevelInfo, "New day", "%d task(s) pending for %s", curr.PendingTasks, curr.Date)
		return alerts
	}

	if curr.CompletedTasks > prev.CompletedTasks {
		raise(LevelInfo, "Task completed", "%d done, %d still pending", curr.CompletedTasks, curr.PendingTasks)
	}
	for _, h := range newlyDone(prev, curr) {
		raise(LevelInfo, "Habit done: "+h.Name, "Streak is now %d day(s)", h.Streak)
	}
	return alerts
}

// newlyDone returns habits done today in curr but not in prev, ordered by
// name and then id.
func newlyDone(prev, curr *WatchState) []DoneHabit {
	var done []DoneHabit
	for id, h := range curr.HabitsDone {
		if _, ok := prev.HabitsDone[id]; !ok {
			done = append(done, h)
		}
	}
	slices.SortFunc(done, func(a, b DoneHabit) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return done
}
