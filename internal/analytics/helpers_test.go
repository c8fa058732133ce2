package analytics

import (
	"time"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// refToday is the fixed "today" used throughout the package tests.
var refToday = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

// daysAgo returns the ISO date n days before refToday.
func daysAgo(n int) string {
	return calendar.FormatDate(refToday.AddDate(0, 0, -n))
}

func habit(id int64, days ...string) TrackedHabit {
	raw := ""
	for i, d := range days {
		if i > 0 {
			raw += ","
		}
		raw += d
	}
	set, _ := model.ParseCompletionSet(raw)
	return TrackedHabit{Habit: model.Habit{ID: id, Name: "habit", CompletedDays: raw}, Days: set}
}

func event(date, start, end string) model.ScheduleEvent {
	return model.ScheduleEvent{Title: "block", StartTime: start, EndTime: end, Date: date}
}

func indexEvents(evs ...model.ScheduleEvent) EventIndex {
	idx := make(EventIndex)
	for _, ev := range evs {
		idx[ev.Date] = append(idx[ev.Date], ev)
	}
	return idx
}

func doneTask(createdDate string) model.Task {
	return model.Task{Title: "t", Completed: true, Priority: model.PriorityMedium, CreatedAt: createdDate + " 09:15:00"}
}
