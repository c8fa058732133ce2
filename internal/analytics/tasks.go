package analytics

import (
	"strings"
	"time"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// IsOverdue reports whether an open task's due date lies before today. Tasks
// without a due date, or with one that cannot be parsed, are never overdue.
func IsOverdue(t model.Task, today time.Time) bool {
	if t.Completed || strings.TrimSpace(t.DueDate) == "" {
		return false
	}
	due, err := calendar.ParseDate(t.DueDate)
	if err != nil {
		return false
	}
	return due.Before(calendar.DateOf(today))
}

// AnalyzeTasks computes the task list counters.
func AnalyzeTasks(tasks []model.Task, today time.Time) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
			continue
		}
		stats.Pending++
		if model.ParsePriority(string(t.Priority)) == model.PriorityHigh {
			stats.HighPriority++
		}
		if IsOverdue(t, today) {
			stats.Overdue++
		}
	}
	if stats.Total > 0 {
		stats.PercentDone = stats.Completed * 100 / stats.Total
	}
	return stats
}
