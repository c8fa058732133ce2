package analytics

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// SummarizeKPIs computes the headline numbers for a window.
//
// The completed-task count is all-time while the other three figures are
// windowed.
func SummarizeKPIs(w Window, tasks []model.Task, habits []TrackedHabit, expenses []model.Expense, events EventIndex) KPIs {
	var k KPIs

	for _, t := range tasks {
		if t.Completed {
			k.CompletedTasks++
		}
	}

	k.MaxHabitStreak = MaxStreak(habits, w.Today)
	k.TotalSpend, k.MalformedExpenses = spendInWindow(w, expenses)
	k.FocusHours, k.MalformedEvents = scheduledHours(w, events)

	return k
}

// spendInWindow sums expenses dated inside the window. Negative amounts are
// counted as zero.
func spendInWindow(w Window, expenses []model.Expense) (decimal.Decimal, int) {
	total := decimal.Zero
	malformed := 0
	for _, e := range expenses {
		if strings.TrimSpace(e.Date) == "" {
			malformed++
			continue
		}
		d, err := calendar.ParseDate(e.Date)
		if err != nil {
			malformed++
			continue
		}
		if !w.Contains(d) {
			continue
		}
		total = total.Add(nonNegative(e.Amount))
	}
	return total, malformed
}

// scheduledHours sums event durations over each window date. Events with an
// unparseable time are skipped; events ending at or before their start add
// nothing.
func scheduledHours(w Window, events EventIndex) (float64, int) {
	minutes := 0
	malformed := 0
	for _, d := range w.Dates() {
		for _, ev := range events.On(d) {
			start, err := calendar.ParseClockMinutes(ev.StartTime)
			if err != nil {
				malformed++
				continue
			}
			end, err := calendar.ParseClockMinutes(ev.EndTime)
			if err != nil {
				malformed++
				continue
			}
			if end > start {
				minutes += end - start
			}
		}
	}
	return float64(minutes) / 60.0, malformed
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
