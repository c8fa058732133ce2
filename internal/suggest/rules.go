package suggest

import (
	"fmt"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// eveningHour is when at-risk streaks become urgent.
const eveningHour = 18

// OverdueTasks suggests clearing tasks whose due date has passed.
func OverdueTasks(ctx *AnalysisContext) []Suggestion {
	n := ctx.Report.Tasks.Overdue
	if n == 0 {
		return nil
	}
	return []Suggestion{{
		Category: "tasks",
		Priority: PriorityHigh,
		Title:    fmt.Sprintf("Resolve %d overdue task(s)", n),
		Description: fmt.Sprintf(
			"%d open task(s) are past their due date. Finish them, move the due date, "+
				"or delete the ones that no longer matter.", n),
		ImpactScore: ComputeImpact(n, 1.0, 10.0, 5.0),
	}}
}

// HighPriorityBacklog flags a pile-up of open high-priority tasks.
func HighPriorityBacklog(ctx *AnalysisContext) []Suggestion {
	n := ctx.Report.Tasks.HighPriority
	if n < 3 {
		return nil
	}
	return []Suggestion{{
		Category: "tasks",
		Priority: PriorityMedium,
		Title:    "Too many high-priority tasks",
		Description: fmt.Sprintf(
			"%d pending tasks are marked High. When everything is urgent nothing is; "+
				"demote the ones that can wait.", n),
		ImpactScore: ComputeImpact(n, 0.6, 10.0, 10.0),
	}}
}

// BudgetPressure warns when spending nears or passes the monthly budget.
func BudgetPressure(ctx *AnalysisContext) []Suggestion {
	b := ctx.Report.Budget
	switch b.Level {
	case analytics.BudgetOver:
		return []Suggestion{{
			Category: "budget",
			Priority: PriorityCritical,
			Title:    "Budget nearly spent",
			Description: fmt.Sprintf(
				"You have spent $%s of $%s (%.0f%%). Review the largest categories before adding more.",
				b.Spent.StringFixed(2), b.Budget.StringFixed(2), b.Ratio*100),
			ImpactScore: ComputeImpact(1, 1.0, 60.0, 5.0),
		}}
	case analytics.BudgetWarning:
		return []Suggestion{{
			Category: "budget",
			Priority: PriorityMedium,
			Title:    "Budget past halfway",
			Description: fmt.Sprintf(
				"You have spent %.0f%% of the monthly budget.", b.Ratio*100),
			ImpactScore: ComputeImpact(1, b.Ratio, 30.0, 5.0),
		}}
	}
	return nil
}

// StreakAtRisk reminds about habits done yesterday but not yet today. The
// reminder becomes urgent in the evening.
func StreakAtRisk(ctx *AnalysisContext) []Suggestion {
	urgency, priority := 0.3, PriorityLow
	if ctx.Now.Hour() >= eveningHour {
		urgency, priority = 1.0, PriorityHigh
	}

	var suggestions []Suggestion
	for _, h := range ctx.Report.Habits {
		n := len(h.Days)
		if n < 2 || h.Days[n-1].Done || !h.Days[n-2].Done {
			continue
		}
		streak := 0
		for i := n - 2; i >= 0 && h.Days[i].Done; i-- {
			streak++
		}
		suggestions = append(suggestions, Suggestion{
			Category:    "habits",
			Priority:    priority,
			Title:       fmt.Sprintf("Keep your %s streak", h.Name),
			Description: fmt.Sprintf("%q was done %d day(s) in a row up to yesterday but not yet today.", h.Name, streak),
			ImpactScore: ComputeImpact(streak, urgency, 5.0, 1.0),
		})
	}
	return suggestions
}

// LowActivityWeek notices a week where most days scored low.
func LowActivityWeek(ctx *AnalysisContext) []Suggestion {
	low := 0
	for _, d := range ctx.Report.Weekly {
		if d.Level == analytics.LevelLow {
			low++
		}
	}
	if len(ctx.Report.Weekly) == 0 || low*2 <= len(ctx.Report.Weekly) {
		return nil
	}
	return []Suggestion{{
		Category: "activity",
		Priority: PriorityMedium,
		Title:    "Quiet week",
		Description: fmt.Sprintf(
			"%d of the last %d days had low activity. Pick one habit to check off daily "+
				"or schedule a focus block.", low, len(ctx.Report.Weekly)),
		ImpactScore: ComputeImpact(low, 0.5, 15.0, 10.0),
	}}
}

// EmptySchedule suggests time-blocking when tasks are pending and nothing is
// scheduled today.
func EmptySchedule(ctx *AnalysisContext) []Suggestion {
	s := ctx.Report.Summary
	if s.EventsToday > 0 || s.PendingTasks == 0 {
		return nil
	}
	return []Suggestion{{
		Category: "schedule",
		Priority: PriorityLow,
		Title:    "Block time for pending tasks",
		Description: fmt.Sprintf(
			"Nothing is scheduled today while %d task(s) are pending. "+
				"Add an event with 'focussphere event add'.", s.PendingTasks),
		ImpactScore: ComputeImpact(s.PendingTasks, 0.3, 10.0, 5.0),
	}}
}

// MoodCheckIn asks for a first mood entry, or suggests a break after a low one.
func MoodCheckIn(ctx *AnalysisContext) []Suggestion {
	latest := ctx.Report.Summary.LatestMood
	if latest == "" {
		return []Suggestion{{
			Category:    "mood",
			Priority:    PriorityLow,
			Title:       "Log your mood",
			Description: "No mood has been logged yet. The mood trend is built around your latest entry.",
			ImpactScore: ComputeImpact(1, 0.2, 2.0, 1.0),
		}}
	}
	mood, _ := model.ParseMood(latest)
	if mood != model.MoodTired && mood != model.MoodStressed {
		return nil
	}
	return []Suggestion{{
		Category:    "mood",
		Priority:    PriorityMedium,
		Title:       "Take a break",
		Description: fmt.Sprintf("Your latest mood is %s. A short break or lighter schedule may help.", mood),
		ImpactScore: ComputeImpact(1, 0.8, 15.0, 5.0),
	}}
}

// UnreadableRecords points at stored values the analytics had to skip.
func UnreadableRecords(ctx *AnalysisContext) []Suggestion {
	n := len(ctx.Report.Issues)
	if n == 0 {
		return nil
	}
	return []Suggestion{{
		Category: "data",
		Priority: PriorityMedium,
		Title:    "Fix unreadable records",
		Description: fmt.Sprintf(
			"%d stored date or time value(s) could not be read and were left out of the analytics. "+
				"Run with --verbose to list them.", n),
		ImpactScore: ComputeImpact(n, 0.5, 5.0, 5.0),
	}}
}
