package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/output"
)

// dashboardOutput is the JSON form of the dashboard.
type dashboardOutput struct {
	Greeting string                  `json:"greeting"`
	Date     string                  `json:"date"`
	Theme    string                  `json:"theme"`
	Summary  analytics.Summary       `json:"summary"`
	Weekly   []analytics.DayActivity `json:"weekly"`
	Tasks    analytics.TaskStats     `json:"tasks"`
	Habits   []analytics.HabitWeek   `json:"habits"`
	Budget   analytics.BudgetStatus  `json:"budget"`
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	report, err := ws.engine.Refresh(ws.ctx, analytics.DefaultWindowDays)
	if err != nil {
		return err
	}

	now := ws.engine.Now()
	if flagJSON {
		return writeJSON(ws.out, dashboardOutput{
			Greeting: ws.state.Greeting(now),
			Date:     now.Format("2006-01-02"),
			Theme:    ws.state.ThemeName(),
			Summary:  report.Summary,
			Weekly:   report.Weekly,
			Tasks:    report.Tasks,
			Habits:   report.Habits,
			Budget:   report.Budget,
		})
	}

	out := ws.out
	fmt.Fprintln(out, output.StyleBold.Render(ws.state.Greeting(now)))
	fmt.Fprintln(out, output.StyleMuted.Render(now.Format("Monday, January 2, 2006")))
	fmt.Fprintln(out)

	s := report.Summary
	fmt.Fprintln(out, output.KeyValue("Pending tasks", fmt.Sprintf("%d", s.PendingTasks)))
	fmt.Fprintln(out, output.KeyValue("Total spent", "$"+s.TotalSpent.StringFixed(2)))
	fmt.Fprintln(out, output.KeyValue("Events today", fmt.Sprintf("%d", s.EventsToday)))
	mood := s.LatestMood
	if mood == "" {
		mood = "not logged"
	}
	fmt.Fprintln(out, output.KeyValue("Mood", mood))

	fmt.Fprintln(out, output.Section("Weekly Activity"))
	renderWeekly(out, report.Weekly)

	fmt.Fprintln(out, output.Section("Habits"))
	renderHabitGrid(out, report.Habits)

	fmt.Fprintln(out, output.Section("Tasks"))
	renderTaskStats(out, report.Tasks)

	if len(report.Issues) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, output.StyleWarning.Render(
			fmt.Sprintf("%d stored values could not be read (run with --verbose for details)", len(report.Issues))))
	}
	return nil
}

// renderWeekly prints one score bar per day of the weekly overview.
func renderWeekly(out io.Writer, days []analytics.DayActivity) {
	for _, d := range days {
		fmt.Fprintf(out, " %-4s %s %s\n",
			d.Label,
			output.ScoreBar(d.Score, 20),
			output.LevelStyle(d.Level).Render(fmt.Sprintf("%3.0f", d.Score)))
	}
}

// renderHabitGrid prints each habit's seven-day grid with its streak.
func renderHabitGrid(out io.Writer, weeks []analytics.HabitWeek) {
	if len(weeks) == 0 {
		fmt.Fprintln(out, output.StyleMuted.Render(" No habits yet. Add one with 'focussphere habit add <name>'."))
		return
	}
	for _, h := range weeks {
		var cells []string
		for _, d := range h.Days {
			if d.Done {
				cells = append(cells, output.StyleSuccess.Render("●"))
			} else {
				cells = append(cells, output.StyleMuted.Render("○"))
			}
		}
		fmt.Fprintf(out, " %-4d %-20s %s  %s\n",
			h.HabitID, h.Name, strings.Join(cells, " "),
			output.StyleValue.Render(fmt.Sprintf("%d day streak", h.Streak)))
	}
}

// renderTaskStats prints the task summary and completion bar.
func renderTaskStats(out io.Writer, t analytics.TaskStats) {
	fmt.Fprintln(out, output.KeyValue("Total", fmt.Sprintf("%d", t.Total)))
	fmt.Fprintln(out, output.KeyValue("Completed", fmt.Sprintf("%d", t.Completed)))
	fmt.Fprintln(out, output.KeyValue("Pending", fmt.Sprintf("%d", t.Pending)))
	fmt.Fprintln(out, output.KeyValue("High priority", fmt.Sprintf("%d", t.HighPriority)))
	if t.Overdue > 0 {
		fmt.Fprintln(out, output.KeyValue("Overdue", output.StyleError.Render(fmt.Sprintf("%d", t.Overdue))))
	}
	fmt.Fprintf(out, " %s %d%%\n", output.ScoreBar(float64(t.PercentDone), 20), t.PercentDone)
}
