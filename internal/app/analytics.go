package app

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/output"
)

var analyticsDays int

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show KPIs and trends over a 7, 30 or 90 day window",
	Long: `Compute headline KPIs and the task completion, productivity and mood
series for the chosen window. The window always ends today and includes
both end dates, so --days 7 covers eight calendar days.

Examples:
  focussphere analytics              # default window from config (7 days)
  focussphere analytics --days 30
  focussphere analytics --days 90 --json`,
	RunE: runAnalytics,
}

func init() {
	analyticsCmd.Flags().IntVar(&analyticsDays, "days", 0, "Window length in days: 7, 30 or 90 (default from config)")
	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	days := analyticsDays
	if days == 0 {
		days = ws.cfg.AnalysisDays
	}
	if !slices.Contains(analytics.WindowChoices, days) {
		return fmt.Errorf("--days must be one of %v, got %d", analytics.WindowChoices, days)
	}

	report, err := ws.engine.Refresh(ws.ctx, days)
	if err != nil {
		return err
	}
	if flagJSON {
		return writeJSON(ws.out, report)
	}
	renderAnalytics(ws.out, report)
	return nil
}

func renderAnalytics(out io.Writer, r *analytics.Report) {
	fmt.Fprintln(out, output.StyleBold.Render(fmt.Sprintf("Analytics: last %d days", r.Window.Days)))
	fmt.Fprintln(out, output.StyleMuted.Render(fmt.Sprintf("%s to %s",
		r.Window.Start.Format("2006-01-02"), r.Window.Today.Format("2006-01-02"))))

	fmt.Fprintln(out, output.Section("KPIs"))
	k := r.KPIs
	fmt.Fprintln(out, output.KeyValue("Tasks completed", fmt.Sprintf("%d", k.CompletedTasks)))
	fmt.Fprintln(out, output.KeyValue("Best habit streak", fmt.Sprintf("%d days", k.MaxHabitStreak)))
	fmt.Fprintln(out, output.KeyValue("Spent in window", "$"+k.TotalSpend.StringFixed(2)))
	fmt.Fprintln(out, output.KeyValue("Focus hours", fmt.Sprintf("%.1f", k.FocusHours)))
	if k.MalformedExpenses > 0 || k.MalformedEvents > 0 {
		fmt.Fprintln(out, output.StyleWarning.Render(fmt.Sprintf(
			" skipped %d expenses and %d events with unreadable dates or times",
			k.MalformedExpenses, k.MalformedEvents)))
	}

	fmt.Fprintln(out, output.Section("Trends"))
	renderSeries(out, "Task completions", r.Series.TaskCompletions)
	renderSeries(out, "Productivity", r.Series.Productivity)
	renderSeries(out, "Mood", r.Series.Mood.Points)
	if r.Series.Mood.Synthetic {
		fmt.Fprintln(out, output.StyleMuted.Render(" mood trend is simulated around the latest logged mood"))
	}

	fmt.Fprintln(out, output.Section("Weekly Activity"))
	tbl := output.NewTable("Day", "Date", "Score", "Level").AlignRight(2)
	for _, d := range r.Weekly {
		tbl.AddRow(d.Label, d.Date, fmt.Sprintf("%.0f", d.Score), output.LevelStyle(d.Level).Render(d.Level))
	}
	tbl.Fprint(out)

	if len(r.Issues) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, output.StyleWarning.Render(
			fmt.Sprintf("%d stored values could not be read (run with --verbose for details)", len(r.Issues))))
	}
}

// renderSeries prints a sparkline with the last value and its change from
// the first.
func renderSeries(out io.Writer, label string, points []analytics.SeriesPoint) {
	if len(points) == 0 {
		return
	}
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	last := values[len(values)-1]
	fmt.Fprintf(out, " %-18s %s %s %.0f\n",
		label, output.Sparkline(values), output.TrendArrow(last-values[0], true), last)
}
