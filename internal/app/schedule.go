package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/output"
	"github.com/blackwell-systems/focussphere/internal/schedule"
)

var (
	scheduleDate  string
	scheduleHours int
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the day's time blocks",
	Long: `Lay out the schedule events of a day on an hour grid. For today the view
starts one hour before the current time and marks the current time; other
days start one hour before the first event.

Examples:
  focussphere schedule
  focussphere schedule --date 2026-10-20
  focussphere schedule --json`,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleDate, "date", "", "Day to show as YYYY-MM-DD (default: today)")
	scheduleCmd.Flags().IntVar(&scheduleHours, "hours", 12, "Number of hour rows to print")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	date, err := dateFlag(scheduleDate, ws.today())
	if err != nil {
		return err
	}
	events, err := ws.db.ListEventsForDate(ws.ctx, date)
	if err != nil {
		return err
	}

	now := ws.engine.Now()
	day := schedule.BuildDay(date, events, now, ws.cfg.ScheduleOptions())

	if flagJSON {
		return writeJSON(ws.out, day)
	}

	out := ws.out
	fmt.Fprintln(out, output.StyleBold.Render(date.Format("Monday, January 2, 2006")))
	if len(day.Blocks) == 0 {
		fmt.Fprintln(out, output.StyleMuted.Render(" Nothing scheduled."))
	}

	last := min(len(day.Hours), day.ScrollHour+max(scheduleHours, 1))
	nowHour := -1
	if day.NowMarker != nil {
		nowHour = now.Hour()
	}
	for _, row := range day.Hours[day.ScrollHour:last] {
		label := row.Label
		if row.Hour == nowHour {
			label = output.StyleError.Render(label + " ▶")
		} else {
			label = output.StyleMuted.Render(label + "  ")
		}
		var titles []string
		for _, b := range day.BlocksInHour(row.Hour) {
			titles = append(titles, blockLine(b))
		}
		fmt.Fprintf(out, " %s %s\n", label, strings.Join(titles, "  "))
	}

	// Blocks whose start could not be read are placed at the top of the day
	// and would be hidden when the view starts later.
	if day.ScrollHour > 0 {
		for _, b := range day.Blocks {
			if b.Fallback && b.StartMinutes == 0 {
				fmt.Fprintf(out, " %s %s\n", output.StyleWarning.Render("??:?? "), blockLine(b))
			}
		}
	}
	return nil
}

// blockLine renders one block as "title start-end".
func blockLine(b schedule.Block) string {
	text := fmt.Sprintf("%s %s %s-%s", output.Swatch(b.Event.Color), b.Event.Title, b.Event.StartTime, b.Event.EndTime)
	if b.Fallback {
		text += output.StyleWarning.Render(fmt.Sprintf(" (~%dm)", b.DurationMinutes))
	}
	return text
}
