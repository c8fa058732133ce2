package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

var (
	eventStart string
	eventEnd   string
	eventDate  string
	eventColor string
)

var eventCmd = &cobra.Command{
	Use:     "event",
	Aliases: []string{"events"},
	Short:   "Manage schedule events",
	Long: `Add and remove time blocks shown by 'focussphere schedule'.

Examples:
  focussphere event add Standup --start 09:00 --end 09:15
  focussphere event add Deep work --start 13:00 --end 15:30 --date 2026-10-20 --color "#10b981"
  focussphere event rm 4`,
}

var eventAddCmd = &cobra.Command{
	Use:   "add <title...>",
	Short: "Add an event",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEventAdd,
}

var eventRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventRm,
}

func init() {
	eventAddCmd.Flags().StringVar(&eventStart, "start", "", "Start time as HH:MM (required)")
	eventAddCmd.Flags().StringVar(&eventEnd, "end", "", "End time as HH:MM (required)")
	eventAddCmd.Flags().StringVar(&eventDate, "date", "", "Date as YYYY-MM-DD (default: today)")
	eventAddCmd.Flags().StringVar(&eventColor, "color", model.DefaultEventColor, "Color tag as #rrggbb")
	_ = eventAddCmd.MarkFlagRequired("start")
	_ = eventAddCmd.MarkFlagRequired("end")

	eventCmd.AddCommand(eventAddCmd, eventRmCmd)
	rootCmd.AddCommand(eventCmd)
}

func runEventAdd(cmd *cobra.Command, args []string) error {
	start, err := calendar.ParseClockMinutes(eventStart)
	if err != nil {
		return err
	}
	end, err := calendar.ParseClockMinutes(eventEnd)
	if err != nil {
		return err
	}
	if end < start {
		return fmt.Errorf("end %s is before start %s", eventEnd, eventStart)
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	date, err := dateFlag(eventDate, ws.today())
	if err != nil {
		return err
	}
	ev := model.ScheduleEvent{
		Title:     joinArgs(args),
		StartTime: clockString(start),
		EndTime:   clockString(end),
		Color:     eventColor,
		Date:      calendar.FormatDate(date),
	}
	if _, err := ws.db.AddEvent(ws.ctx, &ev); err != nil {
		return fmt.Errorf("adding event: %w", err)
	}
	if flagJSON {
		return writeJSON(ws.out, ev)
	}
	fmt.Fprintf(ws.out, "Added event %d: %s %s-%s on %s\n", ev.ID, ev.Title, ev.StartTime, ev.EndTime, ev.Date)
	return nil
}

func runEventRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	if err := ws.db.DeleteEvent(ws.ctx, id); err != nil {
		return notFound("event", id, err)
	}
	fmt.Fprintf(ws.out, "Deleted event %d\n", id)
	return nil
}

// clockString formats minutes since midnight as HH:MM.
func clockString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
