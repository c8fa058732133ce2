package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/model"
	"github.com/blackwell-systems/focussphere/internal/output"
)

var habitToggleDate string

var habitCmd = &cobra.Command{
	Use:     "habit",
	Aliases: []string{"habits"},
	Short:   "Track daily habits",
	Long: `Add habits and mark the days you kept them. A streak counts consecutive
completed days ending today; a habit not done today has no streak.

Examples:
  focussphere habit add Meditate
  focussphere habit toggle 2              # mark today
  focussphere habit toggle 2 --date 2026-10-16
  focussphere habit list`,
}

var habitAddCmd = &cobra.Command{
	Use:   "add <name...>",
	Short: "Add a habit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHabitAdd,
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show each habit's last seven days and streak",
	Args:  cobra.NoArgs,
	RunE:  runHabitList,
}

var habitToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a habit's completion for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitToggle,
}

var habitRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitRm,
}

func init() {
	habitToggleCmd.Flags().StringVar(&habitToggleDate, "date", "", "Day to toggle as YYYY-MM-DD (default: today)")

	habitCmd.AddCommand(habitAddCmd, habitListCmd, habitToggleCmd, habitRmCmd)
	rootCmd.AddCommand(habitCmd)
}

func runHabitAdd(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	name := joinArgs(args)
	id, err := ws.db.AddHabit(ws.ctx, name)
	if err != nil {
		return fmt.Errorf("adding habit: %w", err)
	}
	fmt.Fprintf(ws.out, "Added habit %d: %s\n", id, name)
	return nil
}

func runHabitList(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	habits, err := ws.db.ListHabits(ws.ctx)
	if err != nil {
		return fmt.Errorf("loading habits: %w", err)
	}
	tracked, issues := analytics.TrackHabits(habits)
	for _, issue := range issues {
		logger.Warn("skipping completion date", "err", issue)
	}
	weeks := analytics.HabitWeeks(tracked, ws.today())

	if flagJSON {
		return writeJSON(ws.out, weeks)
	}
	if len(weeks) > 0 {
		var header string
		for _, d := range weeks[0].Days {
			header += fmt.Sprintf("%-2s", d.Label[:1])
		}
		fmt.Fprintf(ws.out, " %-4s %-20s %s\n", "", "", output.StyleMuted.Render(header))
	}
	renderHabitGrid(ws.out, weeks)
	return nil
}

func runHabitToggle(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	day, err := dateFlag(habitToggleDate, ws.today())
	if err != nil {
		return err
	}
	habit, err := ws.db.GetHabit(ws.ctx, id)
	if err != nil {
		return notFound("habit", id, err)
	}
	tracked, issues := analytics.TrackHabits([]model.Habit{habit})
	for _, issue := range issues {
		logger.Warn("dropping unreadable completion date", "err", issue)
	}

	days, err := analytics.ToggleHabitDay(ws.ctx, ws.db, tracked[0], day)
	if err != nil {
		return err
	}
	state := "not done"
	if days.Has(day) {
		state = "done"
	}
	streak := analytics.CurrentStreak(days, ws.today())
	fmt.Fprintf(ws.out, "%s on %s: %s (streak %d)\n", habit.Name, day.Format("2006-01-02"), state, streak)
	return nil
}

func runHabitRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	if err := ws.db.DeleteHabit(ws.ctx, id); err != nil {
		return notFound("habit", id, err)
	}
	fmt.Fprintf(ws.out, "Deleted habit %d\n", id)
	return nil
}
