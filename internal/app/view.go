package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/state"
)

var viewCmd = &cobra.Command{
	Use:   "view <screen>",
	Short: "Show one screen by name",
	Long: `Show a top-level screen by name, matched case-insensitively:
dashboard, tasks, notes, habits, expenses, schedule or analytics.
Each screen uses its command's default options.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

// screens maps each view to the command that renders it.
var screens = map[state.View]func(*cobra.Command, []string) error{
	state.ViewDashboard: runDashboard,
	state.ViewTasks:     runTaskList,
	state.ViewNotes:     runNoteList,
	state.ViewHabits:    runHabitList,
	state.ViewExpenses:  runExpenseList,
	state.ViewSchedule:  runSchedule,
	state.ViewAnalytics: runAnalytics,
}

func runView(cmd *cobra.Command, args []string) error {
	s, err := state.Default().WithView(state.View(args[0]))
	if err != nil {
		return err
	}
	logger.Debug("switching view", "view", s.View)
	return screens[s.View](cmd, nil)
}
