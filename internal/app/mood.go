package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/model"
	"github.com/blackwell-systems/focussphere/internal/output"
)

var moodLimit int

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Log how you feel",
	Long: `Log a mood from the fixed vocabulary and review recent entries. The
latest mood feeds the dashboard and the analytics mood trend.

Examples:
  focussphere mood log good
  focussphere mood show --limit 5`,
}

var moodLogCmd = &cobra.Command{
	Use:       "log <mood>",
	Short:     "Log a mood: awesome, good, tired or stressed",
	Args:      cobra.ExactArgs(1),
	ValidArgs: moodNames(),
	RunE:      runMoodLog,
}

var moodShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show recent moods",
	Args:  cobra.NoArgs,
	RunE:  runMoodShow,
}

func init() {
	moodShowCmd.Flags().IntVar(&moodLimit, "limit", 10, "Number of entries to show")

	moodCmd.AddCommand(moodLogCmd, moodShowCmd)
	rootCmd.AddCommand(moodCmd)
}

func moodNames() []string {
	names := make([]string, len(model.Moods))
	for i, m := range model.Moods {
		names[i] = strings.ToLower(string(m))
	}
	return names
}

func runMoodLog(cmd *cobra.Command, args []string) error {
	mood, ok := model.ParseMood(args[0])
	if !ok {
		return fmt.Errorf("unknown mood %q (want one of %s)", args[0], strings.Join(moodNames(), ", "))
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	if _, err := ws.db.LogMood(ws.ctx, mood); err != nil {
		return fmt.Errorf("logging mood: %w", err)
	}
	fmt.Fprintf(ws.out, "Logged mood: %s\n", mood)
	return nil
}

func runMoodShow(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	logs, err := ws.db.ListMoods(ws.ctx, max(moodLimit, 1))
	if err != nil {
		return fmt.Errorf("loading moods: %w", err)
	}
	if flagJSON {
		if logs == nil {
			logs = []model.MoodLog{}
		}
		return writeJSON(ws.out, logs)
	}
	if len(logs) == 0 {
		fmt.Fprintln(ws.out, "No moods logged yet.")
		return nil
	}

	tbl := output.NewTable("Logged", "Mood", "Score")
	for _, m := range logs {
		tbl.AddRow(m.LoggedAt, m.Mood, output.ScoreBar(float64(model.MoodScore(m.Mood))*25, 8))
	}
	tbl.Fprint(ws.out)
	return nil
}
