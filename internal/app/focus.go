package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/focus"
	"github.com/blackwell-systems/focussphere/internal/watcher"
)

// noTask labels a session started without --task.
const noTask = "No task selected"

var (
	focusWork   time.Duration
	focusBreak  time.Duration
	focusRest   bool
	focusTask   string
	focusRounds int
	focusQuiet  bool
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Run a Pomodoro focus timer",
	Long: `Count down a deep work session, then a short break, and raise a desktop
notification when each one ends. A round is one work session; breaks run
between rounds. Ctrl-c stops the timer.

Examples:
  focussphere focus                        # one 25 minute session
  focussphere focus --task 3 --rounds 4    # label sessions with task 3
  focussphere focus --work 50m --break 10m
  focussphere focus --start-break          # begin with a break`,
	Args: cobra.NoArgs,
	RunE: runFocus,
}

func init() {
	f := focusCmd.Flags()
	f.DurationVar(&focusWork, "work", focus.DefaultWork, "Length of a work session")
	f.DurationVar(&focusBreak, "break", focus.DefaultBreak, "Length of a break")
	f.BoolVar(&focusRest, "start-break", false, "Start with a break instead of a work session")
	f.StringVar(&focusTask, "task", "", "Task id or free text to label the session")
	f.IntVar(&focusRounds, "rounds", 1, "Number of work sessions to run")
	f.BoolVar(&focusQuiet, "quiet", false, "Only send desktop notifications")
	rootCmd.AddCommand(focusCmd)
}

func runFocus(cmd *cobra.Command, _ []string) error {
	if focusRounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", focusRounds)
	}
	if focusWork < time.Second || focusBreak < time.Second {
		return fmt.Errorf("session lengths must be at least 1s, got work %s and break %s", focusWork, focusBreak)
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	label, err := focusLabel(ws, focusTask)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ws.ctx, shutdownSignals...)
	defer cancel()

	out := ws.out
	if focusQuiet {
		out = io.Discard
	}
	notifier := watcher.NewNotifier()
	notifier.Fallback = out

	timer := focus.New(focusWork, focusBreak)
	if focusRest {
		timer.ToggleMode()
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	return focusLoop(ctx, out, timer, label, focusRounds, ticker.C, time.Second, func(m focus.Mode) {
		a := watcher.Alert{
			Level:   watcher.LevelInfo,
			Title:   m.String() + " complete",
			Message: label,
			Time:    time.Now(),
		}
		if err := notifier.Notify(ctx, a); err != nil {
			logger.Debug("notification failed", "title", a.Title, "err", err)
		}
	})
}

// focusLabel resolves --task: a task id becomes that task's title, anything
// else is used as written.
func focusLabel(ws *workspace, task string) (string, error) {
	if task == "" {
		return noTask, nil
	}
	if _, err := strconv.ParseInt(task, 10, 64); err != nil {
		return task, nil
	}
	id, err := parseID(task)
	if err != nil {
		return "", err
	}
	t, err := ws.db.GetTask(ws.ctx, id)
	if err != nil {
		return "", notFound("task", id, err)
	}
	return t.Title, nil
}

// focusLoop advances t by step on every tick until rounds work sessions
// have finished or ctx ends. done is called as each session finishes.
// Cancellation is a clean stop.
func focusLoop(ctx context.Context, out io.Writer, t *focus.Timer, label string, rounds int,
	ticks <-chan time.Time, step time.Duration, done func(focus.Mode)) error {
	for worked := 0; worked < rounds; {
		fmt.Fprintf(out, "%s: %s (%s)\n", t.Mode(), label, t.Display())
		t.Start()
		for t.Running() {
			select {
			case <-ctx.Done():
				t.Pause()
				fmt.Fprintf(out, "stopped with %s left in %s\n", t.Display(), t.Mode())
				return nil
			case <-ticks:
				if !t.Tick(step) && t.Left()%time.Minute == 0 {
					fmt.Fprintf(out, "  %s left\n", t.Display())
				}
			}
		}

		done(t.Mode())
		fmt.Fprintf(out, "%s complete\n", t.Mode())
		if t.Mode() == focus.Work {
			worked++
		}
		if worked < rounds {
			t.ToggleMode()
		}
	}
	return nil
}
