package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/config"
	"github.com/blackwell-systems/focussphere/internal/watcher"
)

// minWatchInterval keeps the monitor from hammering the database.
const minWatchInterval = 30 * time.Second

var (
	watchDaemon   bool
	watchInterval string
	watchStop     bool
	watchQuiet    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Remind you about budgets, overdue tasks, streaks and events",
	Long: `Refresh analytics on an interval and raise desktop notifications when
something needs attention: spending crosses half or most of the monthly
budget, a task becomes overdue, an evening habit streak is about to break,
or an event is about to start.

Examples:
  focussphere watch                    # foreground, ctrl-c to stop
  focussphere watch --daemon           # PID file and log under the config dir
  focussphere watch --interval 1m      # override watch.interval from config
  focussphere watch --stop             # stop the daemon`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.BoolVar(&watchDaemon, "daemon", false, "Write a PID file and log to watch.log instead of the terminal")
	f.StringVar(&watchInterval, "interval", "", "Check interval such as 1m or 15m (default from config)")
	f.BoolVar(&watchStop, "stop", false, "Stop a running daemon")
	f.BoolVar(&watchQuiet, "quiet", false, "Only send desktop notifications")
	rootCmd.AddCommand(watchCmd)
}

// resolveInterval parses the --interval flag, falling back to the
// configured interval.
func resolveInterval(flag string, configured time.Duration) (time.Duration, error) {
	interval := configured
	if flag != "" {
		d, err := time.ParseDuration(flag)
		if err != nil {
			return 0, fmt.Errorf("invalid interval %q: %w", flag, err)
		}
		interval = d
	}
	if interval < minWatchInterval {
		return 0, fmt.Errorf("interval must be at least %s, got %s", minWatchInterval, interval)
	}
	return interval, nil
}

func runWatch(cmd *cobra.Command, _ []string) error {
	pids := pidFile(filepath.Join(config.ConfigDir(), "watch.pid"))
	if watchStop {
		return pids.stop(cmd.OutOrStdout())
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	interval, err := resolveInterval(watchInterval, ws.cfg.Watch.Interval)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ws.ctx, shutdownSignals...)
	defer cancel()

	if !watchDaemon {
		var out io.Writer = ws.out
		if watchQuiet {
			out = io.Discard
		}
		return watchLoop(ctx, ws, interval, out)
	}

	release, err := pids.acquire()
	if err != nil {
		return err
	}
	defer release()

	logPath := filepath.Join(config.ConfigDir(), "watch.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening watch log: %w", err)
	}
	defer func() { _ = logFile.Close() }()
	return watchLoop(ctx, ws, interval, logFile)
}

// watchLoop runs the watcher until ctx ends, notifying the desktop and
// echoing alerts to out. Cancellation is a clean stop.
func watchLoop(ctx context.Context, ws *workspace, interval time.Duration, out io.Writer) error {
	notifier := watcher.NewNotifier()
	notifier.Fallback = out

	w := watcher.New(ws.engine, ws.db, interval, func(a watcher.Alert) {
		if err := notifier.Notify(ctx, a); err != nil {
			logger.Debug("notification failed", "title", a.Title, "err", err)
		}
		printAlert(out, a)
	})

	first, err := w.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("initial snapshot failed: %w", err)
	}
	fmt.Fprintf(out, "[%s] watching every %s: %d pending, %d overdue, budget %s (%.0f%%)\n",
		first.Timestamp.Format(time.DateTime), interval,
		first.PendingTasks, first.OverdueTasks, first.BudgetLevel, first.BudgetRatio*100)

	err = w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(out, "[%s] stopped\n", time.Now().Format(time.DateTime))
		return nil
	}
	return err
}

// printAlert writes a as a timestamped line with its message indented
// below.
func printAlert(w io.Writer, a watcher.Alert) {
	fmt.Fprintf(w, "[%s] %s %s\n", a.Time.Format(time.DateTime), alertIcon(a.Level), a.Title)
	if a.Message != "" {
		fmt.Fprintf(w, "    %s\n", a.Message)
	}
}

func alertIcon(level string) string {
	switch level {
	case watcher.LevelCritical:
		return "!!"
	case watcher.LevelWarning:
		return "! "
	default:
		return "- "
	}
}

// pidFile is the path of the daemon's PID file.
type pidFile string

func (p pidFile) read() (int, error) {
	data, err := os.ReadFile(string(p))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// acquire records this process in the PID file. It fails while another
// live daemon holds the file and replaces a stale one. release removes it.
func (p pidFile) acquire() (release func(), err error) {
	if pid, err := p.read(); err == nil && pid != os.Getpid() && processExists(pid) {
		return nil, fmt.Errorf("daemon already running (PID %d), use --stop to stop it", pid)
	}
	if err := os.MkdirAll(filepath.Dir(string(p)), 0o755); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(string(p), []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return nil, fmt.Errorf("writing PID file: %w", err)
	}
	return func() { _ = os.Remove(string(p)) }, nil
}

// stop terminates the daemon named in the PID file and removes the file.
func (p pidFile) stop(w io.Writer) error {
	pid, err := p.read()
	if err != nil {
		return fmt.Errorf("no daemon running (could not read PID file: %w)", err)
	}
	if !processExists(pid) {
		_ = os.Remove(string(p))
		return fmt.Errorf("no daemon running (PID %d is not active, removed stale PID file)", pid)
	}
	if err := terminate(pid); err != nil {
		return fmt.Errorf("failed to stop daemon (PID %d): %w", pid, err)
	}
	_ = os.Remove(string(p))
	fmt.Fprintf(w, "Stopped daemon (PID %d)\n", pid)
	return nil
}
