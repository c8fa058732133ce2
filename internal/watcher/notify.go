package watcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Notifier raises desktop notifications through the platform's command
// line tool: osascript on macOS, notify-send on Linux. When neither is
// usable the alert is written to Fallback instead.
type Notifier struct {
	GOOS     string
	Fallback io.Writer

	run      func(ctx context.Context, name string, args ...string) error
	lookPath func(name string) (string, error)
}

// NewNotifier returns a Notifier for the running platform that falls back
// to stderr.
func NewNotifier() *Notifier {
	return &Notifier{
		GOOS:     runtime.GOOS,
		Fallback: os.Stderr,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
		lookPath: exec.LookPath,
	}
}

// Notify delivers a. A failing platform tool is not an error; only a
// failed fallback write is.
func (n *Notifier) Notify(ctx context.Context, a Alert) error {
	name, args := n.command(a)
	if name != "" {
		if _, err := n.lookPath(name); err == nil {
			if err := n.run(ctx, name, args...); err == nil {
				return nil
			}
		}
	}
	_, err := fmt.Fprintf(n.Fallback, "[%s] %s: %s\n", a.Level, a.Title, a.Message)
	return err
}

// command returns the notification tool and its arguments for a, or an
// empty name when the platform has none.
func (n *Notifier) command(a Alert) (string, []string) {
	switch n.GOOS {
	case "darwin":
		script := fmt.Sprintf(`display notification %q with title "focussphere" subtitle %q`, a.Message, a.Title)
		return "osascript", []string{"-e", script}
	case "linux":
		return "notify-send", []string{"-u", urgency(a.Level), "focussphere: " + a.Title, a.Message}
	default:
		return "", nil
	}
}

// urgency maps an alert level to a notify-send urgency.
func urgency(level string) string {
	switch level {
	case "critical":
		return "critical"
	case "info":
		return "low"
	default:
		return "normal"
	}
}
