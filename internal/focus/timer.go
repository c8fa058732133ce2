// Package focus implements the Pomodoro countdown behind the focus command.
package focus

import (
	"fmt"
	"time"
)

// Mode is the kind of session a Timer is counting down.
type Mode int

const (
	Work Mode = iota
	Break
)

// String returns the label shown next to the countdown.
func (m Mode) String() string {
	if m == Break {
		return "Short Break"
	}
	return "Deep Work"
}

// Default session lengths.
const (
	DefaultWork  = 25 * time.Minute
	DefaultBreak = 5 * time.Minute
)

// Timer is a paused or running countdown for one session. The zero value
// is not usable; call New.
type Timer struct {
	WorkLen  time.Duration
	BreakLen time.Duration

	mode    Mode
	left    time.Duration
	running bool
}

// New returns a paused work-mode timer. Non-positive lengths fall back to
// the defaults.
func New(work, brk time.Duration) *Timer {
	if work <= 0 {
		work = DefaultWork
	}
	if brk <= 0 {
		brk = DefaultBreak
	}
	t := &Timer{WorkLen: work, BreakLen: brk}
	t.Reset()
	return t
}

// Mode returns the current session kind.
func (t *Timer) Mode() Mode { return t.mode }

// Left returns the time remaining in the session.
func (t *Timer) Left() time.Duration { return t.left }

// Running reports whether Tick advances the countdown.
func (t *Timer) Running() bool { return t.running }

// Done reports whether the session has run out.
func (t *Timer) Done() bool { return t.left <= 0 }

// Start resumes the countdown. A finished session stays finished.
func (t *Timer) Start() {
	if !t.Done() {
		t.running = true
	}
}

// Pause stops the countdown without changing the remaining time.
func (t *Timer) Pause() { t.running = false }

// Tick advances a running timer by d. It reports true on the tick that
// finishes the session, after which the timer is paused at zero.
func (t *Timer) Tick(d time.Duration) bool {
	if !t.running {
		return false
	}
	t.left -= d
	if t.left > 0 {
		return false
	}
	t.left = 0
	t.running = false
	return true
}

// Reset pauses the timer and restores the full length of the current mode.
func (t *Timer) Reset() {
	t.running = false
	t.left = t.WorkLen
	if t.mode == Break {
		t.left = t.BreakLen
	}
}

// ToggleMode switches between work and break and resets.
func (t *Timer) ToggleMode() {
	if t.mode == Work {
		t.mode = Break
	} else {
		t.mode = Work
	}
	t.Reset()
}

// Skip abandons the current session and moves to the next one.
func (t *Timer) Skip() { t.ToggleMode() }

// Display formats the remaining time as MM:SS, rounding partial seconds up.
func (t *Timer) Display() string {
	secs := int((t.left + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
