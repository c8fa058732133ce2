package focus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	tm := New(0, -time.Second)
	assert.Equal(t, Work, tm.Mode())
	assert.Equal(t, DefaultWork, tm.Left())
	assert.Equal(t, DefaultBreak, tm.BreakLen)
	assert.False(t, tm.Running())
	assert.Equal(t, "25:00", tm.Display())
	assert.Equal(t, "Deep Work", tm.Mode().String())
}

func TestTimer_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		steps   func(tm *Timer)
		mode    Mode
		left    time.Duration
		running bool
	}{
		{
			name:  "paused tick does nothing",
			steps: func(tm *Timer) { tm.Tick(time.Minute) },
			mode:  Work, left: 10 * time.Minute,
		},
		{
			name: "running tick counts down",
			steps: func(tm *Timer) {
				tm.Start()
				tm.Tick(time.Minute)
				tm.Tick(time.Second)
			},
			mode: Work, left: 8*time.Minute + 59*time.Second, running: true,
		},
		{
			name: "pause keeps remaining time",
			steps: func(tm *Timer) {
				tm.Start()
				tm.Tick(3 * time.Minute)
				tm.Pause()
				tm.Tick(time.Minute)
			},
			mode: Work, left: 7 * time.Minute,
		},
		{
			name: "reset restores work length",
			steps: func(tm *Timer) {
				tm.Start()
				tm.Tick(4 * time.Minute)
				tm.Reset()
			},
			mode: Work, left: 10 * time.Minute,
		},
		{
			name:  "toggle switches to a paused break",
			steps: func(tm *Timer) { tm.Start(); tm.ToggleMode() },
			mode:  Break, left: 2 * time.Minute,
		},
		{
			name:  "toggle twice returns to work",
			steps: func(tm *Timer) { tm.ToggleMode(); tm.ToggleMode() },
			mode:  Work, left: 10 * time.Minute,
		},
		{
			name: "skip behaves like toggle",
			steps: func(tm *Timer) {
				tm.Start()
				tm.Tick(time.Minute)
				tm.Skip()
			},
			mode: Break, left: 2 * time.Minute,
		},
		{
			name: "reset in break restores break length",
			steps: func(tm *Timer) {
				tm.ToggleMode()
				tm.Start()
				tm.Tick(90 * time.Second)
				tm.Reset()
			},
			mode: Break, left: 2 * time.Minute,
		},
		{
			name: "overrun clamps to zero and stops",
			steps: func(tm *Timer) {
				tm.Start()
				tm.Tick(11 * time.Minute)
			},
			mode: Work, left: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := New(10*time.Minute, 2*time.Minute)
			tt.steps(tm)
			assert.Equal(t, tt.mode, tm.Mode())
			assert.Equal(t, tt.left, tm.Left())
			assert.Equal(t, tt.running, tm.Running())
		})
	}
}

func TestTick_ReportsFinishOnce(t *testing.T) {
	tm := New(3*time.Second, time.Second)
	tm.Start()

	assert.False(t, tm.Tick(time.Second))
	assert.False(t, tm.Tick(time.Second))
	assert.True(t, tm.Tick(time.Second))
	assert.True(t, tm.Done())
	assert.False(t, tm.Tick(time.Second), "finished timer is paused")

	tm.Start()
	assert.False(t, tm.Running(), "a finished session cannot be restarted")
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		left time.Duration
		want string
	}{
		{25 * time.Minute, "25:00"},
		{5*time.Minute + 7*time.Second, "05:07"},
		{59 * time.Second, "00:59"},
		{1500 * time.Millisecond, "00:02"},
		{0, "00:00"},
		{90 * time.Minute, "90:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			tm := New(tt.left+time.Nanosecond, time.Minute)
			tm.left = tt.left
			assert.Equal(t, tt.want, tm.Display())
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "Deep Work", Work.String())
	assert.Equal(t, "Short Break", Break.String())
}
