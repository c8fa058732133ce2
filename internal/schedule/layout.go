// Package schedule positions a day's events on a vertical time axis.
package schedule

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

const (
	DefaultHourHeight      = 60.0
	DefaultMinHeight       = 20.0
	DefaultFallbackMinutes = 60
)

// Options controls the pixel geometry of a layout.
type Options struct {
	HourHeight      float64 `json:"hour_height"`
	MinHeight       float64 `json:"min_height"`
	FallbackMinutes int     `json:"fallback_minutes"`
}

// DefaultOptions returns the standard 60px-per-hour geometry.
func DefaultOptions() Options {
	return Options{
		HourHeight:      DefaultHourHeight,
		MinHeight:       DefaultMinHeight,
		FallbackMinutes: DefaultFallbackMinutes,
	}
}

// normalized fills zero or negative fields with defaults.
func (o Options) normalized() Options {
	if o.HourHeight <= 0 {
		o.HourHeight = DefaultHourHeight
	}
	if o.MinHeight < 0 {
		o.MinHeight = DefaultMinHeight
	}
	if o.FallbackMinutes <= 0 {
		o.FallbackMinutes = DefaultFallbackMinutes
	}
	return o
}

func (o Options) pixels(minutes int) float64 {
	return float64(minutes) * o.HourHeight / 60
}

// Block is one positioned event.
type Block struct {
	Event           model.ScheduleEvent `json:"event"`
	StartMinutes    int                 `json:"start_minutes"`
	DurationMinutes int                 `json:"duration_minutes"`
	Offset          float64             `json:"offset"`
	Height          float64             `json:"height"`

	// Fallback is set when a clock time could not be parsed and the
	// fallback duration was used.
	Fallback bool `json:"fallback,omitempty"`
}

// Layout positions events in input order. Overlapping events are not
// separated; they share the same column.
func Layout(events []model.ScheduleEvent, opts Options) []Block {
	opts = opts.normalized()
	blocks := make([]Block, 0, len(events))
	for _, ev := range events {
		blocks = append(blocks, place(ev, opts))
	}
	return blocks
}

func place(ev model.ScheduleEvent, opts Options) Block {
	b := Block{Event: ev}

	start, startErr := calendar.ParseClockMinutes(ev.StartTime)
	end, endErr := calendar.ParseClockMinutes(ev.EndTime)
	switch {
	case startErr != nil || endErr != nil:
		b.DurationMinutes = opts.FallbackMinutes
		b.Fallback = true
	case end < start:
		b.DurationMinutes = 0
	default:
		b.DurationMinutes = end - start
	}
	if startErr == nil {
		b.StartMinutes = start
	}

	b.Offset = opts.pixels(b.StartMinutes)
	b.Height = max(opts.pixels(b.DurationMinutes), opts.MinHeight)
	return b
}

// NowMarker returns the vertical offset of the clock time of now.
func NowMarker(now time.Time, opts Options) float64 {
	opts = opts.normalized()
	return opts.pixels(now.Hour()*60 + now.Minute())
}

// HourRow is one labelled row of the hour grid.
type HourRow struct {
	Hour   int     `json:"hour"`
	Label  string  `json:"label"`
	Offset float64 `json:"offset"`
}

// HourGrid returns the 24 hour rows of a day.
func HourGrid(opts Options) []HourRow {
	opts = opts.normalized()
	rows := make([]HourRow, 24)
	for h := range rows {
		rows[h] = HourRow{
			Hour:   h,
			Label:  fmt.Sprintf("%02d:00", h),
			Offset: opts.pixels(h * 60),
		}
	}
	return rows
}

// ScrollHour is the hour a day view scrolls to so that the current hour is
// visible with one hour of context above it.
func ScrollHour(now time.Time) int {
	return max(0, now.Hour()-1)
}
