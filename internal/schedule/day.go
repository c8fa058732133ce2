package schedule

import (
	"time"

	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
)

// Day is a laid-out day view.
type Day struct {
	Date       string    `json:"date"`
	Blocks     []Block   `json:"blocks"`
	Hours      []HourRow `json:"hours,omitempty"`
	NowMarker  *float64  `json:"now_marker,omitempty"`
	ScrollHour int       `json:"scroll_hour"`
}

// BuildDay lays out the events of date. The now marker is only set when date
// is the calendar date of now; other days scroll to the first event's hour.
func BuildDay(date time.Time, events []model.ScheduleEvent, now time.Time, opts Options) Day {
	date = calendar.DateOf(date)
	day := Day{
		Date:   calendar.FormatDate(date),
		Blocks: Layout(events, opts),
		Hours:  HourGrid(opts),
	}

	if date.Equal(calendar.DateOf(now)) {
		marker := NowMarker(now, opts)
		day.NowMarker = &marker
		day.ScrollHour = ScrollHour(now)
		return day
	}

	first := -1
	for _, b := range day.Blocks {
		if !b.Fallback && (first < 0 || b.StartMinutes < first) {
			first = b.StartMinutes
		}
	}
	if first >= 0 {
		day.ScrollHour = max(0, first/60-1)
	}
	return day
}

// BlocksInHour returns the blocks whose start falls within hour h.
func (d Day) BlocksInHour(h int) []Block {
	var out []Block
	for _, b := range d.Blocks {
		if b.StartMinutes/60 == h {
			out = append(out, b)
		}
	}
	return out
}
