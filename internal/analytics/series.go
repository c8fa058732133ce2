package analytics

import (
	"math/rand/v2"

	"github.com/blackwell-systems/focussphere/internal/model"
)

// Productivity series weights. These intentionally differ from the daily
// activity score and are not capped.
const (
	productivityHabitPoints = 20
	productivityEventPoints = 10
)

// MoodSeed seeds the mood synthesizer. A fixed seed makes repeated refreshes
// over the same window produce identical series.
const MoodSeed = 42

// BuildSeries computes all three series for the window.
func BuildSeries(w Window, habits []TrackedHabit, events EventIndex, tasks []model.Task, latestMood string) Series {
	return Series{
		TaskCompletions: TaskCompletionSeries(w, tasks),
		Productivity:    ProductivitySeries(w, habits, events),
		Mood:            MoodSeries(w, latestMood),
	}
}

// TaskCompletionSeries counts completed tasks per creation date. Every
// window date is present; days without completions hold zero.
func TaskCompletionSeries(w Window, tasks []model.Task) []SeriesPoint {
	dates := w.Dates()
	out := make([]SeriesPoint, 0, len(dates))
	for _, d := range dates {
		out = append(out, newPoint(d, float64(tasksCompletedOn(tasks, d))))
	}
	return out
}

// ProductivitySeries scores each window date as habits*20 + events*10.
func ProductivitySeries(w Window, habits []TrackedHabit, events EventIndex) []SeriesPoint {
	dates := w.Dates()
	out := make([]SeriesPoint, 0, len(dates))
	for _, d := range dates {
		score := habitsDoneOn(habits, d)*productivityHabitPoints + len(events.On(d))*productivityEventPoints
		out = append(out, newPoint(d, float64(score)))
	}
	return out
}

// MoodSeries synthesizes a mood value per window date by jittering the
// latest mood by -1, 0 or +1 and clamping to the 1..4 scale. The generator
// is seeded once per call with MoodSeed.
func MoodSeries(w Window, latestMood string) MoodTrend {
	base := model.MoodScore(latestMood)
	rng := rand.New(rand.NewPCG(MoodSeed, MoodSeed))

	dates := w.Dates()
	trend := MoodTrend{
		Synthetic: true,
		Latest:    latestMood,
		Base:      base,
		Points:    make([]SeriesPoint, 0, len(dates)),
	}
	for _, d := range dates {
		v := max(1, min(4, base+rng.IntN(3)-1))
		trend.Points = append(trend.Points, newPoint(d, float64(v)))
	}
	return trend
}
