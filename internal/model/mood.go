package model

import "strings"

// Mood is one label of the fixed mood vocabulary.
type Mood string

const (
	MoodAwesome  Mood = "Awesome"
	MoodGood     Mood = "Good"
	MoodTired    Mood = "Tired"
	MoodStressed Mood = "Stressed"
)

// Moods lists the vocabulary from best to worst.
var Moods = []Mood{MoodAwesome, MoodGood, MoodTired, MoodStressed}

// ParseMood matches s case-insensitively against the vocabulary.
func ParseMood(s string) (Mood, bool) {
	for _, m := range Moods {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, true
		}
	}
	return "", false
}

// MoodScore maps a mood label onto the 1..4 chart scale. Unknown and empty
// labels score as Good.
func MoodScore(s string) int {
	m, _ := ParseMood(s)
	switch m {
	case MoodAwesome:
		return 4
	case MoodTired:
		return 2
	case MoodStressed:
		return 1
	default:
		return 3
	}
}

// MoodForScore returns the label plotted at a chart value.
func MoodForScore(v int) Mood {
	switch v {
	case 4:
		return MoodAwesome
	case 3:
		return MoodGood
	case 2:
		return MoodTired
	case 1:
		return MoodStressed
	default:
		return ""
	}
}
