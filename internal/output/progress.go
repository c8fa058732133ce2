package output

import (
	"fmt"
	"strings"
)

const defaultBarWidth = 20

// bar fills width cells in proportion to ratio, clamped to [0, 1].
func bar(ratio float64, width int) string {
	if width <= 0 {
		width = defaultBarWidth
	}
	filled := min(max(int(ratio*float64(width)), 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// ScoreBar renders a 0-100 score, e.g. "████████░░ 80/100". Scores above
// 70 read as high and above 40 as medium.
func ScoreBar(score float64, width int) string {
	level := "low"
	switch {
	case score > 70:
		level = "high"
	case score > 40:
		level = "medium"
	}
	return LevelStyle(level).Render(bar(score/100, width)) + " " + StyleMuted.Render(fmt.Sprintf("%.0f/100", score))
}

// ProgressBar renders a fill ratio styled by level, e.g. "██████░░░░ 60%".
func ProgressBar(ratio float64, width int, level string) string {
	return LevelStyle(level).Render(bar(ratio, width)) + " " + StyleMuted.Render(fmt.Sprintf("%.0f%%", ratio*100))
}

// TrendArrow returns a styled trend indicator for a delta value.
// Positive delta shows an up arrow, negative shows down, zero shows a dash.
func TrendArrow(delta float64, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := isPositive == higherIsBetter

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%.1f", delta)
	} else {
		arrow = fmt.Sprintf("▼ %.1f", delta)
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a one-line bar chart scaled to the series max.
// An all-zero series renders as the lowest bar.
func Sparkline(values []float64) string {
	hi := 0.0
	for _, v := range values {
		hi = max(hi, v)
	}
	var sb strings.Builder
	for _, v := range values {
		i := 0
		if hi > 0 && v > 0 {
			i = min(int(v/hi*float64(len(sparkRunes)-1)+0.5), len(sparkRunes)-1)
		}
		sb.WriteRune(sparkRunes[i])
	}
	return StyleHeader.Render(sb.String())
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// KeyValue renders one aligned label/value line.
func KeyValue(label, value string) string {
	return fmt.Sprintf(" %s %s", StyleLabel.Render(label), StyleValue.Render(value))
}
