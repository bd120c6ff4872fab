package journal

import (
	"fmt"
	"strings"
)

// ChartSize is how many recent entries the chart and insight look at.
const ChartSize = 10

const emptyInsight = "Add a check-in to see your trend."

func recent(entries []Entry) []Entry {
	if len(entries) > ChartSize {
		return entries[len(entries)-ChartSize:]
	}
	return entries
}

// Insight summarizes the recent moods in one line.
func Insight(entries []Entry) string {
	sample := recent(entries)
	if len(sample) == 0 {
		return emptyInsight
	}
	high, low, total := sample[0].Mood, sample[0].Mood, 0
	for _, e := range sample {
		total += e.Mood
		high = max(high, e.Mood)
		low = min(low, e.Mood)
	}
	avg := float64(total) / float64(len(sample))
	return fmt.Sprintf("Average %.1f/5 • High %d/5 • Low %d/5", avg, high, low)
}

// Chart draws the recent moods as a text line chart, one row per mood level
// from MaxMood down to MinMood. Points are "●"; a "│" in a point's column
// marks the climb or drop from the previous point and "───" joins neighbours
// on the same level.
func Chart(entries []Entry) string {
	sample := recent(entries)
	if len(sample) == 0 {
		return ""
	}

	var sb strings.Builder
	for level := MaxMood; level >= MinMood; level-- {
		fmt.Fprintf(&sb, "%d │", level)
		for i, e := range sample {
			sb.WriteString(chartCell(sample, i, level))
			if i < len(sample)-1 {
				if e.Mood == level && sample[i+1].Mood == level {
					sb.WriteString("───")
				} else {
					sb.WriteString("   ")
				}
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  └" + strings.Repeat("─", 4*len(sample)-3) + "\n")
	return sb.String()
}

func chartCell(sample []Entry, i, level int) string {
	mood := sample[i].Mood
	if mood == level {
		return "●"
	}
	if i > 0 {
		prev := sample[i-1].Mood
		lo, hi := min(prev, mood), max(prev, mood)
		if level > lo && level < hi {
			return "│"
		}
		if level == prev {
			return "│"
		}
	}
	return " "
}
