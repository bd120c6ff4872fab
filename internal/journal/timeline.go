package journal

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	emptyJournal = "No check-ins yet. Take a breath and add your first reflection."
	emptyRange   = "No entries in this range. Try a wider window."
)

var timeOfDayOrder = []string{
	"Early morning (5:00-9:00)",
	"Morning (9:00-12:00)",
	"Afternoon (12:00-17:00)",
	"Evening (17:00-21:00)",
	"Night (21:00-5:00)",
}

// TimeGroup is the entries of one part of a day.
type TimeGroup struct {
	Label   string
	Entries []Entry
}

// DayGroup is the entries of one calendar day, split by time of day.
type DayGroup struct {
	Day    time.Time
	Groups []TimeGroup
}

func timeOfDay(t time.Time) string {
	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 9:
		return timeOfDayOrder[0]
	case hour >= 9 && hour < 12:
		return timeOfDayOrder[1]
	case hour >= 12 && hour < 17:
		return timeOfDayOrder[2]
	case hour >= 17 && hour < 21:
		return timeOfDayOrder[3]
	default:
		return timeOfDayOrder[4]
	}
}

// GroupEntries groups entries by day, newest day first, and within a day by
// time of day in chronological order. Times are read in loc.
func GroupEntries(entries []Entry, loc *time.Location) []DayGroup {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	byDay := map[time.Time]map[string][]Entry{}
	var days []time.Time
	for _, e := range sorted {
		local := e.Date.In(loc)
		y, m, d := local.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, loc)
		if _, ok := byDay[day]; !ok {
			byDay[day] = map[string][]Entry{}
			days = append(days, day)
		}
		label := timeOfDay(local)
		byDay[day][label] = append(byDay[day][label], e)
	}

	var result []DayGroup
	for i := len(days) - 1; i >= 0; i-- {
		dg := DayGroup{Day: days[i]}
		for _, label := range timeOfDayOrder {
			if es := byDay[days[i]][label]; len(es) > 0 {
				dg.Groups = append(dg.Groups, TimeGroup{Label: label, Entries: es})
			}
		}
		result = append(result, dg)
	}
	return result
}

// FormatTimeline renders visible entries as text. total is the size of the
// whole journal and picks the empty-state message.
func FormatTimeline(visible []Entry, total int, loc *time.Location) string {
	if len(visible) == 0 {
		if total == 0 {
			return emptyJournal + "\n"
		}
		return emptyRange + "\n"
	}

	var sb strings.Builder
	for _, dg := range GroupEntries(visible, loc) {
		fmt.Fprintf(&sb, "## %s\n", dg.Day.Format("Mon, Jan 2 2006"))
		for _, g := range dg.Groups {
			fmt.Fprintf(&sb, "### %s\n", g.Label)
			for _, e := range g.Entries {
				fmt.Fprintf(&sb, "- [%s] Mood %d/5 · Energy: %s\n", e.Date.In(loc).Format("15:04"), e.Mood, e.Energy)
				for _, line := range strings.Split(e.DisplayNote(), "\n") {
					fmt.Fprintf(&sb, "  %s\n", line)
				}
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
