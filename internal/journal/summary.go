package journal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Summary is the at-a-glance view of the journal.
type Summary struct {
	Count            int
	LastCheckIn      time.Time
	WeeklyAverage    float64
	HasWeeklyAverage bool
	CurrentStreak    int
	BestStreak       int
}

// Summarize computes the summary as of now.
func Summarize(entries []Entry, now time.Time) Summary {
	sum := Summary{Count: len(entries)}
	if len(entries) == 0 {
		return sum
	}
	for _, e := range entries {
		if e.Date.After(sum.LastCheckIn) {
			sum.LastCheckIn = e.Date
		}
	}
	sum.WeeklyAverage, sum.HasWeeklyAverage = WeeklyAverage(entries, now)
	sum.CurrentStreak, sum.BestStreak = Streaks(entries, now)
	return sum
}

// WeeklyAverage averages the moods of entries from the last seven days.
func WeeklyAverage(entries []Entry, now time.Time) (float64, bool) {
	cutoff := now.Add(-7 * 24 * time.Hour)
	var total, n int
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			total += e.Mood
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(total) / float64(n), true
}

// Streaks counts consecutive calendar days with a check-in, in now's time
// zone. current is the run ending today and is zero when there is no
// check-in today; best is the longest run.
func Streaks(entries []Entry, now time.Time) (current, best int) {
	if len(entries) == 0 {
		return 0, 0
	}
	loc := now.Location()

	seen := make(map[int]struct{}, len(entries))
	days := make([]int, 0, len(entries))
	for _, e := range entries {
		d := dayNumber(e.Date.In(loc))
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(days)))

	run := 1
	best = 1
	leading := 1
	inLeading := true
	for i := 1; i < len(days); i++ {
		if days[i-1]-days[i] == 1 {
			run++
		} else {
			run = 1
			inLeading = false
		}
		if inLeading {
			leading = run
		}
		best = max(best, run)
	}

	if days[0] != dayNumber(now) {
		return 0, best
	}
	return leading, best
}

// dayNumber maps a local date onto a day count that ignores DST shifts.
func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Unix() / 86400)
}

// ParseRange accepts "7", "30", "all" or "" and returns the window in days,
// zero meaning everything.
func ParseRange(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return 0, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil || days <= 0 {
		return 0, fmt.Errorf("invalid range %q (expected a number of days or \"all\")", s)
	}
	return days, nil
}

// FilterRange keeps entries from the last days days; zero keeps all.
func FilterRange(entries []Entry, days int, now time.Time) []Entry {
	if days <= 0 {
		return entries
	}
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	var out []Entry
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// FormatSummary renders the summary block shown by "journal summary".
func FormatSummary(sum Summary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Entries: %d\n", sum.Count)
	if sum.Count == 0 {
		sb.WriteString("Last check-in: —\n")
		sb.WriteString("7-day average: —\n")
	} else {
		fmt.Fprintf(&sb, "Last check-in: %s\n", sum.LastCheckIn.Format("2006-01-02 15:04"))
		if sum.HasWeeklyAverage {
			fmt.Fprintf(&sb, "7-day average: %.1f / 5\n", sum.WeeklyAverage)
		} else {
			sb.WriteString("7-day average: —\n")
		}
	}
	fmt.Fprintf(&sb, "Current streak: %s\n", pluralDays(sum.CurrentStreak))
	fmt.Fprintf(&sb, "Best streak: %s\n", pluralDays(sum.BestStreak))
	return sb.String()
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
