package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("JST", 9*60*60)

func day(d, hour int) time.Time {
	return time.Date(2026, 3, d, hour, 0, 0, 0, testLoc)
}

func entriesOn(days ...int) []Entry {
	var out []Entry
	for _, d := range days {
		out = append(out, makeEntry(3, day(d, 10)))
	}
	return out
}

func TestStreaks(t *testing.T) {
	t.Parallel()

	now := day(10, 20)
	tests := []struct {
		name        string
		entries     []Entry
		wantCurrent int
		wantBest    int
	}{
		{name: "empty", entries: nil, wantCurrent: 0, wantBest: 0},
		{name: "run_ending_today", entries: entriesOn(4, 5, 8, 9, 10), wantCurrent: 3, wantBest: 3},
		{name: "nothing_today", entries: entriesOn(8, 9), wantCurrent: 0, wantBest: 2},
		{name: "same_day_twice", entries: entriesOn(10, 10, 7), wantCurrent: 1, wantBest: 1},
		{name: "older_run_is_best", entries: entriesOn(5, 6, 7, 8, 10), wantCurrent: 1, wantBest: 4},
		{name: "unsorted_input", entries: entriesOn(10, 8, 9), wantCurrent: 3, wantBest: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			current, best := Streaks(tt.entries, now)
			assert.Equal(t, tt.wantCurrent, current, "current")
			assert.Equal(t, tt.wantBest, best, "best")
		})
	}
}

func TestStreaks_UsesNowTimeZone(t *testing.T) {
	t.Parallel()

	// 23:30 UTC on the 9th is the morning of the 10th in JST.
	entries := []Entry{makeEntry(3, time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC))}
	current, _ := Streaks(entries, day(10, 20))
	assert.Equal(t, 1, current)
}

func TestWeeklyAverage(t *testing.T) {
	t.Parallel()

	now := day(20, 12)
	entries := []Entry{
		makeEntry(4, now.Add(-24*time.Hour)),
		makeEntry(2, now.Add(-48*time.Hour)),
		makeEntry(5, now.Add(-10*24*time.Hour)),
	}
	avg, ok := WeeklyAverage(entries, now)
	require.True(t, ok)
	assert.InDelta(t, 3.0, avg, 1e-9)

	_, ok = WeeklyAverage(entries[2:], now)
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	now := day(10, 20)
	entries := entriesOn(9, 10)
	sum := Summarize(entries, now)
	assert.Equal(t, 2, sum.Count)
	assert.True(t, sum.LastCheckIn.Equal(day(10, 10)))
	assert.True(t, sum.HasWeeklyAverage)
	assert.Equal(t, 2, sum.CurrentStreak)

	text := FormatSummary(sum)
	assert.Contains(t, text, "7-day average: 3.0 / 5")
	assert.Contains(t, text, "Current streak: 2 days")

	empty := FormatSummary(Summarize(nil, now))
	assert.Contains(t, empty, "Entries: 0")
	assert.Contains(t, empty, "Best streak: 0 days")
}

func TestParseRange(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]int{"7": 7, "30": 30, "all": 0, "": 0, " ALL ": 0} {
		got, err := ParseRange(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
	for _, in := range []string{"abc", "-3", "0"} {
		_, err := ParseRange(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestFilterRange(t *testing.T) {
	t.Parallel()

	now := day(20, 12)
	entries := []Entry{
		makeEntry(1, now.Add(-40*24*time.Hour)),
		makeEntry(2, now.Add(-10*24*time.Hour)),
		makeEntry(3, now.Add(-time.Hour)),
	}
	assert.Len(t, FilterRange(entries, 0, now), 3)
	assert.Len(t, FilterRange(entries, 30, now), 2)
	week := FilterRange(entries, 7, now)
	require.Len(t, week, 1)
	assert.Equal(t, 3, week[0].Mood)
}
