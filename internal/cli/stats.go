package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/soli0222/tutor-cli/internal/metrics"
)

func newStatsCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show practice statistics from recent chat sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runStats(cmd.OutOrStdout(), cfg.Metrics.Path, days)
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "number of days to include")
	return cmd
}

func runStats(out io.Writer, path string, days int) error {
	if days <= 0 {
		days = 7
	}

	today := now()
	since := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()).AddDate(0, 0, -days+1)
	items, err := metrics.LoadSince(path, since)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintf(out, "No practice sessions in the last %d days\n", days)
		return nil
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Date == items[j].Date {
			return items[i].RecordedAt < items[j].RecordedAt
		}
		return items[i].Date < items[j].Date
	})

	var total dailyAgg
	for _, item := range items {
		total.add(item)
	}

	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("Last %d days (%s to %s)", days, since.Format("2006-01-02"), today.Format("2006-01-02"))))
	fmt.Fprintf(out, "Sessions: %d\n", total.sessions)
	fmt.Fprintf(out, "Average turns: %.1f\n", float64(total.turns)/float64(total.sessions))
	fmt.Fprintf(out, "Quizzes: %d (accuracy %.1f%%)\n", total.quizzes, safeRate(total.correct, total.quizzes)*100)
	fmt.Fprintf(out, "Hints: %d, skips: %d, retries: %d\n", total.hints, total.skips, total.retries)
	fmt.Fprintf(out, "Tips: %d, definitions: %d, grammar: %d, checks: %d, rewrites: %d\n",
		total.tips, total.definitions, total.grammar, total.checks, total.rewrites)

	fmt.Fprintln(out, "\nDaily:")
	daily := groupByDate(items)
	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		agg := daily[d]
		fmt.Fprintf(out, "- %s: sessions=%d, turns=%.1f, quizzes=%d, accuracy=%.1f%%\n",
			d,
			agg.sessions,
			float64(agg.turns)/float64(agg.sessions),
			agg.quizzes,
			safeRate(agg.correct, agg.quizzes)*100,
		)
	}

	return nil
}

type dailyAgg struct {
	sessions    int
	turns       int
	quizzes     int
	correct     int
	retries     int
	hints       int
	skips       int
	tips        int
	definitions int
	grammar     int
	checks      int
	rewrites    int
}

func (a *dailyAgg) add(item metrics.SessionMetrics) {
	a.sessions++
	a.turns += item.Turns
	a.quizzes += item.QuizzesAsked
	a.correct += item.AnswersCorrect
	a.retries += item.Retries
	a.hints += item.Hints
	a.skips += item.Skips
	a.tips += item.Tips
	a.definitions += item.Definitions
	a.grammar += item.GrammarLessons
	a.checks += item.Checks
	a.rewrites += item.Rewrites
}

func groupByDate(items []metrics.SessionMetrics) map[string]dailyAgg {
	m := make(map[string]dailyAgg)
	for _, item := range items {
		agg := m[item.Date]
		agg.add(item)
		m[item.Date] = agg
	}
	return m
}

func safeRate(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}
