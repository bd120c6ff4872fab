package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soli0222/tutor-cli/internal/journal"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Record and review mood check-ins",
	}
	cmd.AddCommand(newJournalAddCmd())
	cmd.AddCommand(newJournalListCmd())
	cmd.AddCommand(newJournalSummaryCmd())
	cmd.AddCommand(newJournalChartCmd())
	cmd.AddCommand(newJournalExportCmd())
	cmd.AddCommand(newJournalClearCmd())
	return cmd
}

func openJournal() (*journal.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return journal.NewStore(cfg.Journal.Path, cfg.Journal.MaxEntries)
}

func newJournalAddCmd() *cobra.Command {
	var (
		mood     int
		energy   string
		note     string
		reminder bool
		prompt   int
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a mood check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("prompt") {
				note = journal.AppendPrompt(note, journal.ReflectionPrompt(prompt))
			}

			entry, err := journal.NewEntry(mood, energy, note, reminder, now())
			if err != nil {
				return err
			}
			entries, err := store.Add(entry)
			if err != nil {
				return err
			}
			logger.Debug("journal entry saved", zap.String("id", entry.ID), zap.Int("entries", len(entries)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Saved check-in (mood %d/5). %s\n", entry.Mood, journal.MoodLabel(entry.Mood))
			if entry.Reminder {
				fmt.Fprintln(out, journal.BreathingReminder)
			}
			fmt.Fprintln(out, mutedStyle.Render(journal.Insight(entries)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&mood, "mood", "m", journal.DefaultMood, "mood from 1 (low) to 5 (bright)")
	cmd.Flags().StringVarP(&energy, "energy", "e", journal.DefaultEnergy, "energy level, e.g. Drained, Stable, Energized")
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-form note")
	cmd.Flags().BoolVar(&reminder, "reminder", false, "add a breathing break reminder")
	cmd.Flags().IntVar(&prompt, "prompt", 0, "append reflection prompt N (0-4) to the note")
	return cmd
}

func newJournalListCmd() *cobra.Command {
	var rangeFlag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show check-ins grouped by day and time of day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := journal.ParseRange(rangeFlag)
			if err != nil {
				return err
			}
			store, err := openJournal()
			if err != nil {
				return err
			}
			entries, err := store.Load()
			if err != nil {
				return err
			}
			visible := journal.FilterRange(entries, days, now())
			fmt.Fprint(cmd.OutOrStdout(), journal.FormatTimeline(visible, len(entries), time.Local))
			return nil
		},
	}
	cmd.Flags().StringVarP(&rangeFlag, "range", "r", "all", "window in days (7, 30) or all")
	return cmd
}

func newJournalSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show entry count, weekly average and streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal()
			if err != nil {
				return err
			}
			entries, err := store.Load()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), journal.FormatSummary(journal.Summarize(entries, now())))
			return nil
		},
	}
}

func newJournalChartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Plot the most recent moods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal()
			if err != nil {
				return err
			}
			entries, err := store.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headingStyle.Render("Mood trend"))
			if len(entries) > 0 {
				fmt.Fprintln(out, chartStyle.Render(journal.Chart(entries)))
			}
			fmt.Fprintln(out, journal.Insight(entries))
			return nil
		},
	}
}

func newJournalExportCmd() *cobra.Command {
	var (
		format  string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal as JSON or Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal()
			if err != nil {
				return err
			}
			entries, err := store.Load()
			if err != nil {
				return err
			}

			var data []byte
			switch strings.ToLower(format) {
			case "json":
				data, err = journal.ExportJSON(entries)
			case "md", "markdown":
				data, err = journal.ExportMarkdown(entries, now())
			default:
				return fmt.Errorf("unknown export format %q (expected json or md)", format)
			}
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
				return fmt.Errorf("failed to create export directory: %w", err)
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "export format: json or md")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

func newJournalClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprint(out, "Clear all journal entries? (y/N) ")
				scanner := bufio.NewScanner(cmd.InOrStdin())
				answer := ""
				if scanner.Scan() {
					answer = strings.TrimSpace(strings.ToLower(scanner.Text()))
				}
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(out, "Journal cleared.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
