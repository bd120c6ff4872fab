package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrNoEntries = errors.New("no entries to export yet")

// ExportJSON renders entries as an indented JSON array.
func ExportJSON(entries []Entry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entries: %w", err)
	}
	return append(b, '\n'), nil
}

type markdownFrontmatter struct {
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Entries     int    `yaml:"entries"`
	AverageMood string `yaml:"average_mood"`
	Layout      string `yaml:"layout"`
	Category    string `yaml:"category"`
}

// ExportMarkdown renders entries as a Markdown document with YAML
// frontmatter, oldest entry first.
func ExportMarkdown(entries []Entry, exportedAt time.Time) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	total := 0
	for _, e := range entries {
		total += e.Mood
	}
	fm := markdownFrontmatter{
		Title:       "Mood journal " + exportedAt.Format("2006-01-02"),
		Date:        exportedAt.Format("2006-01-02T15:04"),
		Entries:     len(entries),
		AverageMood: fmt.Sprintf("%.1f", float64(total)/float64(len(entries))),
		Layout:      "post",
		Category:    "journal",
	}
	head, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(head)
	sb.WriteString("---\n\n")
	sb.WriteString("# Mood journal\n\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "## %s · Mood %d/5\n\n", e.Date.Format("2006-01-02 15:04"), e.Mood)
		fmt.Fprintf(&sb, "Energy: %s\n\n", e.Energy)
		sb.WriteString(e.DisplayNote())
		sb.WriteString("\n\n")
	}
	sb.WriteString("# Trend\n\n")
	sb.WriteString(Insight(entries))
	sb.WriteString("\n")

	return []byte(sb.String()), nil
}
