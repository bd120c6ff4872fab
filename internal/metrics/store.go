package metrics

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// SessionMetrics is one finished chat session.
type SessionMetrics struct {
	SessionID      string `json:"session_id"`
	Date           string `json:"date"`
	RecordedAt     string `json:"recorded_at"`
	Turns          int    `json:"turns"`
	QuizzesAsked   int    `json:"quizzes_asked"`
	AnswersCorrect int    `json:"answers_correct"`
	Retries        int    `json:"retries"`
	Hints          int    `json:"hints"`
	Skips          int    `json:"skips"`
	Tips           int    `json:"tips"`
	Definitions    int    `json:"definitions"`
	Checks         int    `json:"checks"`
	GrammarLessons int    `json:"grammar_lessons"`
	Rewrites       int    `json:"rewrites"`
}

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tutor-cli", "metrics.jsonl"), nil
}

// Append writes item as one JSON line, filling SessionID, Date and
// RecordedAt when they are empty.
func Append(path string, item SessionMetrics) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}
	now := time.Now()
	if item.SessionID == "" {
		item.SessionID = uuid.NewString()
	}
	if item.Date == "" {
		item.Date = now.Format("2006-01-02")
	}
	if item.RecordedAt == "" {
		item.RecordedAt = now.Format(time.RFC3339)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create metrics dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open metrics file: %w", err)
	}
	defer func() { _ = f.Close() }()

	b, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to append metrics: %w", err)
	}
	return nil
}

// LoadSince returns records dated on or after since. Malformed lines are
// skipped and a missing file yields no records.
func LoadSince(path string, since time.Time) ([]SessionMetrics, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open metrics file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var out []SessionMetrics
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Bytes()
		if len(line) == 0 {
			continue
		}
		var item SessionMetrics
		if err := json.Unmarshal(line, &item); err != nil {
			continue
		}
		if item.Date != "" {
			d, err := time.ParseInLocation("2006-01-02", item.Date, since.Location())
			if err == nil && d.Before(since) {
				continue
			}
		}
		out = append(out, item)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read metrics: %w", err)
	}
	return out, nil
}
