package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tutor-cli", "journal.json"), nil
}

// Store reads and writes the journal file. Entries are kept oldest first.
type Store struct {
	Path       string
	MaxEntries int
}

// NewStore returns a store for path. An empty path means DefaultPath and a
// non-positive limit means MaxEntries.
func NewStore(path string, maxEntries int) (*Store, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	if maxEntries <= 0 {
		maxEntries = MaxEntries
	}
	return &Store{Path: path, MaxEntries: maxEntries}, nil
}

// Load returns the stored entries. A missing file is an empty journal. A file
// that does not parse is copied aside to a timestamped backup and reported.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		backupPath := fmt.Sprintf("%s.bak.%s", s.Path, time.Now().Format("20060102-150405"))
		_ = os.WriteFile(backupPath, data, 0600)
		return nil, fmt.Errorf("failed to parse journal (backup created: %s): %w", backupPath, err)
	}
	return entries, nil
}

// Save writes the most recent MaxEntries entries.
func (s *Store) Save(entries []Entry) error {
	if len(entries) > s.MaxEntries {
		entries = entries[len(entries)-s.MaxEntries:]
	}
	if entries == nil {
		entries = []Entry{}
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write temp journal: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("failed to persist journal: %w", err)
	}
	return nil
}

// Add appends one entry and returns the journal as saved.
func (s *Store) Add(entry Entry) ([]Entry, error) {
	entries, err := s.Load()
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry)
	if err := s.Save(entries); err != nil {
		return nil, err
	}
	if len(entries) > s.MaxEntries {
		entries = entries[len(entries)-s.MaxEntries:]
	}
	return entries, nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	return s.Save(nil)
}
