package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MinMood       = 1
	MaxMood       = 5
	DefaultMood   = 3
	DefaultEnergy = "Stable"
	MaxNoteLength = 500
	MaxEntries    = 50
)

var (
	ErrInvalidMood = errors.New("mood must be between 1 and 5")
	ErrNoteTooLong = fmt.Errorf("note must be at most %d characters", MaxNoteLength)
)

// Entry is one mood check-in.
type Entry struct {
	ID       string    `json:"id,omitempty"`
	Mood     int       `json:"mood"`
	Energy   string    `json:"energy"`
	Note     string    `json:"note"`
	Reminder bool      `json:"reminder"`
	Date     time.Time `json:"date"`
}

// NewEntry validates the input and stamps a new check-in at now.
func NewEntry(mood int, energy, note string, reminder bool, now time.Time) (Entry, error) {
	if mood < MinMood || mood > MaxMood {
		return Entry{}, fmt.Errorf("%w: got %d", ErrInvalidMood, mood)
	}
	note = strings.TrimSpace(note)
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return Entry{}, ErrNoteTooLong
	}
	energy = strings.TrimSpace(energy)
	if energy == "" {
		energy = DefaultEnergy
	}
	return Entry{
		ID:       uuid.NewString(),
		Mood:     mood,
		Energy:   energy,
		Note:     note,
		Reminder: reminder,
		Date:     now,
	}, nil
}

// DisplayNote returns the note text, or a placeholder when it is blank.
func (e Entry) DisplayNote() string {
	if n := strings.TrimSpace(e.Note); n != "" {
		return n
	}
	return "(No notes)"
}

var moodLabels = map[int]string{
	1: "Feeling low, go gently.",
	2: "A bit heavy, small steps help.",
	3: "Feels steady.",
	4: "Solid energy today.",
	5: "Feeling bright, enjoy it.",
}

// MoodLabel describes a mood score. Unknown scores read as steady.
func MoodLabel(mood int) string {
	if l, ok := moodLabels[mood]; ok {
		return l
	}
	return moodLabels[DefaultMood]
}

const BreathingReminder = "Breathing break set. Try box breathing: inhale 4, hold 4, exhale 4, hold 4."

var reflectionPrompts = []string{
	"What felt heavy today? What helped lighten it?",
	"Name one boundary you upheld or want to protect.",
	"Who made you feel supported? How can you thank them?",
	"Describe a moment you felt proud, even if it was small.",
	"What would 'rest' look like for you right now?",
}

// ReflectionPrompt returns the i-th writing prompt, wrapping around.
func ReflectionPrompt(i int) string {
	n := len(reflectionPrompts)
	return reflectionPrompts[((i%n)+n)%n]
}

// AppendPrompt adds a reflection prompt below an existing note.
func AppendPrompt(note, prompt string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return prompt
	}
	return note + "\n\n" + prompt
}
