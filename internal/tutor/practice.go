package tutor

import (
	"fmt"
	"strings"
)

const (
	correctReply = "Great job! That sounds natural. Want another quiz?"
	retryReply   = "Not quite. Check tense and word order. Type 'hint' for help or 'skip' to see an example."
)

// apostrophes folds typographic quotes so "I’d" and "I'd" compare equal.
var apostrophes = strings.NewReplacer("’", "'", "‘", "'")

// normalizeAnswer lowercases and trims s and folds typographic apostrophes,
// so answers typed on phones match the expected text.
func normalizeAnswer(s string) string {
	return apostrophes.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// nextPracticePrompt queues the question under the rotation counter and
// advances it.
func (e *Engine) nextPracticePrompt(s *Session, _ input) Turn {
	q := e.content.Questions[pick(s.Rotation, len(e.content.Questions))]
	s.Rotation++
	s.Queued = &q
	return Turn{
		Intent: IntentQuiz,
		Text:   fmt.Sprintf("Practice: %s (Type your answer, or 'hint'/'skip')", q.Prompt),
	}
}

// evaluateAnswer handles every input while a question is queued.
func (e *Engine) evaluateAnswer(s *Session, in input) Turn {
	q := s.Queued
	answer := normalizeAnswer(in.trimmed)

	switch answer {
	case "hint":
		return Turn{Intent: IntentHint, Text: "Hint: " + q.Hint}
	case "skip":
		s.Queued = nil
		return Turn{Intent: IntentSkip, Text: "No problem. A natural answer is: " + q.ExpectedAnswer}
	}

	expected := normalizeAnswer(q.ExpectedAnswer)
	if answer == expected || strings.Contains(answer, expected) {
		s.Queued = nil
		return Turn{Intent: IntentCorrect, Text: correctReply}
	}
	return Turn{Intent: IntentRetry, Text: retryReply}
}
