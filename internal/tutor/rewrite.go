package tutor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	emptySentenceReply = "Let's build a sentence together about your day."
	tooShortReply      = "Can you share a longer idea? For example: 'I want to improve my pronunciation.'"
	minRewriteLength   = 4
)

// "I go" as whole words, so "I got" is left alone.
var (
	leadingGo = regexp.MustCompile(`^I go\b`)
	goWord    = regexp.MustCompile(`\bI go\b`)
)

var openers = []string{
	"Nice question! Here's a more natural way to say it:",
	"Let's polish that sentence:",
	"Great effort! Try this phrasing:",
	"To sound more fluent, you could say:",
}

// supportiveRewrite is the fallback branch. It always advances the rotation
// counter and leads with an opener, even when the input is too short to
// rewrite and the encouragement stands in for the rewrite.
func (e *Engine) supportiveRewrite(s *Session, in input) Turn {
	opener := openers[pick(s.Rotation, len(openers))]
	s.Rotation++

	improved, _ := RewriteSentence(in.trimmed)
	return Turn{Intent: IntentRewrite, Text: opener + " " + improved}
}

// RewriteSentence lightly polishes a learner sentence. The boolean is false
// when the sentence was too short to work with and the returned text is an
// encouragement instead.
func RewriteSentence(sentence string) (string, bool) {
	trimmed := strings.TrimSpace(sentence)
	if trimmed == "" {
		return emptySentenceReply, false
	}
	if utf8.RuneCountInString(trimmed) < minRewriteLength {
		return tooShortReply, false
	}

	suggestion := trimmed
	if !hasTerminalPunctuation(suggestion) {
		suggestion += "."
	}

	first, size := utf8.DecodeRuneInString(suggestion)
	suggestion = string(unicode.ToUpper(first)) + suggestion[size:]

	lower := strings.ToLower(suggestion)
	if strings.HasPrefix(lower, "i want learn") {
		suggestion = strings.ReplaceAll(suggestion, "I want learn", "I want to learn")
	}
	if leadingGo.MatchString(suggestion) && strings.Contains(lower, "yesterday") {
		suggestion = goWord.ReplaceAllString(suggestion, "I went")
	}

	return suggestion, true
}
