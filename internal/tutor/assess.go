package tutor

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const looksGoodReply = "Looks good! Try reading it aloud to check rhythm and stress."

// AssessSentenceQuality lists quick fixes for a sentence, or a "looks good"
// message when none apply. Checks run in a fixed order: capitalization,
// ending punctuation, double spaces, past tense after "yesterday", and
// stative "want".
func AssessSentenceQuality(sentence string) string {
	var suggestions []string

	if first, _ := utf8.DecodeRuneInString(sentence); sentence != "" && !unicode.IsUpper(first) {
		word := firstWord(sentence)
		suggestions = append(suggestions, "Capitalize the first word: "+word+" → "+capitalizeWords(word))
	}

	if !hasTerminalPunctuation(sentence) {
		suggestions = append(suggestions, "Add ending punctuation to show sentence completion (., !, or ?).")
	}

	if strings.Contains(sentence, "  ") {
		suggestions = append(suggestions, "Reduce extra spaces so the sentence reads smoothly.")
	}

	lower := strings.ToLower(sentence)
	if strings.Contains(lower, "yesterday") && strings.Contains(lower, " go ") {
		suggestions = append(suggestions, "Use the simple past after time markers like 'yesterday': try 'went'.")
	}

	if strings.Contains(lower, "i am wanting") {
		suggestions = append(suggestions, "Use 'want' instead of 'am wanting' for states: 'I want'.")
	}

	if len(suggestions) == 0 {
		return looksGoodReply
	}

	var sb strings.Builder
	sb.WriteString("Here are some quick fixes:")
	for _, s := range suggestions {
		sb.WriteString("\n• ")
		sb.WriteString(s)
	}
	return sb.String()
}

func hasTerminalPunctuation(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

// firstWord returns the prefix of s up to the first whitespace.
func firstWord(s string) string {
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i]
	}
	return s
}
