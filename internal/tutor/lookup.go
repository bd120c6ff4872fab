package tutor

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// definitionFillers are removed before picking the word to define.
var definitionFillers = []string{"?", "meaning of", "define", "what does"}

// DefinitionWord extracts the word a learner is asking about, e.g.
// "what does succinct mean?" yields "succinct". It returns false when
// nothing is left after stripping fillers.
func DefinitionWord(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, f := range definitionFillers {
		lower = strings.ReplaceAll(lower, f, "")
	}
	tokens := strings.Fields(lower)
	for len(tokens) > 1 && (tokens[len(tokens)-1] == "mean" || tokens[len(tokens)-1] == "means") {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return "", false
	}
	return tokens[len(tokens)-1], true
}

// LookupVocabulary finds the entry whose word or synonym equals word,
// ignoring case.
func (e *Engine) LookupVocabulary(word string) (VocabularyEntry, bool) {
	for _, entry := range e.content.Vocabulary {
		if strings.EqualFold(entry.Word, word) {
			return entry, true
		}
		for _, syn := range entry.Synonyms {
			if strings.EqualFold(syn, word) {
				return entry, true
			}
		}
	}
	return VocabularyEntry{}, false
}

func (e *Engine) definitionRequested(_ *Session, in input) bool {
	_, ok := e.vocabularyFor(in)
	return ok
}

func (e *Engine) vocabularyFor(in input) (VocabularyEntry, bool) {
	word, ok := DefinitionWord(in.lower)
	if !ok {
		return VocabularyEntry{}, false
	}
	return e.LookupVocabulary(word)
}

func (e *Engine) define(_ *Session, in input) Turn {
	entry, _ := e.vocabularyFor(in)
	return Turn{Intent: IntentDefinition, Text: FormatVocabularyEntry(entry)}
}

// FormatVocabularyEntry renders an entry as a single reply line.
func FormatVocabularyEntry(entry VocabularyEntry) string {
	return fmt.Sprintf("%s: %s Example: %s Synonyms: %s.",
		capitalizeWords(entry.Word), entry.Meaning, entry.Example, strings.Join(entry.Synonyms, ", "))
}

// GrammarLessonFor returns the first lesson, in content order, whose topic
// appears in text.
func (e *Engine) GrammarLessonFor(text string) (GrammarLesson, bool) {
	lower := strings.ToLower(text)
	for _, lesson := range e.content.Grammar {
		if strings.Contains(lower, strings.ToLower(lesson.Topic)) {
			return lesson, true
		}
	}
	return GrammarLesson{}, false
}

func (e *Engine) grammarRequested(_ *Session, in input) bool {
	_, ok := e.GrammarLessonFor(in.lower)
	return ok
}

func (e *Engine) grammar(_ *Session, in input) Turn {
	lesson, _ := e.GrammarLessonFor(in.lower)
	return Turn{
		Intent: IntentGrammar,
		Text:   fmt.Sprintf("Grammar — %s: %s", capitalizeWords(lesson.Topic), lesson.Explanation),
	}
}

// capitalizeWords upper-cases the first letter of each word and lower-cases
// the rest.
func capitalizeWords(s string) string {
	return cases.Title(language.English).String(s)
}
