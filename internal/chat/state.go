package chat

import "github.com/soli0222/tutor-cli/internal/tutor"

// Stats tallies what happened during one session.
type Stats struct {
	Turns          int
	QuizzesAsked   int
	AnswersCorrect int
	Retries        int
	Hints          int
	Skips          int
	Tips           int
	Definitions    int
	Checks         int
	GrammarLessons int
	Rewrites       int
}

// Record counts one turn. Empty input and help/exit are turns but nothing
// else.
func (s *Stats) Record(intent tutor.Intent) {
	s.Turns++
	switch intent {
	case tutor.IntentQuiz:
		s.QuizzesAsked++
	case tutor.IntentCorrect:
		s.AnswersCorrect++
	case tutor.IntentRetry:
		s.Retries++
	case tutor.IntentHint:
		s.Hints++
	case tutor.IntentSkip:
		s.Skips++
	case tutor.IntentTip:
		s.Tips++
	case tutor.IntentDefinition:
		s.Definitions++
	case tutor.IntentCheck:
		s.Checks++
	case tutor.IntentGrammar:
		s.GrammarLessons++
	case tutor.IntentRewrite:
		s.Rewrites++
	}
}

// Accuracy is the share of asked quizzes answered correctly.
func (s Stats) Accuracy() float64 {
	if s.QuizzesAsked == 0 {
		return 0
	}
	return float64(s.AnswersCorrect) / float64(s.QuizzesAsked)
}
