package tutor

import (
	"fmt"
	"strings"
)

const (
	greeting        = "Hello! I'm your English study buddy. Ask me to explain grammar, check a sentence, or say 'quiz' for practice. Type 'help' to see options or 'exit' to finish."
	emptyInputReply = "Try telling me what you want: grammar help, a vocabulary word, or a practice question."
	helpReply       = "Commands: 'quiz' for a question, 'tip' for a study idea, 'check: <sentence>' for feedback, or ask about grammar topics like conditionals or articles."
	farewellReply   = "Great work today. Keep practicing, and come back anytime!"
)

// Intent names the branch that produced a reply.
type Intent string

const (
	IntentEmpty      Intent = "empty"
	IntentHelp       Intent = "help"
	IntentExit       Intent = "exit"
	IntentHint       Intent = "hint"
	IntentSkip       Intent = "skip"
	IntentCorrect    Intent = "correct"
	IntentRetry      Intent = "retry"
	IntentQuiz       Intent = "quiz"
	IntentTip        Intent = "tip"
	IntentDefinition Intent = "definition"
	IntentCheck      Intent = "check"
	IntentGrammar    Intent = "grammar"
	IntentRewrite    Intent = "rewrite"
)

// Turn is one reply together with the branch that produced it.
type Turn struct {
	Intent Intent
	Text   string
}

// input is a single user line in the forms the rules look at.
type input struct {
	trimmed string
	lower   string
}

func newInput(raw string) input {
	trimmed := strings.TrimSpace(raw)
	return input{trimmed: trimmed, lower: strings.ToLower(trimmed)}
}

// rule is one entry of the dispatch table. Rules are tried in order and the
// first whose match returns true handles the input.
type rule struct {
	match  func(s *Session, in input) bool
	handle func(s *Session, in input) Turn
}

// Engine answers one line of learner input at a time. It holds only static
// content; all mutable state lives in the Session passed to each call.
type Engine struct {
	content Content
	rules   []rule
}

// New builds an Engine over the given content.
func New(content Content) *Engine {
	e := &Engine{content: content}
	e.rules = []rule{
		{match: equals("help"), handle: reply(IntentHelp, helpReply)},
		{match: equals("exit"), handle: reply(IntentExit, farewellReply)},
		{match: questionQueued, handle: e.evaluateAnswer},
		{match: e.quizRequested, handle: e.nextPracticePrompt},
		{match: e.tipRequested, handle: e.tip},
		{match: e.definitionRequested, handle: e.define},
		{match: containsAny("check", "correct", "fix"), handle: e.check},
		{match: e.grammarRequested, handle: e.grammar},
	}
	return e
}

// NewDefault builds an Engine over DefaultContent.
func NewDefault() *Engine {
	return New(DefaultContent())
}

// Greeting is the opening line of a conversation.
func (e *Engine) Greeting() string {
	return greeting
}

// Reply returns the response to one line of input, updating s.
func (e *Engine) Reply(s *Session, raw string) string {
	return e.Respond(s, raw).Text
}

// Respond is Reply that also reports which branch answered.
// A nil session behaves like a fresh one that is thrown away afterwards.
func (e *Engine) Respond(s *Session, raw string) Turn {
	if s == nil {
		s = &Session{}
	}
	in := newInput(raw)
	if in.trimmed == "" {
		return Turn{Intent: IntentEmpty, Text: emptyInputReply}
	}
	for _, r := range e.rules {
		if r.match(s, in) {
			return r.handle(s, in)
		}
	}
	return e.supportiveRewrite(s, in)
}

func equals(word string) func(*Session, input) bool {
	return func(_ *Session, in input) bool {
		return in.lower == word
	}
}

func containsAny(words ...string) func(*Session, input) bool {
	return func(_ *Session, in input) bool {
		for _, w := range words {
			if strings.Contains(in.lower, w) {
				return true
			}
		}
		return false
	}
}

func questionQueued(s *Session, _ input) bool {
	return s.HasQueued()
}

func reply(intent Intent, text string) func(*Session, input) Turn {
	return func(*Session, input) Turn {
		return Turn{Intent: intent, Text: text}
	}
}

func (e *Engine) quizRequested(s *Session, in input) bool {
	return len(e.content.Questions) > 0 && containsAny("quiz", "practice", "question")(s, in)
}

func (e *Engine) tipRequested(s *Session, in input) bool {
	return len(e.content.Tips) > 0 && containsAny("tip", "advice")(s, in)
}

// tip shows the tip under the rotation counter without advancing it.
func (e *Engine) tip(s *Session, _ input) Turn {
	t := e.content.Tips[pick(s.Rotation, len(e.content.Tips))]
	return Turn{
		Intent: IntentTip,
		Text:   fmt.Sprintf("Tip — %s: %s Example: %s", t.Title, t.Detail, t.Example),
	}
}

func (e *Engine) check(_ *Session, in input) Turn {
	return Turn{Intent: IntentCheck, Text: AssessSentenceQuality(in.trimmed)}
}
