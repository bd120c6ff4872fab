package tutor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReply_EmptyInput(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	for _, in := range []string{"", "   ", "\t\n"} {
		turn := e.Respond(&Session{}, in)
		assert.Equal(t, IntentEmpty, turn.Intent)
		assert.Equal(t, emptyInputReply, turn.Text)
	}
}

func TestReply_NonEmptyInputsAlwaysAnswer(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	s := &Session{}
	inputs := []string{
		"hello", "HELP", "quiz", "no idea", "hint", "skip", "tip", "advice please",
		"define concise", "check: i go home", "conditionals", "ok", "x", "exit",
		"what does steady mean?", "I want learn english",
	}
	for _, in := range inputs {
		got := e.Reply(s, in)
		assert.NotEmpty(t, got, "input %q", in)
	}
}

func TestReply_HelpAndExitAreExactAndCaseInsensitive(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	assert.Equal(t, helpReply, e.Reply(&Session{}, "  HeLp "))
	assert.Equal(t, farewellReply, e.Reply(&Session{}, "EXIT"))

	// "help me" is not the help command.
	assert.NotEqual(t, helpReply, e.Reply(&Session{}, "help me"))
}

func TestReply_ExitWinsOverQueuedQuestion(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	s := &Session{}
	e.Reply(s, "quiz")
	require.True(t, s.HasQueued())

	assert.Equal(t, farewellReply, e.Reply(s, "exit"))
	assert.True(t, s.HasQueued(), "exit should not touch the queued question")
}

func TestQuiz_QueuesExactlyOneQuestion(t *testing.T) {
	t.Parallel()

	content := DefaultContent()
	e := New(content)
	s := &Session{}

	turn := e.Respond(s, "Give me a practice question")
	require.Equal(t, IntentQuiz, turn.Intent)
	require.NotNil(t, s.Queued)
	assert.Equal(t, content.Questions[0], *s.Queued)
	assert.Contains(t, turn.Text, content.Questions[0].Prompt)
	assert.Equal(t, 1, s.Rotation)
}

func TestQuiz_RotatesThroughQuestions(t *testing.T) {
	t.Parallel()

	content := DefaultContent()
	e := New(content)
	s := &Session{}

	for i := 0; i < len(content.Questions)*2; i++ {
		turn := e.Respond(s, "quiz")
		require.Equal(t, IntentQuiz, turn.Intent)
		want := content.Questions[i%len(content.Questions)]
		assert.Contains(t, turn.Text, want.Prompt)

		e.Reply(s, "skip")
		require.False(t, s.HasQueued())
	}
}

func TestQuiz_QueuedQuestionCapturesAllInput(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	s := &Session{}
	e.Reply(s, "quiz")
	queued := *s.Queued

	for _, in := range []string{"quiz", "tip", "define concise", "check this", "articles", "I go gym"} {
		turn := e.Respond(s, in)
		assert.Equal(t, IntentRetry, turn.Intent, "input %q", in)
		assert.Equal(t, retryReply, turn.Text)
		require.NotNil(t, s.Queued)
		assert.Equal(t, queued, *s.Queued)
	}
}

func TestQuiz_HintKeepsQuestion(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	s := &Session{}
	e.Reply(s, "quiz")

	for i := 0; i < 3; i++ {
		got := e.Reply(s, "HINT")
		assert.Equal(t, "Hint: "+s.Queued.Hint, got)
		assert.True(t, s.HasQueued())
	}
}

func TestQuiz_SkipClearsAndShowsAnswer(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	s := &Session{}
	e.Reply(s, "quiz")
	expected := s.Queued.ExpectedAnswer

	turn := e.Respond(s, "skip")
	assert.Equal(t, IntentSkip, turn.Intent)
	assert.Contains(t, turn.Text, expected)
	assert.False(t, s.HasQueued())
}

func TestQuiz_CorrectAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		answer string
	}{
		{name: "exact", answer: "I went to the gym yesterday."},
		{name: "case_insensitive", answer: "i WENT to the gym yesterday."},
		{name: "containing", answer: "Maybe: I went to the gym yesterday. Right?"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := NewDefault()
			s := &Session{}
			e.Reply(s, "quiz")

			got := e.Reply(s, tt.answer)
			assert.Contains(t, strings.ToLower(got), "great job")
			assert.False(t, s.HasQueued())
		})
	}
}

func TestQuiz_TypographicApostropheAccepted(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	s := &Session{Rotation: 1}
	e.Reply(s, "quiz")
	require.Contains(t, s.Queued.ExpectedAnswer, "I'd")

	got := e.Reply(s, "Sure, I’d be happy to help.")
	assert.Equal(t, correctReply, got)
}

func TestTip_UsesRotationWithoutAdvancing(t *testing.T) {
	t.Parallel()

	content := DefaultContent()
	e := New(content)

	for r := 0; r < 7; r++ {
		s := &Session{Rotation: r}
		first := e.Respond(s, "tip")
		second := e.Respond(s, "any advice?")

		want := content.Tips[r%len(content.Tips)]
		assert.Equal(t, IntentTip, first.Intent)
		assert.Contains(t, first.Text, want.Title)
		assert.Equal(t, first.Text, second.Text)
		assert.Equal(t, r, s.Rotation)
	}
}

func TestTip_CyclesAsRotationAdvances(t *testing.T) {
	t.Parallel()

	content := DefaultContent()
	e := New(content)
	s := &Session{}

	for i := 0; i < len(content.Tips)*2; i++ {
		got := e.Reply(s, "tip")
		assert.Contains(t, got, content.Tips[i%len(content.Tips)].Title)
		// a rewrite advances the rotation by one
		e.Reply(s, "I like apples")
	}
}

func TestDefinition(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	tests := []struct {
		in   string
		want string
	}{
		{in: "what does succinct mean?", want: "Concise:"},
		{in: "Define NUANCE", want: "Nuance:"},
		{in: "meaning of dependable", want: "Reliable:"},
		{in: "curious", want: "Curious:"},
		{in: "What does inquisitive means", want: "Curious:"},
	}
	for _, tt := range tests {
		turn := e.Respond(&Session{}, tt.in)
		assert.Equal(t, IntentDefinition, turn.Intent, "input %q", tt.in)
		assert.True(t, strings.HasPrefix(turn.Text, tt.want), "input %q got %q", tt.in, turn.Text)
	}
}

func TestCheck_RunsAssessmentOnTrimmedInput(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	turn := e.Respond(&Session{}, "  check: i am wanting a coffee  ")
	assert.Equal(t, IntentCheck, turn.Intent)
	assert.Equal(t, AssessSentenceQuality("check: i am wanting a coffee"), turn.Text)
	assert.Contains(t, turn.Text, "'I want'")
}

func TestGrammar_FirstTopicInListOrderWins(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	tests := []struct {
		in   string
		want string
	}{
		{in: "explain articles", want: "Grammar — Articles:"},
		{in: "prepositions and articles please", want: "Grammar — Articles:"},
		{in: "conditionals or present perfect?", want: "Grammar — Present Perfect:"},
		{in: "Phrasal Verbs", want: "Grammar — Phrasal Verbs:"},
	}
	for _, tt := range tests {
		turn := e.Respond(&Session{}, tt.in)
		assert.Equal(t, IntentGrammar, turn.Intent, "input %q", tt.in)
		assert.True(t, strings.HasPrefix(turn.Text, tt.want), "input %q got %q", tt.in, turn.Text)
	}
}

func TestRewrite_CyclesOpenersAndAdvances(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	s := &Session{}
	for i := 0; i < len(openers)+1; i++ {
		got := e.Reply(s, "i like reading books")
		assert.Equal(t, openers[i%len(openers)]+" I like reading books.", got)
		assert.Equal(t, i+1, s.Rotation)
	}
}

func TestRewrite_ShortInputGetsEncouragement(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	s := &Session{}
	turn := e.Respond(s, "hey")
	assert.Equal(t, IntentRewrite, turn.Intent)
	assert.Equal(t, openers[0]+" "+tooShortReply, turn.Text)
	assert.Equal(t, 1, s.Rotation)

	turn = e.Respond(s, "ok")
	assert.Equal(t, openers[1]+" "+tooShortReply, turn.Text)
	assert.Equal(t, 2, s.Rotation)
}

func TestRespond_NilSession(t *testing.T) {
	t.Parallel()

	e := NewDefault()
	assert.NotPanics(t, func() {
		assert.Equal(t, IntentQuiz, e.Respond(nil, "quiz").Intent)
	})
}

func TestNew_EmptyContentFallsBackToRewrite(t *testing.T) {
	t.Parallel()

	e := New(Content{})
	s := &Session{}
	for _, in := range []string{"quiz me", "a tip please", "define concise", "articles"} {
		assert.Equal(t, IntentRewrite, e.Respond(s, in).Intent, "input %q", in)
	}
	assert.False(t, s.HasQueued())
}
