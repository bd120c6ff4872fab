package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/soli0222/tutor-cli/internal/tutor"
)

const (
	DefaultPrompt = "You: "
	replyLabel    = "Tutor:"
	goodbye       = "Goodbye!"
)

// Options tunes the console loop.
type Options struct {
	// Prompt is printed before each line is read.
	Prompt string
	// Decorate styles the "Tutor:" label. Nil leaves it plain.
	Decorate func(string) string
}

// Session runs an interactive tutor conversation over a reader and writer.
type Session struct {
	engine   *tutor.Engine
	state    tutor.Session
	stats    Stats
	in       io.Reader
	out      io.Writer
	logger   *zap.Logger
	prompt   string
	decorate func(string) string
}

// NewSession creates a console session. A nil logger discards logs.
func NewSession(engine *tutor.Engine, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	return NewSessionWithOptions(engine, in, out, logger, Options{})
}

// NewSessionWithOptions is NewSession with prompt and styling overrides.
func NewSessionWithOptions(engine *tutor.Engine, in io.Reader, out io.Writer, logger *zap.Logger, opts Options) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	decorate := opts.Decorate
	if decorate == nil {
		decorate = func(s string) string { return s }
	}
	return &Session{
		engine:   engine,
		in:       in,
		out:      out,
		logger:   logger,
		prompt:   prompt,
		decorate: decorate,
	}
}

// Run reads lines until the user types exit, input ends, or ctx is done.
// End of input is a normal finish. It returns the session's tallies.
func (s *Session) Run(ctx context.Context) (Stats, error) {
	scanner := bufio.NewScanner(s.in)

	fmt.Fprintln(s.out, s.engine.Greeting())
	s.logger.Debug("chat session started")

	for {
		if err := ctx.Err(); err != nil {
			s.logger.Info("chat session cancelled", zap.Error(err), zap.Int("turns", s.stats.Turns))
			return s.stats, err
		}

		fmt.Fprintf(s.out, "\n%s", s.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return s.stats, fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Fprintln(s.out, goodbye)
			break
		}
		line := scanner.Text()

		turn := s.engine.Respond(&s.state, line)
		s.stats.Record(turn.Intent)
		s.logger.Debug("turn",
			zap.String("intent", string(turn.Intent)),
			zap.Int("rotation", s.state.Rotation),
			zap.Bool("question_queued", s.state.HasQueued()))

		fmt.Fprintf(s.out, "%s %s\n", s.decorate(replyLabel), turn.Text)

		if strings.ToLower(strings.TrimSpace(line)) == "exit" {
			break
		}
	}

	s.logger.Info("chat session finished",
		zap.Int("turns", s.stats.Turns),
		zap.Int("quizzes_asked", s.stats.QuizzesAsked),
		zap.Int("answers_correct", s.stats.AnswersCorrect))

	return s.stats, nil
}

// Stats returns the tallies so far.
func (s *Session) Stats() Stats {
	return s.stats
}

// State returns the tutor state of the conversation.
func (s *Session) State() tutor.Session {
	return s.state
}
