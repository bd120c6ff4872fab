package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soli0222/tutor-cli/internal/chat"
	"github.com/soli0222/tutor-cli/internal/metrics"
	"github.com/soli0222/tutor-cli/internal/tutor"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive practice session (default)",
		RunE:  runChat,
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	session := chat.NewSessionWithOptions(tutor.NewDefault(), cmd.InOrStdin(), cmd.OutOrStdout(), logger, chat.Options{
		Prompt:   cfg.Chat.Prompt,
		Decorate: func(s string) string { return tutorLabelStyle.Render(s) },
	})

	stats, err := session.Run(cmd.Context())
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("chat session failed: %w", err)
	}

	if cfg.Chat.RecordMetrics && stats.Turns > 0 {
		if err := metrics.Append(cfg.Metrics.Path, sessionMetrics(stats)); err != nil {
			logger.Warn("failed to record session metrics", zap.Error(err))
		}
	}
	return nil
}

func sessionMetrics(s chat.Stats) metrics.SessionMetrics {
	return metrics.SessionMetrics{
		Date:           now().Format("2006-01-02"),
		Turns:          s.Turns,
		QuizzesAsked:   s.QuizzesAsked,
		AnswersCorrect: s.AnswersCorrect,
		Retries:        s.Retries,
		Hints:          s.Hints,
		Skips:          s.Skips,
		Tips:           s.Tips,
		Definitions:    s.Definitions,
		Checks:         s.Checks,
		GrammarLessons: s.GrammarLessons,
		Rewrites:       s.Rewrites,
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <sentence...>",
		Short: "Get quick feedback on one sentence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence := strings.Join(args, " ")
			fmt.Fprintln(cmd.OutOrStdout(), tutor.AssessSentenceQuality(sentence))
			return nil
		},
	}
}
