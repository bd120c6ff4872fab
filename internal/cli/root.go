package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soli0222/tutor-cli/internal/config"
	"github.com/soli0222/tutor-cli/internal/logging"
)

var (
	flagConfigDir string
	flagVerbose   bool

	logger = zap.NewNop()
	now    = time.Now
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tutor-cli",
		Short:        "Practice English with a rule-based tutor and keep a mood journal",
		SilenceUsage: true,
		RunE:         runChat,
	}

	cmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config and data directory (default ~/.config/tutor-cli)")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(newChatCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newJournalCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configDir resolves the --config-dir flag.
func configDir() (string, error) {
	if flagConfigDir != "" {
		return flagConfigDir, nil
	}
	return config.Dir()
}

// loadConfig reads the configuration and replaces the package logger with
// one built from it.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flagConfigDir != "" {
		cfg, err = config.LoadFrom(flagConfigDir)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if flagVerbose {
		level = "debug"
	}
	l, err := logging.New(level, cfg.Log.File)
	if err != nil {
		return nil, err
	}
	logger = l
	logger.Debug("config loaded", zap.String("journal", cfg.Journal.Path), zap.String("metrics", cfg.Metrics.Path))
	return cfg, nil
}
