package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osokin/lingvo/internal/app"
	"github.com/osokin/lingvo/internal/config"
	"github.com/osokin/lingvo/internal/dialog"
	"github.com/osokin/lingvo/internal/llm"
	"github.com/osokin/lingvo/internal/reminder"
	"github.com/osokin/lingvo/internal/store"
	"github.com/osokin/lingvo/internal/transport"
	"github.com/osokin/lingvo/internal/tutor"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start a tutoring chat session (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

// runChat opens the store, builds dependencies, and launches the chat
// UI with its event loop.
func runChat(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, logCloser, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer func() { _ = logCloser.Close() }()
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()

	provider, err := llm.NewProviderFromEnv(ctx, st.AuditRepo(), log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Tutor backend not configured:", err)
		fmt.Fprintln(os.Stderr, "Set an API key (e.g. ANTHROPIC_API_KEY); tutoring replies will be unavailable until then.")
		provider = llm.NewMockProvider()
	}

	session := tutor.NewSession(provider, st.VocabRepo(), tutor.Config{
		InitialRepeat:        cfg.Tutor.InitialRepeat,
		QuizProbability:      cfg.Tutor.QuizProbability,
		MaxIntroduceAttempts: cfg.Tutor.MaxAttempts,
		AllowDuplicates:      cfg.Vocab.AllowDuplicates,
		MaxTokens:            cfg.Tutor.MaxTokens,
		Temperature:          cfg.Tutor.Temperature,
	}, log)

	engine := dialog.NewEngine(st.UserRepo(), st.VocabRepo(), dialog.NewStateStore(), session, st.AuditRepo(), log)

	term := transport.NewTerminal(cfg.User.ID)
	scheduler := reminder.NewScheduler(st.UserRepo(), term, cfg.Reminder.SweepInterval, log)
	loop := app.New(engine, term, scheduler, cfg.Reminder.SweepInterval, log)

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopErr := make(chan error, 1)
	go func() { loopErr <- loop.Run(loopCtx) }()

	if err := term.Run(); err != nil {
		cancel()
		<-loopErr
		return err
	}
	cancel()

	if err := <-loopErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
