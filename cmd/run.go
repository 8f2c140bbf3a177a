package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lessonbook/internal/app"
	"github.com/abhisek/lessonbook/internal/audio"
	"github.com/abhisek/lessonbook/internal/llm"
)

// runViewer wires the services and launches the TUI.
func runViewer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	origin, err := openOrigin(cfg)
	if err != nil {
		return err
	}

	svc := app.Services{
		Config: cfg,
		Origin: origin,
		Audio:  audio.NewBell(os.Stderr, cfg.Muted, logger.With(zap.String("component", "audio"))),
		Logger: logger,
	}

	// Telemetry is optional; the viewer runs without it.
	st, err := openStore(cfg)
	if err != nil {
		logger.Warn("telemetry disabled", zap.Error(err))
	} else {
		defer st.Close()
		svc.Store = st
	}

	var events llm.EventRecorder
	if svc.Store != nil {
		events = svc.Store.LLMRepo()
	}
	provider, err := llm.NewProvider(ctx, cfg.LLM, events, logger)
	switch {
	case errors.Is(err, llm.ErrDisabled):
	case err != nil:
		logger.Warn("coach provider unavailable, using fixed lines", zap.Error(err))
	default:
		svc.Provider = provider
	}

	logger.Info("starting viewer", zap.String("origin", origin.String()))
	return app.Run(ctx, svc.NewStartScreen(ctx))
}
