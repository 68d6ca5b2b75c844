package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/undercover/internal/app"
	"github.com/abhisek/undercover/internal/game"
	"github.com/abhisek/undercover/internal/logging"
	"github.com/abhisek/undercover/internal/store"
	"github.com/abhisek/undercover/internal/telemetry"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	logger, logCloser, err := logging.Setup(logging.Options{
		Level: cfg.SlogLevel(),
		File:  cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer logCloser.Close()

	participantID, err := store.ParticipantID(ctx, st.SettingsRepo())
	if err != nil {
		return err
	}

	var sink telemetry.Sink = telemetry.NopSink{}
	if !cfg.TelemetryDisabled && cfg.TelemetryURL != "" {
		sink = telemetry.NewHTTPSink(cfg.TelemetryURL, nil)
	}
	dcfg := telemetry.DefaultDispatcherConfig()
	dcfg.Timeout = cfg.TelemetryTimeout
	dcfg.Logger = logger
	dispatcher := telemetry.NewDispatcher(sink, dcfg)

	eventRepo := st.EventRepo()
	env := &game.Env{
		Recorder: game.NewRecorder(eventRepo, dispatcher, participantID, logger),
		Events:   eventRepo,
	}

	logger.Info("starting", "participant", participantID, "telemetry", !cfg.TelemetryDisabled)
	runErr := app.Run(ctx, app.Options{Env: env, Logger: logger})

	// Give in-flight telemetry a chance to land before exiting.
	closeCtx, cancel := context.WithTimeout(context.Background(), cfg.TelemetryTimeout)
	defer cancel()
	if err := dispatcher.Close(closeCtx); err != nil {
		logger.Warn("telemetry still in flight at exit", "error", err)
	}
	stats := dispatcher.Stats()
	logger.Info("exiting", "telemetry_sent", stats.Sent, "telemetry_failed", stats.Failed)

	return runErr
}
