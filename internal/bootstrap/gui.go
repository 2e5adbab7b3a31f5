package bootstrap

import (
	"context"

	"github.com/fmfau/fmfau-desktop/internal/application/usecase"
	"github.com/fmfau/fmfau-desktop/internal/infrastructure/webkit"
	"github.com/fmfau/fmfau-desktop/internal/logging"
	"github.com/fmfau/fmfau-desktop/internal/ui"
	"github.com/fmfau/fmfau-desktop/internal/ui/mainloop"
)

// RunGUI starts the kiosk shell and blocks until the GTK application exits.
// Cancelling ctx quits the application. Must be called on a locked OS thread.
func RunGUI(ctx context.Context, args []string) int {
	timer := NewStartupTimer()

	manager, err := LoadConfig()
	if err != nil {
		envLog := logging.NewFromEnv()
		envLog.Error().Err(err).Msg("failed to load configuration")
		return 1
	}
	cfg := manager.Get()
	timer.Mark("config")

	logger, logFile, err := NewLogger(cfg.Logging)
	defer func() { _ = logFile.Close() }()
	ctx = logging.WithContext(ctx, logger)
	log := logging.FromContext(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("file logging disabled")
	}
	timer.Mark("logger")
	LogCoreDumpLimits(ctx)

	pre, err := RunPreflight(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("startup preflight failed")
		return 1
	}
	timer.MarkDuration("preflight", pre.Duration)

	allow, err := NewAllowList(cfg)
	if err != nil {
		log.Error().Err(err).Msg("invalid allowed suffix")
		return 1
	}
	guard := usecase.NewGuardNavigationUseCase(allow)

	session, err := webkit.NewSession(ctx, webkit.SessionOptions{
		Ephemeral: cfg.Session.Ephemeral,
		DataDir:   pre.DataDir,
		CacheDir:  pre.CacheDir,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create web session")
		return 1
	}
	timer.Mark("session")

	manager.OnConfigChange(ConfigApplier(ctx, guard, mainloop.Post))
	if err := manager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config hot reload unavailable")
	}

	app := ui.New(ui.Dependencies{
		Config:  cfg,
		Session: session,
		Guard:   guard,
	})
	stop := context.AfterFunc(ctx, app.Quit)
	defer stop()

	timer.Log(ctx)
	log.Info().
		Str("url", cfg.Kiosk.URL).
		Str("suffix", allow.Suffix()).
		Bool("ephemeral", session.Ephemeral()).
		Msg("starting kiosk shell")

	return app.Run(ctx, args)
}
