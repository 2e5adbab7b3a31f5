// Package bootstrap assembles the shell's dependencies before the GTK main
// loop starts.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/fmfau/fmfau-desktop/internal/application/usecase"
	"github.com/fmfau/fmfau-desktop/internal/domain/build"
	domainurl "github.com/fmfau/fmfau-desktop/internal/domain/url"
	"github.com/fmfau/fmfau-desktop/internal/infrastructure/config"
	"github.com/fmfau/fmfau-desktop/internal/infrastructure/scriptcheck"
	"github.com/fmfau/fmfau-desktop/internal/logging"
)

const logFileName = build.AppName + ".log"

// LoadConfig reads the config file, creating it on first run.
func LoadConfig() (*config.Manager, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return manager, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the process logger from config. The returned closer
// flushes the rotating log file when file logging is enabled.
func NewLogger(cfg config.LoggingConfig) (zerolog.Logger, io.Closer, error) {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Level)
	lc.Format = cfg.Format

	if !cfg.EnableFileLog {
		return logging.New(lc), nopCloser{}, nil
	}

	rotator, err := logging.NewLogRotator(cfg.LogDir, logFileName, cfg.MaxSizeMB, cfg.MaxBackups)
	if err != nil {
		return logging.New(lc), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	lc.File = rotator
	return logging.New(lc), rotator, nil
}

// PreflightResult holds what the parallel startup checks produced.
type PreflightResult struct {
	DataDir  string
	CacheDir string
	Duration time.Duration
}

// RunPreflight validates the bundled page scripts and prepares the web data
// directories concurrently. The first failure is returned.
func RunPreflight(ctx context.Context, cfg *config.Config) (*PreflightResult, error) {
	start := time.Now()
	res := &PreflightResult{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := scriptcheck.ValidateBundled(); err != nil {
			return fmt.Errorf("bundled scripts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if cfg.Session.Ephemeral {
			return nil
		}
		dataDir, cacheDir, err := config.GetWebDataDirs()
		if err != nil {
			return fmt.Errorf("resolve web data dirs: %w", err)
		}
		for _, dir := range []string{dataDir, cacheDir} {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		res.DataDir, res.CacheDir = dataDir, cacheDir
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	res.Duration = time.Since(start)
	return res, nil
}

// NewAllowList builds the navigation allow-list from config.
func NewAllowList(cfg *config.Config) (*domainurl.AllowList, error) {
	return domainurl.NewAllowList(cfg.Kiosk.AllowedSuffix, domainurl.WithSubFrames(cfg.Filter.SubFrames))
}

// ConfigApplier returns a config change callback that rebuilds the allow-list
// and hands it to post, which must run it on the main loop.
func ConfigApplier(ctx context.Context, guard *usecase.GuardNavigationUseCase, post func(func())) func(*config.Config) {
	log := logging.FromContext(ctx)
	return func(cfg *config.Config) {
		allow, err := NewAllowList(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring allow-list change")
			return
		}
		post(func() {
			guard.Replace(ctx, allow)
		})
	}
}
