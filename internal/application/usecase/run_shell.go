// Package usecase contains application business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fmfau/fmfau-desktop/internal/application/port"
	"github.com/fmfau/fmfau-desktop/internal/domain/entity"
	"github.com/fmfau/fmfau-desktop/internal/logging"
)

// DefaultSplashMinDisplay is how long the splash stays up when not configured.
const DefaultSplashMinDisplay = 2 * time.Second

// ShellOptions configures window sequencing.
type ShellOptions struct {
	SplashEnabled bool
	// SplashMinDisplay is a presentation delay, not a readiness signal.
	SplashMinDisplay time.Duration
	// PreloadKiosk creates the hidden kiosk window at start so the page loads
	// behind the splash.
	PreloadKiosk bool
}

// windowSlot is the optional owned handle of one window role.
type windowSlot struct {
	lifecycle *entity.WindowLifecycle
	window    port.Window
}

func newWindowSlot(role entity.WindowRole) *windowSlot {
	return &windowSlot{lifecycle: entity.NewWindowLifecycle(role)}
}

// live returns the window if it exists and has not been closed.
func (s *windowSlot) live() (port.Window, bool) {
	if s.window == nil || !s.lifecycle.IsLive() {
		return nil, false
	}
	return s.window, true
}

// Shell owns the splash and kiosk windows and sequences them.
// It is driven entirely from the main loop and needs no locking.
type Shell struct {
	factory   port.WindowFactory
	scheduler port.Scheduler
	lifetime  port.ProcessLifetime
	opts      ShellOptions

	splash      *windowSlot
	kiosk       *windowSlot
	splashTimer port.Timer

	started  bool
	handoff  bool
	splashed bool
}

// NewShell creates a Shell. lifetime may be nil in tests.
func NewShell(factory port.WindowFactory, scheduler port.Scheduler, lifetime port.ProcessLifetime, opts ShellOptions) *Shell {
	if opts.SplashMinDisplay <= 0 {
		opts.SplashMinDisplay = DefaultSplashMinDisplay
	}
	return &Shell{
		factory:   factory,
		scheduler: scheduler,
		lifetime:  lifetime,
		opts:      opts,
		splash:    newWindowSlot(entity.RoleSplash),
		kiosk:     newWindowSlot(entity.RoleKiosk),
	}
}

// Activate is called each time the application is activated. The first
// call starts the shell; later calls re-present the kiosk, recreating it if
// it was closed while the process stayed resident.
func (s *Shell) Activate(ctx context.Context) error {
	if !s.started {
		return s.Start(ctx)
	}
	if _, ok := s.splash.live(); ok {
		return nil
	}
	s.kiosk.lifecycle.Reset()
	return s.revealKiosk(ctx)
}

// Start shows the splash (or the kiosk directly when the splash is disabled).
func (s *Shell) Start(ctx context.Context) error {
	log := logging.FromContext(ctx)
	if s.started {
		return nil
	}
	s.started = true

	if !s.opts.SplashEnabled {
		log.Debug().Msg("splash disabled, showing kiosk")
		return s.revealKiosk(ctx)
	}

	s.beginHandoff()

	if err := s.showSplash(ctx); err != nil {
		log.Error().Err(err).Msg("splash failed, falling back to kiosk")
		return s.revealKiosk(ctx)
	}

	if s.opts.PreloadKiosk {
		if err := s.createKiosk(ctx); err != nil {
			log.Error().Err(err).Msg("kiosk preload failed")
		}
	}

	s.splashTimer = s.scheduler.AfterFunc(s.opts.SplashMinDisplay, func() {
		log.Debug().Dur("after", s.opts.SplashMinDisplay).Msg("splash minimum display elapsed")
		s.CloseSplash(ctx)
	})
	return nil
}

func (s *Shell) showSplash(ctx context.Context) error {
	win, err := s.factory.CreateSplash(ctx, func() { s.handleSplashClosed(ctx) })
	if err != nil {
		return fmt.Errorf("create splash: %w", err)
	}
	if err := s.splash.lifecycle.Transition(entity.StateVisible); err != nil {
		win.Close()
		return err
	}
	s.splash.window = win
	s.splashed = true
	win.Show()
	logging.FromContext(ctx).Info().Uint64("window_id", uint64(win.ID())).Msg("splash shown")
	return nil
}

// CloseSplash closes the splash if it is still open. Safe to call repeatedly.
func (s *Shell) CloseSplash(ctx context.Context) {
	win, ok := s.splash.live()
	if !ok {
		return
	}
	logging.FromContext(ctx).Debug().Uint64("window_id", uint64(win.ID())).Msg("closing splash")
	win.Close()
}

// handleSplashClosed runs when the splash window has been destroyed,
// whether by timer, user or window manager.
func (s *Shell) handleSplashClosed(ctx context.Context) {
	log := logging.FromContext(ctx)
	if err := s.splash.lifecycle.Transition(entity.StateClosed); err != nil {
		log.Debug().Err(err).Msg("ignoring duplicate splash close")
		return
	}
	s.splash.window = nil
	if s.splashTimer != nil {
		s.splashTimer.Stop()
		s.splashTimer = nil
	}
	log.Info().Msg("splash closed")

	if err := s.revealKiosk(ctx); err != nil {
		log.Error().Err(err).Msg("failed to show kiosk")
	}
}

func (s *Shell) createKiosk(ctx context.Context) error {
	if _, ok := s.kiosk.live(); ok {
		return nil
	}
	win, err := s.factory.CreateKiosk(ctx, func() { s.handleKioskClosed(ctx) })
	if err != nil {
		return fmt.Errorf("create kiosk: %w", err)
	}
	if err := s.kiosk.lifecycle.Transition(entity.StateHidden); err != nil {
		win.Close()
		return err
	}
	s.kiosk.window = win
	logging.FromContext(ctx).Info().Uint64("window_id", uint64(win.ID())).Msg("kiosk created")
	return nil
}

// revealKiosk creates the kiosk if needed and makes it visible. It is only
// reached once the splash is closed or was never shown.
func (s *Shell) revealKiosk(ctx context.Context) error {
	defer s.endHandoff()

	if _, ok := s.splash.live(); ok {
		return errors.New("kiosk cannot be shown while the splash is open")
	}
	if err := s.createKiosk(ctx); err != nil {
		return err
	}
	win, _ := s.kiosk.live()
	if s.kiosk.lifecycle.State() == entity.StateHidden {
		if err := s.kiosk.lifecycle.Transition(entity.StateVisible); err != nil {
			return err
		}
	}
	win.Show()
	logging.FromContext(ctx).Info().Uint64("window_id", uint64(win.ID())).Msg("kiosk shown")
	return nil
}

func (s *Shell) handleKioskClosed(ctx context.Context) {
	if err := s.kiosk.lifecycle.Transition(entity.StateClosed); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("ignoring duplicate kiosk close")
		return
	}
	s.kiosk.window = nil
	logging.FromContext(ctx).Info().Msg("kiosk closed")
}

// The application is held from splash creation until the kiosk is shown so
// the toolkit does not quit in the instant no window exists.
func (s *Shell) beginHandoff() {
	if s.handoff || s.lifetime == nil {
		return
	}
	s.handoff = true
	s.lifetime.Hold()
}

func (s *Shell) endHandoff() {
	if !s.handoff || s.lifetime == nil {
		return
	}
	s.handoff = false
	s.lifetime.Release()
}

// State returns the lifecycle state of a role.
func (s *Shell) State(role entity.WindowRole) entity.WindowState {
	if role == entity.RoleSplash {
		return s.splash.lifecycle.State()
	}
	return s.kiosk.lifecycle.State()
}

// SplashShown reports whether a splash was ever displayed.
func (s *Shell) SplashShown() bool {
	return s.splashed
}

// Lookup returns the live window with the given id.
func (s *Shell) Lookup(id entity.WindowID) (port.Window, bool) {
	for _, slot := range []*windowSlot{s.splash, s.kiosk} {
		if win, ok := slot.live(); ok && win.ID() == id {
			return win, true
		}
	}
	return nil, false
}

// Focused returns the live window that currently has focus.
func (s *Shell) Focused() (port.Window, bool) {
	for _, slot := range []*windowSlot{s.kiosk, s.splash} {
		if win, ok := slot.live(); ok && win.IsActive() {
			return win, true
		}
	}
	return nil, false
}

var _ port.WindowLocator = (*Shell)(nil)
