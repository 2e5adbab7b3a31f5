// Package ui provides the GTK4 presentation layer of the kiosk shell.
package ui

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/fmfau/fmfau-desktop/internal/application/usecase"
	"github.com/fmfau/fmfau-desktop/internal/domain/build"
	"github.com/fmfau/fmfau-desktop/internal/infrastructure/config"
	"github.com/fmfau/fmfau-desktop/internal/infrastructure/webkit"
	"github.com/fmfau/fmfau-desktop/internal/logging"
	"github.com/fmfau/fmfau-desktop/internal/ui/mainloop"
	"github.com/fmfau/fmfau-desktop/internal/ui/window"
)

// Dependencies holds everything the UI layer needs, built once at startup.
type Dependencies struct {
	Config  *config.Config
	Session *webkit.Session
	Guard   *usecase.GuardNavigationUseCase
}

// App is the GTK application hosting the shell.
type App struct {
	deps     Dependencies
	gtkApp   *gtk.Application
	shell    *usecase.Shell
	resident bool
}

// New creates the application. Nothing touches GTK until Run.
func New(deps Dependencies) *App {
	return &App{deps: deps}
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	cfg := a.deps.Config

	a.gtkApp = gtk.NewApplication(build.ApplicationID, gio.ApplicationFlagsNone)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}

	factory := window.NewFactory(a.gtkApp, cfg, a.deps.Session, a.deps.Guard)
	a.shell = usecase.NewShell(factory, mainloop.Scheduler{}, applicationLifetime{app: a.gtkApp}, usecase.ShellOptions{
		SplashEnabled:    cfg.Splash.Enabled,
		SplashMinDisplay: cfg.Splash.MinDisplay(),
		PreloadKiosk:     cfg.Kiosk.Preload,
	})
	factory.SetBridge(usecase.NewRelayWindowCommandUseCase(a.shell))

	a.gtkApp.ConnectActivate(func() {
		a.onActivate(ctx)
	})
	a.gtkApp.ConnectShutdown(func() {
		log.Info().Msg("GTK application shutting down")
	})

	log.Info().Str("app_id", build.ApplicationID).Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// onActivate runs on first launch and on every re-activation.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	if a.deps.Config.App.StayResident && !a.resident {
		a.gtkApp.Hold()
		a.resident = true
		log.Debug().Msg("staying resident after last window closes")
	}

	if err := a.shell.Activate(ctx); err != nil {
		log.Error().Err(err).Msg("failed to activate shell")
	}
}

// Quit stops the application from any goroutine.
func (a *App) Quit() {
	mainloop.Post(func() {
		if a.gtkApp != nil {
			a.gtkApp.Quit()
		}
	})
}

// applicationLifetime keeps GTK from quitting while no window is mapped.
type applicationLifetime struct {
	app *gtk.Application
}

func (l applicationLifetime) Hold()    { l.app.Hold() }
func (l applicationLifetime) Release() { l.app.Release() }
func (l applicationLifetime) Quit()    { l.app.Quit() }
