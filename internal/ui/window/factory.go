package window

import (
	"context"
	"sync/atomic"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/fmfau/fmfau-desktop/internal/application/port"
	"github.com/fmfau/fmfau-desktop/internal/domain/entity"
	"github.com/fmfau/fmfau-desktop/internal/infrastructure/config"
	"github.com/fmfau/fmfau-desktop/internal/infrastructure/webkit"
)

// BridgeHandler receives raw bridge messages from a window.
type BridgeHandler interface {
	HandleRaw(ctx context.Context, sender entity.WindowID, raw string) error
}

// Factory creates GTK toplevels for the shell.
type Factory struct {
	app     *gtk.Application
	cfg     *config.Config
	session *webkit.Session
	guard   webkit.NavigationGuard
	bridge  BridgeHandler

	nextID atomic.Uint64
}

var _ port.WindowFactory = (*Factory)(nil)

// NewFactory returns a factory. session may be nil to use WebKit's default.
func NewFactory(app *gtk.Application, cfg *config.Config, session *webkit.Session, guard webkit.NavigationGuard) *Factory {
	return &Factory{app: app, cfg: cfg, session: session, guard: guard}
}

// SetBridge wires the relay. It is set after the shell exists because the
// relay resolves windows through it.
func (f *Factory) SetBridge(h BridgeHandler) {
	f.bridge = h
}

func (f *Factory) CreateSplash(ctx context.Context, onClosed func()) (port.Window, error) {
	if f.app == nil {
		return nil, ErrNoApplication
	}
	return f.newSplash(ctx, f.allocID(), f.cfg.Splash, onClosed)
}

func (f *Factory) CreateKiosk(ctx context.Context, onClosed func()) (port.Window, error) {
	if f.app == nil {
		return nil, ErrNoApplication
	}
	return f.newKiosk(ctx, f.allocID(), onClosed)
}

func (f *Factory) allocID() entity.WindowID {
	return entity.WindowID(f.nextID.Add(1))
}
