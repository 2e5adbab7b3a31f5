package window

import (
	"context"
	"errors"
	"fmt"

	wk "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/fmfau/fmfau-desktop/assets"
	"github.com/fmfau/fmfau-desktop/internal/application/port"
	"github.com/fmfau/fmfau-desktop/internal/application/usecase"
	"github.com/fmfau/fmfau-desktop/internal/domain/entity"
	"github.com/fmfau/fmfau-desktop/internal/infrastructure/webkit"
	"github.com/fmfau/fmfau-desktop/internal/logging"
	"github.com/fmfau/fmfau-desktop/internal/ui/input"
)

const kioskTitle = "FMFAU Desktop"

// KioskWindow is the full-screen, undecorated browser window.
type KioskWindow struct {
	*toplevel
	view *wk.WebView
}

var _ port.Window = (*KioskWindow)(nil)

func (f *Factory) newKiosk(ctx context.Context, id entity.WindowID, onClosed func()) (*KioskWindow, error) {
	cfg := f.cfg
	ctx = logging.WithWindow(ctx, entity.RoleKiosk.String(), uint64(id))
	log := logging.FromContext(ctx)

	view, err := webkit.NewWebView(ctx, webkit.ViewOptions{
		Session:          f.session,
		EnableJavaScript: true,
		EnableDevTools:   cfg.Debug.EnableDevTools,
	})
	if err != nil {
		return nil, fmt.Errorf("kiosk view: %w", err)
	}

	webkit.AttachNavigationPolicy(ctx, view, f.guard)

	err = webkit.InstallKioskContent(ctx, view, webkit.ContentOptions{
		Overlay: cfg.Overlay.Enabled,
		OverlayParams: assets.OverlayParams{
			ZoneWidth:   cfg.Overlay.ZoneWidth,
			ZoneHeight:  cfg.Overlay.ZoneHeight,
			HideDelayMs: cfg.Overlay.HideDelayMs,
		},
	}, func(raw string) {
		f.dispatchBridge(ctx, id, raw)
	})
	if err != nil {
		return nil, fmt.Errorf("kiosk content: %w", err)
	}

	startURL := cfg.Kiosk.URL
	webkit.AttachLoadLogging(ctx, view, func() {
		log.Info().Str("url", startURL).Msg("reloading start page after web process crash")
		view.LoadURI(startURL)
	})

	top, err := newToplevel(ctx, f.app, id, entity.RoleKiosk, onClosed)
	if err != nil {
		return nil, err
	}
	top.win.SetTitle(kioskTitle)
	top.win.SetDecorated(false)
	top.win.SetChild(view)
	input.AttachReloadGuard(ctx, top.win)

	view.LoadURI(startURL)
	log.Info().Str("url", startURL).Msg("kiosk window created")

	return &KioskWindow{toplevel: top, view: view}, nil
}

// Show makes the window full screen and presents it.
func (k *KioskWindow) Show() {
	if k.closed {
		return
	}
	k.win.Fullscreen()
	k.win.Present()
}

func (f *Factory) dispatchBridge(ctx context.Context, sender entity.WindowID, raw string) {
	log := logging.FromContext(ctx)
	if f.bridge == nil {
		log.Warn().Msg("bridge message before relay was wired")
		return
	}
	err := f.bridge.HandleRaw(ctx, sender, raw)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrNoTargetWindow):
		log.Debug().Msg("bridge message had no target window")
	default:
		log.Warn().Err(err).Str("message", raw).Msg("bridge message ignored")
	}
}
