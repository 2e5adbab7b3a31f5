package window

import (
	"context"
	"fmt"

	"github.com/fmfau/fmfau-desktop/assets"
	"github.com/fmfau/fmfau-desktop/internal/application/port"
	"github.com/fmfau/fmfau-desktop/internal/domain/entity"
	"github.com/fmfau/fmfau-desktop/internal/infrastructure/config"
	"github.com/fmfau/fmfau-desktop/internal/infrastructure/webkit"
)

// SplashWindow is the borderless startup window.
//
// GTK 4 has no keep-above or positioning API; stacking and centering are
// left to the compositor.
type SplashWindow struct {
	*toplevel
}

var _ port.Window = (*SplashWindow)(nil)

func (f *Factory) newSplash(ctx context.Context, id entity.WindowID, cfg config.SplashConfig, onClosed func()) (*SplashWindow, error) {
	html, err := assets.RenderSplash(assets.SplashData{Title: cfg.Title, Subtitle: cfg.Subtitle})
	if err != nil {
		return nil, err
	}

	view, err := webkit.NewWebView(ctx, webkit.ViewOptions{Session: f.session})
	if err != nil {
		return nil, fmt.Errorf("splash view: %w", err)
	}

	top, err := newToplevel(ctx, f.app, id, entity.RoleSplash, onClosed)
	if err != nil {
		return nil, err
	}
	top.win.SetTitle(cfg.Title)
	top.win.SetDefaultSize(cfg.Width, cfg.Height)
	top.win.SetDecorated(false)
	top.win.SetResizable(false)
	top.win.SetChild(view)

	view.LoadHtml(html, "about:blank")
	return &SplashWindow{toplevel: top}, nil
}

// Show presents the splash.
func (s *SplashWindow) Show() {
	if s.closed {
		return
	}
	s.win.Present()
}
