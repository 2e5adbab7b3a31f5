package webkit

import (
	"context"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/fmfau/fmfau-desktop/assets"
	"github.com/fmfau/fmfau-desktop/internal/domain/bridge"
	"github.com/fmfau/fmfau-desktop/internal/logging"
)

// ContentOptions controls what is injected into kiosk pages.
type ContentOptions struct {
	Overlay       bool
	OverlayParams assets.OverlayParams
}

// InstallKioskContent registers the bridge handler and adds the bundled
// scripts and styles to view. Everything lives in the isolated world so page
// script can neither see nor call the bridge. Scripts run at document end on
// the top frame of every load.
func InstallKioskContent(ctx context.Context, view *webkit.WebView, opts ContentOptions, onMessage func(raw string)) error {
	log := logging.FromContext(ctx).With().Str("component", "kiosk-content").Logger()

	ucm := view.UserContentManager()
	if ucm == nil {
		return ErrUserContentUnavailable
	}

	// Connect before registering so no early message is lost.
	ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		if value == nil {
			log.Warn().Msg("bridge message without value")
			return
		}
		onMessage(value.ToJson(0))
	})
	if !ucm.RegisterScriptMessageHandler(bridge.HandlerName, bridge.WorldName) {
		return ErrHandlerRegistration
	}

	addScript := func(name, source string) {
		ucm.AddScript(webkit.NewUserScriptForWorld(
			source,
			webkit.UserContentInjectTopFrame,
			webkit.UserScriptInjectAtDocumentEnd,
			bridge.WorldName,
			nil,
			nil,
		))
		log.Debug().Str("script", name).Int("bytes", len(source)).Msg("user script added")
	}

	addScript("bridge.js", assets.BridgeScript)

	if opts.Overlay {
		configScript, err := assets.OverlayConfigScript(opts.OverlayParams)
		if err != nil {
			return err
		}
		addScript("overlay-config", configScript)
		addScript("overlay.js", assets.OverlayScript)

		ucm.AddStyleSheet(webkit.NewUserStyleSheetForWorld(
			assets.OverlayStyles,
			webkit.UserContentInjectTopFrame,
			webkit.UserStyleLevelUser,
			bridge.WorldName,
			nil,
			nil,
		))
	}

	log.Info().
		Str("version", assets.Version).
		Str("world", bridge.WorldName).
		Bool("overlay", opts.Overlay).
		Msg("kiosk content installed")
	return nil
}
