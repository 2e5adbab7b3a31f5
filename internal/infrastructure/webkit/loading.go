package webkit

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/fmfau/fmfau-desktop/internal/logging"
)

// AttachLoadLogging logs page load progress. Failed loads keep WebKit's
// default error page. onCrash, when set, runs after the web process dies.
func AttachLoadLogging(ctx context.Context, view *webkit.WebView, onCrash func()) {
	log := logging.FromContext(ctx)

	view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		switch event {
		case webkit.LoadStarted:
			log.Debug().Str("url", view.URI()).Msg("load started")
		case webkit.LoadRedirected:
			log.Debug().Str("url", view.URI()).Msg("load redirected")
		case webkit.LoadCommitted:
			log.Debug().Str("url", view.URI()).Msg("load committed")
		case webkit.LoadFinished:
			log.Info().Str("url", view.URI()).Msg("load finished")
		}
	})

	view.ConnectLoadFailed(func(_ webkit.LoadEvent, failingURI string, err error) bool {
		log.Warn().Err(err).Str("url", failingURI).Msg("load failed")
		return false
	})

	view.ConnectWebProcessTerminated(func(reason webkit.WebProcessTerminationReason) {
		log.Error().Str("reason", reason.String()).Msg("web process terminated")
		if onCrash != nil {
			onCrash()
		}
	})
}
