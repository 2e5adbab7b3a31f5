package webkit

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/fmfau/fmfau-desktop/internal/logging"
)

// ViewOptions configures a new web view.
type ViewOptions struct {
	// Session must be created before the first view so WebKit adopts it as
	// the default. nil means whatever default WebKit already has.
	Session          *Session
	EnableJavaScript bool
	EnableDevTools   bool
}

// NewWebView creates a web view on the default network session, which is
// the shell's session as long as NewSession ran first.
func NewWebView(ctx context.Context, opts ViewOptions) (*webkit.WebView, error) {
	view := webkit.NewWebView()
	if view == nil {
		return nil, ErrWebViewNotInitialized
	}
	if opts.Session != nil {
		if err := checkSessionMode(opts.Session.ephemeral, viewEphemeral(view)); err != nil {
			return nil, err
		}
	}

	settings := view.Settings()
	if settings == nil {
		return nil, ErrSettingsUnavailable
	}
	settings.SetEnableJavascript(opts.EnableJavaScript)
	settings.SetEnableDeveloperExtras(opts.EnableDevTools)
	settings.SetJavascriptCanOpenWindowsAutomatically(false)
	settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)

	logging.FromContext(ctx).Debug().
		Bool("javascript", opts.EnableJavaScript).
		Bool("devtools", opts.EnableDevTools).
		Bool("ephemeral", opts.Session.Ephemeral()).
		Msg("web view created")

	// No second navigable surface: window.open and target=_blank get nothing.
	view.ConnectCreate(func(action *webkit.NavigationAction) gtk.Widgetter {
		uri := ""
		if action != nil {
			if req := action.Request(); req != nil {
				uri = req.URI()
			}
		}
		logging.FromContext(ctx).Info().Str("url", uri).Msg("new window denied")
		return nil
	})

	return view, nil
}

func viewEphemeral(view *webkit.WebView) bool {
	s := view.NetworkSession()
	return s == nil || s.IsEphemeral()
}
