package webkit

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	domainurl "github.com/fmfau/fmfau-desktop/internal/domain/url"
	"github.com/fmfau/fmfau-desktop/internal/logging"
)

// NavigationGuard decides whether a request may proceed.
type NavigationGuard interface {
	Allow(ctx context.Context, req domainurl.NavigationRequest) bool
}

// AttachNavigationPolicy routes view's policy decisions through guard.
//
// Navigation actions are judged before their request leaves the machine.
// WebKit does not say which frame an action targets, so see
// navigationActionKind for how they are classified. The response decision
// flagged as the main frame's main resource is checked as well, which
// catches script-driven loads and the final hop of any redirect chain.
func AttachNavigationPolicy(ctx context.Context, view *webkit.WebView, guard NavigationGuard) {
	log := logging.FromContext(ctx).With().Str("component", "navigation-policy").Logger()

	view.ConnectDecidePolicy(func(decision webkit.PolicyDecisioner, typ webkit.PolicyDecisionType) bool {
		req, ok := classifyDecision(decision, typ)
		if !ok {
			return false
		}
		if guard.Allow(ctx, req) {
			return false
		}
		webkit.BasePolicyDecision(decision).Ignore()
		log.Debug().Str("url", req.URL).Str("kind", req.Kind.String()).Msg("policy decision ignored")
		return true
	})
}

// classifyDecision maps a WebKit decision onto a NavigationRequest.
// ok is false for decisions the filter has no opinion on.
func classifyDecision(decision webkit.PolicyDecisioner, typ webkit.PolicyDecisionType) (domainurl.NavigationRequest, bool) {
	switch typ {
	case webkit.PolicyDecisionTypeNewWindowAction:
		uri := ""
		if nav, ok := decision.(*webkit.NavigationPolicyDecision); ok {
			uri = navigationURI(nav)
		}
		return domainurl.NavigationRequest{URL: uri, Kind: domainurl.ResourceNewWindow}, true

	case webkit.PolicyDecisionTypeNavigationAction:
		nav, ok := decision.(*webkit.NavigationPolicyDecision)
		if !ok {
			return domainurl.NavigationRequest{Kind: domainurl.ResourceMainFrame}, true
		}
		action := nav.NavigationAction()
		if action == nil {
			return domainurl.NavigationRequest{Kind: domainurl.ResourceMainFrame}, true
		}
		kind, judged := navigationActionKind(action.NavigationType(), action.FrameName(), action.IsRedirect())
		if !judged {
			return domainurl.NavigationRequest{}, false
		}
		return domainurl.NavigationRequest{URL: navigationURI(nav), Kind: kind}, true

	case webkit.PolicyDecisionTypeResponse:
		resp, ok := decision.(*webkit.ResponsePolicyDecision)
		if !ok {
			// Unknown shape: treat as a main-frame load with no URL, which is denied.
			return domainurl.NavigationRequest{Kind: domainurl.ResourceMainFrame}, true
		}
		kind := domainurl.ResourceSubFrame
		if resp.IsMainFrameMainResource() {
			kind = domainurl.ResourceMainFrame
		}
		uri := ""
		if r := resp.Request(); r != nil {
			uri = r.URI()
		}
		return domainurl.NavigationRequest{URL: uri, Kind: kind}, true

	default:
		return domainurl.NavigationRequest{}, false
	}
}

// navigationActionKind decides how a navigation action is filtered.
//
// A redirect or a user-driven navigation (link, form, history) with no
// named target frame is treated as a main-frame load. Anything else, such
// as an iframe src or a script assignment to location, is left for the
// response decision, since those also fire for sub-frames and blocking
// them here would break cross-origin embeds.
func navigationActionKind(typ webkit.NavigationType, frameName string, redirect bool) (domainurl.ResourceKind, bool) {
	if redirect {
		return domainurl.ResourceMainFrame, true
	}
	if frameName != "" {
		return domainurl.ResourceSubFrame, true
	}
	switch typ {
	case webkit.NavigationTypeLinkClicked,
		webkit.NavigationTypeFormSubmitted,
		webkit.NavigationTypeFormResubmitted,
		webkit.NavigationTypeBackForward:
		return domainurl.ResourceMainFrame, true
	default:
		return 0, false
	}
}

func navigationURI(nav *webkit.NavigationPolicyDecision) string {
	action := nav.NavigationAction()
	if action == nil {
		return ""
	}
	req := action.Request()
	if req == nil {
		return ""
	}
	return req.URI()
}
