package webkit

import (
	"testing"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainurl "github.com/fmfau/fmfau-desktop/internal/domain/url"
)

func TestNavigationActionKind(t *testing.T) {
	tests := []struct {
		name      string
		typ       webkit.NavigationType
		frameName string
		redirect  bool
		wantKind  domainurl.ResourceKind
		wantJudge bool
	}{
		{name: "link click", typ: webkit.NavigationTypeLinkClicked, wantKind: domainurl.ResourceMainFrame, wantJudge: true},
		{name: "form submit", typ: webkit.NavigationTypeFormSubmitted, wantKind: domainurl.ResourceMainFrame, wantJudge: true},
		{name: "form resubmit", typ: webkit.NavigationTypeFormResubmitted, wantKind: domainurl.ResourceMainFrame, wantJudge: true},
		{name: "history", typ: webkit.NavigationTypeBackForward, wantKind: domainurl.ResourceMainFrame, wantJudge: true},
		{name: "redirect of script load", typ: webkit.NavigationTypeOther, redirect: true, wantKind: domainurl.ResourceMainFrame, wantJudge: true},
		{name: "redirect wins over frame name", typ: webkit.NavigationTypeLinkClicked, frameName: "embed", redirect: true, wantKind: domainurl.ResourceMainFrame, wantJudge: true},
		{name: "named target frame", typ: webkit.NavigationTypeLinkClicked, frameName: "embed", wantKind: domainurl.ResourceSubFrame, wantJudge: true},
		{name: "iframe src or script", typ: webkit.NavigationTypeOther, wantJudge: false},
		{name: "reload", typ: webkit.NavigationTypeReload, wantJudge: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, judged := navigationActionKind(tt.typ, tt.frameName, tt.redirect)
			assert.Equal(t, tt.wantJudge, judged)
			if tt.wantJudge {
				assert.Equal(t, tt.wantKind, kind)
			}
		})
	}
}

// A foreign form post is refused at the action stage, before its body is sent.
func TestNavigationActionKind_ForeignFormIsDenied(t *testing.T) {
	allow, err := domainurl.NewAllowList("fmfau.org")
	require.NoError(t, err)

	kind, judged := navigationActionKind(webkit.NavigationTypeFormSubmitted, "", false)
	require.True(t, judged)

	verdict, err := allow.Evaluate(domainurl.NavigationRequest{URL: "https://evil.example/collect", Kind: kind})
	require.NoError(t, err)
	assert.False(t, verdict.Allow)
}
