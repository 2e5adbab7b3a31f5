package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fmfau/fmfau-desktop/internal/application/usecase"
	"github.com/fmfau/fmfau-desktop/internal/cli/styles"
	"github.com/fmfau/fmfau-desktop/internal/domain/build"
	domainurl "github.com/fmfau/fmfau-desktop/internal/domain/url"
)

func TestCheckRenderer_Render(t *testing.T) {
	r := styles.NewCheckRenderer(styles.NewTheme())

	out := r.Render(&usecase.CheckURLsOutput{
		Suffix: "fmfau.org",
		Results: []usecase.URLCheck{
			{URL: "https://fmfau.org/", Verdict: domainurl.Verdict{Allow: true, Reason: domainurl.ReasonAllowedHost}},
			{URL: "https://evilfmfau.org/", Verdict: domainurl.Verdict{Reason: domainurl.ReasonForeignHost}},
		},
		Denied: 1,
	})

	require.Contains(t, out, "fmfau.org")
	require.Contains(t, out, "https://evilfmfau.org/")
	require.Contains(t, out, domainurl.ReasonForeignHost)
	require.Contains(t, out, "allow")
	require.Contains(t, out, "deny")
	require.Contains(t, out, "1 of 2 denied")
}

func TestCheckRenderer_ErrorReplacesReason(t *testing.T) {
	r := styles.NewCheckRenderer(styles.NewTheme())

	out := r.Render(&usecase.CheckURLsOutput{
		Suffix:  "fmfau.org",
		Results: []usecase.URLCheck{{URL: "http://[::1", Err: errors.New("parse failure"), Verdict: domainurl.Verdict{Reason: domainurl.ReasonUnparseable}}},
		Denied:  1,
	})
	require.Contains(t, out, "parse failure")
	require.NotContains(t, out, domainurl.ReasonUnparseable)
}

func TestVersionRenderer_Render(t *testing.T) {
	r := styles.NewVersionRenderer(styles.NewTheme())

	out := r.Render(build.Info{Version: "1.2.3", Commit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25"})
	require.Contains(t, out, "1.2.3")
	require.Contains(t, out, "abc123")
	require.Contains(t, out, build.RepoURL())
}

func TestConfigRenderer_RenderPath(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	require.Contains(t, r.RenderPath("/tmp/fmfau-desktop/config.toml", true), "exists")
	require.Contains(t, r.RenderPath("/tmp/fmfau-desktop/config.toml", false), "first run")
}
