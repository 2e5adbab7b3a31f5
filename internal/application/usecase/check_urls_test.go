package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmfau/fmfau-desktop/internal/application/usecase"
	domainurl "github.com/fmfau/fmfau-desktop/internal/domain/url"
)

func TestCheckURLsUseCase_Execute(t *testing.T) {
	allow, err := domainurl.NewAllowList("fmfau.org")
	require.NoError(t, err)
	uc := usecase.NewCheckURLsUseCase(allow)

	t.Run("main-frame verdicts in input order", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), usecase.CheckURLsInput{
			URLs: []string{
				"https://fmfau.org/",
				"sub.fmfau.org/path",
				"https://evilfmfau.org/",
				"https://fmfau.org.evil.com/",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "fmfau.org", out.Suffix)
		require.Len(t, out.Results, 4)
		assert.True(t, out.Results[0].Verdict.Allow)
		assert.True(t, out.Results[1].Verdict.Allow)
		assert.Equal(t, "https://sub.fmfau.org/path", out.Results[1].URL)
		assert.Equal(t, "sub.fmfau.org", out.Results[1].Host)
		assert.False(t, out.Results[2].Verdict.Allow)
		assert.Equal(t, domainurl.ReasonForeignHost, out.Results[2].Verdict.Reason)
		assert.False(t, out.Results[3].Verdict.Allow)
		assert.Equal(t, 2, out.Denied)
	})

	t.Run("unparseable url is denied with an error", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), usecase.CheckURLsInput{URLs: []string{"http://[::1"}})
		require.NoError(t, err)

		require.Len(t, out.Results, 1)
		assert.False(t, out.Results[0].Verdict.Allow)
		assert.ErrorIs(t, out.Results[0].Err, domainurl.ErrInvalidURL)
		assert.Equal(t, 1, out.Denied)
	})

	t.Run("subresources are not filtered", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), usecase.CheckURLsInput{
			URLs: []string{"https://cdn.example.com/app.js"},
			Kind: domainurl.ResourceSubresource,
		})
		require.NoError(t, err)
		assert.True(t, out.Results[0].Verdict.Allow)
		assert.Zero(t, out.Denied)
	})

	t.Run("no urls", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), usecase.CheckURLsInput{})
		assert.ErrorIs(t, err, usecase.ErrNoURLs)
	})
}
