package scriptcheck

import (
	"testing"

	"github.com/fmfau/fmfau-desktop/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBundled(t *testing.T) {
	require.NoError(t, ValidateBundled())
}

func TestValidate_ReportsEveryFailure(t *testing.T) {
	err := Validate([]assets.NamedScript{
		{Name: "ok.js", Source: "var a = 1;"},
		{Name: "broken.js", Source: "function ("},
		{Name: "also-broken.js", Source: "}"},
	})
	require.ErrorIs(t, err, ErrInvalidScript)
	assert.Contains(t, err.Error(), "broken.js")
	assert.Contains(t, err.Error(), "also-broken.js")
	assert.NotContains(t, err.Error(), "ok.js")
}
