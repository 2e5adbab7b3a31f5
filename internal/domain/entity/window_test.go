package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowLifecycle_SplashPath(t *testing.T) {
	l := NewWindowLifecycle(RoleSplash)
	assert.Equal(t, StateUncreated, l.State())
	assert.False(t, l.IsLive())

	require.NoError(t, l.Transition(StateVisible))
	assert.True(t, l.IsLive())
	require.NoError(t, l.Transition(StateClosed))
	assert.False(t, l.IsLive())
}

func TestWindowLifecycle_SplashNeverHidden(t *testing.T) {
	l := NewWindowLifecycle(RoleSplash)
	err := l.Transition(StateHidden)
	require.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, StateUncreated, l.State())
}

func TestWindowLifecycle_KioskPath(t *testing.T) {
	l := NewWindowLifecycle(RoleKiosk)
	require.ErrorIs(t, l.Transition(StateVisible), ErrIllegalTransition)

	require.NoError(t, l.Transition(StateHidden))
	require.NoError(t, l.Transition(StateVisible))
	require.NoError(t, l.Transition(StateClosed))
}

func TestWindowLifecycle_ClosedIsTerminal(t *testing.T) {
	l := NewWindowLifecycle(RoleKiosk)
	require.NoError(t, l.Transition(StateHidden))
	require.NoError(t, l.Transition(StateClosed))

	for _, next := range []WindowState{StateHidden, StateVisible, StateClosed} {
		assert.False(t, l.CanTransition(next), next.String())
	}

	l.Reset()
	assert.Equal(t, StateUncreated, l.State())
}

func TestWindowLifecycle_ResetIgnoresLiveWindow(t *testing.T) {
	l := NewWindowLifecycle(RoleKiosk)
	require.NoError(t, l.Transition(StateHidden))
	l.Reset()
	assert.Equal(t, StateHidden, l.State())
}

func TestWindowRoleString(t *testing.T) {
	assert.Equal(t, "splash", RoleSplash.String())
	assert.Equal(t, "kiosk", RoleKiosk.String())
	assert.Equal(t, "unknown", WindowRole(9).String())
	assert.Equal(t, "unknown", WindowState(9).String())
}
