package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fmfau/fmfau-desktop/internal/application/port"
	"github.com/fmfau/fmfau-desktop/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler fires timers only when the test advances the clock.
type fakeScheduler struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	t := &fakeTimer{at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.now += d
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			t.fn()
		}
	}
}

func (s *fakeScheduler) pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// event records one observable window operation for ordering assertions.
type event struct {
	role entity.WindowRole
	op   string
}

type fakeWindow struct {
	id       entity.WindowID
	role     entity.WindowRole
	active   bool
	onClosed func()
	log      *[]event
	closes   int
}

func (w *fakeWindow) ID() entity.WindowID     { return w.id }
func (w *fakeWindow) Role() entity.WindowRole { return w.role }
func (w *fakeWindow) IsActive() bool          { return w.active }
func (w *fakeWindow) Show()                   { *w.log = append(*w.log, event{w.role, "show"}) }
func (w *fakeWindow) Minimize()               { *w.log = append(*w.log, event{w.role, "minimize"}) }

func (w *fakeWindow) Close() {
	w.closes++
	if w.closes > 1 {
		return
	}
	*w.log = append(*w.log, event{w.role, "closed"})
	w.onClosed()
}

type fakeFactory struct {
	nextID    entity.WindowID
	log       []event
	splash    *fakeWindow
	kiosk     *fakeWindow
	kioskErr  error
	splashErr error
	kiosks    int
}

func (f *fakeFactory) CreateSplash(_ context.Context, onClosed func()) (port.Window, error) {
	if f.splashErr != nil {
		return nil, f.splashErr
	}
	f.nextID++
	f.splash = &fakeWindow{id: f.nextID, role: entity.RoleSplash, onClosed: onClosed, log: &f.log}
	f.log = append(f.log, event{entity.RoleSplash, "created"})
	return f.splash, nil
}

func (f *fakeFactory) CreateKiosk(_ context.Context, onClosed func()) (port.Window, error) {
	if f.kioskErr != nil {
		return nil, f.kioskErr
	}
	f.nextID++
	f.kiosks++
	f.kiosk = &fakeWindow{id: f.nextID, role: entity.RoleKiosk, onClosed: onClosed, log: &f.log}
	f.log = append(f.log, event{entity.RoleKiosk, "created"})
	return f.kiosk, nil
}

type fakeLifetime struct {
	holds, releases int
}

func (l *fakeLifetime) Hold()    { l.holds++ }
func (l *fakeLifetime) Release() { l.releases++ }
func (l *fakeLifetime) Quit()    {}

func newTestShell(opts ShellOptions) (*Shell, *fakeFactory, *fakeScheduler, *fakeLifetime) {
	factory := &fakeFactory{}
	sched := &fakeScheduler{}
	lifetime := &fakeLifetime{}
	return NewShell(factory, sched, lifetime, opts), factory, sched, lifetime
}

func indexOf(events []event, want event) int {
	for i, e := range events {
		if e == want {
			return i
		}
	}
	return -1
}

func TestShell_SplashClosesAfterMinDisplay(t *testing.T) {
	ctx := context.Background()
	shell, factory, sched, _ := newTestShell(ShellOptions{SplashEnabled: true, SplashMinDisplay: 2 * time.Second})

	require.NoError(t, shell.Start(ctx))
	assert.Equal(t, entity.StateVisible, shell.State(entity.RoleSplash))
	assert.Equal(t, entity.StateUncreated, shell.State(entity.RoleKiosk))

	sched.Advance(1999 * time.Millisecond)
	assert.Equal(t, entity.StateVisible, shell.State(entity.RoleSplash))

	sched.Advance(time.Millisecond)
	assert.Equal(t, entity.StateClosed, shell.State(entity.RoleSplash))
	assert.Equal(t, entity.StateVisible, shell.State(entity.RoleKiosk))
	assert.Equal(t, 1, factory.splash.closes)
}

func TestShell_KioskNeverVisibleBeforeSplashClosed(t *testing.T) {
	ctx := context.Background()
	shell, factory, sched, _ := newTestShell(ShellOptions{SplashEnabled: true, PreloadKiosk: true})

	require.NoError(t, shell.Start(ctx))
	assert.Equal(t, entity.StateHidden, shell.State(entity.RoleKiosk))

	sched.Advance(DefaultSplashMinDisplay)

	closed := indexOf(factory.log, event{entity.RoleSplash, "closed"})
	shown := indexOf(factory.log, event{entity.RoleKiosk, "show"})
	require.NotEqual(t, -1, closed)
	require.NotEqual(t, -1, shown)
	assert.Less(t, closed, shown)
	assert.Equal(t, 1, factory.kiosks)
}

func TestShell_ExternalSplashCloseCancelsTimer(t *testing.T) {
	ctx := context.Background()
	shell, factory, sched, _ := newTestShell(ShellOptions{SplashEnabled: true})

	require.NoError(t, shell.Start(ctx))
	factory.splash.Close()

	assert.Equal(t, entity.StateVisible, shell.State(entity.RoleKiosk))
	assert.Equal(t, 0, sched.pending())

	sched.Advance(time.Hour)
	shell.CloseSplash(ctx)
	assert.Equal(t, 1, factory.splash.closes)
	assert.Equal(t, 1, factory.kiosks)
}

func TestShell_DuplicateClosedCallbackIgnored(t *testing.T) {
	ctx := context.Background()
	shell, factory, _, _ := newTestShell(ShellOptions{SplashEnabled: true})

	require.NoError(t, shell.Start(ctx))
	factory.splash.onClosed()
	factory.splash.onClosed()

	assert.Equal(t, 1, factory.kiosks)
	var shows int
	for _, e := range factory.log {
		if e == (event{entity.RoleKiosk, "show"}) {
			shows++
		}
	}
	assert.Equal(t, 1, shows)
}

func TestShell_SplashDisabledShowsKioskImmediately(t *testing.T) {
	ctx := context.Background()
	shell, factory, sched, lifetime := newTestShell(ShellOptions{SplashEnabled: false})

	require.NoError(t, shell.Start(ctx))
	assert.Nil(t, factory.splash)
	assert.False(t, shell.SplashShown())
	assert.Equal(t, entity.StateVisible, shell.State(entity.RoleKiosk))
	assert.Equal(t, 0, sched.pending())
	assert.Equal(t, lifetime.holds, lifetime.releases)
}

func TestShell_HoldsApplicationDuringHandoff(t *testing.T) {
	ctx := context.Background()
	shell, _, sched, lifetime := newTestShell(ShellOptions{SplashEnabled: true})

	require.NoError(t, shell.Start(ctx))
	assert.Equal(t, 1, lifetime.holds)
	assert.Equal(t, 0, lifetime.releases)

	sched.Advance(DefaultSplashMinDisplay)
	assert.Equal(t, 1, lifetime.releases)
}

func TestShell_KioskFailureReleasesHold(t *testing.T) {
	ctx := context.Background()
	shell, factory, sched, lifetime := newTestShell(ShellOptions{SplashEnabled: true})
	factory.kioskErr = errors.New("no display")

	require.NoError(t, shell.Start(ctx))
	sched.Advance(DefaultSplashMinDisplay)

	assert.Equal(t, entity.StateUncreated, shell.State(entity.RoleKiosk))
	assert.Equal(t, 1, lifetime.releases)
}

func TestShell_SplashFailureFallsBackToKiosk(t *testing.T) {
	ctx := context.Background()
	shell, factory, _, lifetime := newTestShell(ShellOptions{SplashEnabled: true})
	factory.splashErr = errors.New("boom")

	require.NoError(t, shell.Start(ctx))
	assert.Equal(t, entity.StateVisible, shell.State(entity.RoleKiosk))
	assert.Equal(t, lifetime.holds, lifetime.releases)
}

func TestShell_ActivateRecreatesClosedKiosk(t *testing.T) {
	ctx := context.Background()
	shell, factory, _, _ := newTestShell(ShellOptions{SplashEnabled: false})

	require.NoError(t, shell.Activate(ctx))
	factory.kiosk.Close()
	assert.Equal(t, entity.StateClosed, shell.State(entity.RoleKiosk))

	require.NoError(t, shell.Activate(ctx))
	assert.Equal(t, entity.StateVisible, shell.State(entity.RoleKiosk))
	assert.Equal(t, 2, factory.kiosks)
}

func TestShell_ActivateWhileSplashOpenIsNoop(t *testing.T) {
	ctx := context.Background()
	shell, factory, _, _ := newTestShell(ShellOptions{SplashEnabled: true})

	require.NoError(t, shell.Activate(ctx))
	require.NoError(t, shell.Activate(ctx))
	assert.Equal(t, 0, factory.kiosks)
}

func TestShell_LookupAndFocused(t *testing.T) {
	ctx := context.Background()
	shell, factory, sched, _ := newTestShell(ShellOptions{SplashEnabled: true})
	require.NoError(t, shell.Start(ctx))

	_, ok := shell.Focused()
	assert.False(t, ok)

	factory.splash.active = true
	win, ok := shell.Focused()
	require.True(t, ok)
	assert.Equal(t, entity.RoleSplash, win.Role())

	splashID := factory.splash.ID()
	sched.Advance(DefaultSplashMinDisplay)

	_, ok = shell.Lookup(splashID)
	assert.False(t, ok, "closed windows are not resolvable")

	win, ok = shell.Lookup(factory.kiosk.ID())
	require.True(t, ok)
	assert.Equal(t, entity.RoleKiosk, win.Role())
}
