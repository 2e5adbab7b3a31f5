// Package mainloop schedules work on the GLib main loop.
package mainloop

import (
	"time"

	"github.com/diamondburned/gotk4/pkg/core/glib"

	"github.com/fmfau/fmfau-desktop/internal/application/port"
)

// Scheduler runs callbacks on the main loop via GLib timeout sources.
type Scheduler struct{}

var _ port.Scheduler = Scheduler{}

// AfterFunc schedules fn to run once after d.
func (Scheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	t := &timer{}
	t.handle = glib.TimeoutAdd(uint(d/time.Millisecond), func() bool {
		t.done = true
		fn()
		return false
	})
	return t
}

// timer is only touched from the main loop.
type timer struct {
	handle glib.SourceHandle
	done   bool
}

// Stop removes the source unless it already fired.
func (t *timer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	glib.SourceRemove(t.handle)
	return true
}

// Post runs fn on the main loop. Safe to call from any goroutine.
func Post(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
