package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fmfau/fmfau-desktop/internal/logging"
)

type phase struct {
	name string
	dur  time.Duration
}

// StartupTimer records how long each startup phase took.
// Safe for concurrent use.
type StartupTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases []phase
	now    func() time.Time
}

// NewStartupTimer creates a timer starting from now.
func NewStartupTimer() *StartupTimer {
	return newStartupTimer(time.Now)
}

func newStartupTimer(now func() time.Time) *StartupTimer {
	t := now()
	return &StartupTimer{start: t, last: t, now: now}
}

// Mark records the time since the previous mark under name.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.phases = append(t.phases, phase{name: name, dur: now.Sub(t.last)})
	t.last = now
}

// MarkDuration records a phase timed elsewhere, e.g. a parallel group.
func (t *StartupTimer) MarkDuration(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, phase{name: name, dur: d})
}

// Total returns the time elapsed since the timer was created.
func (t *StartupTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now().Sub(t.start)
}

// Log writes every phase as a single debug event.
func (t *StartupTimer) Log(ctx context.Context) {
	t.log(logging.FromContext(ctx).Debug())
}

func (t *StartupTimer) log(event *zerolog.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event = event.Dur("total", t.now().Sub(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.name, p.dur)
	}
	event.Msg("startup timing")
}
