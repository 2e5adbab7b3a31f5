package port

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback already ran
	// or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks on the main loop after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
