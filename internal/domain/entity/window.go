// Package entity contains the kiosk shell's domain types.
package entity

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when a window is moved to a state its
// role does not allow from the current one.
var ErrIllegalTransition = errors.New("illegal window state transition")

// WindowID uniquely identifies a live window within the process.
type WindowID uint64

// WindowRole distinguishes the two windows the shell manages.
type WindowRole int

const (
	// RoleSplash is the short-lived startup window.
	RoleSplash WindowRole = iota
	// RoleKiosk is the full-screen browser window.
	RoleKiosk
)

// String returns a human-readable representation of the role.
func (r WindowRole) String() string {
	switch r {
	case RoleSplash:
		return "splash"
	case RoleKiosk:
		return "kiosk"
	default:
		return "unknown"
	}
}

// WindowState is a position in a window's lifecycle.
type WindowState int

const (
	StateUncreated WindowState = iota
	StateHidden
	StateVisible
	StateClosed
)

// String returns a human-readable representation of the state.
func (s WindowState) String() string {
	switch s {
	case StateUncreated:
		return "uncreated"
	case StateHidden:
		return "hidden"
	case StateVisible:
		return "visible"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// transitions lists the allowed next states per role and current state.
// The splash is shown as soon as it is created; the kiosk loads hidden.
var transitions = map[WindowRole]map[WindowState][]WindowState{
	RoleSplash: {
		StateUncreated: {StateVisible},
		StateVisible:   {StateClosed},
	},
	RoleKiosk: {
		StateUncreated: {StateHidden},
		StateHidden:    {StateVisible, StateClosed},
		StateVisible:   {StateClosed},
	},
}

// WindowLifecycle tracks the state of one window role.
type WindowLifecycle struct {
	role  WindowRole
	state WindowState
}

// NewWindowLifecycle returns a lifecycle in the uncreated state.
func NewWindowLifecycle(role WindowRole) *WindowLifecycle {
	return &WindowLifecycle{role: role, state: StateUncreated}
}

// Role returns the role this lifecycle tracks.
func (l *WindowLifecycle) Role() WindowRole {
	return l.role
}

// State returns the current state.
func (l *WindowLifecycle) State() WindowState {
	return l.state
}

// CanTransition reports whether moving to next is allowed.
func (l *WindowLifecycle) CanTransition(next WindowState) bool {
	for _, allowed := range transitions[l.role][l.state] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition moves the lifecycle to next or returns ErrIllegalTransition.
func (l *WindowLifecycle) Transition(next WindowState) error {
	if !l.CanTransition(next) {
		return fmt.Errorf("%w: %s %s -> %s", ErrIllegalTransition, l.role, l.state, next)
	}
	l.state = next
	return nil
}

// IsLive reports whether the window exists and has not been closed.
func (l *WindowLifecycle) IsLive() bool {
	return l.state == StateHidden || l.state == StateVisible
}

// Reset returns a closed lifecycle to uncreated so the role can be recreated.
func (l *WindowLifecycle) Reset() {
	if l.state == StateClosed {
		l.state = StateUncreated
	}
}
