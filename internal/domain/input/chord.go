// Package input models keyboard chords delivered to the kiosk window.
package input

import "strings"

// Key names as reported by the toolkit for the keys the shell cares about.
const (
	KeyR  = "r"
	KeyF5 = "F5"
)

// KeyChord is a key press with its active modifiers.
type KeyChord struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
}

// IsReload reports whether the chord would reload the page: Ctrl+R or
// Cmd+R (with or without Shift) and F5 with any modifiers.
func IsReload(c KeyChord) bool {
	if c.Key == KeyF5 {
		return true
	}
	if strings.EqualFold(c.Key, KeyR) {
		return c.Ctrl || c.Meta
	}
	return false
}

// String renders the chord as "ctrl+shift+r".
func (c KeyChord) String() string {
	var parts []string
	if c.Ctrl {
		parts = append(parts, "ctrl")
	}
	if c.Meta {
		parts = append(parts, "meta")
	}
	if c.Alt {
		parts = append(parts, "alt")
	}
	if c.Shift {
		parts = append(parts, "shift")
	}
	parts = append(parts, strings.ToLower(c.Key))
	return strings.Join(parts, "+")
}
