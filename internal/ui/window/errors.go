// Package window builds the splash and kiosk toplevels.
package window

import "errors"

var (
	ErrWindowCreationFailed = errors.New("failed to create window")
	ErrNoApplication        = errors.New("window factory has no application")
)
