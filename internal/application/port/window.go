// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"

	"github.com/fmfau/fmfau-desktop/internal/domain/entity"
)

// Window is a live toplevel window owned by the shell.
// All methods must be called from the main loop.
type Window interface {
	ID() entity.WindowID
	Role() entity.WindowRole
	// Show presents the window. Calling it on a visible window raises it.
	Show()
	// Close destroys the window. The owner's onClosed callback fires once.
	Close()
	Minimize()
	// IsActive reports whether the window currently has keyboard focus.
	IsActive() bool
}

// WindowFactory creates the two window roles. onClosed is invoked exactly
// once, on the main loop, after the window has been destroyed.
type WindowFactory interface {
	CreateSplash(ctx context.Context, onClosed func()) (Window, error)
	// CreateKiosk returns a hidden kiosk window that has started loading.
	CreateKiosk(ctx context.Context, onClosed func()) (Window, error)
}

// WindowLocator resolves the target of a bridge command.
type WindowLocator interface {
	Lookup(id entity.WindowID) (Window, bool)
	Focused() (Window, bool)
}
