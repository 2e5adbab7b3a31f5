package window

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/fmfau/fmfau-desktop/internal/domain/entity"
	"github.com/fmfau/fmfau-desktop/internal/logging"
)

// toplevel is the part of port.Window shared by both roles.
type toplevel struct {
	id       entity.WindowID
	role     entity.WindowRole
	win      *gtk.ApplicationWindow
	closed   bool
	onClosed func()
}

func newToplevel(ctx context.Context, app *gtk.Application, id entity.WindowID, role entity.WindowRole, onClosed func()) (*toplevel, error) {
	win := gtk.NewApplicationWindow(app)
	if win == nil {
		return nil, ErrWindowCreationFailed
	}
	t := &toplevel{id: id, role: role, win: win, onClosed: onClosed}

	ctx = logging.WithWindow(ctx, role.String(), uint64(id))
	win.ConnectDestroy(func() {
		if t.closed {
			return
		}
		t.closed = true
		logging.FromContext(ctx).Debug().Msg("window destroyed")
		if t.onClosed != nil {
			t.onClosed()
		}
	})
	return t, nil
}

func (t *toplevel) ID() entity.WindowID     { return t.id }
func (t *toplevel) Role() entity.WindowRole { return t.role }

// Close is a no-op once the window is gone.
func (t *toplevel) Close() {
	if t.closed {
		return
	}
	t.win.Close()
}

func (t *toplevel) Minimize() {
	if t.closed {
		return
	}
	t.win.Minimize()
}

func (t *toplevel) IsActive() bool {
	return !t.closed && t.win.IsActive()
}
