// Package input handles keyboard events on shell windows.
package input

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	domaininput "github.com/fmfau/fmfau-desktop/internal/domain/input"
	"github.com/fmfau/fmfau-desktop/internal/logging"
)

// AttachReloadGuard swallows reload chords before the web view sees them.
// The controller runs in the capture phase on the window.
func AttachReloadGuard(ctx context.Context, window *gtk.ApplicationWindow) {
	log := logging.FromContext(ctx)

	controller := gtk.NewEventControllerKey()
	controller.SetPropagationPhase(gtk.PhaseCapture)
	controller.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		chord := ChordFromEvent(gdk.KeyvalName(keyval), state)
		if !domaininput.IsReload(chord) {
			return false
		}
		log.Debug().Str("chord", chord.String()).Msg("reload chord suppressed")
		return true
	})
	window.AddController(controller)
}

// ChordFromEvent converts a GDK key name and modifier state to a chord.
// Super counts as Meta so Cmd+R is caught on every backend.
func ChordFromEvent(keyName string, state gdk.ModifierType) domaininput.KeyChord {
	return domaininput.KeyChord{
		Key:   keyName,
		Ctrl:  state.Has(gdk.ControlMask),
		Meta:  state.Has(gdk.MetaMask) || state.Has(gdk.SuperMask),
		Shift: state.Has(gdk.ShiftMask),
		Alt:   state.Has(gdk.AltMask),
	}
}
