package usecase

import (
	"context"
	"errors"

	"github.com/fmfau/fmfau-desktop/internal/application/port"
	"github.com/fmfau/fmfau-desktop/internal/domain/bridge"
	"github.com/fmfau/fmfau-desktop/internal/domain/entity"
	"github.com/fmfau/fmfau-desktop/internal/logging"
)

// ErrNoTargetWindow is returned when a command has no window to act on.
var ErrNoTargetWindow = errors.New("no target window")

// RelayWindowCommandUseCase forwards overlay button clicks to window operations.
type RelayWindowCommandUseCase struct {
	windows port.WindowLocator
}

// NewRelayWindowCommandUseCase creates a new RelayWindowCommandUseCase.
func NewRelayWindowCommandUseCase(windows port.WindowLocator) *RelayWindowCommandUseCase {
	return &RelayWindowCommandUseCase{windows: windows}
}

// HandleRaw decodes a bridge message posted by the window sender and runs it.
// Decode failures are returned so the caller can log them; a missing target
// is not an error for the page, which gets no reply either way.
func (uc *RelayWindowCommandUseCase) HandleRaw(ctx context.Context, sender entity.WindowID, raw string) error {
	msg, err := bridge.Decode(raw)
	if err != nil {
		return err
	}
	return uc.Execute(ctx, sender, msg.Type)
}

// Execute resolves the target window and applies cmd to it.
// The sender window wins when it is still live; otherwise the focused window
// is used. With neither, the command is dropped.
func (uc *RelayWindowCommandUseCase) Execute(ctx context.Context, sender entity.WindowID, cmd bridge.Command) error {
	log := logging.FromContext(ctx)

	target, ok := uc.resolve(sender)
	if !ok {
		log.Debug().Str("command", string(cmd)).Uint64("sender", uint64(sender)).Msg("bridge command dropped: no target window")
		return ErrNoTargetWindow
	}

	switch cmd {
	case bridge.CommandClose:
		target.Close()
	case bridge.CommandMinimize:
		target.Minimize()
	default:
		return bridge.ErrUnknownCommand
	}

	log.Info().
		Str("command", string(cmd)).
		Str("role", target.Role().String()).
		Uint64("window_id", uint64(target.ID())).
		Msg("bridge command applied")
	return nil
}

func (uc *RelayWindowCommandUseCase) resolve(sender entity.WindowID) (port.Window, bool) {
	if uc.windows == nil {
		return nil, false
	}
	if sender != 0 {
		if win, ok := uc.windows.Lookup(sender); ok {
			return win, true
		}
	}
	return uc.windows.Focused()
}
