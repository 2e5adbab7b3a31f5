//go:build !linux && !darwin

package bootstrap

import (
	"context"
	"runtime/debug"

	"github.com/fmfau/fmfau-desktop/internal/logging"
)

// EnableCrashForensics makes Go crashes dump all goroutines.
func EnableCrashForensics() {
	debug.SetTraceback("crash")
}

// LogCoreDumpLimits is a no-op where RLIMIT_CORE does not exist.
func LogCoreDumpLimits(ctx context.Context) {
	logging.FromContext(ctx).Debug().Msg("core dump limits unsupported on this platform")
}
