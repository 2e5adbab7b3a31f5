package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fmfau/fmfau-desktop/internal/bootstrap"
	"github.com/fmfau/fmfau-desktop/internal/cli/cmd"
	"github.com/fmfau/fmfau-desktop/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// GTK must stay on the thread it was initialized on.
	runtime.LockOSThread()
	bootstrap.EnableCrashForensics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.SetGUIRunner(bootstrap.RunGUI)

	code := cmd.Execute(ctx)
	stop()
	os.Exit(code)
}
