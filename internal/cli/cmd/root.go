// Package cmd provides Cobra CLI commands for fmfau-desktop.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fmfau/fmfau-desktop/internal/cli"
	"github.com/fmfau/fmfau-desktop/internal/domain/build"
)

// GUIRunner starts the kiosk shell and returns its exit code.
type GUIRunner func(ctx context.Context, args []string) int

var (
	app       *cli.App
	buildInfo build.Info
	runGUI    GUIRunner
	rootCmd   = newRootCmd()
)

// exitCodeError carries a non-zero exit status whose cause was already
// reported to the user.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   build.AppName,
		Short: "Kiosk desktop shell for fmfau.org",
		Long: `FMFAU Desktop - a kiosk shell around a single web application.

Shows a short splash, then opens fmfau.org full-screen in a locked WebKit
window. Top-level navigation is confined to the configured domain, reload
shortcuts and new windows are disabled, and a small overlay in the top-right
corner offers minimize and close.

Run without arguments to launch the shell. The subcommands inspect the
configuration without opening a window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Only the inspection commands need a read-only app context.
			if cmd.Annotations[annotationNeedsApp] != "true" {
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		RunE: runShell,
	}
}

const annotationNeedsApp = "needs-app"

func needsApp() map[string]string {
	return map[string]string{annotationNeedsApp: "true"}
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr exitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintln(os.Stderr, err)
	return 1
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// SetGUIRunner sets the function that launches the shell.
func SetGUIRunner(fn GUIRunner) {
	runGUI = fn
}

func runShell(cmd *cobra.Command, _ []string) error {
	if runGUI == nil {
		return errors.New("graphical shell not available in this build")
	}
	// GTK parses its own options, so it only sees the program name.
	if code := runGUI(cmd.Context(), os.Args[:1]); code != 0 {
		return exitCodeError{code: code}
	}
	return nil
}
