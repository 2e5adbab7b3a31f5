package cmd

import "github.com/spf13/cobra"

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the kiosk shell",
	Long: `Launch the splash screen followed by the full-screen kiosk window.

This is what running fmfau-desktop without arguments does.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(runCmd)
}
