package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmfau/fmfau-desktop/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.Version)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewVersionRenderer(styles.NewTheme()).Render(buildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print the version number only")
}
