package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmfau/fmfau-desktop/internal/application/usecase"
	"github.com/fmfau/fmfau-desktop/internal/cli/styles"
	domainurl "github.com/fmfau/fmfau-desktop/internal/domain/url"
)

var checkSubFrame bool

var checkCmd = &cobra.Command{
	Use:   "check <url>...",
	Short: "Check URLs against the navigation allow-list",
	Long: `Evaluate each URL as a top-level load of the kiosk window and print
whether it would be allowed.

Exits with status 1 when any URL is denied.

Examples:
  fmfau-desktop check https://fmfau.org/news
  fmfau-desktop check sub.fmfau.org evilfmfau.org`,
	Args:        cobra.MinimumNArgs(1),
	Annotations: needsApp(),
	RunE:        runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkSubFrame, "subframe", false, "evaluate as iframe loads instead of top-level loads")
}

func runCheck(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	allow, err := domainurl.NewAllowList(app.Config.Kiosk.AllowedSuffix, domainurl.WithSubFrames(app.Config.Filter.SubFrames))
	if err != nil {
		return err
	}

	kind := domainurl.ResourceMainFrame
	if checkSubFrame {
		kind = domainurl.ResourceSubFrame
	}

	out, err := usecase.NewCheckURLsUseCase(allow).Execute(cmd.Context(), usecase.CheckURLsInput{
		URLs: args,
		Kind: kind,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewCheckRenderer(app.Theme).Render(out))
	if out.Denied > 0 {
		return exitCodeError{code: 1}
	}
	return nil
}
