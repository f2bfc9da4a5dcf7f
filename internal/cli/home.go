package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/interpretive-systems/nxtwatch/internal/home"
	"github.com/interpretive-systems/nxtwatch/internal/prefs"
	"github.com/interpretive-systems/nxtwatch/internal/theme"
	"github.com/interpretive-systems/nxtwatch/internal/tui"
)

func newHomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Open the Home view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHome(cmd, mustGetStringFlag(cmd, "search"))
		},
	}
	cmd.Flags().StringP("search", "s", "", "Pre-fill the search box before the first fetch")
	return cmd
}

func runHome(cmd *cobra.Command, search string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	if a.token == "" {
		pterm.Warning.WithWriter(cmd.ErrOrStderr()).Printfln("No API token set; requests will be rejected. Run '%s token set <jwt>'.", cmd.Root().Name())
	}

	client, err := a.client()
	if err != nil {
		return err
	}

	opts := tui.Options{
		Fetcher:       client,
		Reducer:       home.Reducer{DropStale: a.cfg.UI.DropStaleResponses},
		InitialSearch: search,
		HistorySize:   a.cfg.UI.HistorySize,
		Logger:        a.log.Named("tui"),
	}

	// History and saved preferences are optional; the view works without them.
	var saved prefs.Prefs
	if st, err := a.openStore(); err != nil {
		a.log.Warn("store unavailable", zap.Error(err))
	} else {
		opts.History = st
		opts.Settings = st
		saved = prefs.Load(st)
	}
	opts.Appearance = theme.NewAppearance(prefs.ResolveDark(a.cfg.UI.Theme, saved))

	return tui.Run(cmd.Context(), opts)
}
