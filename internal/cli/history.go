package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent searches",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			st, err := a.openStore()
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}
			entries, err := st.RecentSearches(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				pterm.Info.WithWriter(out).Println("No searches recorded yet.")
				return nil
			}

			now := time.Now()
			rows := [][]string{{"SEARCH", "LAST USED", "USES"}}
			for _, e := range entries {
				rows = append(rows, []string{e.Term, humanize.RelTime(e.LastUsed, now, "ago", "from now"), strconv.Itoa(e.Uses)})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(rows).WithWriter(out).Render(); err != nil {
				return fmt.Errorf("render table: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", 20, "Number of searches to show")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the search history",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			st, err := a.openStore()
			if err != nil {
				return err
			}
			n, err := st.ClearSearchHistory()
			if err != nil {
				return err
			}
			pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("Removed %d search(es)", n)
			return nil
		},
	})
	return cmd
}
