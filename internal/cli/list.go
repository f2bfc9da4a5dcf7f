package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/interpretive-systems/nxtwatch/internal/tui/components"
	"github.com/interpretive-systems/nxtwatch/internal/videos"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch videos once and print them as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			client, err := a.client()
			if err != nil {
				return err
			}
			query := strings.TrimSpace(mustGetStringFlag(cmd, "search"))
			list, err := client.FetchVideos(cmd.Context(), query)
			if err != nil {
				a.log.Warn("list failed", zap.String("query", query), zap.Error(err))
				return fmt.Errorf("fetch videos: %w", err)
			}
			return displayVideos(cmd.OutOrStdout(), list, time.Now())
		},
	}
	cmd.Flags().StringP("search", "s", "", "Search text")
	return cmd
}

// displayVideos renders the videos to w using pterm tables.
func displayVideos(w io.Writer, list []videos.Summary, now time.Time) error {
	if len(list) == 0 {
		pterm.Info.WithWriter(w).Println(components.NoResultsHeading)
		return nil
	}

	rows := make([][]string, 0, len(list)+1)
	rows = append(rows, []string{"TITLE", "CHANNEL", "VIEWS", "PUBLISHED", "ID"})
	for _, v := range list {
		rows = append(rows, []string{
			v.Title,
			v.ChannelName,
			components.FormatViews(v.ViewCount),
			components.FormatPublished(v.PublishedAt, now),
			v.ID,
		})
	}

	if err := pterm.DefaultTable.WithBoxed(true).WithHasHeader().WithData(rows).WithWriter(w).Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
