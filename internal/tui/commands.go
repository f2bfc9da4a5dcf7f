package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/nxtwatch/internal/home"
	"github.com/interpretive-systems/nxtwatch/internal/prefs"
	"github.com/interpretive-systems/nxtwatch/internal/videos"
)

// fetchVideos runs req against the fetcher.
func fetchVideos(ctx context.Context, f Fetcher, req home.FetchRequest) tea.Cmd {
	return func() tea.Msg {
		var opts []videos.FetchOption
		if req.Fresh {
			opts = append(opts, videos.BypassCache())
		}
		list, err := f.FetchVideos(ctx, req.Query, opts...)
		return videosMsg{seq: req.Seq, query: req.Query, videos: list, err: err}
	}
}

// loadHistory loads recent searches.
func loadHistory(h History, limit int) tea.Cmd {
	return func() tea.Msg {
		terms, err := h.RecentTerms(limit)
		return historyMsg{terms: terms, err: err}
	}
}

// recordSearch stores a submitted search and reloads the history.
func recordSearch(h History, term string, limit int) tea.Cmd {
	return func() tea.Msg {
		if err := h.AddSearch(term); err != nil {
			return historyMsg{err: err}
		}
		terms, err := h.RecentTerms(limit)
		return historyMsg{terms: terms, err: err}
	}
}

// saveTheme persists the theme choice.
func saveTheme(s prefs.Settings, dark bool) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{what: "theme", err: prefs.SaveDarkTheme(s, dark)}
	}
}
