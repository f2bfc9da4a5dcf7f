package tui

import (
	"context"

	"go.uber.org/zap"

	"github.com/interpretive-systems/nxtwatch/internal/home"
	"github.com/interpretive-systems/nxtwatch/internal/prefs"
	"github.com/interpretive-systems/nxtwatch/internal/theme"
	"github.com/interpretive-systems/nxtwatch/internal/videos"
)

// Fetcher runs video searches.
type Fetcher interface {
	FetchVideos(ctx context.Context, query string, opts ...videos.FetchOption) ([]videos.Summary, error)
}

// History records and lists submitted searches.
type History interface {
	AddSearch(term string) error
	RecentTerms(limit int) ([]string, error)
}

// Options wires the Home program to its collaborators. Fetcher is
// required; History and Settings may be nil.
type Options struct {
	Fetcher    Fetcher
	History    History
	Settings   prefs.Settings
	Appearance *theme.Appearance
	Reducer    home.Reducer
	// InitialSearch pre-fills the search box before the first fetch.
	InitialSearch string
	HistorySize   int
	Logger        *zap.Logger
}
