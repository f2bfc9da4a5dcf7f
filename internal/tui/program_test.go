package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/nxtwatch/internal/home"
	"github.com/interpretive-systems/nxtwatch/internal/theme"
	"github.com/interpretive-systems/nxtwatch/internal/tui/components"
	"github.com/interpretive-systems/nxtwatch/internal/videos"
)

type fetchCall struct {
	query string
	fresh bool
}

type fakeFetcher struct {
	results map[string][]videos.Summary
	err     error
	calls   []fetchCall
}

func (f *fakeFetcher) FetchVideos(_ context.Context, query string, opts ...videos.FetchOption) ([]videos.Summary, error) {
	f.calls = append(f.calls, fetchCall{query: query, fresh: len(opts) > 0})
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query], nil
}

type fakeHistory struct {
	terms []string
}

func (h *fakeHistory) AddSearch(term string) error {
	h.terms = append([]string{term}, h.terms...)
	return nil
}

func (h *fakeHistory) RecentTerms(limit int) ([]string, error) {
	if len(h.terms) > limit {
		return h.terms[:limit], nil
	}
	return h.terms, nil
}

type memSettings map[string]string

func (m memSettings) GetSetting(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memSettings) SetSetting(key, value string) error {
	m[key] = value
	return nil
}

var sampleVideo = videos.Summary{
	ID:          "ad9822d2-5763-41d9-adaf-baf9da3fd490",
	Title:       "iB Hubs Announcement Event",
	ViewCount:   "26k",
	PublishedAt: "Nov 29, 2016",
	ChannelName: "iB Hubs",
}

func newTestProgram(f Fetcher, opts Options) Program {
	opts.Fetcher = f
	p := NewProgram(context.Background(), opts)
	p.now = func() time.Time { return time.Date(2024, 10, 1, 12, 34, 56, 0, time.UTC) }
	p.layout.SetSize(80, 30)
	return p
}

// drain runs cmd and feeds the messages the program reacts to back into
// it. Timer driven messages (spinner ticks, cursor blinks) are skipped.
func drain(t *testing.T, p Program, cmd tea.Cmd) Program {
	t.Helper()
	if cmd == nil {
		return p
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			p = drain(t, p, c)
		}
	case videosMsg, historyMsg, savedMsg, home.Event:
		m, next := p.Update(msg)
		p = drain(t, m.(Program), next)
	}
	return p
}

func start(t *testing.T, p Program) Program {
	t.Helper()
	return drain(t, p, p.Init())
}

func press(t *testing.T, p Program, key tea.KeyMsg) (Program, tea.Cmd) {
	t.Helper()
	m, cmd := p.Update(key)
	return m.(Program), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func plainView(p Program) string {
	return ansi.Strip(p.View())
}

func TestView_InitialFetchShowsVideos(t *testing.T) {
	f := &fakeFetcher{results: map[string][]videos.Summary{"": {sampleVideo}}}
	p := start(t, newTestProgram(f, Options{}))

	if len(f.calls) != 1 || f.calls[0].query != "" {
		t.Fatalf("expected one fetch with empty query, got %+v", f.calls)
	}
	if p.State().Status != home.StatusSuccess {
		t.Fatalf("expected success, got %s", p.State().Status)
	}

	plain := plainView(p)
	if !strings.HasPrefix(plain, "▶ Nxt Watch") {
		t.Fatalf("unexpected header: %q", strings.SplitN(plain, "\n", 2)[0])
	}
	if !strings.Contains(plain, "Buy Nxt Watch Premium") {
		t.Fatalf("expected banner in view")
	}
	if !strings.Contains(plain, "iB Hubs Announcement Event") {
		t.Fatalf("expected video title, got: %q", plain)
	}
	if !strings.Contains(plain, "iB Hubs • 26k views") {
		t.Fatalf("expected meta line, got: %q", plain)
	}
	if !strings.Contains(plain, "1 video") || !strings.Contains(plain, "refreshed: 12:34:56") {
		t.Fatalf("expected status bar count and timestamp, got: %q", plain)
	}
}

func TestView_NoResults(t *testing.T) {
	f := &fakeFetcher{results: map[string][]videos.Summary{}}
	p := start(t, newTestProgram(f, Options{InitialSearch: "zzzz"}))

	if len(f.calls) != 1 || f.calls[0].query != "zzzz" {
		t.Fatalf("expected initial search to be used, got %+v", f.calls)
	}
	plain := plainView(p)
	if !strings.Contains(plain, "No Search results found") {
		t.Fatalf("expected no results heading, got: %q", plain)
	}
	if !strings.Contains(plain, "Retry") {
		t.Fatalf("expected retry button")
	}
}

func TestView_FailureAndRetry(t *testing.T) {
	f := &fakeFetcher{err: &videos.RequestError{StatusCode: 500}}
	p := start(t, newTestProgram(f, Options{InitialSearch: "react"}))

	if p.State().Status != home.StatusFailure {
		t.Fatalf("expected failure, got %s", p.State().Status)
	}
	plain := plainView(p)
	if !strings.Contains(plain, "Oops! Something Went Wrong") {
		t.Fatalf("expected failure heading, got: %q", plain)
	}
	if !strings.Contains(plain, "request failed") {
		t.Fatalf("expected failure hint in status bar, got: %q", plain)
	}

	f.err = nil
	f.results = map[string][]videos.Summary{"": {sampleVideo}}
	p, cmd := press(t, p, runes("r"))
	if p.State().Status != home.StatusLoading {
		t.Fatalf("expected loading after retry, got %s", p.State().Status)
	}
	if p.State().SearchText != "" {
		t.Fatalf("retry should clear the search text, got %q", p.State().SearchText)
	}
	p = drain(t, p, cmd)

	last := f.calls[len(f.calls)-1]
	if last.query != "" || !last.fresh {
		t.Fatalf("expected fresh fetch with empty query, got %+v", last)
	}
	if !strings.Contains(plainView(p), "iB Hubs Announcement Event") {
		t.Fatalf("expected list after retry")
	}
}

func TestView_UnauthorizedHint(t *testing.T) {
	f := &fakeFetcher{err: &videos.RequestError{StatusCode: 401}}
	p := start(t, newTestProgram(f, Options{}))

	if !strings.Contains(plainView(p), "check your token") {
		t.Fatalf("expected token hint, got: %q", plainView(p))
	}
}

func TestView_EnterRetriesFromPlaceholder(t *testing.T) {
	f := &fakeFetcher{err: errors.New("boom")}
	p := start(t, newTestProgram(f, Options{}))

	p, cmd := press(t, p, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected enter on failure view to retry")
	}
	p = drain(t, p, cmd)
	if len(f.calls) != 2 {
		t.Fatalf("expected two fetches, got %d", len(f.calls))
	}
	if p.State().Status != home.StatusFailure {
		t.Fatalf("expected failure again, got %s", p.State().Status)
	}
}

func TestSearch_TypingDoesNotFetch(t *testing.T) {
	f := &fakeFetcher{results: map[string][]videos.Summary{"": {sampleVideo}}}
	h := &fakeHistory{}
	p := start(t, newTestProgram(f, Options{History: h}))

	p, _ = press(t, p, runes("/"))
	if !p.search.Focused() {
		t.Fatalf("expected search to be focused")
	}
	for _, r := range "react" {
		p, _ = press(t, p, runes(string(r)))
	}
	if p.State().SearchText != "react" {
		t.Fatalf("expected search text to follow input, got %q", p.State().SearchText)
	}
	if len(f.calls) != 1 {
		t.Fatalf("typing must not fetch, got %d calls", len(f.calls))
	}

	p, cmd := press(t, p, tea.KeyMsg{Type: tea.KeyEnter})
	p = drain(t, p, cmd)
	if len(f.calls) != 2 || f.calls[1].query != "react" || f.calls[1].fresh {
		t.Fatalf("expected cached-ok fetch for react, got %+v", f.calls)
	}
	if p.search.Focused() {
		t.Fatalf("submit should leave the search box")
	}
	if len(h.terms) != 1 || h.terms[0] != "react" {
		t.Fatalf("expected search to be recorded, got %v", h.terms)
	}
	if got := p.search.History(); len(got) != 1 || got[0] != "react" {
		t.Fatalf("expected history to reload, got %v", got)
	}
}

func TestSearch_HistoryRecall(t *testing.T) {
	f := &fakeFetcher{results: map[string][]videos.Summary{}}
	h := &fakeHistory{terms: []string{"go", "rust"}}
	p := start(t, newTestProgram(f, Options{History: h}))

	p, _ = press(t, p, runes("/"))
	p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyUp})
	if p.State().SearchText != "go" {
		t.Fatalf("expected most recent term, got %q", p.State().SearchText)
	}
	p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyUp})
	if p.State().SearchText != "rust" {
		t.Fatalf("expected older term, got %q", p.State().SearchText)
	}
	p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyDown})
	if p.State().SearchText != "go" {
		t.Fatalf("expected newer term, got %q", p.State().SearchText)
	}
	if len(f.calls) != 1 {
		t.Fatalf("recall must not fetch, got %d calls", len(f.calls))
	}
}

func TestBanner_Close(t *testing.T) {
	f := &fakeFetcher{results: map[string][]videos.Summary{"": {sampleVideo}}}
	p := start(t, newTestProgram(f, Options{}))

	p, _ = press(t, p, runes("x"))
	if p.State().BannerVisible {
		t.Fatalf("expected banner hidden")
	}
	if strings.Contains(plainView(p), "Buy Nxt Watch Premium") {
		t.Fatalf("banner still rendered")
	}
	if len(f.calls) != 1 {
		t.Fatalf("closing the banner must not fetch")
	}
}

func TestTheme_TogglePersists(t *testing.T) {
	f := &fakeFetcher{results: map[string][]videos.Summary{}}
	settings := memSettings{}
	appearance := theme.NewAppearance(false)
	p := start(t, newTestProgram(f, Options{Settings: settings, Appearance: appearance}))

	p, cmd := press(t, p, runes("t"))
	_ = drain(t, p, cmd)
	if !appearance.IsDarkTheme() {
		t.Fatalf("expected dark theme after toggle")
	}
	if settings["ui.darkTheme"] != "true" {
		t.Fatalf("expected theme to be saved, got %v", settings)
	}
	if !strings.Contains(plainView(p), "t: dark") {
		t.Fatalf("expected header to show dark mode")
	}
}

func TestVideos_StaleResultDropped(t *testing.T) {
	f := &fakeFetcher{results: map[string][]videos.Summary{}}
	p := newTestProgram(f, Options{Reducer: home.Reducer{DropStale: true}})

	// Two searches in flight; the older one resolves last.
	p = p.withState(home.State{Status: home.StatusLoading, Seq: 2, Query: "new", BannerVisible: true})
	m, _ := p.Update(videosMsg{seq: 2, query: "new", videos: []videos.Summary{}})
	p = m.(Program)
	m, _ = p.Update(videosMsg{seq: 1, query: "old", videos: []videos.Summary{sampleVideo}})
	p = m.(Program)

	if len(p.State().Videos) != 0 {
		t.Fatalf("stale result applied: %+v", p.State().Videos)
	}
	if len(p.list.Videos()) != 0 {
		t.Fatalf("stale result reached the list")
	}
	if !strings.Contains(plainView(p), "No Search results found") {
		t.Fatalf("expected no results view")
	}
}

func TestList_Navigation(t *testing.T) {
	second := sampleVideo
	second.ID = "2"
	second.Title = "Second video"
	f := &fakeFetcher{results: map[string][]videos.Summary{"": {sampleVideo, second}}}
	p := start(t, newTestProgram(f, Options{}))

	p, _ = press(t, p, runes("j"))
	if p.list.Selected() != 1 {
		t.Fatalf("expected selection to move, got %d", p.list.Selected())
	}
	p, _ = press(t, p, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(p.status.Message(), "Second video") {
		t.Fatalf("expected selected video in status, got %q", p.status.Message())
	}
	p, _ = press(t, p, runes("g"))
	if p.list.Selected() != 0 {
		t.Fatalf("expected top, got %d", p.list.Selected())
	}
}

func (p Program) withState(s home.State) Program {
	p.state = s
	return p
}

func TestView_LoadingHidesPreviousList(t *testing.T) {
	f := &fakeFetcher{results: map[string][]videos.Summary{"": {sampleVideo}}}
	p := start(t, newTestProgram(f, Options{}))
	if !strings.Contains(plainView(p), "iB Hubs Announcement Event") {
		t.Fatalf("expected list before retry")
	}

	// Retry without running the fetch keeps the program in Loading.
	p, _ = press(t, p, runes("r"))
	if p.State().Status != home.StatusLoading {
		t.Fatalf("expected loading, got %s", p.State().Status)
	}

	plain := plainView(p)
	if !strings.Contains(plain, "Loading") {
		t.Fatalf("expected loader, got: %q", plain)
	}
	if strings.Contains(plain, "iB Hubs Announcement Event") {
		t.Fatalf("previous list shown while loading: %q", plain)
	}
	if !strings.Contains(plain, "Buy Nxt Watch Premium") {
		t.Fatalf("expected banner while loading")
	}
}

func TestView_InitialState(t *testing.T) {
	f := &fakeFetcher{}
	p := newTestProgram(f, Options{})

	if p.State().Status != home.StatusInitial {
		t.Fatalf("expected initial status, got %s", p.State().Status)
	}
	plain := plainView(p)
	if !strings.Contains(plain, "Buy Nxt Watch Premium") {
		t.Fatalf("expected banner, got: %q", plain)
	}
	if !strings.Contains(plain, "Search") {
		t.Fatalf("expected search bar, got: %q", plain)
	}
	for _, unwanted := range []string{"Loading", "Oops! Something Went Wrong", "No Search results found", "Retry"} {
		if strings.Contains(plain, unwanted) {
			t.Fatalf("content area should be empty, found %q", unwanted)
		}
	}
	if len(f.calls) != 0 {
		t.Fatalf("no fetch before mount, got %d", len(f.calls))
	}
}

func TestInitialSearch_ClippedToBoxLimit(t *testing.T) {
	f := &fakeFetcher{results: map[string][]videos.Summary{}}
	long := strings.Repeat("a", components.SearchCharLimit+50)
	p := start(t, newTestProgram(f, Options{InitialSearch: long}))

	want := long[:components.SearchCharLimit]
	if p.State().SearchText != want {
		t.Fatalf("search text not clipped: %d runes", len(p.State().SearchText))
	}
	if p.search.Value() != want {
		t.Fatalf("box and state disagree: box=%d", len(p.search.Value()))
	}
	if len(f.calls) != 1 || f.calls[0].query != want {
		t.Fatalf("fetched query should match the box, got %+v", f.calls)
	}
}
