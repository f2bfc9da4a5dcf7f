// Package tui is the Bubble Tea front end of the Home view.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/interpretive-systems/nxtwatch/internal/home"
	"github.com/interpretive-systems/nxtwatch/internal/prefs"
	"github.com/interpretive-systems/nxtwatch/internal/theme"
	"github.com/interpretive-systems/nxtwatch/internal/tui/ansi"
	"github.com/interpretive-systems/nxtwatch/internal/tui/components"
	"github.com/interpretive-systems/nxtwatch/internal/videos"
)

const defaultHistorySize = 20

// Program is the Bubble Tea model of the Home view. The view state itself
// lives in an immutable home.State; every change goes through the reducer.
type Program struct {
	ctx         context.Context
	state       home.State
	reducer     home.Reducer
	fetcher     Fetcher
	history     History
	settings    prefs.Settings
	appearance  *theme.Appearance
	historySize int
	log         *zap.Logger

	layout  *Layout
	keys    *KeyHandler
	search  *components.SearchBar
	list    *components.VideoList
	status  *components.StatusBar
	banner  components.Banner
	spinner spinner.Model
	now     func() time.Time
}

// NewProgram builds the Home program. The first fetch starts from Init.
func NewProgram(ctx context.Context, opts Options) Program {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	appearance := opts.Appearance
	if appearance == nil {
		appearance = theme.NewAppearance(false)
	}
	historySize := opts.HistorySize
	if historySize <= 0 {
		historySize = defaultHistorySize
	}

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#0b69ff"))

	p := Program{
		ctx:         ctx,
		state:       home.New(),
		reducer:     opts.Reducer,
		fetcher:     opts.Fetcher,
		history:     opts.History,
		settings:    opts.Settings,
		appearance:  appearance,
		historySize: historySize,
		log:         log,
		layout:      NewLayout(),
		keys:        NewKeyHandler(),
		search:      components.NewSearchBar(),
		list:        components.NewVideoList(),
		status:      components.NewStatusBar(),
		spinner:     sp,
		now:         time.Now,
	}
	if initial := components.ClipSearch(opts.InitialSearch); initial != "" {
		p.state, _ = p.reducer.Reduce(p.state, home.SearchTextChanged{Text: initial})
		p.search.SetValue(initial)
	}
	return p
}

// Run instantiates and runs the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	if opts.Fetcher == nil {
		return errors.New("tui: nil fetcher")
	}
	p := tea.NewProgram(NewProgram(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// State returns the current view state.
func (p Program) State() home.State {
	return p.state
}

func (p Program) Init() tea.Cmd {
	cmds := []tea.Cmd{func() tea.Msg { return home.Mounted{} }}
	if p.history != nil {
		cmds = append(cmds, loadHistory(p.history, p.historySize))
	}
	return tea.Batch(cmds...)
}

func (p Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.layout.SetSize(msg.Width, msg.Height)
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)

	case spinner.TickMsg:
		if p.state.Status != home.StatusLoading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case videosMsg:
		return p.handleVideos(msg)

	case historyMsg:
		if msg.err != nil {
			p.log.Warn("search history unavailable", zap.Error(msg.err))
			return p, nil
		}
		p.search.SetHistory(msg.terms)
		return p, nil

	case savedMsg:
		if msg.err != nil {
			p.log.Warn("failed to save preference", zap.String("what", msg.what), zap.Error(msg.err))
			p.status.SetMessage("could not save " + msg.what)
		}
		return p, nil

	case home.Event:
		return p.dispatch(msg)
	}
	return p, nil
}

// dispatch runs ev through the reducer and starts any requested fetch.
func (p Program) dispatch(ev home.Event) (Program, tea.Cmd) {
	next, req := p.reducer.Reduce(p.state, ev)
	p.state = next
	if p.search.Value() != next.SearchText {
		p.search.SetValue(next.SearchText)
	}
	if req == nil {
		return p, nil
	}

	p.log.Debug("fetch started", zap.Uint64("seq", req.Seq), zap.String("query", req.Query), zap.Bool("fresh", req.Fresh))
	p.status.SetMessage("")
	return p, tea.Batch(fetchVideos(p.ctx, p.fetcher, *req), p.spinner.Tick)
}

func (p Program) handleVideos(msg videosMsg) (Program, tea.Cmd) {
	accepted := p.reducer.Accepts(p.state, msg.seq)
	if !accepted {
		p.log.Debug("stale result dropped", zap.Uint64("seq", msg.seq), zap.Uint64("latest", p.state.Seq))
	}

	if msg.err != nil {
		p.log.Warn("fetch failed", zap.Uint64("seq", msg.seq), zap.String("query", msg.query), zap.Error(msg.err))
		if accepted {
			p.status.SetMessage(failureHint(msg.err))
		}
		return p.dispatch(home.FetchFailed{Seq: msg.seq, Err: msg.err})
	}

	p, cmd := p.dispatch(home.FetchSucceeded{Seq: msg.seq, Videos: msg.videos})
	if accepted {
		p.list.SetVideos(p.state.Videos)
		p.status.SetCount(len(p.state.Videos))
		p.status.SetLastRefresh(p.now())
	}
	return p, cmd
}

func failureHint(err error) string {
	var reqErr *videos.RequestError
	if errors.As(err, &reqErr) && reqErr.Unauthorized() {
		return "request rejected: check your token (nxtwatch token set)"
	}
	return "request failed: press r to retry"
}

func (p Program) handleKey(msg tea.KeyMsg) (Program, tea.Cmd) {
	action := p.keys.Handle(msg, p.search.Focused())
	content := home.ContentFor(p.state)
	contentH := p.layout.ContentHeight(p.state.BannerVisible)

	switch action {
	case ActionQuit:
		return p, tea.Quit

	case ActionFocusSearch:
		return p, p.search.Focus()

	case ActionBlurSearch:
		p.search.Blur()
		return p, nil

	case ActionSubmitSearch:
		p.search.Blur()
		query := strings.TrimSpace(p.state.SearchText)
		next, cmd := p.dispatch(home.SearchSubmitted{})
		if query != "" && p.history != nil {
			cmd = tea.Batch(cmd, recordSearch(p.history, query, p.historySize))
		}
		return next, cmd

	case ActionHistoryOlder, ActionHistoryNewer:
		delta := 1
		if action == ActionHistoryNewer {
			delta = -1
		}
		if p.search.Recall(delta) {
			return p.dispatch(home.SearchTextChanged{Text: p.search.Value()})
		}
		return p, nil

	case ActionRetry:
		return p.dispatch(home.RetryRequested{})

	case ActionActivate:
		switch content {
		case home.ContentFailure, home.ContentNoResults:
			return p.dispatch(home.RetryRequested{})
		case home.ContentVideos:
			if v := p.list.SelectedVideo(); v != nil {
				p.status.SetMessage(fmt.Sprintf("%s (id %s)", v.Title, v.ID))
			}
		}
		return p, nil

	case ActionCloseBanner:
		return p.dispatch(home.BannerClosed{})

	case ActionToggleTheme:
		dark := p.appearance.Toggle()
		if p.settings != nil {
			return p, saveTheme(p.settings, dark)
		}
		return p, nil

	case ActionMoveDown, ActionMoveUp, ActionGoToTop, ActionGoToBottom, ActionPageDown, ActionPageUp:
		if content != home.ContentVideos {
			return p, nil
		}
		switch action {
		case ActionMoveDown:
			p.list.MoveSelection(1)
		case ActionMoveUp:
			p.list.MoveSelection(-1)
		case ActionGoToTop:
			p.list.GoToTop()
		case ActionGoToBottom:
			p.list.GoToBottom()
		case ActionPageDown:
			p.list.PageDown(contentH)
		case ActionPageUp:
			p.list.PageUp(contentH)
		}
		return p, nil
	}

	if !p.search.Focused() {
		return p, nil
	}
	cmd := p.search.Update(msg)
	if v := p.search.Value(); v != p.state.SearchText {
		next, dcmd := p.dispatch(home.SearchTextChanged{Text: v})
		return next, tea.Batch(cmd, dcmd)
	}
	return p, cmd
}

func (p Program) View() string {
	th := theme.For(p.appearance)
	w := p.layout.Width()
	contentH := p.layout.ContentHeight(p.state.BannerVisible)

	var lines []string

	// Row 1: top bar
	mode := "light"
	if p.appearance.IsDarkTheme() {
		mode = "dark"
	}
	title := th.AccentText("▶ Nxt Watch") + th.MutedText("  Home")
	right := th.MutedText("t: " + mode)
	lines = append(lines, ansi.PadExact(title, w-ansi.VisualWidth(right))+right)
	lines = append(lines, th.DividerText(strings.Repeat("─", w)))

	if p.state.BannerVisible {
		lines = append(lines, p.banner.Render(w, th)...)
		lines = append(lines, "")
	}

	lines = append(lines, p.search.Render(w, th), "")

	body := p.renderContent(w, contentH, th)
	for i := 0; i < contentH; i++ {
		if i < len(body) {
			lines = append(lines, body[i])
		} else {
			lines = append(lines, "")
		}
	}

	lines = append(lines, th.DividerText(strings.Repeat("─", w)))
	p.status.SetHint(p.hint())
	lines = append(lines, p.status.Render(w))

	base := th.Base()
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(base.Render(ansi.PadExact(l, w)))
	}
	return b.String()
}

// renderContent draws the content area for the current status.
func (p Program) renderContent(w, h int, th theme.Theme) []string {
	switch home.ContentFor(p.state) {
	case home.ContentLoading:
		return components.Loader(p.spinner.View()+" Loading", w, h)
	case home.ContentFailure:
		return components.FailureView(w, h, th)
	case home.ContentNoResults:
		return components.NoResultsView(w, h, th)
	case home.ContentVideos:
		return p.list.Render(w, h, th)
	default:
		return nil
	}
}

func (p Program) hint() string {
	if p.search.Focused() {
		return "enter: search  ↑/↓: history  esc: done"
	}
	parts := []string{"/: search", "r: retry"}
	if p.state.BannerVisible {
		parts = append(parts, "x: close banner")
	}
	parts = append(parts, "q: quit")
	return strings.Join(parts, "  ")
}
