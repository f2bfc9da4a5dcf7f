package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/nxtwatch/internal/theme"
	"github.com/interpretive-systems/nxtwatch/internal/tui/ansi"
)

// SearchCharLimit is the longest search the box accepts, in runes.
const SearchCharLimit = 200

// SearchBar is the search box with recall of previous searches.
type SearchBar struct {
	input   textinput.Model
	history []string
	// histIdx is -1 while editing a draft, otherwise an index into history.
	histIdx int
	draft   string
}

// NewSearchBar creates an empty, unfocused search bar.
func NewSearchBar() *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.Prompt = "⌕ "
	ti.CharLimit = SearchCharLimit
	return &SearchBar{input: ti, histIdx: -1}
}

// Focus puts the cursor in the box.
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes the cursor.
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the box has the cursor.
func (s *SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the current text.
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// ClipSearch cuts s to the length the box accepts.
func ClipSearch(s string) string {
	r := []rune(s)
	if len(r) <= SearchCharLimit {
		return s
	}
	return string(r[:SearchCharLimit])
}

// SetValue replaces the text and leaves history browsing.
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
	s.input.CursorEnd()
	s.histIdx = -1
}

// SetHistory sets the recent searches, most recent first.
func (s *SearchBar) SetHistory(terms []string) {
	s.history = terms
	s.histIdx = -1
}

// History returns the recent searches.
func (s *SearchBar) History() []string {
	return s.history
}

// Recall steps through history: delta 1 goes to an older search, -1 to a
// newer one, and stepping past the newest restores the draft. It reports
// whether the text changed.
func (s *SearchBar) Recall(delta int) bool {
	if len(s.history) == 0 {
		return false
	}
	idx := s.histIdx + delta
	if idx < -1 {
		idx = -1
	}
	if idx >= len(s.history) {
		idx = len(s.history) - 1
	}
	if idx == s.histIdx {
		return false
	}
	if s.histIdx == -1 {
		s.draft = s.input.Value()
	}
	s.histIdx = idx
	if idx == -1 {
		s.input.SetValue(s.draft)
	} else {
		s.input.SetValue(s.history[idx])
	}
	s.input.CursorEnd()
	return true
}

// Update forwards a message to the text input.
func (s *SearchBar) Update(msg tea.Msg) tea.Cmd {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.histIdx = -1
	}
	return cmd
}

// Render draws the search box on a single line.
func (s *SearchBar) Render(width int, th theme.Theme) string {
	hint := th.MutedText("  / search")
	if s.input.Focused() {
		hint = th.MutedText("  enter: search  esc: done")
	}
	avail := width - ansi.VisualWidth(hint)
	if avail < 10 {
		avail = width
		hint = ""
	}
	s.input.Width = avail - 3
	if s.input.Width < 1 {
		s.input.Width = 1
	}
	return ansi.PadExact(s.input.View(), avail) + hint
}
