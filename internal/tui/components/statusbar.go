package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusBar manages the bottom status bar.
type StatusBar struct {
	lastRefresh time.Time
	hint        string
	message     string
	count       int
	hasCount    bool
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetLastRefresh updates the refresh timestamp.
func (s *StatusBar) SetLastRefresh(t time.Time) {
	s.lastRefresh = t
}

// SetHint sets the key hints shown on the left.
func (s *StatusBar) SetHint(h string) {
	s.hint = h
}

// SetMessage sets a transient message that replaces the hints.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// Message returns the transient message.
func (s *StatusBar) Message() string {
	return s.message
}

// SetCount records how many videos the last search returned.
func (s *StatusBar) SetCount(n int) {
	s.count = n
	s.hasCount = true
}

// Render renders the status bar.
func (s *StatusBar) Render(width int) string {
	leftText := s.hint
	if s.message != "" {
		leftText = s.message
	}

	var right []string
	if s.hasCount {
		noun := "videos"
		if s.count == 1 {
			noun = "video"
		}
		right = append(right, fmt.Sprintf("%d %s", s.count, noun))
	}
	if !s.lastRefresh.IsZero() {
		right = append(right, "refreshed: "+s.lastRefresh.Format("15:04:05"))
	}

	leftStyled := lipgloss.NewStyle().Faint(true).Render(leftText)
	rightStyled := lipgloss.NewStyle().Faint(true).Render(strings.Join(right, "  "))

	// Ensure right part is always visible
	rightW := lipgloss.Width(rightStyled)
	if rightW >= width {
		return ansi.Truncate(rightStyled, width, "…")
	}

	avail := width - rightW - 1
	leftRendered := leftStyled
	if lipgloss.Width(leftRendered) > avail {
		leftRendered = ansi.Truncate(leftRendered, avail, "…")
	} else if lipgloss.Width(leftRendered) < avail {
		leftRendered = leftRendered + strings.Repeat(" ", avail-lipgloss.Width(leftRendered))
	}

	return leftRendered + " " + rightStyled
}
