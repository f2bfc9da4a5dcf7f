package components

import (
	"github.com/interpretive-systems/nxtwatch/internal/theme"
	"github.com/interpretive-systems/nxtwatch/internal/tui/ansi"
)

// Banner is the dismissible premium promo shown above the search bar.
type Banner struct{}

// Render returns the banner lines for the given width.
func (Banner) Render(width int, th theme.Theme) []string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	style := th.Banner().Width(width)

	closeHint := th.MutedText("x: close")
	logo := th.AccentText("▶ Nxt Watch")
	top := ansi.PadExact(logo, inner-ansi.VisualWidth(closeHint)) + closeHint

	rows := []string{
		top,
		"",
		"Buy Nxt Watch Premium",
		"",
		th.Button("GET IT NOW"),
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, style.Render(ansi.PadExact(r, inner)))
	}
	return out
}
