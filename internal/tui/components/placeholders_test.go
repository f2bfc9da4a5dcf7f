package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/nxtwatch/internal/theme"
)

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

func TestFailureView(t *testing.T) {
	lines := FailureView(80, 12, theme.Light())
	plain := ansi.Strip(strings.Join(lines, "\n"))
	for _, want := range []string{FailureHeading, "Please try again.", RetryLabel} {
		if !contains(plain, want) {
			t.Fatalf("expected %q in failure view, got %q", want, plain)
		}
	}
	if len(lines) > 12 {
		t.Fatalf("failure view overflowed: %d lines", len(lines))
	}
}

func TestNoResultsView(t *testing.T) {
	plain := ansi.Strip(strings.Join(NoResultsView(80, 12, theme.Dark()), "\n"))
	if !contains(plain, NoResultsHeading) || !contains(plain, NoResultsBody) {
		t.Fatalf("unexpected no results view: %q", plain)
	}
}

func TestPlaceholder_ClipsToHeight(t *testing.T) {
	if got := len(FailureView(80, 2, theme.Light())); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
	if got := FailureView(80, 0, theme.Light()); got != nil {
		t.Fatalf("expected nothing for zero height")
	}
}

func TestBanner_Render(t *testing.T) {
	lines := Banner{}.Render(50, theme.Light())
	if len(lines) != 5 {
		t.Fatalf("expected 5 banner rows, got %d", len(lines))
	}
	plain := ansi.Strip(strings.Join(lines, "\n"))
	for _, want := range []string{"Nxt Watch", "x: close", "Buy Nxt Watch Premium", "GET IT NOW"} {
		if !contains(plain, want) {
			t.Fatalf("expected %q in banner, got %q", want, plain)
		}
	}
	for _, l := range lines {
		if w := ansi.StringWidth(l); w != 50 {
			t.Fatalf("banner row width %d, want 50", w)
		}
	}
}

func TestStatusBar_Render(t *testing.T) {
	sb := NewStatusBar()
	sb.SetHint("q: quit")
	sb.SetCount(3)
	curTime, _ := time.Parse(time.TimeOnly, "12:34:56")
	sb.SetLastRefresh(curTime)

	plain := ansi.Strip(sb.Render(60))
	if !strings.HasPrefix(plain, "q: quit") {
		t.Fatalf("expected hint on the left, got %q", plain)
	}
	if !strings.HasSuffix(plain, "3 videos  refreshed: 12:34:56") {
		t.Fatalf("expected count and timestamp on the right, got %q", plain)
	}

	sb.SetMessage("request failed")
	if plain := ansi.Strip(sb.Render(60)); !strings.HasPrefix(plain, "request failed") {
		t.Fatalf("message should replace the hint, got %q", plain)
	}

	sb.SetCount(1)
	if plain := ansi.Strip(sb.Render(60)); !contains(plain, "1 video ") {
		t.Fatalf("expected singular, got %q", plain)
	}
}
