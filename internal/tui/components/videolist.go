package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/interpretive-systems/nxtwatch/internal/theme"
	"github.com/interpretive-systems/nxtwatch/internal/tui/ansi"
	"github.com/interpretive-systems/nxtwatch/internal/videos"
)

// linesPerVideo is title + meta line + spacer.
const linesPerVideo = 3

// VideoList renders the fetched videos with a movable selection.
type VideoList struct {
	videos   []videos.Summary
	selected int
	offset   int
	now      func() time.Time
}

// NewVideoList creates an empty list.
func NewVideoList() *VideoList {
	return &VideoList{now: time.Now}
}

// SetVideos replaces the list and resets the selection to the top.
func (v *VideoList) SetVideos(list []videos.Summary) {
	v.videos = list
	v.selected = 0
	v.offset = 0
}

// Videos returns the current list.
func (v *VideoList) Videos() []videos.Summary {
	return v.videos
}

// Selected returns the selected index.
func (v *VideoList) Selected() int {
	return v.selected
}

// SelectedVideo returns the selected video, or nil when the list is empty.
func (v *VideoList) SelectedVideo() *videos.Summary {
	if len(v.videos) == 0 || v.selected < 0 || v.selected >= len(v.videos) {
		return nil
	}
	return &v.videos[v.selected]
}

// MoveSelection moves the selection by delta.
func (v *VideoList) MoveSelection(delta int) bool {
	if len(v.videos) == 0 {
		return false
	}

	newSel := v.selected + delta
	if newSel < 0 {
		newSel = 0
	}
	if newSel >= len(v.videos) {
		newSel = len(v.videos) - 1
	}

	changed := newSel != v.selected
	v.selected = newSel
	return changed
}

// GoToTop selects the first video.
func (v *VideoList) GoToTop() bool {
	if len(v.videos) == 0 || v.selected == 0 {
		return false
	}
	v.selected = 0
	return true
}

// GoToBottom selects the last video.
func (v *VideoList) GoToBottom() bool {
	if len(v.videos) == 0 {
		return false
	}
	last := len(v.videos) - 1
	if v.selected == last {
		return false
	}
	v.selected = last
	return true
}

// VisibleCount returns how many videos fit in height lines.
func VisibleCount(height int) int {
	n := height / linesPerVideo
	if n < 1 {
		n = 1
	}
	return n
}

// PageDown moves the selection one page down.
func (v *VideoList) PageDown(height int) bool {
	return v.MoveSelection(VisibleCount(height))
}

// PageUp moves the selection one page up.
func (v *VideoList) PageUp(height int) bool {
	return v.MoveSelection(-VisibleCount(height))
}

// EnsureVisible scrolls so the selection is inside a window of
// visibleCount videos.
func (v *VideoList) EnsureVisible(visibleCount int) {
	if len(v.videos) == 0 || visibleCount <= 0 {
		return
	}

	maxStart := len(v.videos) - visibleCount
	if maxStart < 0 {
		maxStart = 0
	}
	if v.offset < 0 {
		v.offset = 0
	}
	if v.offset > maxStart {
		v.offset = maxStart
	}

	if v.selected < v.offset {
		v.offset = v.selected
	} else if v.selected >= v.offset+visibleCount {
		v.offset = v.selected - visibleCount + 1
	}
}

// Render draws the visible part of the list into at most height lines.
func (v *VideoList) Render(width, height int, th theme.Theme) []string {
	lines := make([]string, 0, height)
	if len(v.videos) == 0 || height <= 0 {
		return lines
	}

	visible := VisibleCount(height)
	v.EnsureVisible(visible)

	end := v.offset + visible
	if end > len(v.videos) {
		end = len(v.videos)
	}

	for i := v.offset; i < end; i++ {
		vid := v.videos[i]
		marker := "  "
		if i == v.selected {
			marker = th.AccentText("▌ ")
		}
		title := marker + th.Heading(ansi.TruncateToWidth(vid.Title, width-2))
		meta := "  " + th.MutedText(ansi.TruncateToWidth(v.metaLine(vid), width-2))
		if i == v.selected {
			title = th.SelectedLine(ansi.PadExact(title, width))
			meta = th.SelectedLine(ansi.PadExact(meta, width))
		}
		lines = append(lines, title, meta)
		if len(lines) < height {
			lines = append(lines, "")
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

func (v *VideoList) metaLine(vid videos.Summary) string {
	var parts []string
	if vid.ChannelName != "" {
		parts = append(parts, vid.ChannelName)
	}
	if views := FormatViews(vid.ViewCount); views != "" {
		parts = append(parts, views)
	}
	if when := FormatPublished(vid.PublishedAt, v.now()); when != "" {
		parts = append(parts, when)
	}
	return strings.Join(parts, " • ")
}

// FormatViews renders a view count. Numeric counts are abbreviated
// ("1.2k views"); pre-formatted ones are kept.
func FormatViews(c videos.Count) string {
	if c == "" {
		return ""
	}
	if n, ok := c.Int(); ok {
		if n < 1000 {
			return fmt.Sprintf("%d views", n)
		}
		value, prefix := humanize.ComputeSI(float64(n))
		return fmt.Sprintf("%s%s views", humanize.FtoaWithDigits(value, 1), prefix)
	}
	return c.String() + " views"
}

var publishedLayouts = []string{
	"Jan 2, 2006",
	"Jan 02, 2006",
	time.RFC3339,
	"2006-01-02",
}

// FormatPublished turns the API's date into a relative time ("3 years ago").
// Dates it cannot parse are shown as sent.
func FormatPublished(s string, now time.Time) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return humanize.RelTime(t, now, "ago", "from now")
		}
	}
	return s
}
