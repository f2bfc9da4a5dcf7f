package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisualWidth returns the number of terminal cells s occupies, ignoring
// escape sequences.
func VisualWidth(s string) int {
	return ansi.StringWidth(s)
}

// ClipToWidth truncates string to at most w visual columns without ellipsis.
func ClipToWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "")
}

// PadExact pads or clips s to exactly w columns (ANSI-aware).
func PadExact(s string, w int) string {
	if w <= 0 {
		return ""
	}
	vw := VisualWidth(s)
	if vw > w {
		return ClipToWidth(s, w)
	}
	return s + strings.Repeat(" ", w-vw)
}

// TruncateToWidth truncates to width with ellipsis if needed.
func TruncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// Center pads s on both sides to sit in the middle of w columns.
func Center(s string, w int) string {
	vw := VisualWidth(s)
	if vw >= w {
		return TruncateToWidth(s, w)
	}
	left := (w - vw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-vw-left)
}
