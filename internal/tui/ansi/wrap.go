package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// WrapLine word-wraps a single line to the given width, preserving ANSI codes.
func WrapLine(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	wrapped := ansi.Wrap(s, width, "")
	return strings.Split(wrapped, "\n")
}
