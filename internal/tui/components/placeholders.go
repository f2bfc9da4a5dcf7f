package components

import (
	"github.com/interpretive-systems/nxtwatch/internal/theme"
	"github.com/interpretive-systems/nxtwatch/internal/tui/ansi"
)

// Texts shown by the placeholder views.
const (
	FailureHeading   = "Oops! Something Went Wrong"
	FailureBody      = "We are having some trouble to complete your request. Please try again."
	NoResultsHeading = "No Search results found"
	NoResultsBody    = "Try different key words or remove search filter"
	RetryLabel       = "Retry"
)

// Loader renders the spinner centered in the content area.
func Loader(spinnerView string, width, height int) []string {
	return centerBlock([]string{spinnerView}, width, height)
}

// FailureView renders the failure message with its retry button.
func FailureView(width, height int, th theme.Theme) []string {
	return placeholder(FailureHeading, FailureBody, width, height, th)
}

// NoResultsView renders the empty-search message with its retry button.
func NoResultsView(width, height int, th theme.Theme) []string {
	return placeholder(NoResultsHeading, NoResultsBody, width, height, th)
}

func placeholder(heading, body string, width, height int, th theme.Theme) []string {
	block := []string{th.Heading(heading), ""}
	for _, l := range ansi.WrapLine(body, width-4) {
		block = append(block, th.MutedText(l))
	}
	block = append(block, "", th.Button(RetryLabel), th.MutedText("enter/r"))
	return centerBlock(block, width, height)
}

func centerBlock(block []string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(block) > height {
		block = block[:height]
	}
	top := (height - len(block)) / 3
	out := make([]string, 0, height)
	for i := 0; i < top; i++ {
		out = append(out, "")
	}
	for _, l := range block {
		out = append(out, ansi.Center(l, width))
	}
	return out
}
