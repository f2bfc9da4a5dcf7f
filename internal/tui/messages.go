package tui

import (
	"github.com/interpretive-systems/nxtwatch/internal/videos"
)

// videosMsg carries the result of the fetch numbered seq.
type videosMsg struct {
	seq    uint64
	query  string
	videos []videos.Summary
	err    error
}

// historyMsg contains the recent searches.
type historyMsg struct {
	terms []string
	err   error
}

// savedMsg reports the outcome of a background write.
type savedMsg struct {
	what string
	err  error
}
