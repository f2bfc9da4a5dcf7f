// Package home holds the Home view state machine: an immutable State, the
// events that change it, and a pure Reduce function.
package home

import "github.com/interpretive-systems/nxtwatch/internal/videos"

// Status is the fetch status shown by the view.
type Status int

const (
	StatusInitial Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "INITIAL"
	case StatusLoading:
		return "IN_PROGRESS"
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailure:
		return "FAILURE"
	default:
		return "UNKNOWN"
	}
}

// State is the per-mount view state. Values are never mutated in place;
// Reduce returns a new State.
type State struct {
	Videos        []videos.Summary
	SearchText    string
	Status        Status
	BannerVisible bool

	// Seq numbers the most recently initiated fetch; Query is its search text.
	Seq   uint64
	Query string
}

// New returns the state a freshly mounted view starts with.
func New() State {
	return State{
		Videos:        []videos.Summary{},
		Status:        StatusInitial,
		BannerVisible: true,
	}
}

// FetchRequest is the effect asking the caller to run a search. The result
// must be fed back as FetchSucceeded or FetchFailed carrying the same Seq.
type FetchRequest struct {
	Seq   uint64
	Query string
	// Fresh asks the fetcher to skip any cached response.
	Fresh bool
}

// Content is the visual outcome for the content area below the search bar.
type Content int

const (
	ContentNone Content = iota
	ContentLoading
	ContentFailure
	ContentNoResults
	ContentVideos
)

func (c Content) String() string {
	switch c {
	case ContentLoading:
		return "loading"
	case ContentFailure:
		return "failure"
	case ContentNoResults:
		return "no-results"
	case ContentVideos:
		return "videos"
	default:
		return "none"
	}
}

// ContentFor decides what the content area shows for s.
func ContentFor(s State) Content {
	switch s.Status {
	case StatusLoading:
		return ContentLoading
	case StatusFailure:
		return ContentFailure
	case StatusSuccess:
		if len(s.Videos) == 0 {
			return ContentNoResults
		}
		return ContentVideos
	default:
		return ContentNone
	}
}
