package home

import "github.com/interpretive-systems/nxtwatch/internal/videos"

// Event is anything that can change the view state.
type Event interface{ isEvent() }

// Mounted fires once when the view is first shown.
type Mounted struct{}

// SearchTextChanged replaces the text in the search box.
type SearchTextChanged struct{ Text string }

// SearchSubmitted runs a search with the current text.
type SearchSubmitted struct{}

// RetryRequested clears the search text and fetches again.
type RetryRequested struct{}

// BannerClosed hides the promo banner for the rest of the mount.
type BannerClosed struct{}

// FetchSucceeded carries the result of the fetch numbered Seq.
type FetchSucceeded struct {
	Seq    uint64
	Videos []videos.Summary
}

// FetchFailed reports that the fetch numbered Seq failed.
type FetchFailed struct {
	Seq uint64
	Err error
}

func (Mounted) isEvent()           {}
func (SearchTextChanged) isEvent() {}
func (SearchSubmitted) isEvent()   {}
func (RetryRequested) isEvent()    {}
func (BannerClosed) isEvent()      {}
func (FetchSucceeded) isEvent()    {}
func (FetchFailed) isEvent()       {}

// Reducer applies events to a State.
type Reducer struct {
	// DropStale discards results of any fetch other than the latest one.
	// When false, whichever response resolves last wins.
	DropStale bool
}

// Reduce returns the state after ev and, when ev starts a search, the
// fetch the caller must run. s is not modified.
func (r Reducer) Reduce(s State, ev Event) (State, *FetchRequest) {
	switch ev := ev.(type) {
	case Mounted:
		if s.Status != StatusInitial || s.Seq != 0 {
			return s, nil
		}
		return s.startFetch(s.SearchText, false)

	case SearchTextChanged:
		s.SearchText = ev.Text
		return s, nil

	case SearchSubmitted:
		return s.startFetch(s.SearchText, false)

	case RetryRequested:
		s.SearchText = ""
		return s.startFetch("", true)

	case BannerClosed:
		s.BannerVisible = false
		return s, nil

	case FetchSucceeded:
		if r.stale(s, ev.Seq) {
			return s, nil
		}
		list := make([]videos.Summary, len(ev.Videos))
		copy(list, ev.Videos)
		s.Videos = list
		s.Status = StatusSuccess
		return s, nil

	case FetchFailed:
		if r.stale(s, ev.Seq) {
			return s, nil
		}
		s.Status = StatusFailure
		return s, nil
	}
	return s, nil
}

// Accepts reports whether a result for fetch seq would be applied to s.
func (r Reducer) Accepts(s State, seq uint64) bool {
	if seq == 0 || seq > s.Seq {
		return false
	}
	return !r.DropStale || seq == s.Seq
}

func (r Reducer) stale(s State, seq uint64) bool {
	return !r.Accepts(s, seq)
}

func (s State) startFetch(query string, fresh bool) (State, *FetchRequest) {
	s.Seq++
	s.Query = query
	s.Status = StatusLoading
	return s, &FetchRequest{Seq: s.Seq, Query: query, Fresh: fresh}
}
