package videos

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Summary is the normalized per-video display record.
type Summary struct {
	ID                     string
	Title                  string
	ThumbnailURL           string
	ViewCount              Count
	PublishedAt            string
	ChannelName            string
	ChannelProfileImageURL string
}

// Count holds a view count as sent by the API. The service sends either a
// plain number (5) or a pre-formatted string ("1.4K"); both keep their text.
type Count string

// UnmarshalJSON accepts numbers, strings and null.
func (c *Count) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Count(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*c = Count(n.String())
	return nil
}

// String returns the count as received.
func (c Count) String() string { return string(c) }

// Int reports the numeric value when the count is a plain integer.
func (c Count) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(c), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// wire shapes

type apiChannel struct {
	Name            string `json:"name"`
	ProfileImageURL string `json:"profile_image_url"`
}

type apiVideo struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	ThumbnailURL string      `json:"thumbnail_url"`
	ViewCount    Count       `json:"view_count"`
	PublishedAt  string      `json:"published_at"`
	Channel      *apiChannel `json:"channel"`
}

type apiResponse struct {
	Videos json.RawMessage `json:"videos"`
}

func (v apiVideo) summary() Summary {
	s := Summary{
		ID:           v.ID,
		Title:        v.Title,
		ThumbnailURL: v.ThumbnailURL,
		ViewCount:    v.ViewCount,
		PublishedAt:  v.PublishedAt,
	}
	if v.Channel != nil {
		s.ChannelName = v.Channel.Name
		s.ChannelProfileImageURL = v.Channel.ProfileImageURL
	}
	return s
}

// decodeSummaries maps a response body into summaries. A body without a
// usable "videos" array yields an empty, non-nil result.
func decodeSummaries(body []byte) []Summary {
	out := []Summary{}
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return out
	}
	raw := bytes.TrimSpace(resp.Videos)
	if len(raw) == 0 || raw[0] != '[' {
		return out
	}
	var items []apiVideo
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}
	for _, it := range items {
		out = append(out, it.summary())
	}
	return out
}
