// Package videos talks to the Nxt Watch videos API and normalizes its
// responses into Summary records.
package videos

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the public Nxt Watch API.
	DefaultBaseURL = "https://apis.ccbp.in"

	defaultCacheSize = 64
	maxBodyBytes     = 8 << 20
)

// Options configures a Client.
type Options struct {
	BaseURL     string
	TokenSource oauth2.TokenSource
	// Timeout bounds each request; zero leaves requests unbounded.
	Timeout time.Duration
	// CacheTTL enables the response cache when positive.
	CacheTTL  time.Duration
	CacheSize int
	// Transport is the base round tripper; nil uses http.DefaultTransport.
	Transport http.RoundTripper
	Logger    *zap.Logger
}

// Client wraps the videos endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	cache      *expirable.LRU[string, []Summary]
	log        *zap.Logger
}

// New creates a client. The bearer token comes from opts.TokenSource.
func New(opts Options) *Client {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	var rt http.RoundTripper = loggingTransport{base: opts.Transport, log: log}
	if opts.TokenSource != nil {
		rt = &oauth2.Transport{Source: opts.TokenSource, Base: rt}
	}

	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{Transport: rt},
		timeout:    opts.Timeout,
		log:        log,
	}
	if opts.CacheTTL > 0 {
		size := opts.CacheSize
		if size <= 0 {
			size = defaultCacheSize
		}
		c.cache = expirable.NewLRU[string, []Summary](size, nil, opts.CacheTTL)
	}
	return c
}

type fetchConfig struct {
	bypassCache bool
}

// FetchOption adjusts a single FetchVideos call.
type FetchOption func(*fetchConfig)

// BypassCache forces a network round trip and refreshes the cached entry.
func BypassCache() FetchOption {
	return func(c *fetchConfig) { c.bypassCache = true }
}

// FetchVideos runs a search and returns the normalized list. Any non-2xx
// status or transport failure returns an error matching ErrRequestFailed.
// A successful response without a usable "videos" array returns an empty
// list and no error.
func (c *Client) FetchVideos(ctx context.Context, query string, opts ...FetchOption) ([]Summary, error) {
	var fc fetchConfig
	for _, o := range opts {
		o(&fc)
	}

	if c.cache != nil && !fc.bypassCache {
		if res, ok := c.cache.Get(query); ok {
			c.log.Debug("videos cache hit", zap.String("query", query), zap.Int("count", len(res)))
			return slices.Clone(res), nil
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reqID := uuid.NewString()
	log := c.log.With(zap.String("request_id", reqID), zap.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query), nil)
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("videos request failed", zap.Error(err))
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		log.Warn("videos request rejected", zap.Int("status", resp.StatusCode))
		return nil, &RequestError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		log.Warn("videos response read failed", zap.Error(err))
		return nil, &RequestError{Err: fmt.Errorf("read body: %w", err)}
	}
	if len(body) > maxBodyBytes {
		log.Warn("videos response too large", zap.Int("limit", maxBodyBytes))
		return nil, &RequestError{Err: fmt.Errorf("response exceeds %d bytes", maxBodyBytes)}
	}

	list := decodeSummaries(body)
	log.Debug("videos fetched", zap.Int("count", len(list)))
	if c.cache != nil {
		c.cache.Add(query, slices.Clone(list))
	}
	return list, nil
}

func (c *Client) searchURL(query string) string {
	v := url.Values{}
	v.Set("search", query)
	return c.baseURL + "/videos/all?" + v.Encode()
}
