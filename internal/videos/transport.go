package videos

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type loggingTransport struct {
	base http.RoundTripper
	log  *zap.Logger
}

func (t loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)

	// The URL carries only the search text; the token lives in a header.
	if err != nil {
		t.log.Debug("http request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return nil, err
	}

	t.log.Debug("http request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed))
	return resp, nil
}
