package videos

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRequestFailed is matched by every fetch failure, HTTP or transport.
var ErrRequestFailed = errors.New("videos request failed")

// RequestError describes a failed fetch. StatusCode is zero when the
// request never produced a response.
type RequestError struct {
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: %d %s", ErrRequestFailed, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%v: %v", ErrRequestFailed, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }

// Unauthorized reports whether the server rejected the token.
func (e *RequestError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
