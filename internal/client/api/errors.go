package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bookvite/storefront/internal/common"
)

// ErrUnavailable marks transport-level failures (connection refused,
// timeout) where no HTTP response was received.
var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx response from the API. Message carries the server's
// failure text verbatim so views can display it inline.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap maps HTTP status classes onto the shared sentinels so callers can
// use errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	}
	if e.Status >= 500 {
		return common.ErrorInternal
	}
	return nil
}

// newError builds an Error from a response body. Servers reply with either
// a bare string, a JSON-encoded string, or nothing; all three end up as a
// readable message.
func newError(status int, body []byte) *Error {
	msg := strings.TrimSpace(string(body))

	var jsonMsg string
	if json.Unmarshal(body, &jsonMsg) == nil {
		msg = jsonMsg
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Status: status, Message: msg}
}
