package errors

import "errors"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Failure classes for remote store calls. A request that never completed or
// came back non-2xx wraps ErrNetwork; a malformed response body wraps
// ErrDecode. Stale results are not errors and have no class here.
var (
	ErrNetwork = errors.New("network failure")
	ErrDecode  = errors.New("decode failure")
)
