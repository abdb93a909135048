package service

import "errors"

// ErrNotFound is the single absence signal: legitimate empty results and
// swallowed transport failures are indistinguishable to the caller.
var ErrNotFound = errors.New("record not found")

// UpstreamError carries the message of an application-level failure the
// upstream signalled explicitly (error: true). It propagates to the caller
// with the message intact and is never retried against another source.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}
