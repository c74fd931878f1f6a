package core

import "errors"

var (
	// ErrNotFound indicates the requested resource does not exist. For
	// module/lesson lookups this means the caller holds a stale id.
	ErrNotFound = errors.New("not found")
	// ErrValidation represents user input validation failures.
	ErrValidation = errors.New("validation error")
	// ErrUnsupportedMedia indicates a file's MIME type is not acceptable
	// for the media slot or lesson it was offered to.
	ErrUnsupportedMedia = errors.New("unsupported media type")
	// ErrTransport indicates an upload or persistence call failed; callers
	// surface it with a retry affordance and never retry automatically.
	ErrTransport = errors.New("transport failure")
)
