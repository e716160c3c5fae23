// Package errs holds the error kinds shared across the program. The
// orchestrator is the only place that decides terminate-vs-continue;
// everything below it just returns one of these.
package errs

import (
	"errors"
	"fmt"
)

var (
	// Fatal: the backing database or the campus network link is down.
	ErrTransportUnavailable = errors.New("transport unavailable")

	// Fatal: an upstream API rejected us (bad key, bad ID, missing subscription).
	ErrUpstreamRejected = errors.New("upstream rejected request")

	// Not an error: the source had nothing to show.
	ErrEmptyResult = errors.New("empty result")

	// Recoverable user errors.
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrStaleView       = errors.New("stale view")
	ErrDuplicateEntry  = errors.New("duplicate entry")

	// Recoverable per-record parse failure.
	ErrFormat = errors.New("format error")
)

type causeError struct {
	kind  error
	cause string
}

func (e *causeError) Error() string {
	return e.kind.Error() + ": " + e.cause
}

func (e *causeError) Unwrap() error {
	return e.kind
}

// Upstream wraps ErrUpstreamRejected with a user-facing cause.
func Upstream(cause string) error {
	return &causeError{kind: ErrUpstreamRejected, cause: cause}
}

// Transport wraps ErrTransportUnavailable with the underlying failure.
func Transport(err error) error {
	return fmt.Errorf("%w: %v", ErrTransportUnavailable, err)
}

// Fatal reports whether err must end the session.
func Fatal(err error) bool {
	return errors.Is(err, ErrTransportUnavailable) || errors.Is(err, ErrUpstreamRejected)
}

// Cause returns the user-facing text attached by Upstream, or the error
// text when there is none.
func Cause(err error) string {
	var ce *causeError
	if errors.As(err, &ce) {
		return ce.cause
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
