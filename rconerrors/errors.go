// Package rconerrors defines the error taxonomy raised by the protocol
// engine and the components built on top of it. Each kind is a distinct
// sentinel or typed error so callers can branch with errors.Is/errors.As.
package rconerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrap these with fmt.Errorf("...: %w", Err...) at the
// call site so context survives while errors.Is keeps working.
var (
	// ErrResolution is returned when the host cannot be resolved or the
	// initial TCP connect times out.
	ErrResolution = errors.New("rcon: host could not be resolved")

	// ErrRefused is returned when the peer actively refuses the TCP
	// connection.
	ErrRefused = errors.New("rcon: connection refused")

	// ErrAuth is returned when Login is rejected with 401.
	ErrAuth = errors.New("rcon: authentication failed")

	// ErrConnectionLost is returned to every pending request when the
	// socket closes with an error while requests are in flight.
	ErrConnectionLost = errors.New("rcon: connection lost")

	// ErrMessage is returned when a response cannot be parsed into a
	// well-formed frame (malformed JSON, missing required fields).
	ErrMessage = errors.New("rcon: malformed response")

	// ErrTimeout is returned when no response arrives within a request's
	// deadline. The session is not closed.
	ErrTimeout = errors.New("rcon: request timed out")

	// ErrUnsupportedVersion is returned by command-surface operations
	// that are v2-only when invoked against a v1 session.
	ErrUnsupportedVersion = errors.New("rcon: operation not supported on this protocol version")

	// ErrClosed is returned by Execute on a session that has already
	// been disconnected or lost.
	ErrClosed = errors.New("rcon: session is closed")
)

// CommandError wraps a non-200 status returned by a completed request.
// StatusCode mirrors wire.StatusCode's int values (200/400/401/500); it
// is plain int here so this package has no dependency on wire.
type CommandError struct {
	StatusCode int
	Message    string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("rcon: command failed: %d %s", e.StatusCode, e.Message)
}

// Is allows errors.Is(err, &CommandError{}) to match any CommandError,
// and errors.Is(err, &CommandError{StatusCode: 400}) to match by code.
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	if !ok {
		return false
	}
	if t.StatusCode == 0 {
		return true
	}
	return t.StatusCode == e.StatusCode
}
