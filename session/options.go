package session

import "time"

// WireVersion selects which framing a Session speaks for its entire
// lifetime: v1's bare-line protocol or v2's JSON-framed, ciphered one.
// This is distinct from the per-call version argument Execute takes,
// which only shapes an individual command's body within whichever wire
// the session was opened with.
type WireVersion int

const (
	WireV1 WireVersion = 1
	WireV2 WireVersion = 2
)

const (
	defaultTimeout = 10 * time.Second
	v1KeyBlobSize  = 4
)

type options struct {
	wireVersion         WireVersion
	timeout             time.Duration
	allowConcurrent     bool
	onLost              func(error)
	dialTimeout         time.Duration
}

func defaultOptions() options {
	return options{
		wireVersion:     WireV2,
		timeout:         defaultTimeout,
		allowConcurrent: true,
		dialTimeout:     defaultTimeout,
	}
}

// Option configures a Session at Connect time.
type Option func(*options)

// WithWireVersion selects the wire framing the session speaks. Defaults
// to WireV2.
func WithWireVersion(v WireVersion) Option {
	return func(o *options) { o.wireVersion = v }
}

// WithTimeout sets the default per-request timeout used by Execute
// calls that don't carry their own context deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithDialTimeout bounds how long the initial TCP connect and handshake
// may take.
func WithDialTimeout(d time.Duration) Option {
	return func(o *options) { o.dialTimeout = d }
}

// WithAllowConcurrentRequests controls whether responses are matched to
// requests by request id (default) or handed to outstanding requests in
// the order they were sent (FIFO), matching allow_concurrent_requests in
// spec.md §6. FIFO mode does not hold back a second Execute call while
// an earlier one is still outstanding.
func WithAllowConcurrentRequests(allow bool) Option {
	return func(o *options) { o.allowConcurrent = allow }
}

// WithOnLost registers a callback invoked once, from the read loop,
// when the underlying connection is lost or closed unexpectedly.
func WithOnLost(fn func(error)) Option {
	return func(o *options) { o.onLost = fn }
}
