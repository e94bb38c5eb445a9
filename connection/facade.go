// Package connection provides a single persistent-looking RCON
// connection on top of session.Session: the first call to Execute
// dials and authenticates, every call after that reuses the
// same Session, and a connection lost mid-flight is only replaced by
// the next call made afterward — never reconnected automatically in
// the background. This mirrors hllrcon's PooledRconWorker._get_connection
// memoized-future, translated to Go's sync primitives.
package connection

import (
	"context"
	"sync"

	"github.com/hllrcon/rcon-go/session"
	"github.com/hllrcon/rcon-go/wire"
)

// Connection is a lazily-connecting, auto-memoizing handle to one RCON
// server. It is safe for concurrent use; concurrent callers racing to
// connect share a single in-flight dial.
type Connection struct {
	host     string
	port     int
	password string
	opts     []session.Option

	mu  sync.Mutex
	fut *future

	onLostMu sync.Mutex
	onLost   func(error)
}

type future struct {
	done chan struct{}
	sess *session.Session
	err  error
}

// New returns a Connection that has not yet dialed anything; the first
// Execute call triggers the connect.
func New(host string, port int, password string, opts ...session.Option) *Connection {
	return &Connection{host: host, port: port, password: password, opts: opts}
}

// OnDisconnect registers a callback fired when the active session is
// lost. Only one callback may be registered at a time; a later call
// replaces the prior one.
func (c *Connection) OnDisconnect(fn func(error)) {
	c.onLostMu.Lock()
	defer c.onLostMu.Unlock()
	c.onLost = fn
}

// Execute dials (or reuses) the underlying session and runs one
// command. Do not call this from within onLost — it may deadlock
// against the same future it is trying to clear.
func (c *Connection) Execute(ctx context.Context, name string, version int, body string) (wire.Response, error) {
	sess, err := c.getSession(ctx)
	if err != nil {
		return wire.Response{}, err
	}
	return sess.Execute(ctx, name, version, body)
}

// IsConnected reports whether a session currently exists and is
// connected. It never dials.
func (c *Connection) IsConnected() bool {
	c.mu.Lock()
	f := c.fut
	c.mu.Unlock()
	if f == nil {
		return false
	}
	select {
	case <-f.done:
		return f.err == nil && f.sess.IsConnected()
	default:
		return false
	}
}

// Disconnect closes the active session, if any, and clears the cached
// future so the next Execute call reconnects from scratch.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	f := c.fut
	c.fut = nil
	c.mu.Unlock()
	if f == nil {
		return
	}
	<-f.done
	if f.err == nil {
		f.sess.Disconnect()
	}
}

// getSession returns the memoized session, dialing it if this is the
// first call or if the previously cached attempt is no longer usable.
func (c *Connection) getSession(ctx context.Context) (*session.Session, error) {
	c.mu.Lock()
	if c.fut != nil {
		f := c.fut
		c.mu.Unlock()
		<-f.done
		if f.err == nil && f.sess.IsConnected() {
			return f.sess, nil
		}
		c.mu.Lock()
		if c.fut == f {
			c.fut = nil
		}
	}

	if c.fut != nil {
		f := c.fut
		c.mu.Unlock()
		<-f.done
		return f.sess, f.err
	}

	nf := &future{done: make(chan struct{})}
	c.fut = nf
	c.mu.Unlock()

	opts := append(append([]session.Option{}, c.opts...), session.WithOnLost(c.handleLost))
	sess, err := session.Connect(ctx, c.host, c.port, c.password, opts...)
	nf.sess, nf.err = sess, err
	close(nf.done)

	if err != nil {
		c.mu.Lock()
		if c.fut == nf {
			c.fut = nil
		}
		c.mu.Unlock()
	}
	return sess, err
}

func (c *Connection) handleLost(err error) {
	c.mu.Lock()
	c.fut = nil
	c.mu.Unlock()

	c.onLostMu.Lock()
	fn := c.onLost
	c.onLostMu.Unlock()
	if fn != nil {
		fn(err)
	}
}
