// Package session implements the RCON protocol engine: one TCP
// connection, its handshake, and the request/response correlation that
// turns a byte stream into completed Execute calls. A Session is
// single-use — once it transitions to StateLost or StateClosed it never
// reconnects; callers needing resilience build that on top (see the
// connection and pool packages).
package session

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hllrcon/rcon-go/cipher"
	"github.com/hllrcon/rcon-go/rconerrors"
	"github.com/hllrcon/rcon-go/wire"
)

// Session is one authenticated connection to an RCON server, speaking
// either wire framing for its whole lifetime.
type Session struct {
	conn   net.Conn
	wire   WireVersion
	opts   options
	logger *slog.Logger

	writeMu sync.Mutex
	nextID  atomic.Uint32

	send *cipher.Stream
	recv *cipher.Stream
	strip *cipher.StripLatch

	pending *pendingSlots

	mu    sync.Mutex
	state State

	closeOnce sync.Once
	closed    chan struct{}
}

// Connect dials host:port, performs the wire handshake and login, and
// returns a Session ready for Execute calls. Dial, timeout,
// authentication, and malformed-handshake failures wrap one of the
// rconerrors sentinels; a failed socket write or a cancelled ctx is
// returned as that underlying error instead.
func Connect(ctx context.Context, host string, port int, password string, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dialCtx, cancel := context.WithTimeout(ctx, o.dialTimeout)
	defer cancel()

	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	var d net.Dialer
	conn, err := d.DialContext(dialCtx, "tcp", addr)
	if err != nil {
		return nil, classifyDialError(addr, err)
	}

	s := &Session{
		conn:    conn,
		wire:    o.wireVersion,
		opts:    o,
		logger:  slog.Default().With("component", "rcon.session", "addr", addr),
		send:    cipher.NewStream(),
		recv:    cipher.NewStream(),
		strip:   cipher.NewStripLatch(v1KeyBlobSize),
		pending: newPendingSlots(o.wireVersion != WireV1 && o.allowConcurrent),
		state:   StateHandshaking,
		closed:  make(chan struct{}),
	}

	go s.readLoop()

	if err := s.handshakeAndLogin(dialCtx, password); err != nil {
		s.Disconnect()
		return nil, err
	}

	s.setState(StateConnected)
	return s, nil
}

func classifyDialError(addr string, err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("resolving %s: %w", addr, rconerrors.ErrResolution)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("connecting to %s timed out: %w", addr, rconerrors.ErrResolution)
	}
	return fmt.Errorf("dialing %s: %w", addr, rconerrors.ErrRefused)
}

func (s *Session) handshakeAndLogin(ctx context.Context, password string) error {
	if s.wire == WireV1 {
		return s.loginV1(ctx, password)
	}
	return s.handshakeV2(ctx, password)
}

func (s *Session) handshakeV2(ctx context.Context, password string) error {
	resp, err := s.execute(ctx, "ServerConnect", 2, " ", "")
	if err != nil {
		return fmt.Errorf("server connect: %w", err)
	}
	key, err := base64.StdEncoding.DecodeString(resp.ContentBody)
	if err != nil || len(key) == 0 {
		return fmt.Errorf("server connect: %w: invalid xor key", rconerrors.ErrMessage)
	}
	s.send.Install(key)
	s.recv.Install(key)

	s.setState(StateAuthenticating)
	resp, err = s.execute(ctx, "Login", 2, password, "")
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := resp.RaiseForStatus(); err != nil {
		return fmt.Errorf("login: %w: %w", rconerrors.ErrAuth, err)
	}
	return nil
}

func (s *Session) loginV1(ctx context.Context, password string) error {
	s.setState(StateAuthenticating)
	resp, err := s.execute(ctx, "Login", 1, password, "")
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if resp.ContentBody == "" {
		return fmt.Errorf("login: %w", rconerrors.ErrAuth)
	}
	return nil
}

// Execute sends one command and waits for its response. name and body
// are opaque to the engine; version selects how the command surface
// shapes body, not the session's own wire framing. A v1 session
// rejects version 2 calls outright.
func (s *Session) Execute(ctx context.Context, name string, version int, body string) (wire.Response, error) {
	if s.wire == WireV1 && version == 2 {
		return wire.Response{}, fmt.Errorf("executing %s: %w", name, rconerrors.ErrUnsupportedVersion)
	}
	if s.State() != StateConnected {
		return wire.Response{}, fmt.Errorf("executing %s: %w", name, rconerrors.ErrClosed)
	}
	return s.execute(ctx, name, version, body, "")
}

// execute is the handshake-reentrant core: it runs even before the
// session reaches StateConnected, which Execute's exported wrapper
// forbids.
func (s *Session) execute(ctx context.Context, name string, version int, body, authToken string) (wire.Response, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.timeout)
		defer cancel()
	}

	id := s.nextID.Add(1)
	sl := s.pending.register(id)

	req := wire.Request{RequestID: id, Name: name, Version: version, AuthToken: authToken, ContentBody: body}

	var raw []byte
	var err error
	if s.wire == WireV1 {
		raw = req.PackV1()
	} else {
		raw, err = req.PackV2()
	}
	if err != nil {
		s.pending.abandon(id)
		return wire.Response{}, fmt.Errorf("encoding %s: %w", name, err)
	}

	if err := s.writeFrame(raw); err != nil {
		s.pending.abandon(id)
		return wire.Response{}, fmt.Errorf("sending %s: %w", name, err)
	}

	select {
	case resp := <-sl.resp:
		return resp, nil
	case err := <-sl.err:
		return wire.Response{}, fmt.Errorf("executing %s: %w", name, err)
	case <-ctx.Done():
		s.pending.abandon(id)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return wire.Response{}, fmt.Errorf("executing %s: %w", name, rconerrors.ErrTimeout)
		}
		return wire.Response{}, ctx.Err()
	case <-s.closed:
		return wire.Response{}, fmt.Errorf("executing %s: %w", name, rconerrors.ErrConnectionLost)
	}
}

// writeFrame ciphers the already-framed header+body as one unit (Install
// hasn't been called yet during the handshake's first round trip, so
// Transform is a pass-through until then) and writes it as a single
// Write call. The header is enciphered along with the body outbound —
// only the read side treats the header as cleartext, since it must be
// parsed before the body's length, let alone its key offset, is known.
func (s *Session) writeFrame(raw []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	out := raw
	if s.wire == WireV2 {
		out = s.send.Transform(raw)
	}
	_, err := s.conn.Write(out)
	return err
}

func (s *Session) readLoop() {
	var err error
	if s.wire == WireV1 {
		err = s.readLoopV1()
	} else {
		err = s.readLoopV2()
	}
	s.fail(err)
}

// idleReadDeadline bounds a single blocking read so a peer that goes
// silent without closing the socket doesn't wedge the read loop
// forever. A trip is not a connection failure: it only means nothing
// arrived this interval, so the loop resets the deadline and reads
// again. Requests actually waiting past their timeout are failed by
// execute's own ctx.Done() path with rconerrors.ErrTimeout, never by
// the read loop; this deadline exists purely so that path keeps being
// reachable.
func (s *Session) armIdleDeadline() {
	s.conn.SetReadDeadline(time.Now().Add(s.opts.timeout))
}

func isReadTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func (s *Session) readLoopV2() error {
	header := make([]byte, wire.HeaderSize)
	for {
		select {
		case <-s.closed:
			return rconerrors.ErrClosed
		default:
		}

		s.armIdleDeadline()
		if _, err := io.ReadFull(s.conn, header); err != nil {
			if isReadTimeout(err) {
				continue
			}
			return err
		}
		id, length := wire.ParseHeader(header)

		body := make([]byte, length)
		if length > 0 {
			// The deadline armed before the header still covers this
			// read, but a trip here is not retried: with the header
			// already consumed the stream cannot be resynchronised, so
			// any error, timeout included, ends the loop.
			if _, err := io.ReadFull(s.conn, body); err != nil {
				return err
			}
			body = s.recv.Transform(body)
		}

		resp, err := wire.UnpackV2(id, body)
		if err != nil {
			s.logger.Warn("dropping malformed response", "err", err)
			continue
		}
		s.pending.deliver(resp)
	}
}

func (s *Session) readLoopV1() error {
	buf := make([]byte, 8192)
	for {
		select {
		case <-s.closed:
			return rconerrors.ErrClosed
		default:
		}

		s.armIdleDeadline()
		n, err := s.conn.Read(buf)
		if n > 0 {
			data := s.strip.Filter(buf[:n])
			if len(data) > 0 {
				resp := wire.UnpackV1(0, data)
				s.pending.deliver(resp)
			}
		}
		if err != nil {
			if isReadTimeout(err) {
				continue
			}
			return err
		}
	}
}

// fail is invoked by the read loop when the connection dies
// unexpectedly. It fans the error out to every pending Execute call and
// fires the onLost hook exactly once.
func (s *Session) fail(err error) {
	wrapped := fmt.Errorf("%w: %v", rconerrors.ErrConnectionLost, err)
	s.pending.failAll(wrapped)
	s.setState(StateLost)

	first := false
	s.closeOnce.Do(func() {
		first = true
		close(s.closed)
		s.conn.Close()
	})
	if first && s.opts.onLost != nil {
		s.opts.onLost(wrapped)
	}
}

// Disconnect closes the underlying connection and fails every
// outstanding Execute call. Idempotent: a second call is a no-op. It
// does not invoke the onLost hook, which is reserved for unsolicited
// loss detected by the read loop.
func (s *Session) Disconnect() {
	s.pending.failAll(fmt.Errorf("disconnecting: %w", rconerrors.ErrClosed))
	s.setState(StateClosed)
	s.closeOnce.Do(func() {
		close(s.closed)
		s.conn.Close()
	})
}

// IsConnected reports whether the session is past its handshake and has
// not yet been lost or closed.
func (s *Session) IsConnected() bool {
	return s.State() == StateConnected
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClosed {
		return
	}
	s.state = st
}
