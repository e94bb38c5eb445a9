// Package pool bounds how many concurrent sessions a client opens
// against one RCON server, fanning Execute calls out across a capped
// set of workers instead of dialing one connection per caller. Each
// worker connects lazily on first use and is retired, not reconnected,
// once its session is lost — mirroring hllrcon's PooledRconWorker.
package pool

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hllrcon/rcon-go/connection"
	"github.com/hllrcon/rcon-go/session"
	"github.com/hllrcon/rcon-go/wire"
	"golang.org/x/sync/errgroup"
)

// Stats is a snapshot of a Pool's worker counts.
type Stats struct {
	Total int
	Busy  int
	Idle  int
}

// Pool hands out a bounded number of RCON connections to a single
// server, creating workers lazily up to maxWorkers and reusing idle
// ones FIFO-fair before growing further.
type Pool struct {
	host        string
	port        int
	password    string
	maxWorkers  int
	sessionOpts []session.Option

	mu      sync.Mutex
	cond    *sync.Cond
	workers []*worker
	closed  bool
}

// New returns a Pool that has not yet opened any connections.
// maxWorkers bounds how many sessions may be open at once; callers
// beyond that limit block in Execute until one frees up.
func New(host string, port int, password string, maxWorkers int, opts ...session.Option) *Pool {
	p := &Pool{
		host:        host,
		port:        port,
		password:    password,
		maxWorkers:  maxWorkers,
		sessionOpts: opts,
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Execute acquires a worker (connecting it if this is its first use),
// runs one command, and releases the worker back to the pool.
func (p *Pool) Execute(ctx context.Context, name string, version int, body string) (wire.Response, error) {
	w, err := p.acquire(ctx)
	if err != nil {
		return wire.Response{}, err
	}
	defer p.releaseOrEvict(w)

	resp, err := w.conn.Execute(ctx, name, version, body)
	if err != nil {
		w.markDisconnected()
	}
	return resp, err
}

// acquire returns a usable worker, blocking FIFO-fair until one is idle
// or the pool has room to grow under maxWorkers. Cancellation while
// blocked on an empty, full pool is observed only at a deadline set on
// ctx, the same tradeoff sync.Cond-based pools make elsewhere: a waiter
// with no deadline wakes only when a released worker signals, a lost
// worker or Close broadcasts.
func (p *Pool) acquire(ctx context.Context) (*worker, error) {
	stopTimer := func() {}
	if deadline, ok := ctx.Deadline(); ok {
		timer := time.AfterFunc(time.Until(deadline), p.cond.Broadcast)
		stopTimer = func() { timer.Stop() }
	}
	defer stopTimer()

	p.mu.Lock()
	defer p.mu.Unlock()
	for {
		if p.closed {
			return nil, fmt.Errorf("rcon: pool is closed")
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.evictDisconnectedLocked()

		for _, w := range p.workers {
			if w.isAvailable() {
				w.markBusy()
				return w, nil
			}
		}

		if len(p.workers) < p.maxWorkers {
			w := newWorker(p.newConnection())
			w.conn.OnDisconnect(func(error) {
				w.markDisconnected()
				p.cond.Broadcast()
			})
			w.markBusy()
			p.workers = append(p.workers, w)
			return w, nil
		}

		p.cond.Wait()
	}
}

func (p *Pool) newConnection() *connection.Connection {
	c := connection.New(p.host, p.port, p.password, p.sessionOpts...)
	return c
}

// evictDisconnectedLocked drops workers whose session has died, so a
// future acquire can open a replacement instead of counting the dead
// one against maxWorkers forever. Callers must hold p.mu.
func (p *Pool) evictDisconnectedLocked() {
	kept := p.workers[:0]
	for _, w := range p.workers {
		if w.isDisconnected() {
			continue
		}
		kept = append(kept, w)
	}
	p.workers = kept
}

func (p *Pool) releaseOrEvict(w *worker) {
	w.release()
	p.mu.Lock()
	p.cond.Signal()
	p.mu.Unlock()
}

// Stats reports the current worker counts.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Stats{Total: len(p.workers)}
	for _, w := range p.workers {
		if w.isAvailable() {
			s.Idle++
		} else {
			s.Busy++
		}
	}
	return s
}

// Close disconnects every worker concurrently and marks the pool
// unusable for future Execute calls.
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	workers := p.workers
	p.workers = nil
	p.mu.Unlock()
	p.cond.Broadcast()

	g, _ := errgroup.WithContext(ctx)
	for _, w := range workers {
		w := w
		g.Go(func() error {
			w.conn.Disconnect()
			return nil
		})
	}
	return g.Wait()
}
