package session

import (
	"sync"

	"github.com/hllrcon/rcon-go/wire"
)

// slot is where a waiting Execute call receives its matching Response
// (or an error, if the connection dies before one arrives).
type slot struct {
	resp chan wire.Response
	err  chan error
}

func newSlot() slot {
	return slot{resp: make(chan wire.Response, 1), err: make(chan error, 1)}
}

// pendingSlots tracks in-flight requests awaiting a response. In
// concurrent mode, slots are keyed by request id, mirroring the
// promisedReq/promisedResp correlation idiom used by Kafka client
// brokers talking over one multiplexed connection. In FIFO mode slots
// queue in send order and each response goes to the oldest one, since
// v1's unframed, one-response-per-read wire carries no id; several
// slots may be queued at once.
type pendingSlots struct {
	mu        sync.Mutex
	concurrent bool
	byID      map[uint32]slot
	fifo      []fifoEntry
}

type fifoEntry struct {
	id   uint32
	slot slot
}

func newPendingSlots(concurrent bool) *pendingSlots {
	return &pendingSlots{
		concurrent: concurrent,
		byID:       make(map[uint32]slot),
	}
}

// register creates a slot for id and returns it. The caller must
// eventually either receive from the returned channels or call
// abandon(id) to avoid leaking the slot on a cancelled context.
func (p *pendingSlots) register(id uint32) slot {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := newSlot()
	if p.concurrent {
		p.byID[id] = s
	} else {
		p.fifo = append(p.fifo, fifoEntry{id: id, slot: s})
	}
	return s
}

// abandon removes a slot that its caller is no longer waiting on
// (context cancelled, timeout fired locally before any response).
func (p *pendingSlots) abandon(id uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.concurrent {
		delete(p.byID, id)
		return
	}
	for i, e := range p.fifo {
		if e.id == id {
			p.fifo = append(p.fifo[:i], p.fifo[i+1:]...)
			return
		}
	}
}

// deliver routes a decoded Response to the slot waiting for it. In
// concurrent mode the response's own RequestID selects the slot; in
// FIFO mode the oldest outstanding slot always wins, since v1 responses
// carry no id to match against.
func (p *pendingSlots) deliver(resp wire.Response) bool {
	p.mu.Lock()
	if p.concurrent {
		s, ok := p.byID[resp.RequestID]
		if ok {
			delete(p.byID, resp.RequestID)
		}
		p.mu.Unlock()
		if !ok {
			return false
		}
		s.resp <- resp
		return true
	}
	if len(p.fifo) == 0 {
		p.mu.Unlock()
		return false
	}
	e := p.fifo[0]
	p.fifo = p.fifo[1:]
	p.mu.Unlock()
	resp.RequestID = e.id
	e.slot.resp <- resp
	return true
}

// failAll fans err out to every slot still outstanding, then clears
// them. Called once by the read loop when the connection is lost, so
// no caller blocks forever waiting on a response that will never come.
func (p *pendingSlots) failAll(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.concurrent {
		for id, s := range p.byID {
			s.err <- err
			delete(p.byID, id)
		}
		return
	}
	for _, e := range p.fifo {
		e.slot.err <- err
	}
	p.fifo = nil
}
