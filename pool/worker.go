package pool

import (
	"sync"

	"github.com/hllrcon/rcon-go/connection"
)

// worker wraps one lazily-connecting Connection with the busy/
// disconnected bookkeeping a Pool needs to hand it out fairly and
// retire it once its underlying session is unusable. Grounded on
// PooledRconWorker's is_busy/is_disconnected flags.
type worker struct {
	conn *connection.Connection

	mu           sync.Mutex
	busy         bool
	disconnected bool
}

func newWorker(conn *connection.Connection) *worker {
	return &worker{conn: conn}
}

func (w *worker) isAvailable() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.busy && !w.disconnected
}

func (w *worker) isDisconnected() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.disconnected
}

func (w *worker) markBusy() {
	w.mu.Lock()
	w.busy = true
	w.mu.Unlock()
}

func (w *worker) release() {
	w.mu.Lock()
	w.busy = false
	w.mu.Unlock()
}

func (w *worker) markDisconnected() {
	w.mu.Lock()
	w.disconnected = true
	w.busy = false
	w.mu.Unlock()
}
