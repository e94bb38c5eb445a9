package cipher

import "sync/atomic"

// StripLatch discards the first n bytes ever passed through it, once.
// v1 servers prefix the connection with a 4-byte key blob that the
// client must consume and ignore before treating anything as a
// response; this is a one-shot filter for that quirk, grounded on the
// atomic.Bool activation-latch idiom used elsewhere for ciphers that
// only turn on after some startup event.
type StripLatch struct {
	n    int
	done atomic.Bool
}

// NewStripLatch returns a latch that discards the first n bytes passed
// to Filter, then becomes a pass-through for the rest of its life.
func NewStripLatch(n int) *StripLatch {
	return &StripLatch{n: n}
}

// Filter removes the latch's remaining strip quota from the front of
// data and returns what's left. Once the quota is exhausted the latch
// stops touching its input.
func (l *StripLatch) Filter(data []byte) []byte {
	if l.done.Load() {
		return data
	}
	if len(data) >= l.n {
		l.done.Store(true)
		return data[l.n:]
	}
	l.n -= len(data)
	return nil
}
