// Package auditlog records every command a Commands surface executes,
// as an outer decorator rather than a change to the protocol engine
// itself. A Sink never influences whether a command runs; it only
// observes the outcome after the fact.
package auditlog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hllrcon/rcon-go/wire"
)

// Entry is one recorded command execution.
type Entry struct {
	Name      string
	Version   int
	Body      string
	Err       error
	Duration  time.Duration
	Timestamp time.Time
}

// Sink persists or otherwise observes audit Entries. Record must not
// block the caller for long; implementations that talk to a database
// should apply their own timeout internally.
type Sink interface {
	Record(ctx context.Context, e Entry) error
}

// NoopSink discards every entry. It is the default when auditing is
// disabled.
type NoopSink struct{}

func (NoopSink) Record(context.Context, Entry) error { return nil }

// MemorySink keeps every recorded entry in memory, for tests and for
// small deployments that don't need a durable trail.
type MemorySink struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Record(_ context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return nil
}

// Entries returns a copy of everything recorded so far.
func (s *MemorySink) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// LoggingSink writes each entry to a slog.Logger instead of persisting
// it, useful when a deployment wants an audit trail in its existing log
// pipeline rather than a dedicated store.
type LoggingSink struct {
	logger *slog.Logger
}

func NewLoggingSink(logger *slog.Logger) *LoggingSink {
	return &LoggingSink{logger: logger}
}

func (s *LoggingSink) Record(_ context.Context, e Entry) error {
	attrs := []any{
		slog.String("name", e.Name),
		slog.Int("version", e.Version),
		slog.Duration("duration", e.Duration),
	}
	if e.Err != nil {
		s.logger.Error("rcon command", append(attrs, slog.String("error", e.Err.Error()))...)
	} else {
		s.logger.Info("rcon command", attrs...)
	}
	return nil
}

// Executor is the subset of commands.Executor an audited decorator
// wraps. Declared locally to avoid importing commands, which would
// create a cycle if commands ever wanted to depend on auditlog.
type Executor interface {
	Execute(ctx context.Context, name string, version int, body string) (wire.Response, error)
}

// Decorator wraps an Executor, recording every call to a Sink after it
// completes. It never inspects or rewrites the command itself; commands
// that fail are recorded with their error, not retried or suppressed.
type Decorator struct {
	next Executor
	sink Sink
}

// Wrap returns a Decorator that forwards to next and records every
// call to sink. A nil sink is treated as NoopSink.
func Wrap(next Executor, sink Sink) *Decorator {
	if sink == nil {
		sink = NoopSink{}
	}
	return &Decorator{next: next, sink: sink}
}

func (d *Decorator) Execute(ctx context.Context, name string, version int, body string) (wire.Response, error) {
	start := time.Now()
	resp, err := d.next.Execute(ctx, name, version, body)
	entry := Entry{
		Name:      name,
		Version:   version,
		Body:      body,
		Err:       err,
		Duration:  time.Since(start),
		Timestamp: start,
	}
	if recErr := d.sink.Record(ctx, entry); recErr != nil {
		slog.Default().Warn("auditlog: failed to record entry", "name", name, "error", recErr)
	}
	return resp, err
}
