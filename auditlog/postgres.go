package auditlog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSink persists audit entries to a command_log table. Connect
// with NewPostgresSink, then run Migrate once before first use (or rely
// on an operator-managed migration step).
type PostgresSink struct {
	pool *pgxpool.Pool
}

// NewPostgresSink opens a connection pool against dsn and verifies it
// with a ping before returning.
func NewPostgresSink(ctx context.Context, dsn string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to audit database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging audit database: %w", err)
	}
	return &PostgresSink{pool: pool}, nil
}

// Close closes the underlying connection pool.
func (s *PostgresSink) Close() {
	s.pool.Close()
}

// Pool returns the underlying pgx pool, for callers that want to run
// their own queries against it. Migrate does not use this pool; it
// opens its own connection from the DSN.
func (s *PostgresSink) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *PostgresSink) Record(ctx context.Context, e Entry) error {
	var errMsg *string
	if e.Err != nil {
		msg := e.Err.Error()
		errMsg = &msg
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO command_log (name, version, body, error, duration_ms, executed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.Name, e.Version, e.Body, errMsg, e.Duration.Milliseconds(), e.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry for %q: %w", e.Name, err)
	}
	return nil
}

// Recent returns the most recently recorded entries, newest first,
// capped at limit rows.
func (s *PostgresSink) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, version, body, error, duration_ms, executed_at
		 FROM command_log ORDER BY executed_at DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var errMsg *string
		var durationMs int64
		if err := rows.Scan(&e.Name, &e.Version, &e.Body, &errMsg, &durationMs, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}
		if errMsg != nil {
			e.Err = fmt.Errorf("%s", *errMsg)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}
	return out, nil
}
