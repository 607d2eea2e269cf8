// Package journal appends committed engine events to a SQL table and reads
// them back for history queries.
//
// Writes are asynchronous: Emit queues the event for a single writer
// goroutine and returns. Close drains the queue before closing the
// database.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	_ "github.com/lib/pq" // PostgreSQL driver
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite" // SQLite driver
)

// Drivers accepted in configuration.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

// DefaultBuffer is the default queue length between Emit and the writer.
const DefaultBuffer = 256

// ErrClosed is returned by Emit after Close.
var ErrClosed = errors.New("journal is closed")

// Config selects and tunes the journal database.
type Config struct {
	Driver string
	DSN    string
	Buffer int
}

// Record is one journaled event.
type Record struct {
	Seq   int64
	Event engine.Event
}

// Filter narrows a history query.
type Filter struct {
	// Holder matches events where the holder is customer or counterparty.
	Holder *state.HolderID
	// Limit caps the result; 0 means 100.
	Limit int
}

type item struct {
	ev   engine.Event
	done chan struct{}
}

// Journal implements engine.EventSink.
type Journal struct {
	db      *sql.DB
	dialect dialect
	logger  log.Logger

	mu     sync.RWMutex
	queue  chan item
	closed bool
	g      *errgroup.Group
}

// Open connects to the configured database, creates the schema if needed
// and starts the writer.
func Open(ctx context.Context, cfg Config, logger log.Logger) (*Journal, error) {
	d, ok := dialects[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("unknown journal driver %q", cfg.Driver)
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = DefaultBuffer
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if cfg.Driver == DriverSQLite {
		// one connection keeps the single writer and readers serialized
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping journal: %w", err)
	}
	for _, stmt := range d.schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init journal schema: %w", err)
		}
	}

	j := &Journal{
		db:      db,
		dialect: d,
		logger:  logger.With("module", "journal"),
		queue:   make(chan item, cfg.Buffer),
		g:       new(errgroup.Group),
	}
	j.g.Go(j.writeLoop)
	return j, nil
}

// Emit queues ev for writing. It blocks while the queue is full.
func (j *Journal) Emit(ctx context.Context, ev engine.Event) error {
	return j.enqueue(ctx, item{ev: ev})
}

// Flush waits until every event queued before the call is written.
func (j *Journal) Flush(ctx context.Context) error {
	done := make(chan struct{})
	if err := j.enqueue(ctx, item{done: done}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *Journal) enqueue(ctx context.Context, it item) error {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.closed {
		return ErrClosed
	}
	select {
	case j.queue <- it:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *Journal) writeLoop() error {
	for it := range j.queue {
		if it.done != nil {
			close(it.done)
			continue
		}
		if err := j.insert(context.Background(), it.ev); err != nil {
			j.logger.Error("event not journaled", "event", string(it.ev.Kind), "err", err)
		}
	}
	return nil
}

func (j *Journal) insert(ctx context.Context, ev engine.Event) error {
	counterparty := ""
	if !ev.Counterparty.IsZero() {
		counterparty = ev.Counterparty.String()
	}
	_, err := j.db.ExecContext(ctx, j.dialect.insert,
		string(ev.Kind),
		ev.Time.UnixNano(),
		ev.Customer.String(),
		counterparty,
		ev.Currency.String(),
		ev.Tokens.String(),
		ev.Detail,
	)
	return err
}

// Events returns journaled events, newest first.
func (j *Journal) Events(ctx context.Context, f Filter) ([]Record, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	var (
		rows *sql.Rows
		err  error
	)
	if f.Holder != nil {
		id := f.Holder.String()
		rows, err = j.db.QueryContext(ctx, j.dialect.selectHolder, id, id, limit)
	} else {
		rows, err = j.db.QueryContext(ctx, j.dialect.selectAll, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var rec Record
	var kind, customer, counterparty, currency, tokens, detail string
	var at int64
	if err := rows.Scan(&rec.Seq, &kind, &at, &customer, &counterparty, &currency, &tokens, &detail); err != nil {
		return rec, fmt.Errorf("scan journal row: %w", err)
	}

	ev := engine.Event{
		Kind:   engine.EventKind(kind),
		Time:   time.Unix(0, at).UTC(),
		Detail: detail,
	}
	var err error
	if ev.Customer, err = state.ParseHolderID(customer); err != nil {
		return rec, err
	}
	if counterparty != "" {
		if ev.Counterparty, err = state.ParseHolderID(counterparty); err != nil {
			return rec, err
		}
	}
	if ev.Currency, err = sdkmath.ParseUint(currency); err != nil {
		return rec, fmt.Errorf("journal row %d currency: %w", rec.Seq, err)
	}
	if ev.Tokens, err = sdkmath.ParseUint(tokens); err != nil {
		return rec, fmt.Errorf("journal row %d tokens: %w", rec.Seq, err)
	}
	rec.Event = ev
	return rec, nil
}

// Close stops accepting events, writes what is queued and closes the
// database.
func (j *Journal) Close() error {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return nil
	}
	j.closed = true
	close(j.queue)
	j.mu.Unlock()

	err := j.g.Wait()
	return errors.Join(err, j.db.Close())
}
