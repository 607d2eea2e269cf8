package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/LeJamon/goSkwizz/internal/collab/bank"
	"github.com/LeJamon/goSkwizz/internal/config"
	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/crypto"
	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"github.com/LeJamon/goSkwizz/internal/storage/database/backend"
	"github.com/LeJamon/goSkwizz/internal/storage/journal"
	"github.com/LeJamon/goSkwizz/internal/storage/recordstore"
	"github.com/rs/zerolog"
)

// Database names inside the storage directory.
const (
	recordsDB = "records"
	bankDB    = "bank"
)

// node is one process's view of the economy: its storage, collaborators
// and the engine wired to them.
type node struct {
	cfg     *config.Config
	logger  log.Logger
	dbm     database.Manager
	store   *recordstore.Store
	bank    *bank.Bank
	journal *journal.Journal
	engine  *engine.Engine
}

// openNode loads configuration and opens everything an operation needs.
// The caller must Close the node.
func openNode(ctx context.Context) (*node, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	n := &node{cfg: cfg, logger: logger}
	if n.dbm, err = backend.Open(cfg.Storage.Backend, cfg.DatabasePath()); err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	if err := n.open(ctx); err != nil {
		n.Close()
		return nil, err
	}

	opts := engine.Options{
		Store:    n.store,
		Tokens:   n.bank,
		Funds:    n.bank,
		Metadata: n.bank,
		Verifier: crypto.SignatureVerifier{},
		Logger:   logger.With("module", "engine"),
		Params:   params,
	}
	if n.journal != nil {
		opts.Events = n.journal
	}
	if n.engine, err = engine.New(opts); err != nil {
		n.Close()
		return nil, err
	}

	logger.Debug("node opened",
		"backend", cfg.Storage.Backend,
		"path", cfg.DatabasePath(),
		"journal", cfg.Journal.Driver,
	)
	return n, nil
}

func (n *node) open(ctx context.Context) error {
	records, err := n.dbm.OpenDB(recordsDB)
	if err != nil {
		return fmt.Errorf("open %s database: %w", recordsDB, err)
	}
	if n.store, err = recordstore.New(records, n.cfg.Storage.CacheSize); err != nil {
		return err
	}

	ledger, err := n.dbm.OpenDB(bankDB)
	if err != nil {
		return fmt.Errorf("open %s database: %w", bankDB, err)
	}
	n.bank = bank.New(ledger)

	if n.cfg.Journal.Enabled() {
		n.journal, err = journal.Open(ctx, journal.Config{
			Driver: n.cfg.Journal.Driver,
			DSN:    n.cfg.Journal.DSN,
			Buffer: n.cfg.Journal.Buffer,
		}, n.logger)
		if err != nil {
			return err
		}
	}
	return nil
}

// Close flushes the journal and closes every database.
func (n *node) Close() error {
	if n.store != nil {
		st := n.store.Stats()
		n.logger.Debug("record cache", "hits", st.Hits, "misses", st.Misses, "cached", st.Cached)
	}
	var errs []error
	if n.journal != nil {
		errs = append(errs, n.journal.Close())
	}
	if n.dbm != nil {
		errs = append(errs, n.dbm.Close())
	}
	return errors.Join(errs...)
}

// newLogger builds the process logger from the [log] section. --debug
// overrides the configured level.
func newLogger(cfg config.LogConfig) (log.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if debug {
		level = zerolog.DebugLevel
	}
	if quiet && level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}

	opts := []log.Option{log.LevelOption(level)}
	if cfg.JSON() {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(os.Stderr, opts...), nil
}
