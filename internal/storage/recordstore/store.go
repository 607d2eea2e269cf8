// Package recordstore keeps the economy and holder records in a key/value
// database, addressed by keylet and encoded as msgpack.
package recordstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/LeJamon/goSkwizz/internal/core/keylet"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/LeJamon/goSkwizz/internal/storage/database"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of holder records kept decoded in memory.
const DefaultCacheSize = 4096

// Store implements engine.Store.
type Store struct {
	db database.DB

	mu      sync.Mutex
	econ    *state.Economy
	holders *lru.Cache[state.HolderID, *state.Holder]

	hits   uint64
	misses uint64
}

// Stats reports holder cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Cached int
}

// New creates a store over db caching up to cacheSize holder records.
func New(db database.DB, cacheSize int) (*Store, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[state.HolderID, *state.Holder](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, holders: cache}, nil
}

// LoadEconomy returns a copy of the economy record.
func (s *Store) LoadEconomy(ctx context.Context) (*state.Economy, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.econ != nil {
		return s.econ.Clone(), true, nil
	}
	data, err := s.db.Read(ctx, keylet.Economy().Bytes())
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	econ, err := decodeEconomy(data)
	if err != nil {
		return nil, false, err
	}
	s.econ = econ
	return econ.Clone(), true, nil
}

// LoadHolder returns a copy of the holder record of id.
func (s *Store) LoadHolder(ctx context.Context, id state.HolderID) (*state.Holder, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.holders.Get(id); ok {
		s.hits++
		return h.Clone(), true, nil
	}
	s.misses++

	data, err := s.db.Read(ctx, keylet.Holder(id).Bytes())
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	h, err := decodeHolder(data)
	if err != nil {
		return nil, false, err
	}
	s.holders.Add(id, h)
	return h.Clone(), true, nil
}

// Commit writes the economy and holders in one batch. The cache only sees
// the new records once the batch is durable.
func (s *Store) Commit(ctx context.Context, econ *state.Economy, holders []*state.Holder) error {
	ops := make([]database.BatchOperation, 0, len(holders)+1)

	data, err := encodeEconomy(econ)
	if err != nil {
		return fmt.Errorf("encode economy: %w", err)
	}
	ops = append(ops, database.Put(keylet.Economy().Bytes(), data))

	for _, h := range holders {
		data, err := encodeHolder(h)
		if err != nil {
			return fmt.Errorf("encode holder %s: %w", h.ID, err)
		}
		ops = append(ops, database.Put(keylet.Holder(h.ID).Bytes(), data))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Batch(ctx, ops); err != nil {
		return err
	}
	s.econ = econ.Clone()
	for _, h := range holders {
		s.holders.Add(h.ID, h.Clone())
	}
	return nil
}

// Holders calls fn for every stored holder record, in key order.
func (s *Store) Holders(ctx context.Context, fn func(*state.Holder) error) error {
	start, end := keylet.Range(keylet.TypeHolder)
	it, err := s.db.Iterator(ctx, start, end)
	if err != nil {
		return err
	}
	defer it.Close()

	for it.Next() {
		h, err := decodeHolder(it.Value())
		if err != nil {
			return err
		}
		if err := fn(h); err != nil {
			return err
		}
	}
	return it.Error()
}

// Stats returns cache counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Hits: s.hits, Misses: s.misses, Cached: s.holders.Len()}
}
