// Package pebble stores records in CockroachDB's Pebble LSM engine.
package pebble

import (
	"context"
	"errors"

	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"github.com/cockroachdb/pebble"
)

// DB adapts one Pebble store. Every write is synced.
type DB struct {
	db *pebble.DB
}

func NewDB(db *pebble.DB) *DB {
	return &DB{db: db}
}

func (p *DB) Read(ctx context.Context, key []byte) ([]byte, error) {
	val, closer, err := p.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return append([]byte(nil), val...), nil
}

func (p *DB) Write(ctx context.Context, key, value []byte) error {
	return p.db.Set(key, value, pebble.Sync)
}

func (p *DB) Delete(ctx context.Context, key []byte) error {
	return p.db.Delete(key, pebble.Sync)
}

func (p *DB) Batch(ctx context.Context, ops []database.BatchOperation) error {
	if err := database.CheckBatch(ops); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	batch := p.db.NewBatch()
	defer batch.Close()
	for _, op := range ops {
		var err error
		if op.Type == database.BatchDelete {
			err = batch.Delete(op.Key, nil)
		} else {
			err = batch.Set(op.Key, op.Value, nil)
		}
		if err != nil {
			return err
		}
	}
	return batch.Commit(pebble.Sync)
}

func (p *DB) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	iter, err := p.db.NewIter(&pebble.IterOptions{LowerBound: start, UpperBound: end})
	if err != nil {
		return nil, err
	}
	return &Iterator{iter: iter}, nil
}

// Iterator copies each entry out of Pebble's buffers as it advances.
type Iterator struct {
	iter       *pebble.Iterator
	positioned bool
	key, value []byte
}

func (it *Iterator) Next() bool {
	var ok bool
	if it.positioned {
		ok = it.iter.Next()
	} else {
		it.positioned = true
		ok = it.iter.First()
	}
	if !ok {
		it.key, it.value = nil, nil
		return false
	}
	it.key = append(it.key[:0:0], it.iter.Key()...)
	it.value = append(it.value[:0:0], it.iter.Value()...)
	return true
}

func (it *Iterator) Key() []byte   { return it.key }
func (it *Iterator) Value() []byte { return it.value }
func (it *Iterator) Error() error  { return it.iter.Error() }
func (it *Iterator) Close() error  { return it.iter.Close() }
