// Package memory keeps databases in goleveldb's in-memory skiplist. Nothing
// survives Close; tests and dry runs use it.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const initialCapacity = 64 << 10

// DB is a database.DB over a memdb.
type DB struct {
	mu     sync.RWMutex
	db     *memdb.DB
	closed bool
}

// NewDB returns an empty in-memory database.
func NewDB() *DB {
	return &DB{db: memdb.New(comparer.DefaultComparer, initialCapacity)}
}

func (m *DB) Read(ctx context.Context, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, database.ErrDBClosed
	}

	v, err := m.db.Get(key)
	if err != nil {
		if errors.Is(err, lerrors.ErrNotFound) {
			return nil, database.ErrKeyNotFound
		}
		return nil, err
	}
	return append([]byte(nil), v...), nil
}

func (m *DB) Write(ctx context.Context, key, value []byte) error {
	return m.Batch(ctx, []database.BatchOperation{database.Put(key, value)})
}

func (m *DB) Delete(ctx context.Context, key []byte) error {
	return m.Batch(ctx, []database.BatchOperation{{Type: database.BatchDelete, Key: key}})
}

func (m *DB) Batch(ctx context.Context, ops []database.BatchOperation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return database.ErrDBClosed
	}

	if err := database.CheckBatch(ops); err != nil {
		return err
	}
	for _, op := range ops {
		switch op.Type {
		case database.BatchPut:
			if err := m.db.Put(op.Key, op.Value); err != nil {
				return err
			}
		case database.BatchDelete:
			if err := m.db.Delete(op.Key); err != nil && !errors.Is(err, lerrors.ErrNotFound) {
				return err
			}
		}
	}
	return nil
}

func (m *DB) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, database.ErrDBClosed
	}
	return &Iterator{iter: m.db.NewIterator(&util.Range{Start: start, Limit: end})}, nil
}

// Close marks the database closed and releases its contents.
func (m *DB) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.db.Reset()
	return nil
}

// Iterator adapts a goleveldb iterator. The same type serves the leveldb
// backend.
type Iterator struct {
	iter iterator.Iterator
}

// NewIterator wraps a goleveldb iterator.
func NewIterator(iter iterator.Iterator) *Iterator {
	return &Iterator{iter: iter}
}

func (it *Iterator) Next() bool { return it.iter.Next() }

func (it *Iterator) Key() []byte { return append([]byte(nil), it.iter.Key()...) }

func (it *Iterator) Value() []byte { return append([]byte(nil), it.iter.Value()...) }

func (it *Iterator) Error() error { return it.iter.Error() }

func (it *Iterator) Close() error {
	it.iter.Release()
	return nil
}
