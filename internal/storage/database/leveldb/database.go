// Package leveldb stores records in goleveldb, one directory per database
// name.
package leveldb

import (
	"context"
	"errors"

	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"github.com/LeJamon/goSkwizz/internal/storage/database/memory"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var syncWrites = &opt.WriteOptions{Sync: true}

type DB struct {
	db *leveldb.DB
}

func NewDB(db *leveldb.DB) *DB {
	return &DB{db: db}
}

func (l *DB) Read(ctx context.Context, key []byte) ([]byte, error) {
	v, err := l.db.Get(key, nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		return nil, database.ErrKeyNotFound
	case errors.Is(err, leveldb.ErrClosed):
		return nil, database.ErrDBClosed
	case err != nil:
		return nil, err
	}
	return v, nil
}

func (l *DB) Write(ctx context.Context, key, value []byte) error {
	return translate(l.db.Put(key, value, syncWrites))
}

func (l *DB) Delete(ctx context.Context, key []byte) error {
	return translate(l.db.Delete(key, syncWrites))
}

func (l *DB) Batch(ctx context.Context, ops []database.BatchOperation) error {
	if err := database.CheckBatch(ops); err != nil {
		return err
	}
	batch := new(leveldb.Batch)
	for _, op := range ops {
		if op.Type == database.BatchDelete {
			batch.Delete(op.Key)
		} else {
			batch.Put(op.Key, op.Value)
		}
	}
	return translate(l.db.Write(batch, syncWrites))
}

func (l *DB) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	iter := l.db.NewIterator(&util.Range{Start: start, Limit: end}, nil)
	if err := iter.Error(); err != nil {
		iter.Release()
		return nil, translate(err)
	}
	return memory.NewIterator(iter), nil
}

func translate(err error) error {
	if errors.Is(err, leveldb.ErrClosed) {
		return database.ErrDBClosed
	}
	return err
}
