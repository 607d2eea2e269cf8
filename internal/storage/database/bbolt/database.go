// Package bbolt stores records in a single-file bbolt B+tree, one bucket
// per database name.
package bbolt

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"go.etcd.io/bbolt"
)

// DB adapts one bucket of a bbolt file.
type DB struct {
	db     *bbolt.DB
	bucket []byte
}

func NewDB(db *bbolt.DB, bucket []byte) *DB {
	return &DB{db: db, bucket: bucket}
}

func (b *DB) Read(ctx context.Context, key []byte) ([]byte, error) {
	var value []byte
	err := b.view(func(bucket *bbolt.Bucket) error {
		v := bucket.Get(key)
		if v == nil {
			return database.ErrKeyNotFound
		}
		// values are only valid inside the transaction
		value = append([]byte(nil), v...)
		return nil
	})
	return value, err
}

func (b *DB) Write(ctx context.Context, key, value []byte) error {
	return b.Batch(ctx, []database.BatchOperation{database.Put(key, value)})
}

func (b *DB) Delete(ctx context.Context, key []byte) error {
	return b.Batch(ctx, []database.BatchOperation{{Type: database.BatchDelete, Key: key}})
}

// Batch applies ops in one read-write transaction.
func (b *DB) Batch(ctx context.Context, ops []database.BatchOperation) error {
	if err := database.CheckBatch(ops); err != nil {
		return err
	}
	return translate(b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := b.lookup(tx)
		if err != nil {
			return err
		}
		for _, op := range ops {
			if err := ctx.Err(); err != nil {
				return err
			}
			if op.Type == database.BatchDelete {
				err = bucket.Delete(op.Key)
			} else {
				err = bucket.Put(op.Key, op.Value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}))
}

func (b *DB) view(fn func(*bbolt.Bucket) error) error {
	return translate(b.db.View(func(tx *bbolt.Tx) error {
		bucket, err := b.lookup(tx)
		if err != nil {
			return err
		}
		return fn(bucket)
	}))
}

func (b *DB) lookup(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	bucket := tx.Bucket(b.bucket)
	if bucket == nil {
		return nil, fmt.Errorf("bucket %s not found", b.bucket)
	}
	return bucket, nil
}

func translate(err error) error {
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return database.ErrDBClosed
	}
	return err
}

// Iterator holds a read transaction open until Close.
type Iterator struct {
	tx         *bbolt.Tx
	cursor     *bbolt.Cursor
	positioned bool
	start, end []byte
	key, value []byte
}

func (b *DB) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	tx, err := b.db.Begin(false)
	if err != nil {
		return nil, translate(err)
	}
	bucket, err := b.lookup(tx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	return &Iterator{tx: tx, cursor: bucket.Cursor(), start: start, end: end}, nil
}

func (it *Iterator) Next() bool {
	var k, v []byte
	switch {
	case it.positioned:
		k, v = it.cursor.Next()
	case it.start == nil:
		it.positioned = true
		k, v = it.cursor.First()
	default:
		it.positioned = true
		k, v = it.cursor.Seek(it.start)
	}
	if k == nil || (it.end != nil && bytes.Compare(k, it.end) >= 0) {
		it.key, it.value = nil, nil
		return false
	}
	it.key = append([]byte(nil), k...)
	it.value = append([]byte(nil), v...)
	return true
}

func (it *Iterator) Key() []byte   { return it.key }
func (it *Iterator) Value() []byte { return it.value }
func (it *Iterator) Error() error  { return nil }
func (it *Iterator) Close() error  { return it.tx.Rollback() }
