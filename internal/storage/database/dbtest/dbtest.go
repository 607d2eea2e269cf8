// Package dbtest holds the behaviour every database backend must share.
package dbtest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises a backend. open must return a fresh manager.
func Run(t *testing.T, open func(t *testing.T) database.Manager) {
	ctx := context.Background()

	t.Run("read write delete", func(t *testing.T) {
		m := open(t)
		defer m.Close()
		db, err := m.OpenDB("records")
		require.NoError(t, err)

		_, err = db.Read(ctx, []byte("missing"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)

		require.NoError(t, db.Write(ctx, []byte("k"), []byte("v1")))
		require.NoError(t, db.Write(ctx, []byte("k"), []byte("v2")))
		got, err := db.Read(ctx, []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)

		require.NoError(t, db.Delete(ctx, []byte("k")))
		_, err = db.Read(ctx, []byte("k"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)
	})

	t.Run("batch", func(t *testing.T) {
		m := open(t)
		defer m.Close()
		db, err := m.OpenDB("batch")
		require.NoError(t, err)

		require.NoError(t, db.Batch(ctx, []database.BatchOperation{
			database.Put([]byte("batch1"), []byte("value1")),
			database.Put([]byte("batch2"), []byte("value2")),
			{Type: database.BatchDelete, Key: []byte("batch1")},
		}))

		_, err = db.Read(ctx, []byte("batch1"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)
		got, err := db.Read(ctx, []byte("batch2"))
		require.NoError(t, err)
		assert.Equal(t, []byte("value2"), got)

		err = db.Batch(ctx, []database.BatchOperation{
			database.Put([]byte("batch3"), []byte("value3")),
			{Type: database.BatchOpType(9), Key: []byte("x")},
		})
		assert.ErrorIs(t, err, database.ErrBadBatch)
		_, err = db.Read(ctx, []byte("batch3"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)
	})

	t.Run("iterator is half open and ordered", func(t *testing.T) {
		m := open(t)
		defer m.Close()
		db, err := m.OpenDB("iter")
		require.NoError(t, err)

		for _, k := range []string{"H3", "H1", "E0", "H2", "I0"} {
			require.NoError(t, db.Write(ctx, []byte(k), []byte("v"+k)))
		}

		it, err := db.Iterator(ctx, []byte("H"), []byte("I"))
		require.NoError(t, err)
		var keys []string
		for it.Next() {
			keys = append(keys, string(it.Key()))
			assert.Equal(t, "v"+string(it.Key()), string(it.Value()))
		}
		require.NoError(t, it.Error())
		require.NoError(t, it.Close())
		assert.Equal(t, []string{"H1", "H2", "H3"}, keys)

		it, err = db.Iterator(ctx, nil, nil)
		require.NoError(t, err)
		n := 0
		for it.Next() {
			n++
		}
		require.NoError(t, it.Close())
		assert.Equal(t, 5, n)
	})

	t.Run("reopen by name shares data", func(t *testing.T) {
		m := open(t)
		defer m.Close()
		a, err := m.OpenDB("shared")
		require.NoError(t, err)
		require.NoError(t, a.Write(ctx, []byte("k"), []byte("v")))

		b, err := m.OpenDB("shared")
		require.NoError(t, err)
		got, err := b.Read(ctx, []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)

		require.NoError(t, m.CloseDB("shared"))
		assert.Error(t, m.CloseDB("shared"))
	})

	t.Run("concurrent access", func(t *testing.T) {
		m := open(t)
		defer m.Close()
		db, err := m.OpenDB("concurrent")
		require.NoError(t, err)

		const workers, ops = 8, 50
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				for j := 0; j < ops; j++ {
					key := []byte(fmt.Sprintf("concurrent-%d-%d", id, j))
					if err := db.Write(ctx, key, key); err != nil {
						errs <- err
						return
					}
					if _, err := db.Read(ctx, key); err != nil {
						errs <- err
						return
					}
				}
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			assert.NoError(t, err)
		}
	})
}
