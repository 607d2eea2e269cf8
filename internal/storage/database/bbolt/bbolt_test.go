package bbolt

import (
	"context"
	"testing"

	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"github.com/LeJamon/goSkwizz/internal/storage/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConformance(t *testing.T) {
	dbtest.Run(t, func(t *testing.T) database.Manager {
		return NewManager(t.TempDir())
	})
}

func TestClosedFile(t *testing.T) {
	ctx := context.Background()
	m := NewManager(t.TempDir())
	db, err := m.OpenDB("records")
	require.NoError(t, err)
	require.NoError(t, m.CloseDB("records"))

	_, err = db.Read(ctx, []byte("k"))
	assert.ErrorIs(t, err, database.ErrDBClosed)
	assert.ErrorIs(t, db.Write(ctx, []byte("k"), []byte("v")), database.ErrDBClosed)
}
