package backend

import (
	"testing"

	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			m, err := Open(name, t.TempDir())
			require.NoError(t, err)
			db, err := m.OpenDB("records")
			require.NoError(t, err)
			assert.NotNil(t, db)
			require.NoError(t, m.Close())
		})
	}

	_, err := Open("rocksdb", t.TempDir())
	assert.ErrorIs(t, err, database.ErrUnknownBackend)
}
