package leveldb

import (
	"testing"

	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"github.com/LeJamon/goSkwizz/internal/storage/database/dbtest"
)

func TestConformance(t *testing.T) {
	dbtest.Run(t, func(t *testing.T) database.Manager {
		return NewManager(t.TempDir())
	})
}
