package leveldb

import (
	"path/filepath"

	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"github.com/syndtr/goleveldb/leveldb"
)

// Manager opens one goleveldb store per database name under path.
type Manager struct {
	database.Handles[*leveldb.DB]
	path string
}

func NewManager(path string) *Manager {
	return &Manager{path: path}
}

func (m *Manager) OpenDB(name string) (database.DB, error) {
	db, err := m.Get(name, func() (*leveldb.DB, error) {
		return leveldb.OpenFile(filepath.Join(m.path, name+".ldb"), nil)
	})
	if err != nil {
		return nil, err
	}
	return NewDB(db), nil
}
