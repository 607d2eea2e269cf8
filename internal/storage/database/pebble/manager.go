package pebble

import (
	"path/filepath"

	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"github.com/cockroachdb/pebble"
)

// Manager opens one Pebble store per database name under path.
type Manager struct {
	database.Handles[*pebble.DB]
	path string
}

func NewManager(path string) *Manager {
	return &Manager{path: path}
}

func (m *Manager) OpenDB(name string) (database.DB, error) {
	db, err := m.Get(name, func() (*pebble.DB, error) {
		return pebble.Open(filepath.Join(m.path, name+".pebble"), &pebble.Options{})
	})
	if err != nil {
		return nil, err
	}
	return NewDB(db), nil
}
