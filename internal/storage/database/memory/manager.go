package memory

import (
	"github.com/LeJamon/goSkwizz/internal/storage/database"
)

// Manager hands out in-memory databases by name. Closing a database drops
// its contents.
type Manager struct {
	database.Handles[*DB]
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) OpenDB(name string) (database.DB, error) {
	db, err := m.Get(name, func() (*DB, error) { return NewDB(), nil })
	if err != nil {
		return nil, err
	}
	return db, nil
}
