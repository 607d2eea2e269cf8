package bbolt

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"go.etcd.io/bbolt"
)

// Manager opens one bbolt file per database name under path. Each file
// holds a single bucket named after the database.
type Manager struct {
	database.Handles[*bbolt.DB]
	path string
}

func NewManager(path string) *Manager {
	return &Manager{path: path}
}

func (m *Manager) OpenDB(name string) (database.DB, error) {
	db, err := m.Get(name, func() (*bbolt.DB, error) {
		return openBucketFile(filepath.Join(m.path, name+".db"), []byte(name))
	})
	if err != nil {
		return nil, err
	}
	return NewDB(db, []byte(name)), nil
}

func openBucketFile(path string, bucket []byte) (*bbolt.DB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return db, nil
}
