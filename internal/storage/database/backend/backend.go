// Package backend opens a database manager by configured name.
package backend

import (
	"fmt"
	"os"

	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"github.com/LeJamon/goSkwizz/internal/storage/database/bbolt"
	"github.com/LeJamon/goSkwizz/internal/storage/database/leveldb"
	"github.com/LeJamon/goSkwizz/internal/storage/database/memory"
	"github.com/LeJamon/goSkwizz/internal/storage/database/pebble"
)

// Backend names accepted in configuration.
const (
	Pebble  = "pebble"
	BBolt   = "bbolt"
	LevelDB = "leveldb"
	Memory  = "memory"
)

// Names lists every known backend.
var Names = []string{Pebble, BBolt, LevelDB, Memory}

// Open returns a manager for kind rooted at path, creating path if needed.
func Open(kind, path string) (database.Manager, error) {
	if kind != Memory {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	switch kind {
	case Pebble:
		return pebble.NewManager(path), nil
	case BBolt:
		return bbolt.NewManager(path), nil
	case LevelDB:
		return leveldb.NewManager(path), nil
	case Memory:
		return memory.NewManager(), nil
	default:
		return nil, fmt.Errorf("%w: %q", database.ErrUnknownBackend, kind)
	}
}
