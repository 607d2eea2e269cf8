package database

import (
	"errors"
	"fmt"
)

var (
	ErrDBClosed    = errors.New("database is closed")
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnknownBackend is returned for a backend name no package provides.
	ErrUnknownBackend = errors.New("unknown database backend")

	// ErrBadBatch is returned before anything is written when a batch holds
	// an operation the backend does not know.
	ErrBadBatch = errors.New("unknown batch operation type")
)

// CheckBatch rejects a batch holding an unknown operation. Backends call it
// before staging any write.
func CheckBatch(ops []BatchOperation) error {
	for i, op := range ops {
		if op.Type != BatchPut && op.Type != BatchDelete {
			return fmt.Errorf("%w: op %d has type %d", ErrBadBatch, i, op.Type)
		}
	}
	return nil
}
