package database

import (
	"errors"
	"fmt"
	"sync"
)

// Handles tracks the open stores of a Manager by database name. Backends
// embed it and supply the open function for their engine.
type Handles[H interface{ Close() error }] struct {
	mu   sync.Mutex
	open map[string]H
}

// Get returns the store named name, opening it on first use.
func (h *Handles[H]) Get(name string, open func() (H, error)) (H, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.open[name]; ok {
		return s, nil
	}
	s, err := open()
	if err != nil {
		var zero H
		return zero, fmt.Errorf("failed to open database %s: %w", name, err)
	}
	if h.open == nil {
		h.open = make(map[string]H)
	}
	h.open[name] = s
	return s, nil
}

// CloseDB closes the store named name.
func (h *Handles[H]) CloseDB(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.open[name]
	if !ok {
		return fmt.Errorf("database %s not found", name)
	}
	delete(h.open, name)
	return s.Close()
}

// Close closes every open store.
func (h *Handles[H]) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var errs []error
	for name, s := range h.open {
		if err := s.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database %s: %w", name, err))
		}
		delete(h.open, name)
	}
	return errors.Join(errs...)
}
