package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// trackedHolder is a staged holder record. Only written records are
// committed.
type trackedHolder struct {
	written bool
	current *state.Holder
}

// view stages every record an operation touches. Records are cloned on
// load, so nothing reaches the store until the whole operation succeeds
// and the view is committed.
type view struct {
	base    Store
	econ    *state.Economy
	holders map[state.HolderID]*trackedHolder
}

func newView(ctx context.Context, base Store) (*view, error) {
	econ, ok, err := base.LoadEconomy(ctx)
	if err != nil {
		return nil, fmt.Errorf("load economy: %w", err)
	}
	if !ok {
		econ = state.NewEconomy()
	} else {
		econ = econ.Clone()
	}
	return &view{
		base:    base,
		econ:    econ,
		holders: make(map[state.HolderID]*trackedHolder),
	}, nil
}

// peek returns the holder for reading. Absent records read as empty and
// are not created.
func (v *view) peek(ctx context.Context, id state.HolderID) (*state.Holder, error) {
	t, err := v.track(ctx, id)
	if err != nil {
		return nil, err
	}
	return t.current, nil
}

// holder returns the holder for writing, creating the record if absent.
func (v *view) holder(ctx context.Context, id state.HolderID) (*state.Holder, error) {
	t, err := v.track(ctx, id)
	if err != nil {
		return nil, err
	}
	t.written = true
	return t.current, nil
}

func (v *view) track(ctx context.Context, id state.HolderID) (*trackedHolder, error) {
	if t, ok := v.holders[id]; ok {
		return t, nil
	}
	h, ok, err := v.base.LoadHolder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load holder %s: %w", id, err)
	}
	t := &trackedHolder{current: state.NewHolder(id)}
	if ok {
		t.current = h.Clone()
	}
	v.holders[id] = t
	return t, nil
}

// dirty returns the holders to write, in identity order.
func (v *view) dirty() []*state.Holder {
	out := make([]*state.Holder, 0, len(v.holders))
	for _, t := range v.holders {
		if t.written {
			out = append(out, t.current)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return string(out[i].ID[:]) < string(out[j].ID[:])
	})
	return out
}

func (v *view) commit(ctx context.Context) error {
	return v.base.Commit(ctx, v.econ, v.dirty())
}
