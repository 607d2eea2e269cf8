package engine

import (
	"context"
	"fmt"
)

// Initialize seeds the economy with the engine's params and makes the
// signer its first admin and ambassador. The metadata registry is called
// once here and never again.
func (e *Engine) Initialize(ctx context.Context, s Signer, meta TokenMetadata) error {
	return e.apply(ctx, "initialize", func(tx *txn) error {
		if tx.econ.Initialized {
			return ErrAlreadyInitialized
		}
		if meta.Decimals > 18 {
			return fmt.Errorf("decimals %d out of range [0, 18]", meta.Decimals)
		}
		h, err := tx.owner(s)
		if err != nil {
			return err
		}

		tx.econ.Apply(e.params, meta.Name, meta.Symbol, meta.Decimals)
		h.IsAdmin = true
		h.IsAmbassador = true

		if meta.URI == "" {
			meta.URI = e.params.MetadataURI
		}
		tx.effects = append(tx.effects, func(ctx context.Context) error {
			return e.metadata.Register(ctx, meta)
		})

		ev := tx.event(EventAdminChange, h.ID)
		ev.Detail = fmt.Sprintf("initialize name=%s symbol=%s decimals=%d variant=%s",
			meta.Name, meta.Symbol, meta.Decimals, tx.econ.Variant)
		tx.emit(ev)
		return nil
	})
}
