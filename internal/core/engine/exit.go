package engine

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/gate"
)

// Exit sells every spendable token the signer holds and withdraws
// everything owed, in one operation. It returns the currency paid out.
func (e *Engine) Exit(ctx context.Context, s Signer) (sdkmath.Uint, error) {
	paid := sdkmath.ZeroUint()
	err := e.apply(ctx, "exit", func(tx *txn) error {
		if err := tx.initialized(); err != nil {
			return err
		}
		h, err := tx.owner(s)
		if err != nil {
			return err
		}
		if err := tx.phaseGate().Admit(tx.econ, h, gate.OpExit, sdkmath.ZeroUint()); err != nil {
			return err
		}

		if tokens := tx.spendable(h); !tokens.IsZero() {
			if _, err := tx.sell(h, tokens); err != nil {
				return err
			}
		}
		paid, err = tx.withdraw(h, true)
		return err
	})
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return paid, nil
}
