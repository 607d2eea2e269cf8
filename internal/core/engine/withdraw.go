package engine

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/dividend"
	"github.com/LeJamon/goSkwizz/internal/core/gate"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// Withdraw pays the signer's dividends and referral balance out of custody
// and returns the amount paid. With nothing owed it pays 0 and succeeds.
func (e *Engine) Withdraw(ctx context.Context, s Signer) (sdkmath.Uint, error) {
	paid := sdkmath.ZeroUint()
	err := e.apply(ctx, "withdraw", func(tx *txn) error {
		if err := tx.initialized(); err != nil {
			return err
		}
		h, err := tx.owner(s)
		if err != nil {
			return err
		}
		if err := tx.phaseGate().Admit(tx.econ, h, gate.OpWithdraw, sdkmath.ZeroUint()); err != nil {
			return err
		}
		paid, err = tx.withdraw(h, true)
		return err
	})
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return paid, nil
}

// withdraw settles everything h is owed. When direct is false the caller
// moves the currency itself.
func (tx *txn) withdraw(h *state.Holder, direct bool) (sdkmath.Uint, error) {
	divs, err := tx.dividendsOf(h)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	dividend.Claim(tx.econ, h, divs)

	total := divs.Add(h.ReferredBalance)
	h.ReferredBalance = sdkmath.ZeroUint()
	if total.IsZero() {
		return total, nil
	}

	if direct {
		if err := tx.transferOut(h.ID, total); err != nil {
			return sdkmath.ZeroUint(), err
		}
	}

	ev := tx.event(EventWithdraw, h.ID)
	ev.Currency = total
	tx.emit(ev)
	return total, nil
}
