package engine

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/dividend"
	"github.com/LeJamon/goSkwizz/internal/core/gate"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// Sell burns tokens from the signer and credits the taxed proceeds to their
// dividends. The currency stays in custody until the holder withdraws.
func (e *Engine) Sell(ctx context.Context, s Signer, tokens sdkmath.Uint) (sdkmath.Uint, error) {
	proceeds := sdkmath.ZeroUint()
	err := e.apply(ctx, "sell", func(tx *txn) error {
		if err := tx.initialized(); err != nil {
			return err
		}
		h, err := tx.owner(s)
		if err != nil {
			return err
		}
		proceeds, err = tx.sell(h, tokens)
		return err
	})
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return proceeds, nil
}

func (tx *txn) sell(h *state.Holder, tokens sdkmath.Uint) (sdkmath.Uint, error) {
	econ := tx.econ
	if err := tx.phaseGate().Admit(econ, h, gate.OpSell, tokens); err != nil {
		return sdkmath.ZeroUint(), err
	}
	if !h.HasBalance() {
		return sdkmath.ZeroUint(), ErrNotABagHolder
	}
	if spendable := tx.spendable(h); tokens.GT(spendable) {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: selling %s of %s spendable tokens", ErrInsufficientFunds, tokens, spendable)
	}

	gross, err := econ.TokensToCurrency(tokens)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	fee, taxed := dividend.Tax(gross, econ.DividendFee)

	econ.TokenSupply = econ.TokenSupply.Sub(tokens)
	dividend.Release(econ, h, tokens)
	dividend.Credit(econ, h, taxed)
	// Selling the last tokens leaves nobody to pay; the fee stays in
	// custody unallocated.
	dividend.Distribute(econ, fee)

	tx.burn(h.ID, tokens)

	ev := tx.event(EventTokenSell, h.ID)
	ev.Tokens = tokens
	ev.Currency = taxed
	tx.emit(ev)
	return taxed, nil
}
