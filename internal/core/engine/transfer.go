package engine

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/dividend"
	"github.com/LeJamon/goSkwizz/internal/core/gate"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// Transfer moves tokens from the signer to another holder and returns the
// tokens the recipient receives.
//
// The dividend fee is taken in tokens and burned; its currency equivalent,
// priced on the supply before the burn, is shared among the remaining
// holders. Anything the sender is owed is paid out first.
func (e *Engine) Transfer(ctx context.Context, s Signer, to state.HolderID, tokens sdkmath.Uint) (sdkmath.Uint, error) {
	received := sdkmath.ZeroUint()
	err := e.apply(ctx, "transfer", func(tx *txn) error {
		if err := tx.initialized(); err != nil {
			return err
		}
		sender, err := tx.owner(s)
		if err != nil {
			return err
		}
		econ := tx.econ
		if err := tx.phaseGate().Admit(econ, sender, gate.OpTransfer, tokens); err != nil {
			return err
		}
		if !sender.HasBalance() {
			return ErrNotABagHolder
		}
		if spendable := tx.spendable(sender); tokens.GT(spendable) {
			return fmt.Errorf("%w: transferring %s of %s spendable tokens", ErrInsufficientFunds, tokens, spendable)
		}

		recipient, err := tx.recipient(to)
		if err != nil {
			return err
		}

		withdrawn := sdkmath.ZeroUint()
		owed, err := dividend.MyDividends(econ, sender, true)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvariantViolated, err)
		}
		if !owed.IsZero() {
			if withdrawn, err = tx.withdraw(sender, false); err != nil {
				return err
			}
		}

		feeTokens, taxed := dividend.Tax(tokens, econ.DividendFee)
		divs, err := econ.TokensToCurrency(feeTokens)
		if err != nil {
			return err
		}

		econ.TokenSupply = econ.TokenSupply.Sub(feeTokens)
		dividend.Release(econ, sender, tokens)
		dividend.Acquire(econ, recipient, taxed)
		dividend.Distribute(econ, divs)

		tx.burn(sender.ID, tokens)
		tx.mint(recipient.ID, taxed)
		if !withdrawn.IsZero() {
			if err := tx.transferOut(sender.ID, withdrawn); err != nil {
				return err
			}
		}

		ev := tx.event(EventTransfer, sender.ID)
		ev.Counterparty = recipient.ID
		ev.Tokens = taxed
		ev.Currency = divs
		tx.emit(ev)

		received = taxed
		return nil
	})
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return received, nil
}

// recipient loads a transfer target, binding an unclaimed record to it.
func (tx *txn) recipient(to state.HolderID) (*state.Holder, error) {
	if to.IsZero() {
		return nil, fmt.Errorf("%w: empty recipient", ErrRecipientMismatch)
	}
	h, err := tx.view.holder(tx.ctx, to)
	if err != nil {
		return nil, err
	}
	if !h.Claimed() {
		h.Authority = to
	} else if h.Authority != to {
		return nil, fmt.Errorf("%w: %s is bound to %s", ErrRecipientMismatch, to, h.Authority)
	}
	return h, nil
}
