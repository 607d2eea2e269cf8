package engine

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/dividend"
	"github.com/LeJamon/goSkwizz/internal/core/gate"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// Buy converts amount of the signer's currency into tokens and returns the
// tokens minted. A referrer holding at least the staking requirement
// receives a third of the dividend fee; otherwise that share goes to all
// holders.
func (e *Engine) Buy(ctx context.Context, s Signer, amount sdkmath.Uint, referrer *state.HolderID) (sdkmath.Uint, error) {
	minted := sdkmath.ZeroUint()
	err := e.apply(ctx, "buy", func(tx *txn) error {
		if err := tx.initialized(); err != nil {
			return err
		}
		buyer, err := tx.owner(s)
		if err != nil {
			return err
		}

		funds, err := e.funds.Balance(ctx, buyer.ID)
		if err != nil {
			return fmt.Errorf("read wallet: %w", err)
		}
		if funds.LT(amount) {
			return fmt.Errorf("%w: wallet holds %s, buying with %s", ErrInsufficientFunds, funds, amount)
		}

		minted, err = tx.purchase(buyer, amount, referrer, gate.OpBuy)
		if err != nil {
			return err
		}
		tx.transferIn(buyer.ID, amount)
		return nil
	})
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return minted, nil
}

// Reinvest spends the signer's accumulated dividends, excluding referral
// balance, on tokens without moving any currency.
func (e *Engine) Reinvest(ctx context.Context, s Signer) (sdkmath.Uint, error) {
	minted := sdkmath.ZeroUint()
	err := e.apply(ctx, "reinvest", func(tx *txn) error {
		if err := tx.initialized(); err != nil {
			return err
		}
		h, err := tx.owner(s)
		if err != nil {
			return err
		}

		divs, err := tx.dividendsOf(h)
		if err != nil {
			return err
		}
		dividend.Claim(tx.econ, h, divs)

		minted, err = tx.purchase(h, divs, nil, gate.OpReinvest)
		if err != nil {
			return err
		}

		ev := tx.event(EventReinvestment, h.ID)
		ev.Currency = divs
		ev.Tokens = minted
		tx.emit(ev)
		return nil
	})
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return minted, nil
}

// purchase runs the buy path for amount of currency already accounted for
// by the caller and returns the tokens minted to buyer.
func (tx *txn) purchase(buyer *state.Holder, amount sdkmath.Uint, referrer *state.HolderID, op gate.Op) (sdkmath.Uint, error) {
	econ := tx.econ
	if err := tx.phaseGate().Admit(econ, buyer, op, amount); err != nil {
		return sdkmath.ZeroUint(), err
	}

	split := dividend.SplitPurchase(amount, econ.DividendFee)
	tokens, err := econ.CurrencyToTokens(split.Principal)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	if tokens.IsZero() {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: %s buys no tokens", ErrBelowMinimumPurchase, amount)
	}

	purchase := tx.event(EventTokenPurchase, buyer.ID)
	purchase.Currency = amount
	purchase.Tokens = tokens

	ref, err := tx.eligibleReferrer(buyer, referrer)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	if ref != nil {
		ref.ReferredBalance = ref.ReferredBalance.Add(split.Referral)
		purchase.Counterparty = ref.ID

		bonus := tx.event(EventReferral, ref.ID)
		bonus.Counterparty = buyer.ID
		bonus.Currency = split.Referral
		bonus.Detail = "incoming=" + amount.String()
		tx.emit(bonus)
	} else {
		split = split.FoldReferral()
		if referrer != nil {
			purchase.Detail = "referrer ignored"
		}
	}

	// The buyer's share of their own fee comes back through the payout
	// offset. With no supply yet the buyer is the only holder and keeps the
	// whole fee; the accumulator does not move.
	fee := split.Dividends.Mul(econ.Magnitude)
	if econ.TokenSupply.IsZero() {
		econ.TokenSupply = tokens
	} else {
		econ.TokenSupply = econ.TokenSupply.Add(tokens)
		perShare := dividend.Distribute(econ, split.Dividends)
		fee = tokens.Mul(perShare)
	}

	dividend.Acquire(econ, buyer, tokens)
	dividend.Rebate(buyer, fee)
	tx.mint(buyer.ID, tokens)
	tx.emit(purchase)
	return tokens, nil
}

// eligibleReferrer returns the referrer's record if it may receive the
// referral bonus, nil otherwise.
func (tx *txn) eligibleReferrer(buyer *state.Holder, referrer *state.HolderID) (*state.Holder, error) {
	if referrer == nil || referrer.IsZero() || *referrer == buyer.ID {
		return nil, nil
	}
	ref, err := tx.view.peek(tx.ctx, *referrer)
	if err != nil {
		return nil, err
	}
	if !ref.HasBalanceUpTo(tx.econ.StakingRequirement) {
		return nil, nil
	}
	return tx.view.holder(tx.ctx, *referrer)
}
