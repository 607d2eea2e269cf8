package engine

import (
	"context"
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/dividend"
	"github.com/LeJamon/goSkwizz/internal/core/gate"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// HolderInfo is a read-only snapshot of one holder.
type HolderInfo struct {
	Holder *state.Holder
	// Spendable is the balance not locked by vesting.
	Spendable sdkmath.Uint
	// Dividends excludes the referral balance.
	Dividends sdkmath.Uint
}

// MyDividends returns what id could withdraw now, with or without its
// referral balance.
func (e *Engine) MyDividends(ctx context.Context, id state.HolderID, includeReferral bool) (sdkmath.Uint, error) {
	out := sdkmath.ZeroUint()
	err := e.read(ctx, func(tx *txn) error {
		h, err := tx.view.peek(ctx, id)
		if err != nil {
			return err
		}
		out, err = dividend.MyDividends(tx.econ, h, includeReferral)
		if errors.Is(err, dividend.ErrNegativeDividends) {
			return fmt.Errorf("%w: %v", ErrInvariantViolated, err)
		}
		return err
	})
	return out, err
}

// BuyPrice returns the cost of one whole token including the fee.
func (e *Engine) BuyPrice(ctx context.Context) (sdkmath.Uint, error) {
	return e.price(ctx, (*state.Economy).BuyPrice)
}

// SellPrice returns the proceeds of one whole token net of the fee.
func (e *Engine) SellPrice(ctx context.Context) (sdkmath.Uint, error) {
	return e.price(ctx, (*state.Economy).SellPrice)
}

func (e *Engine) price(ctx context.Context, fn func(*state.Economy) (sdkmath.Uint, error)) (sdkmath.Uint, error) {
	out := sdkmath.ZeroUint()
	err := e.read(ctx, func(tx *txn) error {
		var err error
		out, err = fn(tx.econ)
		return err
	})
	return out, err
}

// CalculateTokensReceived returns the tokens a purchase of amount would mint.
func (e *Engine) CalculateTokensReceived(ctx context.Context, amount sdkmath.Uint) (sdkmath.Uint, error) {
	return e.price(ctx, func(econ *state.Economy) (sdkmath.Uint, error) {
		return econ.CalculateTokensReceived(amount)
	})
}

// CalculateCurrencyReceived returns the currency a sale of tokens would
// credit.
func (e *Engine) CalculateCurrencyReceived(ctx context.Context, tokens sdkmath.Uint) (sdkmath.Uint, error) {
	return e.price(ctx, func(econ *state.Economy) (sdkmath.Uint, error) {
		return econ.CalculateCurrencyReceived(tokens)
	})
}

// Economy returns a copy of the economy record. It does not require the
// economy to be initialized.
func (e *Engine) Economy(ctx context.Context) (*state.Economy, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx, err := e.begin(ctx, "")
	if err != nil {
		return nil, err
	}
	return tx.econ, nil
}

// Phase returns the current phase of the economy.
func (e *Engine) Phase(ctx context.Context) (gate.Phase, error) {
	econ, err := e.Economy(ctx)
	if err != nil {
		return gate.Bootstrap, err
	}
	return gate.PhaseOf(econ), nil
}

// Holder returns a snapshot of id. Unknown holders read as empty.
func (e *Engine) Holder(ctx context.Context, id state.HolderID) (HolderInfo, error) {
	var info HolderInfo
	err := e.read(ctx, func(tx *txn) error {
		h, err := tx.view.peek(ctx, id)
		if err != nil {
			return err
		}
		divs, err := tx.dividendsOf(h)
		if err != nil {
			return err
		}
		info = HolderInfo{
			Holder:    h,
			Spendable: tx.spendable(h),
			Dividends: divs,
		}
		return nil
	})
	return info, err
}
