// Package dividend implements the profit-per-share ledger.
//
// A single accumulator, ProfitPerShare, records dividends issued per token
// scaled by Magnitude. Each holder carries a signed Payout offset, so what a
// holder is owed is
//
//	(ProfitPerShare*Balance - Payout) / Magnitude
//
// and computing it never iterates over holders. Every balance change moves
// Payout by ProfitPerShare*delta so the change neither creates nor destroys
// dividends already issued.
package dividend

import (
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// ErrNegativeDividends means a holder's payout offset exceeds what the
// accumulator says it earned. It is only reachable through a ledger bug.
var ErrNegativeDividends = errors.New("dividend: negative dividends owed")

// DividendsOf returns the accumulator-derived dividends owed to h.
func DividendsOf(e *state.Economy, h *state.Holder) (sdkmath.Uint, error) {
	owed := earned(e, h).Sub(h.Payout)
	if owed.IsNegative() {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: holder %s payout %s", ErrNegativeDividends, h.ID, h.Payout)
	}
	return sdkmath.NewUintFromBigInt(owed.Quo(signed(e.Magnitude)).BigInt()), nil
}

// MyDividends returns DividendsOf, plus the referral balance when
// includeReferral is set.
func MyDividends(e *state.Economy, h *state.Holder, includeReferral bool) (sdkmath.Uint, error) {
	d, err := DividendsOf(e, h)
	if err != nil {
		return d, err
	}
	if includeReferral {
		d = d.Add(h.ReferredBalance)
	}
	return d, nil
}

// Acquire records that h received tokens without any claim on dividends
// issued before.
func Acquire(e *state.Economy, h *state.Holder, tokens sdkmath.Uint) {
	h.Balance = h.Balance.Add(tokens)
	h.Payout = h.Payout.Add(signed(e.ProfitPerShare.Mul(tokens)))
}

// Release records that h gave up tokens while keeping the dividends they
// had already earned.
func Release(e *state.Economy, h *state.Holder, tokens sdkmath.Uint) {
	h.Balance = h.Balance.Sub(tokens)
	h.Payout = h.Payout.Sub(signed(e.ProfitPerShare.Mul(tokens)))
}

// Claim marks amount of h's dividends as paid.
func Claim(e *state.Economy, h *state.Holder, amount sdkmath.Uint) {
	h.Payout = h.Payout.Add(signed(amount.Mul(e.Magnitude)))
}

// Credit owes h amount of currency on top of the accumulator.
func Credit(e *state.Economy, h *state.Holder, amount sdkmath.Uint) {
	h.Payout = h.Payout.Sub(signed(amount.Mul(e.Magnitude)))
}

// Rebate hands a magnitude-scaled amount back to h through its payout
// offset. A buyer's share of their own purchase fee reaches them this way.
func Rebate(h *state.Holder, scaled sdkmath.Uint) {
	h.Payout = h.Payout.Sub(signed(scaled))
}

// Distribute spreads dividends over the current supply and returns the
// per-share increment. With no supply there is nobody to pay and the
// accumulator is left alone.
func Distribute(e *state.Economy, dividends sdkmath.Uint) sdkmath.Uint {
	if e.TokenSupply.IsZero() {
		return sdkmath.ZeroUint()
	}
	perShare := dividends.Mul(e.Magnitude).Quo(e.TokenSupply)
	e.ProfitPerShare = e.ProfitPerShare.Add(perShare)
	return perShare
}

func earned(e *state.Economy, h *state.Holder) sdkmath.Int {
	return signed(e.ProfitPerShare.Mul(h.Balance))
}

func signed(u sdkmath.Uint) sdkmath.Int {
	return sdkmath.NewIntFromBigInt(u.BigInt())
}
