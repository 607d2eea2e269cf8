package state

import (
	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/curve"
)

// CurrencyToTokens runs the curve for a taxed currency amount at the
// current supply.
func (e *Economy) CurrencyToTokens(amount sdkmath.Uint) (sdkmath.Uint, error) {
	w, err := curve.CurrencyToTokens(e.CurveParams(), Word(amount))
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return FromWord(w), nil
}

// TokensToCurrency runs the curve for tokens removed from the current supply.
func (e *Economy) TokensToCurrency(tokens sdkmath.Uint) (sdkmath.Uint, error) {
	w, err := curve.TokensToCurrency(e.CurveParams(), Word(tokens))
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return FromWord(w), nil
}

// SellPrice returns what one whole token sells for, net of the dividend fee.
//
// The curve has a gap at the origin, so with no supply the price is
// InitialPrice - IncrementalPrice.
func (e *Economy) SellPrice() (sdkmath.Uint, error) {
	if e.TokenSupply.IsZero() {
		if e.InitialPrice.LT(e.IncrementalPrice) {
			return sdkmath.ZeroUint(), nil
		}
		return e.InitialPrice.Sub(e.IncrementalPrice), nil
	}
	gross, err := e.TokensToCurrency(e.Unit())
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return gross.Sub(gross.Quo(e.Fee())), nil
}

// BuyPrice returns what one whole token costs including the dividend fee.
// With no supply the price is InitialPrice + IncrementalPrice.
func (e *Economy) BuyPrice() (sdkmath.Uint, error) {
	if e.TokenSupply.IsZero() {
		return e.InitialPrice.Add(e.IncrementalPrice), nil
	}
	gross, err := e.TokensToCurrency(e.Unit())
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return gross.Add(gross.Quo(e.Fee())), nil
}

// CalculateTokensReceived returns the tokens a purchase of amount would
// mint, after the dividend fee. Zero in, zero out.
func (e *Economy) CalculateTokensReceived(amount sdkmath.Uint) (sdkmath.Uint, error) {
	if amount.IsZero() {
		return sdkmath.ZeroUint(), nil
	}
	taxed := amount.Sub(amount.Quo(e.Fee()))
	return e.CurrencyToTokens(taxed)
}

// CalculateCurrencyReceived returns the currency a sale of tokens would
// release, after the dividend fee. Zero for zero tokens or more tokens than
// the supply.
func (e *Economy) CalculateCurrencyReceived(tokens sdkmath.Uint) (sdkmath.Uint, error) {
	if tokens.IsZero() || tokens.GT(e.TokenSupply) {
		return sdkmath.ZeroUint(), nil
	}
	gross, err := e.TokensToCurrency(tokens)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return gross.Sub(gross.Quo(e.Fee())), nil
}
