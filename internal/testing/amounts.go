package testing

import (
	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/amount"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// Units converts whole currency or token units to base units.
// For example, Units(2) returns 2,000,000,000.
func Units(n uint64) sdkmath.Uint {
	return sdkmath.NewUint(n).MulUint64(state.CurrencyUnit)
}

// Base returns an amount already in base units.
func Base(n uint64) sdkmath.Uint {
	return sdkmath.NewUint(n)
}

// Whole parses a decimal amount of whole units such as "0.5". It panics on
// malformed input.
func Whole(s string) sdkmath.Uint {
	v, err := amount.ParseCurrency(s)
	if err != nil {
		panic(err)
	}
	return v
}
