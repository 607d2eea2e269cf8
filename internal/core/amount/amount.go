// Package amount converts between whole-unit decimal strings ("1.5") and
// the integer base units the engine works in.
package amount

import (
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

// CurrencyDecimals is the precision of the settlement currency: one unit is
// 1e9 base units.
const CurrencyDecimals uint8 = 9

var (
	ErrNegative  = errors.New("amount is negative")
	ErrPrecision = errors.New("amount has more decimal places than the unit allows")
	ErrOverflow  = errors.New("amount does not fit in 256 bits")
)

// maxDigits is the number of decimal digits in 2^256-1. Exponents beyond it
// are rejected before the value is expanded.
const maxDigits = 78

// Parse reads a whole-unit amount with at most decimals fractional digits
// and returns it in base units.
func Parse(s string, decimals uint8) (sdkmath.Uint, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return sdkmath.ZeroUint(), fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: %s", ErrNegative, s)
	}

	if d.IsZero() {
		return sdkmath.ZeroUint(), nil
	}

	base := d.Shift(int32(decimals))
	switch exp := base.Exponent(); {
	case exp > maxDigits:
		return sdkmath.ZeroUint(), fmt.Errorf("%w: %s", ErrOverflow, s)
	case exp < -maxDigits:
		return sdkmath.ZeroUint(), fmt.Errorf("%w: %s with %d decimals", ErrPrecision, s, decimals)
	}
	if !base.Equal(base.Truncate(0)) {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: %s with %d decimals", ErrPrecision, s, decimals)
	}

	v := base.BigInt()
	if v.BitLen() > 256 {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: %s", ErrOverflow, s)
	}
	return sdkmath.NewUintFromBigInt(v), nil
}

// ParseCurrency parses a settlement currency amount.
func ParseCurrency(s string) (sdkmath.Uint, error) {
	return Parse(s, CurrencyDecimals)
}

// Format renders base units as whole units, trimming trailing zeros.
func Format(v sdkmath.Uint, decimals uint8) string {
	return decimal.NewFromBigInt(v.BigInt(), -int32(decimals)).String()
}

// FormatCurrency renders a settlement currency amount.
func FormatCurrency(v sdkmath.Uint) string {
	return Format(v, CurrencyDecimals)
}

// Scale returns one whole unit in base units.
func Scale(decimals uint8) sdkmath.Uint {
	return sdkmath.NewUintFromBigInt(decimal.New(1, int32(decimals)).BigInt())
}
