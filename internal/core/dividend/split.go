package dividend

import sdkmath "cosmossdk.io/math"

// Split is the breakdown of one taxed currency flow.
type Split struct {
	// Fee is amount/fee, the whole dividend cut.
	Fee sdkmath.Uint
	// Referral is one third of Fee, reserved for an eligible referrer.
	Referral sdkmath.Uint
	// Dividends is the rest of Fee, shared by all holders.
	Dividends sdkmath.Uint
	// Principal is what is left to convert on the curve.
	Principal sdkmath.Uint
}

// SplitPurchase divides a purchase amount by the dividend fee divisor.
func SplitPurchase(amount sdkmath.Uint, fee uint8) Split {
	cut := amount.QuoUint64(uint64(fee))
	referral := cut.QuoUint64(3)
	return Split{
		Fee:       cut,
		Referral:  referral,
		Dividends: cut.Sub(referral),
		Principal: amount.Sub(cut),
	}
}

// FoldReferral returns the split with the referral bonus moved back into
// dividends, for purchases without an eligible referrer.
func (s Split) FoldReferral() Split {
	s.Dividends = s.Dividends.Add(s.Referral)
	s.Referral = sdkmath.ZeroUint()
	return s
}

// Tax splits amount into the fee and the remainder, with no referral share.
func Tax(amount sdkmath.Uint, fee uint8) (cut, rest sdkmath.Uint) {
	cut = amount.QuoUint64(uint64(fee))
	return cut, amount.Sub(cut)
}
