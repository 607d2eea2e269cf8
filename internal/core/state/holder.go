package state

import (
	"time"

	sdkmath "cosmossdk.io/math"
)

// Holder is one participant's record. It is created on first touch and
// never removed.
type Holder struct {
	ID        HolderID
	Authority HolderID

	Balance         sdkmath.Uint
	ReferredBalance sdkmath.Uint

	// Payout is the magnitude-scaled share of ProfitPerShare*Balance that
	// was already claimed or was never earned. It can be negative.
	Payout sdkmath.Int

	IsAdmin         bool
	IsAmbassador    bool
	AmbassadorQuota sdkmath.Uint

	Lock Lock
}

// Lock is the vesting window stamped on distributed tokens.
type Lock struct {
	Total  sdkmath.Uint
	Usable sdkmath.Uint
	Start  time.Time
	End    time.Time
}

// NewHolder returns an unclaimed, empty holder record for id.
func NewHolder(id HolderID) *Holder {
	return &Holder{
		ID:              id,
		Balance:         sdkmath.ZeroUint(),
		ReferredBalance: sdkmath.ZeroUint(),
		Payout:          sdkmath.ZeroInt(),
		AmbassadorQuota: sdkmath.ZeroUint(),
		Lock: Lock{
			Total:  sdkmath.ZeroUint(),
			Usable: sdkmath.ZeroUint(),
		},
	}
}

// Clone returns an independent copy of the record.
func (h *Holder) Clone() *Holder {
	c := *h
	return &c
}

// Claimed reports whether an authority has been bound to the record.
func (h *Holder) Claimed() bool {
	return !h.Authority.IsZero()
}

// HasBalance reports whether the holder owns any tokens.
func (h *Holder) HasBalance() bool {
	return !h.Balance.IsZero()
}

// HasBalanceUpTo reports whether the holder owns at least amount tokens.
func (h *Holder) HasBalanceUpTo(amount sdkmath.Uint) bool {
	return h.Balance.GTE(amount)
}

// Locked returns the part of the balance still under vesting.
func (h *Holder) Locked() sdkmath.Uint {
	if h.Lock.Total.LTE(h.Lock.Usable) {
		return sdkmath.ZeroUint()
	}
	return h.Lock.Total.Sub(h.Lock.Usable)
}
