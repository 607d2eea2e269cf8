package state

import (
	"errors"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
)

// Default economy parameters.
const (
	DefaultDividendFee      = 10
	DefaultInitialPrice     = 100_000
	DefaultIncrementalPrice = 100
	DefaultMagnitudeBits    = 32
	DefaultDecimals         = 9

	// CurrencyUnit is the number of base currency units in one whole unit.
	CurrencyUnit = 1_000_000_000

	DefaultStakingRequirement    = 2_000 * CurrencyUnit
	DefaultAmbassadorMaxPurchase = 1 * CurrencyUnit
	DefaultAmbassadorQuota       = 20 * CurrencyUnit

	DefaultVestingDuration = 30 * 24 * time.Hour
)

// Params are the values an economy is initialized with.
type Params struct {
	Variant               Variant
	DividendFee           uint8
	InitialPrice          sdkmath.Uint
	IncrementalPrice      sdkmath.Uint
	MagnitudeBits         uint8
	StakingRequirement    sdkmath.Uint
	AmbassadorMaxPurchase sdkmath.Uint
	AmbassadorQuota       sdkmath.Uint
	Vesting               VestingTerms
	MetadataURI           string
}

// DefaultParams returns the launch parameters of the ambassador variant.
func DefaultParams() Params {
	return Params{
		Variant:               VariantAmbassador,
		DividendFee:           DefaultDividendFee,
		InitialPrice:          sdkmath.NewUint(DefaultInitialPrice),
		IncrementalPrice:      sdkmath.NewUint(DefaultIncrementalPrice),
		MagnitudeBits:         DefaultMagnitudeBits,
		StakingRequirement:    sdkmath.NewUint(DefaultStakingRequirement),
		AmbassadorMaxPurchase: sdkmath.NewUint(DefaultAmbassadorMaxPurchase),
		AmbassadorQuota:       sdkmath.NewUint(DefaultAmbassadorQuota),
		Vesting: VestingTerms{
			Duration: DefaultVestingDuration,
		},
	}
}

var errInvalidParams = errors.New("invalid economy params")

// Validate checks the params can run a curve and a ledger.
func (p Params) Validate() error {
	if p.DividendFee < 2 {
		return fmt.Errorf("%w: dividend fee divisor must be at least 2, got %d", errInvalidParams, p.DividendFee)
	}
	if p.IncrementalPrice.IsZero() {
		return fmt.Errorf("%w: incremental price must be positive", errInvalidParams)
	}
	if p.InitialPrice.LTE(p.IncrementalPrice) {
		return fmt.Errorf("%w: initial price %s must exceed incremental price %s",
			errInvalidParams, p.InitialPrice, p.IncrementalPrice)
	}
	if p.MagnitudeBits == 0 || p.MagnitudeBits > 63 {
		return fmt.Errorf("%w: magnitude bits must be in [1, 63], got %d", errInvalidParams, p.MagnitudeBits)
	}
	if p.Vesting.Enabled && p.Vesting.Duration <= 0 {
		return fmt.Errorf("%w: vesting duration must be positive", errInvalidParams)
	}
	return nil
}
