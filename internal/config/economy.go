package config

import (
	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// Params converts the economy and vesting sections into the parameters an
// economy is initialized with.
func (c *Config) Params() (state.Params, error) {
	variant, err := state.ParseVariant(c.Economy.Variant)
	if err != nil {
		return state.Params{}, err
	}

	p := state.Params{
		Variant:               variant,
		DividendFee:           c.Economy.DividendFee,
		InitialPrice:          sdkmath.NewUint(c.Economy.TokenInitialPrice),
		IncrementalPrice:      sdkmath.NewUint(c.Economy.TokenIncrementalPrice),
		MagnitudeBits:         c.Economy.MagnitudeBits,
		StakingRequirement:    sdkmath.NewUint(c.Economy.StakingRequirement),
		AmbassadorMaxPurchase: sdkmath.NewUint(c.Economy.AmbassadorMaxPurchase),
		AmbassadorQuota:       sdkmath.NewUint(c.Economy.AmbassadorQuota),
		Vesting: state.VestingTerms{
			Enabled:  c.Vesting.Enabled,
			Delay:    c.Vesting.Delay,
			Duration: c.Vesting.Duration,
		},
		MetadataURI: c.Economy.MetadataURI,
	}
	if err := p.Validate(); err != nil {
		return state.Params{}, err
	}
	return p, nil
}
