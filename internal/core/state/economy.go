// Package state defines the records the token economy is made of: the
// Economy singleton and one Holder per participant.
package state

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/curve"
	"github.com/LeJamon/goSkwizz/internal/core/fixedpoint"
	"github.com/holiman/uint256"
)

// Variant selects which bootstrap gate governs the economy.
type Variant uint8

const (
	// VariantAmbassador only lets ambassadors buy, with per-holder caps,
	// until the aggregate quota is reached or an admin opens the economy.
	VariantAmbassador Variant = iota
	// VariantAdminDistribution blocks non-admin activity until an admin
	// opens the economy; admins seed holders through token distribution.
	VariantAdminDistribution
)

func (v Variant) String() string {
	switch v {
	case VariantAmbassador:
		return "ambassador"
	case VariantAdminDistribution:
		return "admin_distribution"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// ParseVariant parses the configuration name of a variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "ambassador", "":
		return VariantAmbassador, nil
	case "admin_distribution":
		return VariantAdminDistribution, nil
	default:
		return 0, fmt.Errorf("unknown economy variant %q", s)
	}
}

// VestingTerms configures the lock window stamped on distributed tokens.
type VestingTerms struct {
	Enabled  bool
	Delay    time.Duration
	Duration time.Duration
}

// Economy is the process-wide singleton record.
type Economy struct {
	Name     string
	Symbol   string
	Decimals uint8
	Variant  Variant

	// DividendFee is a divisor: 10 taxes every flow at 10%.
	DividendFee uint8

	InitialPrice     sdkmath.Uint
	IncrementalPrice sdkmath.Uint

	ContractBalance sdkmath.Uint
	TokenSupply     sdkmath.Uint

	Magnitude      sdkmath.Uint
	ProfitPerShare sdkmath.Uint

	StakingRequirement    sdkmath.Uint
	AmbassadorMaxPurchase sdkmath.Uint
	AmbassadorQuota       sdkmath.Uint

	InitialPhase bool
	Initialized  bool

	Vesting VestingTerms
}

// NewEconomy returns an uninitialized economy with every amount set to zero.
func NewEconomy() *Economy {
	return &Economy{
		InitialPrice:          sdkmath.ZeroUint(),
		IncrementalPrice:      sdkmath.ZeroUint(),
		ContractBalance:       sdkmath.ZeroUint(),
		TokenSupply:           sdkmath.ZeroUint(),
		Magnitude:             sdkmath.ZeroUint(),
		ProfitPerShare:        sdkmath.ZeroUint(),
		StakingRequirement:    sdkmath.ZeroUint(),
		AmbassadorMaxPurchase: sdkmath.ZeroUint(),
		AmbassadorQuota:       sdkmath.ZeroUint(),
	}
}

// Clone returns an independent copy. Amounts are immutable values, so a
// shallow copy is enough.
func (e *Economy) Clone() *Economy {
	c := *e
	return &c
}

// Apply seeds an uninitialized economy from params.
func (e *Economy) Apply(p Params, name, symbol string, decimals uint8) {
	e.Name = name
	e.Symbol = symbol
	e.Decimals = decimals
	e.Variant = p.Variant
	e.DividendFee = p.DividendFee
	e.InitialPrice = p.InitialPrice
	e.IncrementalPrice = p.IncrementalPrice
	e.Magnitude = sdkmath.NewUint(1 << p.MagnitudeBits)
	e.StakingRequirement = p.StakingRequirement
	e.AmbassadorMaxPurchase = p.AmbassadorMaxPurchase
	e.AmbassadorQuota = p.AmbassadorQuota
	e.Vesting = p.Vesting
	e.InitialPhase = true
	e.Initialized = true
}

// Fee returns the dividend fee divisor as an amount.
func (e *Economy) Fee() sdkmath.Uint {
	return sdkmath.NewUint(uint64(e.DividendFee))
}

// Unit returns the number of base units in one whole token.
func (e *Economy) Unit() sdkmath.Uint {
	return FromWord(fixedpoint.Pow10(e.Decimals))
}

// CurveParams returns the curve inputs for the current supply.
func (e *Economy) CurveParams() curve.Params {
	return curve.Params{
		InitialPrice:     Word(e.InitialPrice),
		IncrementalPrice: Word(e.IncrementalPrice),
		Supply:           Word(e.TokenSupply),
		Unit:             fixedpoint.Pow10(e.Decimals),
	}
}

// Word converts an amount to a 256-bit word. Amounts never exceed 256 bits.
func Word(u sdkmath.Uint) *uint256.Int {
	w, _ := uint256.FromBig(u.BigInt())
	return w
}

// FromWord converts a 256-bit word back to an amount.
func FromWord(w *uint256.Int) sdkmath.Uint {
	return sdkmath.NewUintFromBigInt(w.ToBig())
}
