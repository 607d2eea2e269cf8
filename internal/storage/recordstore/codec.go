package recordstore

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/ugorji/go/codec"
)

// recordVersion is bumped when a stored layout changes incompatibly.
const recordVersion = 1

var msgpack = func() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.Canonical = true
	h.WriteExt = true
	return h
}()

// Marshal encodes v as msgpack.
func Marshal(v any) ([]byte, error) {
	var out []byte
	if err := codec.NewEncoderBytes(&out, msgpack).Encode(v); err != nil {
		return nil, err
	}
	return out, nil
}

// Unmarshal decodes msgpack data into v.
func Unmarshal(data []byte, v any) error {
	return codec.NewDecoderBytes(data, msgpack).Decode(v)
}

// Amounts are stored as decimal strings so no width is baked into the
// layout.
type economyRecord struct {
	Version  int    `codec:"v"`
	Name     string `codec:"name"`
	Symbol   string `codec:"symbol"`
	Decimals uint8  `codec:"decimals"`
	Variant  uint8  `codec:"variant"`

	DividendFee      uint8  `codec:"dividend_fee"`
	InitialPrice     string `codec:"initial_price"`
	IncrementalPrice string `codec:"incremental_price"`

	ContractBalance string `codec:"contract_balance"`
	TokenSupply     string `codec:"token_supply"`
	Magnitude       string `codec:"magnitude"`
	ProfitPerShare  string `codec:"profit_per_share"`

	StakingRequirement    string `codec:"staking_requirement"`
	AmbassadorMaxPurchase string `codec:"ambassador_max_purchase"`
	AmbassadorQuota       string `codec:"ambassador_quota"`

	InitialPhase bool `codec:"initial_phase"`
	Initialized  bool `codec:"initialized"`

	VestingEnabled  bool  `codec:"vesting_enabled"`
	VestingDelay    int64 `codec:"vesting_delay"`
	VestingDuration int64 `codec:"vesting_duration"`
}

type holderRecord struct {
	Version   int    `codec:"v"`
	ID        []byte `codec:"id"`
	Authority []byte `codec:"authority"`

	Balance         string `codec:"balance"`
	ReferredBalance string `codec:"referred_balance"`
	Payout          string `codec:"payout"`

	IsAdmin         bool   `codec:"is_admin"`
	IsAmbassador    bool   `codec:"is_ambassador"`
	AmbassadorQuota string `codec:"ambassador_quota"`

	LockTotal  string `codec:"lock_total"`
	LockUsable string `codec:"lock_usable"`
	LockStart  int64  `codec:"lock_start"`
	LockEnd    int64  `codec:"lock_end"`
}

func encodeEconomy(e *state.Economy) ([]byte, error) {
	return Marshal(&economyRecord{
		Version:               recordVersion,
		Name:                  e.Name,
		Symbol:                e.Symbol,
		Decimals:              e.Decimals,
		Variant:               uint8(e.Variant),
		DividendFee:           e.DividendFee,
		InitialPrice:          e.InitialPrice.String(),
		IncrementalPrice:      e.IncrementalPrice.String(),
		ContractBalance:       e.ContractBalance.String(),
		TokenSupply:           e.TokenSupply.String(),
		Magnitude:             e.Magnitude.String(),
		ProfitPerShare:        e.ProfitPerShare.String(),
		StakingRequirement:    e.StakingRequirement.String(),
		AmbassadorMaxPurchase: e.AmbassadorMaxPurchase.String(),
		AmbassadorQuota:       e.AmbassadorQuota.String(),
		InitialPhase:          e.InitialPhase,
		Initialized:           e.Initialized,
		VestingEnabled:        e.Vesting.Enabled,
		VestingDelay:          int64(e.Vesting.Delay),
		VestingDuration:       int64(e.Vesting.Duration),
	})
}

func decodeEconomy(data []byte) (*state.Economy, error) {
	var r economyRecord
	if err := Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode economy: %w", err)
	}
	if r.Version != recordVersion {
		return nil, fmt.Errorf("decode economy: unsupported record version %d", r.Version)
	}

	var d decoder
	e := &state.Economy{
		Name:                  r.Name,
		Symbol:                r.Symbol,
		Decimals:              r.Decimals,
		Variant:               state.Variant(r.Variant),
		DividendFee:           r.DividendFee,
		InitialPrice:          d.parseUint("initial_price", r.InitialPrice),
		IncrementalPrice:      d.parseUint("incremental_price", r.IncrementalPrice),
		ContractBalance:       d.parseUint("contract_balance", r.ContractBalance),
		TokenSupply:           d.parseUint("token_supply", r.TokenSupply),
		Magnitude:             d.parseUint("magnitude", r.Magnitude),
		ProfitPerShare:        d.parseUint("profit_per_share", r.ProfitPerShare),
		StakingRequirement:    d.parseUint("staking_requirement", r.StakingRequirement),
		AmbassadorMaxPurchase: d.parseUint("ambassador_max_purchase", r.AmbassadorMaxPurchase),
		AmbassadorQuota:       d.parseUint("ambassador_quota", r.AmbassadorQuota),
		InitialPhase:          r.InitialPhase,
		Initialized:           r.Initialized,
		Vesting: state.VestingTerms{
			Enabled:  r.VestingEnabled,
			Delay:    time.Duration(r.VestingDelay),
			Duration: time.Duration(r.VestingDuration),
		},
	}
	if d.err != nil {
		return nil, fmt.Errorf("decode economy: %w", d.err)
	}
	return e, nil
}

func encodeHolder(h *state.Holder) ([]byte, error) {
	return Marshal(&holderRecord{
		Version:         recordVersion,
		ID:              h.ID[:],
		Authority:       h.Authority[:],
		Balance:         h.Balance.String(),
		ReferredBalance: h.ReferredBalance.String(),
		Payout:          h.Payout.String(),
		IsAdmin:         h.IsAdmin,
		IsAmbassador:    h.IsAmbassador,
		AmbassadorQuota: h.AmbassadorQuota.String(),
		LockTotal:       h.Lock.Total.String(),
		LockUsable:      h.Lock.Usable.String(),
		LockStart:       unixNano(h.Lock.Start),
		LockEnd:         unixNano(h.Lock.End),
	})
}

func decodeHolder(data []byte) (*state.Holder, error) {
	var r holderRecord
	if err := Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode holder: %w", err)
	}
	if r.Version != recordVersion {
		return nil, fmt.Errorf("decode holder: unsupported record version %d", r.Version)
	}
	if len(r.ID) != state.HolderIDSize || len(r.Authority) != state.HolderIDSize {
		return nil, fmt.Errorf("decode holder: bad identity length")
	}

	var d decoder
	h := &state.Holder{
		ID:              state.HolderIDFromBytes(r.ID),
		Authority:       state.HolderIDFromBytes(r.Authority),
		Balance:         d.parseUint("balance", r.Balance),
		ReferredBalance: d.parseUint("referred_balance", r.ReferredBalance),
		Payout:          d.parseInt("payout", r.Payout),
		IsAdmin:         r.IsAdmin,
		IsAmbassador:    r.IsAmbassador,
		AmbassadorQuota: d.parseUint("ambassador_quota", r.AmbassadorQuota),
		Lock: state.Lock{
			Total:  d.parseUint("lock_total", r.LockTotal),
			Usable: d.parseUint("lock_usable", r.LockUsable),
			Start:  fromUnixNano(r.LockStart),
			End:    fromUnixNano(r.LockEnd),
		},
	}
	if d.err != nil {
		return nil, fmt.Errorf("decode holder %x: %w", r.ID, d.err)
	}
	return h, nil
}

// decoder keeps the first parse failure so a record decodes in one pass.
type decoder struct {
	err error
}

func (d *decoder) parseUint(field, s string) sdkmath.Uint {
	u, err := sdkmath.ParseUint(s)
	if err != nil {
		if d.err == nil {
			d.err = fmt.Errorf("field %s: %w", field, err)
		}
		return sdkmath.ZeroUint()
	}
	return u
}

func (d *decoder) parseInt(field, s string) sdkmath.Int {
	i, ok := sdkmath.NewIntFromString(s)
	if !ok {
		if d.err == nil {
			d.err = fmt.Errorf("field %s: invalid integer %q", field, s)
		}
		return sdkmath.ZeroInt()
	}
	return i
}

func unixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
