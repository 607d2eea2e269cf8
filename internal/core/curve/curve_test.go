package curve

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unit = 1_000_000_000

func params(supply uint64) Params {
	return Params{
		InitialPrice:     uint256.NewInt(100_000),
		IncrementalPrice: uint256.NewInt(100),
		Supply:           uint256.NewInt(supply),
		Unit:             uint256.NewInt(unit),
	}
}

func TestCurrencyToTokens(t *testing.T) {
	tests := []struct {
		name   string
		supply uint64
		amount uint64
		want   uint64
	}{
		{"zero amount", 0, 0, 0},
		{"single base unit", 0, 1, 9_999},
		{"taxed first purchase", 0, 900_000_000, 3_358_898_943_540},
		{"untaxed first purchase", 0, 1_000_000_000, 3_582_575_694_955},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CurrencyToTokens(params(tt.supply), uint256.NewInt(tt.amount))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Uint64())
		})
	}
}

func TestTokensToCurrency(t *testing.T) {
	tests := []struct {
		name   string
		supply uint64
		tokens uint64
		want   uint64
	}{
		{"zero tokens", 10 * unit, 0, 0},
		{"one whole token at five", 5 * unit, unit, 100_300},
		{"thousand tokens at ten thousand", 10_000 * unit, 1_000 * unit, 1_049_899_950},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TokensToCurrency(params(tt.supply), uint256.NewInt(tt.tokens))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Uint64())
		})
	}
}

func TestTokensToCurrencySaturatesAtZero(t *testing.T) {
	p := Params{
		InitialPrice:     uint256.NewInt(1),
		IncrementalPrice: uint256.NewInt(1_000_000),
		Supply:           uint256.NewInt(0),
		Unit:             uint256.NewInt(unit),
	}
	got, err := TokensToCurrency(p, uint256.NewInt(unit))
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		supply uint64
		tokens uint64
	}{
		{10_000 * unit, 1_000 * unit},
		{50_000 * unit, 25_000 * unit},
		{1_000_000 * unit, 10 * unit},
	}

	for _, c := range cases {
		proceeds, err := TokensToCurrency(params(c.supply), uint256.NewInt(c.tokens))
		require.NoError(t, err)

		back, err := CurrencyToTokens(params(c.supply-c.tokens), proceeds)
		require.NoError(t, err)

		// selling drops an extra incremental*(2t+1)/2, so the way back is
		// never longer than the way out
		require.False(t, back.Gt(uint256.NewInt(c.tokens)))
		diff := c.tokens - back.Uint64()
		assert.LessOrEqual(t, diff, c.tokens/100, "supply=%d tokens=%d back=%d", c.supply, c.tokens, back.Uint64())
	}
}

func TestDeterministic(t *testing.T) {
	a, err := CurrencyToTokens(params(123_456_789_000), uint256.NewInt(7_777_777_777))
	require.NoError(t, err)
	b, err := CurrencyToTokens(params(123_456_789_000), uint256.NewInt(7_777_777_777))
	require.NoError(t, err)
	assert.True(t, a.Eq(b))
}

func TestLargeAmountsDoNotOverflow(t *testing.T) {
	// u64::MAX lamports overflows a 128-bit product in the second term
	got, err := CurrencyToTokens(params(0), uint256.NewInt(^uint64(0)))
	require.NoError(t, err)
	assert.False(t, got.IsZero())
}

func TestInvalidParams(t *testing.T) {
	p := params(0)
	p.IncrementalPrice = uint256.NewInt(0)

	_, err := CurrencyToTokens(p, uint256.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = TokensToCurrency(p, uint256.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidParams)
}
