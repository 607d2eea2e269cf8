package fixedpoint

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrt(t *testing.T) {
	tests := []struct {
		name string
		in   uint64
		want uint64
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"two", 2, 1},
		{"three", 3, 1},
		{"four", 4, 2},
		{"non square", 99, 9},
		{"perfect square", 1_000_000, 1000},
		{"one below square", 999_999, 999},
		{"max uint64", ^uint64(0), 4294967295},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sqrt(uint256.NewInt(tt.in))
			assert.Equal(t, tt.want, got.Uint64())
		})
	}
}

func TestSqrtMatchesBigInt(t *testing.T) {
	inputs := []string{
		"190000000000000000000000000000",
		"340282366920938463463374607431768211455",
		"115792089237316195423570985008687907853269984665640564039457584007913129639935",
	}

	for _, in := range inputs {
		x := uint256.MustFromDecimal(in)
		want := new(big.Int).Sqrt(x.ToBig())
		got := Sqrt(x)
		require.Equal(t, want.String(), got.Dec(), "sqrt(%s)", in)
	}
}

func TestSqrtIsMonotonic(t *testing.T) {
	prev := new(uint256.Int)
	for i := uint64(0); i < 5000; i++ {
		cur := Sqrt(uint256.NewInt(i))
		require.False(t, cur.Lt(prev), "sqrt(%d) decreased", i)
		prev = cur
	}
}

func TestPow10(t *testing.T) {
	assert.Equal(t, uint64(1), Pow10(0).Uint64())
	assert.Equal(t, uint64(1_000_000_000), Pow10(9).Uint64())
	assert.Equal(t, "1000000000000000000", Pow10(18).Dec())
}
