// Package fixedpoint holds the integer helpers the bonding curve is built on.
package fixedpoint

import "github.com/holiman/uint256"

// Sqrt returns floor(sqrt(x)) computed with Newton-Raphson iteration.
//
// The iteration starts at ceil(x/2) and stops as soon as the candidate
// no longer decreases, so the result is monotonic in x.
func Sqrt(x *uint256.Int) *uint256.Int {
	if x.IsZero() {
		return new(uint256.Int)
	}

	// ceil(x/2) without the x+1 overflow at MaxUint256
	z := new(uint256.Int).Rsh(x, 1)
	z.AddUint64(z, x.Uint64()&1)

	y := x.Clone()
	q := new(uint256.Int)
	for z.Lt(y) {
		y.Set(z)
		q.Div(x, z)
		z.Add(q, z)
		z.Rsh(z, 1)
	}
	return y
}

// Pow10 returns 10^n as a 256-bit word.
func Pow10(n uint8) *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(n)))
}
