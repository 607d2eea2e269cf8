// Package curve implements the quadratic bonding curve used to price tokens.
//
// The price of the next whole token is linear in supply:
//
//	price(supply) = initial + incremental*supply
//
// Buying integrates the price over the supply interval being created, selling
// integrates it over the interval being removed. Both directions are exact
// integer functions of their inputs so identical states always price
// identically.
//
// All intermediates are 256-bit words: the squared terms of the closed-form
// solution do not fit in 128 bits for realistic currency amounts.
package curve

import (
	"errors"

	"github.com/LeJamon/goSkwizz/internal/core/fixedpoint"
	"github.com/holiman/uint256"
)

var (
	// ErrOverflow is returned when an intermediate exceeds 256 bits.
	ErrOverflow = errors.New("curve: arithmetic overflow")

	// ErrInvalidParams is returned when the curve has no slope or no unit.
	ErrInvalidParams = errors.New("curve: invalid parameters")
)

var two = uint256.NewInt(2)

// Params is the slice of economy state the curve depends on.
type Params struct {
	InitialPrice     *uint256.Int // currency per whole token at zero supply
	IncrementalPrice *uint256.Int // price increase per whole token of supply
	Supply           *uint256.Int // circulating supply in base units
	Unit             *uint256.Int // base units per whole token (10^decimals)
}

func (p Params) validate() error {
	if p.IncrementalPrice == nil || p.IncrementalPrice.IsZero() {
		return ErrInvalidParams
	}
	if p.Unit == nil || p.Unit.IsZero() {
		return ErrInvalidParams
	}
	if p.InitialPrice == nil || p.Supply == nil {
		return ErrInvalidParams
	}
	return nil
}

// CurrencyToTokens returns how many base units of token the given (already
// taxed) currency amount buys at the current supply.
//
// It solves incremental/2*t^2 + (initial + incremental*supply)*t = amount for
// t, with every operand expanded by Unit so the result comes out in base
// units:
//
//	t = (sqrt(ie^2 + 2*ince*ae + inc^2*s^2 + 2*inc*ie*s) - ie) / inc - s
//
// A zero result means the amount is below the smallest purchasable unit.
func CurrencyToTokens(p Params, amount *uint256.Int) (*uint256.Int, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return new(uint256.Int), nil
	}

	var c checked
	ie := c.mul(p.InitialPrice, p.Unit)
	ince := c.mul(p.IncrementalPrice, p.Unit)
	ae := c.mul(amount, p.Unit)

	first := c.mul(ie, ie)
	second := c.mul(c.mul(two, ince), ae)
	third := c.mul(c.mul(p.IncrementalPrice, p.IncrementalPrice), c.mul(p.Supply, p.Supply))
	fourth := c.mul(c.mul(c.mul(two, p.IncrementalPrice), ie), p.Supply)
	sum := c.add(c.add(first, second), c.add(third, fourth))
	if c.overflow {
		return nil, ErrOverflow
	}

	root := fixedpoint.Sqrt(sum)
	if root.Lt(ie) {
		return new(uint256.Int), nil
	}
	reached := new(uint256.Int).Sub(root, ie)
	reached.Div(reached, p.IncrementalPrice)
	if reached.Lt(p.Supply) {
		return new(uint256.Int), nil
	}
	return reached.Sub(reached, p.Supply), nil
}

// TokensToCurrency returns the gross currency released by removing tokens
// base units from the top of the current supply.
//
// Both tokens and supply are offset by one Unit before the subtraction so
// no intermediate can go below zero:
//
//	first  = initial + incremental*((s+U)/U) - incremental
//	third  = incremental*(((t+U)^2 - (t+U))/U)/2
//	result = (first*t - third) / U
//
// The result saturates at zero.
func TokensToCurrency(p Params, tokens *uint256.Int) (*uint256.Int, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if tokens.IsZero() {
		return new(uint256.Int), nil
	}

	var c checked
	t := c.add(tokens, p.Unit)
	s := c.add(p.Supply, p.Unit)

	wholeSupply := new(uint256.Int).Div(s, p.Unit)
	first := c.add(p.InitialPrice, c.mul(p.IncrementalPrice, wholeSupply))
	first.Sub(first, p.IncrementalPrice)

	second := new(uint256.Int).Sub(t, p.Unit)

	sq := c.mul(t, t)
	sq.Sub(sq, t)
	sq.Div(sq, p.Unit)
	third := c.mul(p.IncrementalPrice, sq)
	third.Div(third, two)

	gross := c.mul(first, second)
	if c.overflow {
		return nil, ErrOverflow
	}
	if gross.Lt(third) {
		return new(uint256.Int), nil
	}
	gross.Sub(gross, third)
	return gross.Div(gross, p.Unit), nil
}

// checked accumulates overflow across a chain of operations.
type checked struct {
	overflow bool
}

func (c *checked) mul(x, y *uint256.Int) *uint256.Int {
	z, o := new(uint256.Int).MulOverflow(x, y)
	c.overflow = c.overflow || o
	return z
}

func (c *checked) add(x, y *uint256.Int) *uint256.Int {
	z, o := new(uint256.Int).AddOverflow(x, y)
	c.overflow = c.overflow || o
	return z
}
