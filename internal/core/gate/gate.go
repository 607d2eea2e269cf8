// Package gate decides which operations the economy currently allows.
//
// An economy starts in the Bootstrap phase and moves to Open exactly once.
// Two strategies are available, selected by the economy's variant.
package gate

import (
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

var (
	// ErrNotAmbassador is returned when a bootstrap purchase comes from a
	// holder without the ambassador role.
	ErrNotAmbassador = errors.New("caller is not an ambassador")

	// ErrQuotaExceeded is returned when a bootstrap purchase would take a
	// holder past the per-holder cap.
	ErrQuotaExceeded = errors.New("bootstrap quota exceeded")

	// ErrWrongPhase is returned when the current phase forbids the operation.
	ErrWrongPhase = errors.New("operation not allowed in the current phase")
)

// Phase is the gate's state.
type Phase uint8

const (
	Bootstrap Phase = iota
	Open
)

func (p Phase) String() string {
	switch p {
	case Bootstrap:
		return "bootstrap"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// PhaseOf returns the phase the economy is in.
func PhaseOf(e *state.Economy) Phase {
	if e.InitialPhase {
		return Bootstrap
	}
	return Open
}

// Op is an operation submitted to the gate.
type Op uint8

const (
	OpBuy Op = iota
	OpReinvest
	OpSell
	OpTransfer
	OpWithdraw
	OpExit
	OpDistribute
)

var opNames = map[Op]string{
	OpBuy:        "buy",
	OpReinvest:   "reinvest",
	OpSell:       "sell",
	OpTransfer:   "transfer",
	OpWithdraw:   "withdraw",
	OpExit:       "exit",
	OpDistribute: "distribute",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Gate admits or rejects an operation by holder h. For purchases amount is
// the currency being spent; Admit may record it against bootstrap quotas,
// so it must run on staged records.
type Gate interface {
	Admit(e *state.Economy, h *state.Holder, op Op, amount sdkmath.Uint) error
}

// For returns the gate strategy of a variant.
func For(v state.Variant) Gate {
	switch v {
	case state.VariantAdminDistribution:
		return AdminDistribution{}
	default:
		return Ambassador{}
	}
}

// Close ends the bootstrap phase. There is no way back.
func Close(e *state.Economy) {
	e.InitialPhase = false
}

func rejected(op Op, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
