package gate

import (
	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// AdminDistribution reserves the bootstrap phase to admins. Admins may buy,
// sell and withdraw and seed other holders with DistributeToken; everyone
// else waits until an admin closes the phase. Distribution is only possible
// during bootstrap and transfers only after it.
type AdminDistribution struct{}

func (AdminDistribution) Admit(e *state.Economy, h *state.Holder, op Op, _ sdkmath.Uint) error {
	if !e.InitialPhase {
		if op == OpDistribute {
			return rejected(op, ErrWrongPhase)
		}
		return nil
	}

	switch op {
	case OpDistribute:
		return nil
	case OpTransfer:
		return rejected(op, ErrWrongPhase)
	default:
		if !h.IsAdmin {
			return rejected(op, ErrWrongPhase)
		}
		return nil
	}
}
