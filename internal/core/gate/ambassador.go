package gate

import (
	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// Ambassador keeps early purchases to ambassadors while the custody balance
// is within the aggregate quota.
//
// The first purchase that would carry the custody balance past the quota
// closes the bootstrap phase for good, even if the balance later drops back
// under it. Transfers stay disabled until the phase is closed.
type Ambassador struct{}

func (Ambassador) Admit(e *state.Economy, h *state.Holder, op Op, amount sdkmath.Uint) error {
	if !e.InitialPhase {
		return nil
	}

	switch op {
	case OpBuy, OpReinvest:
		if e.ContractBalance.Add(amount).GT(e.AmbassadorQuota) {
			Close(e)
			return nil
		}
		if !h.IsAmbassador {
			return rejected(op, ErrNotAmbassador)
		}
		contributed := h.AmbassadorQuota.Add(amount)
		if contributed.GT(e.AmbassadorMaxPurchase) {
			return rejected(op, ErrQuotaExceeded)
		}
		h.AmbassadorQuota = contributed
		return nil
	case OpTransfer:
		return rejected(op, ErrWrongPhase)
	default:
		return nil
	}
}
