package engine

import (
	"context"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/dividend"
	"github.com/LeJamon/goSkwizz/internal/core/gate"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/LeJamon/goSkwizz/internal/core/vesting"
)

// DistributeToken moves tokens from an admin to recipient untaxed and locks
// them on the recipient under the economy's vesting schedule.
func (e *Engine) DistributeToken(ctx context.Context, s Signer, recipient state.HolderID, tokens sdkmath.Uint) error {
	return e.apply(ctx, "distribute_token", func(tx *txn) error {
		admin, err := tx.admin(s)
		if err != nil {
			return err
		}
		econ := tx.econ
		if !econ.Vesting.Enabled {
			return fmt.Errorf("%w: vesting is disabled", ErrWrongPhase)
		}
		if err := tx.phaseGate().Admit(econ, admin, gate.OpDistribute, tokens); err != nil {
			return err
		}
		if !admin.HasBalance() {
			return ErrNotABagHolder
		}
		if spendable := tx.spendable(admin); tokens.GT(spendable) {
			return fmt.Errorf("%w: distributing %s of %s spendable tokens", ErrInsufficientFunds, tokens, spendable)
		}

		rcpt, err := tx.view.holder(tx.ctx, recipient)
		if err != nil {
			return err
		}
		if rcpt.Claimed() && rcpt.Authority != recipient {
			return fmt.Errorf("%w: %s is bound to %s", ErrRecipientMismatch, recipient, rcpt.Authority)
		}

		dividend.Release(econ, admin, tokens)
		dividend.Acquire(econ, rcpt, tokens)
		vesting.FromTerms(econ.Vesting).Grant(rcpt, tokens, tx.now)

		tx.burn(admin.ID, tokens)
		tx.mint(rcpt.ID, tokens)

		ev := tx.event(EventDistribution, admin.ID)
		ev.Counterparty = rcpt.ID
		ev.Tokens = tokens
		ev.Detail = fmt.Sprintf("unlock_start=%s unlock_end=%s",
			rcpt.Lock.Start.UTC().Format(time.RFC3339), rcpt.Lock.End.UTC().Format(time.RFC3339))
		tx.emit(ev)
		return nil
	})
}
