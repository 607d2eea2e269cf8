package engine

import (
	"context"
	"strconv"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/gate"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// administer runs a governance change by an admin signer and records it as
// an AdminChange event on target.
func (e *Engine) administer(ctx context.Context, op string, s Signer, fn func(tx *txn) (target state.HolderID, value string, err error)) error {
	return e.apply(ctx, op, func(tx *txn) error {
		admin, err := tx.admin(s)
		if err != nil {
			return err
		}
		target, value, err := fn(tx)
		if err != nil {
			return err
		}
		ev := tx.event(EventAdminChange, admin.ID)
		ev.Counterparty = target
		ev.Detail = op + "=" + value
		tx.emit(ev)
		return nil
	})
}

// DisableInitialPhase ends the bootstrap phase.
func (e *Engine) DisableInitialPhase(ctx context.Context, s Signer) error {
	return e.administer(ctx, "disable_initial_phase", s, func(tx *txn) (state.HolderID, string, error) {
		gate.Close(tx.econ)
		return state.ZeroHolderID, gate.PhaseOf(tx.econ).String(), nil
	})
}

// SetAdministrator grants or revokes the admin role.
func (e *Engine) SetAdministrator(ctx context.Context, s Signer, user state.HolderID, status bool) error {
	return e.administer(ctx, "set_administrator", s, func(tx *txn) (state.HolderID, string, error) {
		h, err := tx.view.holder(tx.ctx, user)
		if err != nil {
			return user, "", err
		}
		h.IsAdmin = status
		return user, strconv.FormatBool(status), nil
	})
}

// SetAmbassador grants or revokes the ambassador role.
func (e *Engine) SetAmbassador(ctx context.Context, s Signer, user state.HolderID, status bool) error {
	return e.administer(ctx, "set_ambassador", s, func(tx *txn) (state.HolderID, string, error) {
		h, err := tx.view.holder(tx.ctx, user)
		if err != nil {
			return user, "", err
		}
		h.IsAmbassador = status
		return user, strconv.FormatBool(status), nil
	})
}

// SetStakingRequirement changes the balance a referrer needs to earn the
// referral bonus.
func (e *Engine) SetStakingRequirement(ctx context.Context, s Signer, tokens sdkmath.Uint) error {
	return e.administer(ctx, "set_staking_requirement", s, func(tx *txn) (state.HolderID, string, error) {
		tx.econ.StakingRequirement = tokens
		return state.ZeroHolderID, tokens.String(), nil
	})
}

func (e *Engine) SetName(ctx context.Context, s Signer, name string) error {
	return e.administer(ctx, "set_name", s, func(tx *txn) (state.HolderID, string, error) {
		tx.econ.Name = name
		return state.ZeroHolderID, name, nil
	})
}

func (e *Engine) SetSymbol(ctx context.Context, s Signer, symbol string) error {
	return e.administer(ctx, "set_symbol", s, func(tx *txn) (state.HolderID, string, error) {
		tx.econ.Symbol = symbol
		return state.ZeroHolderID, symbol, nil
	})
}
