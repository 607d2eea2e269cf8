// Package engine applies operations to the token economy.
//
// Each operation runs in three steps, all under one lock:
//
//  1. load the records it touches into a staging view and validate
//  2. run the collaborator side effects: currency moves first, then
//     token mints and burns
//  3. commit the staged records in one batch and publish events
//
// Any failure in step 1 or 2 leaves the store untouched. A failed currency
// move leaves the token ledger untouched as well, and a failed mint or
// burn reverses the currency moves already made.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/dividend"
	"github.com/LeJamon/goSkwizz/internal/core/gate"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/LeJamon/goSkwizz/internal/core/vesting"
)

// Options wires an Engine to its collaborators. Store, Tokens, Funds and
// Metadata are required.
type Options struct {
	Store    Store
	Tokens   TokenLedger
	Funds    Settlement
	Metadata MetadataRegistry

	// Verifier defaults to TrustClaimedID.
	Verifier Verifier
	// Clock defaults to the system clock.
	Clock Clock
	// Events is optional.
	Events EventSink
	// Logger defaults to a no-op logger.
	Logger log.Logger

	// Params seed the economy at initialization.
	Params state.Params
}

// Engine is the single writer of the economy.
type Engine struct {
	mu sync.Mutex

	store    Store
	tokens   TokenLedger
	funds    Settlement
	metadata MetadataRegistry
	verifier Verifier
	clock    Clock
	events   EventSink
	logger   log.Logger
	params   state.Params
}

// New creates an engine.
func New(opts Options) (*Engine, error) {
	if opts.Store == nil || opts.Tokens == nil || opts.Funds == nil || opts.Metadata == nil {
		return nil, errors.New("engine: store, token ledger, settlement and metadata registry are required")
	}
	if err := opts.Params.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	e := &Engine{
		store:    opts.Store,
		tokens:   opts.Tokens,
		funds:    opts.Funds,
		metadata: opts.Metadata,
		verifier: opts.Verifier,
		clock:    opts.Clock,
		events:   opts.Events,
		logger:   opts.Logger,
		params:   opts.Params,
	}
	if e.verifier == nil {
		e.verifier = TrustClaimedID
	}
	if e.clock == nil {
		e.clock = systemClock{}
	}
	if e.logger == nil {
		e.logger = log.NewNopLogger()
	}
	return e, nil
}

// move is a currency transfer and the transfer that reverses it.
type move struct {
	do, undo func(context.Context) error
}

// txn is the context of one operation.
type txn struct {
	ctx  context.Context
	op   string
	eng  *Engine
	view *view
	econ *state.Economy
	now  time.Time

	moves   []move
	effects []func(context.Context) error
	events  []Event
}

// apply runs fn as one all-or-nothing operation.
func (e *Engine) apply(ctx context.Context, op string, fn func(tx *txn) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx, err := e.begin(ctx, op)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.run(fn); err != nil {
		e.logger.Debug("operation rejected", "op", op, "result", ResultOf(err).String(), "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tx.checkInvariants(); err != nil {
		e.logger.Error("operation aborted", "op", op, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.settle(ctx); err != nil {
		e.logger.Error("side effect failed", "op", op, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tx.view.commit(ctx); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	for _, ev := range tx.events {
		e.logger.Info(op, ev.KeyVals()...)
		if e.events == nil {
			continue
		}
		if err := e.events.Emit(ctx, ev); err != nil {
			e.logger.Error("event not recorded", "op", op, "event", string(ev.Kind), "err", err)
		}
	}
	return nil
}

// settle runs the currency moves, then the remaining effects.
func (tx *txn) settle(ctx context.Context) error {
	for i, mv := range tx.moves {
		if err := mv.do(ctx); err != nil {
			tx.unwind(ctx, i)
			return err
		}
	}
	for _, effect := range tx.effects {
		if err := effect(ctx); err != nil {
			tx.unwind(ctx, len(tx.moves))
			return err
		}
	}
	return nil
}

// unwind reverses the first n currency moves, newest first.
func (tx *txn) unwind(ctx context.Context, n int) {
	for i := n - 1; i >= 0; i-- {
		if err := tx.moves[i].undo(ctx); err != nil {
			tx.eng.logger.Error("currency move not reversed", "op", tx.op, "err", err)
		}
	}
}

// read runs fn against a view that is never committed.
func (e *Engine) read(ctx context.Context, fn func(tx *txn) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx, err := e.begin(ctx, "")
	if err != nil {
		return err
	}
	if err := tx.initialized(); err != nil {
		return err
	}
	return tx.run(fn)
}

func (e *Engine) begin(ctx context.Context, op string) (*txn, error) {
	v, err := newView(ctx, e.store)
	if err != nil {
		return nil, err
	}
	return &txn{
		ctx:  ctx,
		op:   op,
		eng:  e,
		view: v,
		econ: v.econ,
		now:  e.clock.Now(),
	}, nil
}

// run calls fn, turning an arithmetic panic (an amount going negative)
// into ErrInvariantViolated.
func (tx *txn) run(fn func(tx *txn) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInvariantViolated, r)
		}
	}()
	return fn(tx)
}

func (tx *txn) checkInvariants() error {
	for _, h := range tx.view.dirty() {
		if _, err := dividend.DividendsOf(tx.econ, h); err != nil {
			return fmt.Errorf("%w: %v", ErrInvariantViolated, err)
		}
		if h.Balance.GT(tx.econ.TokenSupply) {
			return fmt.Errorf("%w: holder %s balance %s exceeds supply %s",
				ErrInvariantViolated, h.ID, h.Balance, tx.econ.TokenSupply)
		}
	}
	return nil
}

func (tx *txn) initialized() error {
	if !tx.econ.Initialized {
		return ErrNotInitialized
	}
	return nil
}

func (tx *txn) phaseGate() gate.Gate {
	return gate.For(tx.econ.Variant)
}

// owner loads the signer's holder record for writing, binding it to the
// signer on first touch and enforcing the binding afterwards.
func (tx *txn) owner(s Signer) (*state.Holder, error) {
	s.Op = tx.op
	if !tx.eng.verifier.Controls(s, s.ID) {
		return nil, ErrNotOwner
	}
	h, err := tx.view.holder(tx.ctx, s.ID)
	if err != nil {
		return nil, err
	}
	if !h.Claimed() {
		h.Authority = s.ID
	} else if h.Authority != s.ID {
		return nil, ErrNotOwner
	}
	if !h.Lock.Total.IsZero() {
		vesting.Refresh(h, tx.now)
	}
	return h, nil
}

// admin loads the signer's holder record and requires the admin role.
func (tx *txn) admin(s Signer) (*state.Holder, error) {
	if err := tx.initialized(); err != nil {
		return nil, err
	}
	h, err := tx.owner(s)
	if err != nil {
		return nil, err
	}
	if !h.IsAdmin {
		return nil, ErrNotAdmin
	}
	return h, nil
}

func (tx *txn) dividendsOf(h *state.Holder) (sdkmath.Uint, error) {
	divs, err := dividend.DividendsOf(tx.econ, h)
	if err != nil {
		return sdkmath.ZeroUint(), fmt.Errorf("%w: %v", ErrInvariantViolated, err)
	}
	return divs, nil
}

func (tx *txn) spendable(h *state.Holder) sdkmath.Uint {
	return vesting.Spendable(h, tx.now)
}

func (tx *txn) mint(to state.HolderID, amount sdkmath.Uint) {
	if amount.IsZero() {
		return
	}
	tx.effects = append(tx.effects, func(ctx context.Context) error {
		return tx.eng.tokens.Mint(ctx, to, amount)
	})
}

func (tx *txn) burn(from state.HolderID, amount sdkmath.Uint) {
	if amount.IsZero() {
		return
	}
	tx.effects = append(tx.effects, func(ctx context.Context) error {
		return tx.eng.tokens.Burn(ctx, from, amount)
	})
}

func (tx *txn) transferIn(from state.HolderID, amount sdkmath.Uint) {
	tx.econ.ContractBalance = tx.econ.ContractBalance.Add(amount)
	tx.moves = append(tx.moves, move{
		do: func(ctx context.Context) error {
			return tx.eng.funds.TransferIn(ctx, from, amount)
		},
		undo: func(ctx context.Context) error {
			return tx.eng.funds.TransferOut(ctx, from, amount)
		},
	})
}

func (tx *txn) transferOut(to state.HolderID, amount sdkmath.Uint) error {
	if amount.GT(tx.econ.ContractBalance) {
		return fmt.Errorf("%w: custody holds %s, owed %s", ErrInsufficientFunds, tx.econ.ContractBalance, amount)
	}
	tx.econ.ContractBalance = tx.econ.ContractBalance.Sub(amount)
	tx.moves = append(tx.moves, move{
		do: func(ctx context.Context) error {
			return tx.eng.funds.TransferOut(ctx, to, amount)
		},
		undo: func(ctx context.Context) error {
			return tx.eng.funds.TransferIn(ctx, to, amount)
		},
	})
	return nil
}

func (tx *txn) emit(ev Event) {
	tx.events = append(tx.events, ev)
}

func (tx *txn) event(kind EventKind, customer state.HolderID) Event {
	return newEvent(kind, customer, tx.now)
}
