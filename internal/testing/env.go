package testing

import (
	"context"
	"sync"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/collab/bank"
	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/LeJamon/goSkwizz/internal/crypto"
	"github.com/LeJamon/goSkwizz/internal/storage/database/memory"
	"github.com/LeJamon/goSkwizz/internal/storage/recordstore"
)

// TestEnv is an economy node running entirely in memory.
type TestEnv struct {
	t   *testing.T
	ctx context.Context

	Engine *engine.Engine
	Store  *recordstore.Store
	Bank   *bank.Bank
	Clock  *ManualClock
	Events *EventRecorder

	admin *Account
}

// NewTestEnv creates an environment with the default launch parameters.
// The economy is not initialized until Init is called.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	return NewTestEnvWithParams(t, state.DefaultParams())
}

// NewTestEnvWithParams creates an environment whose economy will be
// initialized with p.
func NewTestEnvWithParams(t *testing.T, p state.Params) *TestEnv {
	t.Helper()

	db := memory.NewDB()
	store, err := recordstore.New(db, 64)
	if err != nil {
		t.Fatalf("Failed to create record store: %v", err)
	}
	b := bank.New(db)
	clock := NewManualClock()
	events := &EventRecorder{}

	eng, err := engine.New(engine.Options{
		Store:    store,
		Tokens:   b,
		Funds:    b,
		Metadata: b,
		Verifier: crypto.SignatureVerifier{},
		Clock:    clock,
		Events:   events,
		Params:   p,
	})
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	return &TestEnv{
		t:      t,
		ctx:    context.Background(),
		Engine: eng,
		Store:  store,
		Bank:   b,
		Clock:  clock,
		Events: events,
		admin:  AdminAccount(),
	}
}

// Admin returns the account that initialized the economy.
func (e *TestEnv) Admin() *Account {
	return e.admin
}

// Init initializes the economy as the admin account.
func (e *TestEnv) Init() {
	e.t.Helper()
	err := e.Engine.Initialize(e.ctx, e.admin.Signer("initialize"), engine.TokenMetadata{
		Name:     "Skwizz",
		Symbol:   "SKW",
		Decimals: state.DefaultDecimals,
	})
	if err != nil {
		e.t.Fatalf("Failed to initialize economy: %v", err)
	}
}

// Open ends the bootstrap phase.
func (e *TestEnv) Open() {
	e.t.Helper()
	if err := e.Engine.DisableInitialPhase(e.ctx, e.admin.Signer("disable_initial_phase")); err != nil {
		e.t.Fatalf("Failed to open economy: %v", err)
	}
}

// Fund credits amount of currency to each account's wallet.
func (e *TestEnv) Fund(amount sdkmath.Uint, accounts ...*Account) {
	e.t.Helper()
	for _, acc := range accounts {
		if err := e.Bank.Fund(e.ctx, acc.ID, amount); err != nil {
			e.t.Fatalf("Failed to fund %s: %v", acc, err)
		}
	}
}

// Buy spends amount of acc's currency on tokens.
func (e *TestEnv) Buy(acc *Account, amount sdkmath.Uint, referrer *Account) (sdkmath.Uint, error) {
	var ref *state.HolderID
	if referrer != nil {
		ref = referrer.Ref()
	}
	return e.Engine.Buy(e.ctx, acc.Signer("buy"), amount, ref)
}

// RequireBuy buys and fails the test on error.
func (e *TestEnv) RequireBuy(acc *Account, amount sdkmath.Uint, referrer *Account) sdkmath.Uint {
	e.t.Helper()
	tokens, err := e.Buy(acc, amount, referrer)
	if err != nil {
		e.t.Fatalf("%s failed to buy with %s: %v", acc.Name, amount, err)
	}
	return tokens
}

func (e *TestEnv) Sell(acc *Account, tokens sdkmath.Uint) (sdkmath.Uint, error) {
	return e.Engine.Sell(e.ctx, acc.Signer("sell"), tokens)
}

func (e *TestEnv) Reinvest(acc *Account) (sdkmath.Uint, error) {
	return e.Engine.Reinvest(e.ctx, acc.Signer("reinvest"))
}

func (e *TestEnv) Withdraw(acc *Account) (sdkmath.Uint, error) {
	return e.Engine.Withdraw(e.ctx, acc.Signer("withdraw"))
}

func (e *TestEnv) Transfer(from, to *Account, tokens sdkmath.Uint) (sdkmath.Uint, error) {
	return e.Engine.Transfer(e.ctx, from.Signer("transfer"), to.ID, tokens)
}

func (e *TestEnv) Exit(acc *Account) (sdkmath.Uint, error) {
	return e.Engine.Exit(e.ctx, acc.Signer("exit"))
}

// Distribute moves tokens from admin to recipient under vesting.
func (e *TestEnv) Distribute(admin, recipient *Account, tokens sdkmath.Uint) error {
	return e.Engine.DistributeToken(e.ctx, admin.Signer("distribute_token"), recipient.ID, tokens)
}

// Holder returns the engine's snapshot of acc.
func (e *TestEnv) Holder(acc *Account) engine.HolderInfo {
	e.t.Helper()
	info, err := e.Engine.Holder(e.ctx, acc.ID)
	if err != nil {
		e.t.Fatalf("Failed to read holder %s: %v", acc, err)
	}
	return info
}

// Economy returns the economy record.
func (e *TestEnv) Economy() *state.Economy {
	e.t.Helper()
	econ, err := e.Engine.Economy(e.ctx)
	if err != nil {
		e.t.Fatalf("Failed to read economy: %v", err)
	}
	return econ
}

// Dividends returns what acc could withdraw now.
func (e *TestEnv) Dividends(acc *Account, includeReferral bool) sdkmath.Uint {
	e.t.Helper()
	divs, err := e.Engine.MyDividends(e.ctx, acc.ID, includeReferral)
	if err != nil {
		e.t.Fatalf("Failed to read dividends of %s: %v", acc, err)
	}
	return divs
}

// Wallet returns the currency in acc's wallet.
func (e *TestEnv) Wallet(acc *Account) sdkmath.Uint {
	return e.read(func(ctx context.Context) (sdkmath.Uint, error) { return e.Bank.Balance(ctx, acc.ID) })
}

// Tokens returns the tokens the token ledger holds for acc.
func (e *TestEnv) Tokens(acc *Account) sdkmath.Uint {
	return e.read(func(ctx context.Context) (sdkmath.Uint, error) { return e.Bank.TokenBalance(ctx, acc.ID) })
}

// Custody returns the currency held by the economy.
func (e *TestEnv) Custody() sdkmath.Uint {
	return e.read(e.Bank.Custody)
}

// LedgerSupply returns the token ledger's total supply.
func (e *TestEnv) LedgerSupply() sdkmath.Uint {
	return e.read(e.Bank.TotalSupply)
}

func (e *TestEnv) read(fn func(context.Context) (sdkmath.Uint, error)) sdkmath.Uint {
	e.t.Helper()
	v, err := fn(e.ctx)
	if err != nil {
		e.t.Fatalf("Failed to read bank: %v", err)
	}
	return v
}

// Now returns the engine's current time.
func (e *TestEnv) Now() time.Time {
	return e.Clock.Now()
}

// AdvanceTime moves the engine clock forward.
func (e *TestEnv) AdvanceTime(d time.Duration) {
	e.Clock.Advance(d)
}

// EventRecorder is an engine.EventSink that keeps every event.
type EventRecorder struct {
	mu     sync.Mutex
	events []engine.Event
}

func (r *EventRecorder) Emit(_ context.Context, ev engine.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

// All returns the recorded events in order.
func (r *EventRecorder) All() []engine.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]engine.Event(nil), r.events...)
}

// Last returns the most recent event of kind.
func (r *EventRecorder) Last(kind engine.EventKind) (engine.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return engine.Event{}, false
}
