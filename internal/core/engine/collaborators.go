package engine

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

//go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks github.com/LeJamon/goSkwizz/internal/core/engine TokenLedger,Settlement,MetadataRegistry,EventSink

// Signer is the caller of a signed operation: the identity it claims, and
// the proof that it controls that identity.
//
// Op names the operation being authorized. The engine overwrites it with
// the operation it is running before consulting the Verifier, so a proof
// made for one operation cannot be presented to another.
type Signer struct {
	ID        state.HolderID
	Op        string
	PublicKey []byte
	Message   []byte
	Signature []byte
}

// Verifier decides whether a signer controls a holder identity for the
// operation named by s.Op.
type Verifier interface {
	Controls(s Signer, id state.HolderID) bool
}

// VerifierFunc adapts a function to Verifier.
type VerifierFunc func(s Signer, id state.HolderID) bool

func (f VerifierFunc) Controls(s Signer, id state.HolderID) bool { return f(s, id) }

// TrustClaimedID is a Verifier that accepts any signer claiming the
// identity. It suits hosts that authenticate callers before the engine.
var TrustClaimedID Verifier = VerifierFunc(func(s Signer, id state.HolderID) bool {
	return s.ID == id
})

// Store is the durable record store.
type Store interface {
	// LoadEconomy returns the economy record, ok=false if none exists.
	LoadEconomy(ctx context.Context) (econ *state.Economy, ok bool, err error)
	// LoadHolder returns a holder record, ok=false if none exists.
	LoadHolder(ctx context.Context, id state.HolderID) (h *state.Holder, ok bool, err error)
	// Commit writes the economy and holders in one atomic batch.
	Commit(ctx context.Context, econ *state.Economy, holders []*state.Holder) error
}

// TokenLedger moves the tradable unit. The engine keeps its own balances
// and supply in step with every call.
type TokenLedger interface {
	Mint(ctx context.Context, to state.HolderID, amount sdkmath.Uint) error
	Burn(ctx context.Context, from state.HolderID, amount sdkmath.Uint) error
}

// Settlement moves the settlement currency in and out of custody.
type Settlement interface {
	Balance(ctx context.Context, who state.HolderID) (sdkmath.Uint, error)
	TransferIn(ctx context.Context, from state.HolderID, amount sdkmath.Uint) error
	TransferOut(ctx context.Context, to state.HolderID, amount sdkmath.Uint) error
}

// TokenMetadata describes the token.
type TokenMetadata struct {
	Name     string
	Symbol   string
	Decimals uint8
	URI      string
}

// MetadataRegistry records the token description once, at initialization.
type MetadataRegistry interface {
	Register(ctx context.Context, meta TokenMetadata) error
}

// Clock reads the current time. Only vesting uses it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// EventSink receives the events of committed operations.
type EventSink interface {
	Emit(ctx context.Context, ev Event) error
}
