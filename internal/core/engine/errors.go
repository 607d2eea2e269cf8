package engine

import (
	"errors"

	"github.com/LeJamon/goSkwizz/internal/core/gate"
)

var (
	ErrNotInitialized     = errors.New("economy is not initialized")
	ErrAlreadyInitialized = errors.New("economy is already initialized")

	// ErrNotOwner is returned when the caller does not control the holder
	// record it names.
	ErrNotOwner = errors.New("caller does not own the holder record")

	ErrNotAdmin      = errors.New("caller is not an administrator")
	ErrNotAmbassador = gate.ErrNotAmbassador

	// ErrNotABagHolder is returned when a zero-balance holder attempts a
	// balance-gated operation.
	ErrNotABagHolder = errors.New("caller holds no tokens")

	// ErrInsufficientFunds covers both currency and token shortfalls.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBelowMinimumPurchase is returned when a purchase converts to zero
	// tokens.
	ErrBelowMinimumPurchase = errors.New("amount is below the minimum purchase")

	ErrQuotaExceeded = gate.ErrQuotaExceeded
	ErrWrongPhase    = gate.ErrWrongPhase

	// ErrRecipientMismatch is returned when a transfer target's record is
	// already bound to another identity.
	ErrRecipientMismatch = errors.New("recipient record is bound to another identity")

	// ErrInvariantViolated signals a ledger accounting bug. Operations that
	// would leave the ledger in such a state are aborted.
	ErrInvariantViolated = errors.New("ledger invariant violated")
)
