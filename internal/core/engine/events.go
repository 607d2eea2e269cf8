package engine

import (
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// EventKind names what happened.
type EventKind string

const (
	EventTokenPurchase EventKind = "TokenPurchase"
	EventTokenSell     EventKind = "TokenSell"
	EventReinvestment  EventKind = "Reinvestment"
	EventWithdraw      EventKind = "Withdraw"
	EventReferral      EventKind = "Referral"
	EventTransfer      EventKind = "Transfer"
	EventDistribution  EventKind = "Distribution"
	EventAdminChange   EventKind = "AdminChange"
)

// Event is the record of one committed state change.
//
// Customer is the acting holder. Counterparty is the referrer of a purchase
// or referral, the recipient of a transfer or distribution, and the target
// of a role change.
type Event struct {
	Kind         EventKind
	Time         time.Time
	Customer     state.HolderID
	Counterparty state.HolderID
	Currency     sdkmath.Uint
	Tokens       sdkmath.Uint
	Detail       string
}

func newEvent(kind EventKind, customer state.HolderID, at time.Time) Event {
	return Event{
		Kind:     kind,
		Time:     at,
		Customer: customer,
		Currency: sdkmath.ZeroUint(),
		Tokens:   sdkmath.ZeroUint(),
	}
}

// KeyVals returns the event as logger key/value pairs.
func (ev Event) KeyVals() []any {
	kv := []any{
		"event", string(ev.Kind),
		"customer", ev.Customer.String(),
		"currency", ev.Currency.String(),
		"tokens", ev.Tokens.String(),
	}
	if !ev.Counterparty.IsZero() {
		kv = append(kv, "counterparty", ev.Counterparty.String())
	}
	if ev.Detail != "" {
		kv = append(kv, "detail", ev.Detail)
	}
	return kv
}
