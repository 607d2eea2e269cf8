package testing

import (
	"testing"
	"time"

	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	// Same name should produce same account
	alice1 := NewAccount("alice")
	alice2 := NewAccount("alice")
	assert.Equal(t, alice1.ID, alice2.ID)
	assert.Equal(t, alice1.Identity.PrivateKeyHex(), alice2.Identity.PrivateKeyHex())

	// Different name should produce different account
	bob := NewAccount("bob")
	assert.NotEqual(t, alice1.ID, bob.ID)
}

func TestAccountSignerVerifies(t *testing.T) {
	alice := NewAccount("alice")
	bob := NewAccount("bob")

	s := alice.Signer("buy")
	assert.True(t, crypto.SignatureVerifier{}.Controls(s, alice.ID))
	assert.False(t, crypto.SignatureVerifier{}.Controls(s, bob.ID))
}

func TestAccountString(t *testing.T) {
	alice := NewAccount("alice")
	str := alice.String()
	assert.Contains(t, str, "alice")
	assert.Contains(t, str, alice.ID.String())
}

func TestUnits(t *testing.T) {
	assert.Equal(t, "2000000000", Units(2).String())
	assert.Equal(t, "7", Base(7).String())
	assert.Equal(t, "500000000", Whole("0.5").String())
	assert.Panics(t, func() { Whole("half") })
}

func TestManualClock(t *testing.T) {
	clock := NewManualClock()
	assert.Equal(t, DefaultTime, clock.Now())

	clock.Advance(time.Hour)
	assert.Equal(t, DefaultTime.Add(time.Hour), clock.Now())

	later := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(later)
	assert.Equal(t, later, clock.Now())
}

func TestEnvBuyAndWithdraw(t *testing.T) {
	env := NewTestEnv(t)
	alice := NewAccount("alice")

	env.Init()
	env.Open()
	env.Fund(Units(5), alice)

	tokens := env.RequireBuy(alice, Units(1), nil)
	require.False(t, tokens.IsZero())
	RequireBalance(t, env, alice, tokens)
	RequireWallet(t, env, alice, Units(4))
	RequireLedgerConsistent(t, env, alice)

	ev, ok := env.Events.Last(engine.EventTokenPurchase)
	require.True(t, ok)
	assert.Equal(t, alice.ID, ev.Customer)
}

func TestEnvRejectsUninitialized(t *testing.T) {
	env := NewTestEnv(t)
	alice := NewAccount("alice")
	env.Fund(Units(1), alice)

	_, err := env.Buy(alice, Units(1), nil)
	RequireResult(t, err, engine.TecNOT_INITIALIZED)
}
