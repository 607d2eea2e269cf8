package engine_test

import (
	"context"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	jtx "github.com/LeJamon/goSkwizz/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUninitializedEconomy(t *testing.T) {
	env := jtx.NewTestEnv(t)
	alice := jtx.NewAccount("alice")
	env.Fund(jtx.Units(1), alice)

	ops := map[string]func() error{
		"buy":      func() error { _, err := env.Buy(alice, jtx.Units(1), nil); return err },
		"sell":     func() error { _, err := env.Sell(alice, jtx.Units(1)); return err },
		"reinvest": func() error { _, err := env.Reinvest(alice); return err },
		"withdraw": func() error { _, err := env.Withdraw(alice); return err },
		"transfer": func() error { _, err := env.Transfer(alice, env.Admin(), jtx.Units(1)); return err },
		"exit":     func() error { _, err := env.Exit(alice); return err },
		"dividends": func() error {
			_, err := env.Engine.MyDividends(context.Background(), alice.ID, true)
			return err
		},
		"buy price": func() error { _, err := env.Engine.BuyPrice(context.Background()); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			jtx.RequireResult(t, op(), engine.TecNOT_INITIALIZED)
		})
	}

	econ, err := env.Engine.Economy(context.Background())
	require.NoError(t, err)
	assert.False(t, econ.Initialized)
}

func TestInitialize(t *testing.T) {
	p := state.DefaultParams()
	p.MetadataURI = "https://skwizz.example/token.json"
	env := jtx.NewTestEnvWithParams(t, p)
	env.Init()

	econ := env.Economy()
	assert.Equal(t, "Skwizz", econ.Name)
	assert.Equal(t, "SKW", econ.Symbol)
	assert.True(t, econ.InitialPhase)

	admin := env.Holder(env.Admin()).Holder
	assert.True(t, admin.IsAdmin)
	assert.True(t, admin.IsAmbassador)
	assert.Equal(t, env.Admin().ID, admin.Authority)

	meta, ok, err := env.Bank.Metadata(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p.MetadataURI, meta.URI)
	assert.Equal(t, uint8(state.DefaultDecimals), meta.Decimals)

	err = env.Engine.Initialize(context.Background(), env.Admin().Signer("initialize"), engine.TokenMetadata{Name: "Again"})
	jtx.RequireResult(t, err, engine.TecALREADY_INITIALIZED)
}

func TestInitializeRejectsDecimals(t *testing.T) {
	env := jtx.NewTestEnv(t)
	err := env.Engine.Initialize(context.Background(), env.Admin().Signer("initialize"), engine.TokenMetadata{Name: "X", Symbol: "X", Decimals: 19})
	require.Error(t, err)
	assert.False(t, env.Economy().Initialized)
}

func TestWithdrawTwicePaysNothing(t *testing.T) {
	alice := jtx.NewAccount("alice")
	bob := jtx.NewAccount("bob")
	env := openEnv(t, jtx.Units(10), alice, bob)

	env.RequireBuy(alice, jtx.Units(1), nil)
	env.RequireBuy(bob, jtx.Units(1), nil)

	paid, err := env.Withdraw(alice)
	jtx.RequireSuccess(t, err)
	require.False(t, paid.IsZero())

	wallet := env.Wallet(alice)
	events := len(env.Events.All())

	paid, err = env.Withdraw(alice)
	jtx.RequireSuccess(t, err)
	jtx.RequireAmount(t, sdkmath.ZeroUint(), paid)
	jtx.RequireWallet(t, env, alice, wallet)
	assert.Len(t, env.Events.All(), events, "an empty withdraw emits nothing")
}

func TestWithdrawIncludesReferralBalance(t *testing.T) {
	x := jtx.NewAccount("x")
	y := jtx.NewAccount("y")
	env := openEnv(t, jtx.Units(10), x, y)

	env.RequireBuy(x, jtx.Units(1), nil)
	env.RequireBuy(y, jtx.Units(1), x)

	owed := env.Dividends(x, true)
	paid, err := env.Withdraw(x)
	jtx.RequireSuccess(t, err)
	jtx.RequireAmount(t, owed, paid)
	jtx.RequireAmount(t, sdkmath.ZeroUint(), env.Holder(x).Holder.ReferredBalance)
}

func TestWithdrawWithoutRecord(t *testing.T) {
	stranger := jtx.NewAccount("stranger")
	env := openEnv(t, jtx.Units(1), stranger)

	paid, err := env.Withdraw(stranger)
	jtx.RequireSuccess(t, err)
	assert.True(t, paid.IsZero())
}

func TestReinvestSpendsDividends(t *testing.T) {
	alice := jtx.NewAccount("alice")
	bob := jtx.NewAccount("bob")
	env := openEnv(t, jtx.Units(10), alice, bob)

	held := env.RequireBuy(alice, jtx.Units(1), nil)
	env.RequireBuy(bob, jtx.Units(1), nil)

	divs := env.Dividends(alice, false)
	custody := env.Custody()
	wallet := env.Wallet(alice)

	minted, err := env.Reinvest(alice)
	jtx.RequireSuccess(t, err)
	require.False(t, minted.IsZero())

	jtx.RequireBalance(t, env, alice, held.Add(minted))
	jtx.RequireAmount(t, custody, env.Custody(), "reinvesting moves no currency")
	jtx.RequireWallet(t, env, alice, wallet)
	assert.True(t, env.Dividends(alice, false).LT(divs), "reinvested dividends cannot be withdrawn again")

	ev, ok := env.Events.Last(engine.EventReinvestment)
	require.True(t, ok)
	jtx.RequireAmount(t, divs, ev.Currency)
	jtx.RequireAmount(t, minted, ev.Tokens)
	jtx.RequireLedgerConsistent(t, env, alice, bob)
}

func TestReinvestNothing(t *testing.T) {
	alice := jtx.NewAccount("alice")
	env := openEnv(t, jtx.Units(1), alice)

	_, err := env.Reinvest(alice)
	jtx.RequireResult(t, err, engine.TecBELOW_MINIMUM)
}

func TestBuyChecks(t *testing.T) {
	alice := jtx.NewAccount("alice")
	env := openEnv(t, jtx.Units(1), alice)

	tests := []struct {
		name   string
		amount sdkmath.Uint
		result engine.Result
	}{
		{"more than the wallet holds", jtx.Units(2), engine.TecUNFUNDED},
		{"zero", sdkmath.ZeroUint(), engine.TecBELOW_MINIMUM},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.Buy(alice, tt.amount, nil)
			jtx.RequireResult(t, err, tt.result)
			jtx.RequireWallet(t, env, alice, jtx.Units(1))
			assert.True(t, env.Economy().TokenSupply.IsZero())
		})
	}
}

func TestSellChecks(t *testing.T) {
	alice := jtx.NewAccount("alice")
	bob := jtx.NewAccount("bob")
	env := openEnv(t, jtx.Units(5), alice, bob)

	held := env.RequireBuy(alice, jtx.Units(1), nil)

	_, err := env.Sell(bob, jtx.Units(1))
	jtx.RequireResult(t, err, engine.TecNO_TOKENS)

	_, err = env.Sell(alice, held.AddUint64(1))
	jtx.RequireResult(t, err, engine.TecUNFUNDED)

	proceeds, err := env.Sell(alice, sdkmath.ZeroUint())
	jtx.RequireSuccess(t, err)
	assert.True(t, proceeds.IsZero())
	jtx.RequireBalance(t, env, alice, held)
}

func TestSellKeepsCurrencyInCustody(t *testing.T) {
	alice := jtx.NewAccount("alice")
	env := openEnv(t, jtx.Units(5), alice)

	held := env.RequireBuy(alice, jtx.Units(1), nil)
	quoted, err := env.Engine.CalculateCurrencyReceived(context.Background(), held.QuoUint64(2))
	require.NoError(t, err)

	owed := env.Dividends(alice, false)
	proceeds, err := env.Sell(alice, held.QuoUint64(2))
	jtx.RequireSuccess(t, err)
	jtx.RequireAmount(t, quoted, proceeds)

	jtx.RequireWallet(t, env, alice, jtx.Units(4))
	jtx.RequireAmount(t, jtx.Units(1), env.Custody())
	assert.True(t, env.Dividends(alice, false).GTE(owed.Add(proceeds)))
}

func TestExit(t *testing.T) {
	alice := jtx.NewAccount("alice")
	bob := jtx.NewAccount("bob")
	env := openEnv(t, jtx.Units(5), alice, bob)

	env.RequireBuy(alice, jtx.Units(1), nil)
	env.RequireBuy(bob, jtx.Units(1), nil)

	wallet := env.Wallet(alice)
	paid, err := env.Exit(alice)
	jtx.RequireSuccess(t, err)
	require.False(t, paid.IsZero())

	jtx.RequireBalance(t, env, alice, sdkmath.ZeroUint())
	jtx.RequireWallet(t, env, alice, wallet.Add(paid))
	jtx.RequireAmount(t, sdkmath.ZeroUint(), env.Dividends(alice, true))

	_, ok := env.Events.Last(engine.EventTokenSell)
	assert.True(t, ok)
	jtx.RequireLedgerConsistent(t, env, alice, bob)
}

func TestOwnership(t *testing.T) {
	alice := jtx.NewAccount("alice")
	mallory := jtx.NewAccount("mallory")
	env := openEnv(t, jtx.Units(5), alice, mallory)
	held := env.RequireBuy(alice, jtx.Units(1), nil)

	// mallory claims alice's identity but signs with her own key
	forged := mallory.Signer("withdraw")
	forged.ID = alice.ID
	_, err := env.Engine.Withdraw(context.Background(), forged)
	jtx.RequireResult(t, err, engine.TecNO_PERMISSION)

	// a signature over one message does not cover another
	tampered := alice.Signer("withdraw")
	tampered.Message = []byte("sell")
	_, err = env.Engine.Sell(context.Background(), tampered, jtx.Units(1))
	jtx.RequireResult(t, err, engine.TecNO_PERMISSION)

	jtx.RequireBalance(t, env, alice, held)
}

func TestSignatureIsBoundToOperation(t *testing.T) {
	alice := jtx.NewAccount("alice")
	bob := jtx.NewAccount("bob")
	env := openEnv(t, jtx.Units(5), alice)
	held := env.RequireBuy(alice, jtx.Units(1), nil)
	ctx := context.Background()

	withdrawal := alice.Signer("withdraw")

	_, err := env.Engine.Sell(ctx, withdrawal, held)
	jtx.RequireResult(t, err, engine.TecNO_PERMISSION)
	_, err = env.Engine.Transfer(ctx, withdrawal, bob.ID, held)
	jtx.RequireResult(t, err, engine.TecNO_PERMISSION)
	_, err = env.Engine.Exit(ctx, withdrawal)
	jtx.RequireResult(t, err, engine.TecNO_PERMISSION)
	_, err = env.Engine.Reinvest(ctx, withdrawal)
	jtx.RequireResult(t, err, engine.TecNO_PERMISSION)
	jtx.RequireBalance(t, env, alice, held)

	// relabelling the proof does not help either
	relabelled := withdrawal
	relabelled.Op = "sell"
	_, err = env.Engine.Sell(ctx, relabelled, held)
	jtx.RequireResult(t, err, engine.TecNO_PERMISSION)
	jtx.RequireBalance(t, env, alice, held)

	_, err = env.Engine.Withdraw(ctx, withdrawal)
	require.NoError(t, err)
}

func TestTransferRecipient(t *testing.T) {
	alice := jtx.NewAccount("alice")
	bob := jtx.NewAccount("bob")
	carol := jtx.NewAccount("carol")
	env := openEnv(t, jtx.Units(5), alice)
	env.RequireBuy(alice, jtx.Units(1), nil)

	_, err := env.Engine.Transfer(context.Background(), alice.Signer("transfer"), state.ZeroHolderID, jtx.Units(1))
	jtx.RequireResult(t, err, engine.TecNO_DST)

	// carol's record was bound to bob outside the engine
	bound := state.NewHolder(carol.ID)
	bound.Authority = bob.ID
	require.NoError(t, env.Store.Commit(context.Background(), env.Economy(), []*state.Holder{bound}))
	_, err = env.Transfer(alice, carol, jtx.Units(1))
	jtx.RequireResult(t, err, engine.TecNO_DST)

	// a fresh recipient is created and bound to itself
	received, err := env.Transfer(alice, bob, jtx.Units(10))
	jtx.RequireSuccess(t, err)
	holder := env.Holder(bob).Holder
	assert.Equal(t, bob.ID, holder.Authority)
	jtx.RequireAmount(t, received, holder.Balance)
}

func TestTransferChecks(t *testing.T) {
	alice := jtx.NewAccount("alice")
	bob := jtx.NewAccount("bob")
	env := openEnv(t, jtx.Units(5), alice, bob)
	held := env.RequireBuy(alice, jtx.Units(1), nil)

	_, err := env.Transfer(bob, alice, jtx.Units(1))
	jtx.RequireResult(t, err, engine.TecNO_TOKENS)

	_, err = env.Transfer(alice, bob, held.AddUint64(1))
	jtx.RequireResult(t, err, engine.TecUNFUNDED)
	jtx.RequireBalance(t, env, alice, held)
}

func TestPriceQueries(t *testing.T) {
	alice := jtx.NewAccount("alice")
	env := openEnv(t, jtx.Units(5), alice)
	ctx := context.Background()

	buy, err := env.Engine.BuyPrice(ctx)
	require.NoError(t, err)
	sell, err := env.Engine.SellPrice(ctx)
	require.NoError(t, err)
	jtx.RequireAmount(t, jtx.Base(100_100), buy)
	jtx.RequireAmount(t, jtx.Base(99_900), sell)

	env.RequireBuy(alice, jtx.Units(1), nil)

	buy, err = env.Engine.BuyPrice(ctx)
	require.NoError(t, err)
	sell, err = env.Engine.SellPrice(ctx)
	require.NoError(t, err)
	assert.True(t, buy.GT(sell))
	assert.True(t, sell.GT(jtx.Base(99_900)), "the price rises with supply")

	got, err := env.Engine.CalculateCurrencyReceived(ctx, env.Economy().TokenSupply.AddUint64(1))
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "more than the supply quotes zero")

	got, err = env.Engine.CalculateTokensReceived(ctx, sdkmath.ZeroUint())
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestHolderSnapshot(t *testing.T) {
	alice := jtx.NewAccount("alice")
	env := openEnv(t, jtx.Units(5), alice)

	info := env.Holder(jtx.NewAccount("nobody"))
	assert.False(t, info.Holder.Claimed())
	assert.True(t, info.Holder.Balance.IsZero())

	held := env.RequireBuy(alice, jtx.Units(1), nil)
	info = env.Holder(alice)
	jtx.RequireAmount(t, held, info.Spendable)
	jtx.RequireAmount(t, env.Dividends(alice, false), info.Dividends)
}
