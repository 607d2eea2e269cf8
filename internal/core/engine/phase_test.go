package engine_test

import (
	"context"
	"strings"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/core/gate"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	jtx "github.com/LeJamon/goSkwizz/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vestingParams(delay time.Duration) state.Params {
	p := state.DefaultParams()
	p.Variant = state.VariantAdminDistribution
	p.Vesting = state.VestingTerms{Enabled: true, Delay: delay, Duration: 10 * time.Hour}
	return p
}

func TestAdminDistributionBootstrap(t *testing.T) {
	env := jtx.NewTestEnvWithParams(t, vestingParams(0))
	env.Init()
	admin := env.Admin()
	alice := jtx.NewAccount("alice")
	env.Fund(jtx.Units(5), admin, alice)

	_, err := env.Buy(alice, jtx.Units(1), nil)
	jtx.RequireResult(t, err, engine.TecWRONG_PHASE)

	held := env.RequireBuy(admin, jtx.Units(1), nil)

	_, err = env.Transfer(admin, alice, jtx.Units(1))
	jtx.RequireResult(t, err, engine.TecWRONG_PHASE)

	require.NoError(t, env.Distribute(admin, alice, jtx.Units(100)))

	for name, op := range map[string]func() error{
		"sell":     func() error { _, err := env.Sell(alice, jtx.Units(1)); return err },
		"withdraw": func() error { _, err := env.Withdraw(alice); return err },
		"exit":     func() error { _, err := env.Exit(alice); return err },
	} {
		t.Run(name, func(t *testing.T) {
			jtx.RequireResult(t, op(), engine.TecWRONG_PHASE)
		})
	}

	err = env.Engine.DisableInitialPhase(context.Background(), alice.Signer("disable_initial_phase"))
	jtx.RequireResult(t, err, engine.TecNOT_ADMIN)

	env.Open()
	err = env.Distribute(admin, alice, jtx.Units(1))
	jtx.RequireResult(t, err, engine.TecWRONG_PHASE)

	env.RequireBuy(alice, jtx.Units(1), nil)
	jtx.RequireBalance(t, env, admin, held.Sub(jtx.Units(100)))
	jtx.RequireLedgerConsistent(t, env, alice)
}

func TestDistributionVests(t *testing.T) {
	env := jtx.NewTestEnvWithParams(t, vestingParams(0))
	env.Init()
	admin := env.Admin()
	alice := jtx.NewAccount("alice")
	bob := jtx.NewAccount("bob")
	env.Fund(jtx.Units(5), admin)

	env.RequireBuy(admin, jtx.Units(1), nil)
	supply := env.Economy().TokenSupply
	require.NoError(t, env.Distribute(admin, alice, jtx.Units(1000)))
	env.Open()

	jtx.RequireAmount(t, supply, env.Economy().TokenSupply, "distribution is untaxed")
	jtx.RequireBalance(t, env, alice, jtx.Units(1000))

	ev, ok := env.Events.Last(engine.EventDistribution)
	require.True(t, ok)
	assert.Equal(t, alice.ID, ev.Counterparty)
	assert.True(t, strings.HasPrefix(ev.Detail, "unlock_start="+env.Now().Format(time.RFC3339)))

	tests := []struct {
		at        time.Duration
		spendable sdkmath.Uint
	}{
		{0, sdkmath.ZeroUint()},
		{59 * time.Minute, sdkmath.ZeroUint()},
		{time.Hour, jtx.Units(100)},
		{3*time.Hour + 30*time.Minute, jtx.Units(300)},
		{10 * time.Hour, jtx.Units(1000)},
	}
	start := env.Now()
	for _, tt := range tests {
		env.Clock.Set(start.Add(tt.at))
		jtx.RequireAmount(t, tt.spendable, env.Holder(alice).Spendable, "spendable after %s", tt.at)
	}

	env.Clock.Set(start.Add(3 * time.Hour))
	_, err := env.Sell(alice, jtx.Units(301))
	jtx.RequireResult(t, err, engine.TecUNFUNDED)
	_, err = env.Transfer(alice, bob, jtx.Units(301))
	jtx.RequireResult(t, err, engine.TecUNFUNDED)

	_, err = env.Sell(alice, jtx.Units(300))
	jtx.RequireSuccess(t, err)
	jtx.RequireAmount(t, sdkmath.ZeroUint(), env.Holder(alice).Spendable)

	env.Clock.Set(start.Add(10 * time.Hour))
	_, err = env.Exit(alice)
	jtx.RequireSuccess(t, err)
	jtx.RequireBalance(t, env, alice, sdkmath.ZeroUint())
	jtx.RequireLedgerConsistent(t, env, alice, bob)
}

func TestRegrantRelocksRemainder(t *testing.T) {
	p := vestingParams(time.Hour)
	p.Variant = state.VariantAmbassador
	env := jtx.NewTestEnvWithParams(t, p)
	env.Init()
	env.Open()
	admin := env.Admin()
	alice := jtx.NewAccount("alice")
	env.Fund(jtx.Units(5), admin)
	env.RequireBuy(admin, jtx.Units(1), nil)

	require.NoError(t, env.Distribute(admin, alice, jtx.Units(1000)))
	start := env.Now()
	assert.True(t, start.Add(time.Hour).Equal(env.Holder(alice).Holder.Lock.Start), "the window opens after the delay")

	// half released, then a second grant locks the rest with the new amount
	env.Clock.Set(start.Add(6 * time.Hour))
	jtx.RequireAmount(t, jtx.Units(500), env.Holder(alice).Spendable)
	require.NoError(t, env.Distribute(admin, alice, jtx.Units(200)))

	lock := env.Holder(alice).Holder.Lock
	jtx.RequireAmount(t, jtx.Units(700), lock.Total)
	assert.True(t, env.Now().Add(time.Hour).Equal(lock.Start))
	jtx.RequireAmount(t, jtx.Units(500), env.Holder(alice).Spendable)
}

func TestDistributeRequiresVesting(t *testing.T) {
	p := state.DefaultParams()
	p.Variant = state.VariantAdminDistribution
	env := jtx.NewTestEnvWithParams(t, p)
	env.Init()
	admin := env.Admin()
	env.Fund(jtx.Units(5), admin)
	env.RequireBuy(admin, jtx.Units(1), nil)

	err := env.Distribute(admin, jtx.NewAccount("alice"), jtx.Units(1))
	jtx.RequireResult(t, err, engine.TecWRONG_PHASE)
}

func TestDistributeChecks(t *testing.T) {
	env := jtx.NewTestEnvWithParams(t, vestingParams(0))
	env.Init()
	admin := env.Admin()
	alice := jtx.NewAccount("alice")

	err := env.Distribute(admin, alice, jtx.Units(1))
	jtx.RequireResult(t, err, engine.TecNO_TOKENS)

	env.Fund(jtx.Units(5), admin)
	held := env.RequireBuy(admin, jtx.Units(1), nil)
	err = env.Distribute(admin, alice, held.AddUint64(1))
	jtx.RequireResult(t, err, engine.TecUNFUNDED)

	err = env.Distribute(alice, admin, jtx.Units(1))
	jtx.RequireResult(t, err, engine.TecNOT_ADMIN)
}

func TestAdminOperations(t *testing.T) {
	env := jtx.NewTestEnv(t)
	env.Init()
	admin := env.Admin()
	bob := jtx.NewAccount("bob")
	ctx := context.Background()

	jtx.RequireResult(t, env.Engine.SetName(ctx, bob.Signer("set_name"), "Bob"), engine.TecNOT_ADMIN)
	jtx.RequireResult(t, env.Engine.SetStakingRequirement(ctx, bob.Signer("set_staking_requirement"), jtx.Units(1)), engine.TecNOT_ADMIN)

	require.NoError(t, env.Engine.SetName(ctx, admin.Signer("set_name"), "Squeeze"))
	require.NoError(t, env.Engine.SetSymbol(ctx, admin.Signer("set_symbol"), "SQZ"))
	require.NoError(t, env.Engine.SetStakingRequirement(ctx, admin.Signer("set_staking_requirement"), jtx.Units(50)))

	econ := env.Economy()
	assert.Equal(t, "Squeeze", econ.Name)
	assert.Equal(t, "SQZ", econ.Symbol)
	jtx.RequireAmount(t, jtx.Units(50), econ.StakingRequirement)

	ev, ok := env.Events.Last(engine.EventAdminChange)
	require.True(t, ok)
	assert.Equal(t, "set_staking_requirement="+jtx.Units(50).String(), ev.Detail)

	require.NoError(t, env.Engine.SetAdministrator(ctx, admin.Signer("set_administrator"), bob.ID, true))
	assert.True(t, env.Holder(bob).Holder.IsAdmin)
	assert.False(t, env.Holder(bob).Holder.Claimed(), "a role grant does not bind the record")

	require.NoError(t, env.Engine.DisableInitialPhase(ctx, bob.Signer("disable_initial_phase")))
	phase, err := env.Engine.Phase(ctx)
	require.NoError(t, err)
	assert.Equal(t, gate.Open, phase)
	assert.True(t, env.Holder(bob).Holder.Claimed())

	// closing twice is harmless and the phase stays open
	require.NoError(t, env.Engine.DisableInitialPhase(ctx, admin.Signer("disable_initial_phase")))

	require.NoError(t, env.Engine.SetAdministrator(ctx, bob.Signer("set_administrator"), admin.ID, false))
	jtx.RequireResult(t, env.Engine.SetSymbol(ctx, admin.Signer("set_symbol"), "X"), engine.TecNOT_ADMIN)

	require.NoError(t, env.Engine.SetAmbassador(ctx, bob.Signer("set_ambassador"), admin.ID, false))
	assert.False(t, env.Holder(admin).Holder.IsAmbassador)
}
