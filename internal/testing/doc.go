// Package testing provides test infrastructure for the token economy.
//
// It wires a complete node in memory: an in-memory database, the record
// store, the bank collaborators and an engine driven by a manual clock and
// the signature verifier, so tests exercise the same code path the daemon
// runs.
//
// # Overview
//
// The testing package provides:
//   - TestEnv: an initialized economy with funded wallets
//   - Account: deterministic identities with secp256k1 keypairs
//   - Amount helpers: whole units to base units
//   - Assertions: Require* helpers for balances, results and ledger invariants
//
// # Basic Usage
//
//	func TestSell(t *testing.T) {
//	    env := testing.NewTestEnv(t)
//	    alice := testing.NewAccount("alice")
//
//	    env.Init()
//	    env.Open()
//	    env.Fund(testing.Units(10), alice)
//
//	    tokens := env.RequireBuy(alice, testing.Units(1), nil)
//	    _, err := env.Sell(alice, tokens)
//	    testing.RequireSuccess(t, err)
//	    testing.RequireLedgerConsistent(t, env, alice)
//	}
//
// # TestEnv
//
// NewTestEnv uses the default launch parameters. NewTestEnvWithParams takes
// any valid state.Params, for example the admin distribution variant with
// vesting enabled:
//
//	p := state.DefaultParams()
//	p.Variant = state.VariantAdminDistribution
//	p.Vesting = state.VestingTerms{Enabled: true, Duration: 10 * time.Hour}
//	env := testing.NewTestEnvWithParams(t, p)
//
// The environment's admin account is created by Init. Every operation is
// signed by the acting account and checked by crypto.SignatureVerifier.
//
// # Time
//
// The engine reads time from a ManualClock; AdvanceTime moves it forward.
// Only vesting depends on it.
package testing
