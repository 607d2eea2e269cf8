package testing

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/dividend"
	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/stretchr/testify/require"
)

// RequireSuccess asserts that an operation was applied.
func RequireSuccess(t *testing.T, err error) {
	t.Helper()
	require.NoError(t, err, "Expected tesSUCCESS, got %s", engine.ResultOf(err))
}

// RequireResult asserts that an operation failed with a specific result code.
func RequireResult(t *testing.T, err error, expected engine.Result) {
	t.Helper()
	require.Error(t, err, "Expected %s, but the operation succeeded", expected)
	require.Equal(t, expected.String(), engine.ResultOf(err).String(),
		"Expected %s, got %v", expected, err)
}

// RequireAmount asserts that two amounts are equal.
func RequireAmount(t *testing.T, expected, actual sdkmath.Uint, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, expected.String(), actual.String(), msgAndArgs...)
}

// RequireBalance asserts that an account holds the expected tokens, both in
// the engine's records and on the token ledger.
func RequireBalance(t *testing.T, env *TestEnv, acc *Account, expected sdkmath.Uint) {
	t.Helper()
	RequireAmount(t, expected, env.Holder(acc).Holder.Balance,
		"Account %s engine balance mismatch", acc.Name)
	RequireAmount(t, expected, env.Tokens(acc),
		"Account %s token ledger balance mismatch", acc.Name)
}

// RequireWallet asserts the currency in an account's wallet.
func RequireWallet(t *testing.T, env *TestEnv, acc *Account, expected sdkmath.Uint) {
	t.Helper()
	RequireAmount(t, expected, env.Wallet(acc), "Account %s wallet mismatch", acc.Name)
}

// RequireLedgerConsistent checks the invariants that must hold after every
// operation: the engine's supply matches the token ledger, the sum of the
// given accounts' balances does not exceed it, custody matches the
// economy's contract balance, and nobody is owed negative dividends.
func RequireLedgerConsistent(t *testing.T, env *TestEnv, accounts ...*Account) {
	t.Helper()
	econ := env.Economy()
	RequireAmount(t, econ.TokenSupply, env.LedgerSupply(), "engine supply drifted from the token ledger")
	RequireAmount(t, econ.ContractBalance, env.Custody(), "contract balance drifted from custody")

	sum := sdkmath.ZeroUint()
	for _, acc := range append([]*Account{env.Admin()}, accounts...) {
		info := env.Holder(acc)
		sum = sum.Add(info.Holder.Balance)
		_, err := dividend.DividendsOf(econ, info.Holder)
		require.NoError(t, err, "Account %s is owed negative dividends", acc.Name)
	}
	require.True(t, sum.LTE(econ.TokenSupply),
		"holders own %s tokens but supply is %s", sum, econ.TokenSupply)
}

// RequireSupplyAccounted asserts that the given accounts hold the entire
// token supply.
func RequireSupplyAccounted(t *testing.T, env *TestEnv, accounts ...*Account) {
	t.Helper()
	sum := sdkmath.ZeroUint()
	for _, acc := range append([]*Account{env.Admin()}, accounts...) {
		sum = sum.Add(env.Tokens(acc))
	}
	RequireAmount(t, env.Economy().TokenSupply, sum, "supply is not fully held by the accounts")
}
