package engine_test

import (
	"context"
	"errors"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/core/engine/mocks"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/LeJamon/goSkwizz/internal/storage/database/memory"
	"github.com/LeJamon/goSkwizz/internal/storage/recordstore"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mockAdmin = state.HolderID{0xAD}
	mockAlice = state.HolderID{0xA1}
)

type mockedEngine struct {
	eng    *engine.Engine
	tokens *mocks.MockTokenLedger
	funds  *mocks.MockSettlement
	meta   *mocks.MockMetadataRegistry
	sink   *mocks.MockEventSink
}

func newMockedEngine(t *testing.T) *mockedEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	store, err := recordstore.New(memory.NewDB(), 16)
	require.NoError(t, err)

	m := &mockedEngine{
		tokens: mocks.NewMockTokenLedger(ctrl),
		funds:  mocks.NewMockSettlement(ctrl),
		meta:   mocks.NewMockMetadataRegistry(ctrl),
		sink:   mocks.NewMockEventSink(ctrl),
	}
	m.eng, err = engine.New(engine.Options{
		Store:    store,
		Tokens:   m.tokens,
		Funds:    m.funds,
		Metadata: m.meta,
		Events:   m.sink,
		Params:   state.DefaultParams(),
	})
	require.NoError(t, err)
	return m
}

// open initializes the economy and leaves the bootstrap phase.
func (m *mockedEngine) open(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	m.meta.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)
	m.sink.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	require.NoError(t, m.eng.Initialize(ctx, engine.Signer{ID: mockAdmin}, engine.TokenMetadata{Name: "Skwizz", Symbol: "SKW", Decimals: 9}))
	require.NoError(t, m.eng.DisableInitialPhase(ctx, engine.Signer{ID: mockAdmin}))
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := engine.New(engine.Options{Params: state.DefaultParams()})
	assert.Error(t, err)

	p := state.DefaultParams()
	p.DividendFee = 1
	store, err := recordstore.New(memory.NewDB(), 1)
	require.NoError(t, err)
	m := newMockedEngine(t)
	_, err = engine.New(engine.Options{Store: store, Tokens: m.tokens, Funds: m.funds, Metadata: m.meta, Params: p})
	assert.ErrorContains(t, err, "dividend fee")
}

func TestRegistryFailureLeavesEconomyUninitialized(t *testing.T) {
	ctx := context.Background()
	m := newMockedEngine(t)

	m.meta.EXPECT().Register(gomock.Any(), engine.TokenMetadata{Name: "Skwizz", Symbol: "SKW", Decimals: 9}).
		Return(errors.New("registry unavailable"))

	err := m.eng.Initialize(ctx, engine.Signer{ID: mockAdmin}, engine.TokenMetadata{Name: "Skwizz", Symbol: "SKW", Decimals: 9})
	require.ErrorContains(t, err, "registry unavailable")
	assert.Equal(t, engine.TefFAILURE, engine.ResultOf(err))

	econ, err := m.eng.Economy(ctx)
	require.NoError(t, err)
	assert.False(t, econ.Initialized)

	// a retry goes through once the registry recovers
	m.open(t)
	econ, err = m.eng.Economy(ctx)
	require.NoError(t, err)
	assert.True(t, econ.Initialized)
}

func TestMintFailureAbortsBuy(t *testing.T) {
	ctx := context.Background()
	m := newMockedEngine(t)
	m.open(t)

	amount := sdkmath.NewUint(state.CurrencyUnit)
	m.funds.EXPECT().Balance(gomock.Any(), mockAlice).Return(amount, nil)
	gomock.InOrder(
		m.funds.EXPECT().TransferIn(gomock.Any(), mockAlice, amount).Return(nil),
		m.tokens.EXPECT().Mint(gomock.Any(), mockAlice, gomock.Any()).Return(errors.New("ledger offline")),
		// the wallet gets its currency back
		m.funds.EXPECT().TransferOut(gomock.Any(), mockAlice, amount).Return(nil),
	)

	_, err := m.eng.Buy(ctx, engine.Signer{ID: mockAlice}, amount, nil)
	require.ErrorContains(t, err, "ledger offline")

	econ, err := m.eng.Economy(ctx)
	require.NoError(t, err)
	assert.True(t, econ.TokenSupply.IsZero())
	assert.True(t, econ.ContractBalance.IsZero())

	info, err := m.eng.Holder(ctx, mockAlice)
	require.NoError(t, err)
	assert.True(t, info.Holder.Balance.IsZero())
	assert.False(t, info.Holder.Claimed(), "the failed buy bound nothing")
}

func TestTransferInFailureSkipsMint(t *testing.T) {
	ctx := context.Background()
	m := newMockedEngine(t)
	m.open(t)

	amount := sdkmath.NewUint(state.CurrencyUnit)
	m.funds.EXPECT().Balance(gomock.Any(), mockAlice).Return(amount, nil)
	m.funds.EXPECT().TransferIn(gomock.Any(), mockAlice, amount).Return(errors.New("wallet locked"))
	m.tokens.EXPECT().Mint(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := m.eng.Buy(ctx, engine.Signer{ID: mockAlice}, amount, nil)
	require.ErrorContains(t, err, "wallet locked")
	assert.Equal(t, engine.TefFAILURE, engine.ResultOf(err))

	econ, err := m.eng.Economy(ctx)
	require.NoError(t, err)
	assert.True(t, econ.TokenSupply.IsZero())
	assert.True(t, econ.ContractBalance.IsZero())
}

func TestTransferOutFailureKeepsDividends(t *testing.T) {
	ctx := context.Background()
	m := newMockedEngine(t)
	m.open(t)

	amount := sdkmath.NewUint(state.CurrencyUnit)
	m.funds.EXPECT().Balance(gomock.Any(), mockAlice).Return(amount, nil)
	gomock.InOrder(
		m.funds.EXPECT().TransferIn(gomock.Any(), mockAlice, amount).Return(nil),
		m.tokens.EXPECT().Mint(gomock.Any(), mockAlice, gomock.Any()).Return(nil),
	)
	_, err := m.eng.Buy(ctx, engine.Signer{ID: mockAlice}, amount, nil)
	require.NoError(t, err)

	owed, err := m.eng.MyDividends(ctx, mockAlice, true)
	require.NoError(t, err)
	require.False(t, owed.IsZero())

	m.funds.EXPECT().TransferOut(gomock.Any(), mockAlice, owed).Return(errors.New("custody frozen"))
	_, err = m.eng.Withdraw(ctx, engine.Signer{ID: mockAlice})
	require.ErrorContains(t, err, "custody frozen")

	after, err := m.eng.MyDividends(ctx, mockAlice, true)
	require.NoError(t, err)
	assert.Equal(t, owed.String(), after.String())

	econ, err := m.eng.Economy(ctx)
	require.NoError(t, err)
	assert.Equal(t, amount.String(), econ.ContractBalance.String())
}

func TestEventSinkFailureDoesNotFailOperation(t *testing.T) {
	ctx := context.Background()
	m := newMockedEngine(t)

	m.meta.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)
	m.sink.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev engine.Event) error {
		assert.Equal(t, engine.EventAdminChange, ev.Kind)
		return errors.New("journal full")
	})

	require.NoError(t, m.eng.Initialize(ctx, engine.Signer{ID: mockAdmin}, engine.TokenMetadata{Name: "Skwizz", Symbol: "SKW"}))
}

func TestVerifierRejectsForeignSigner(t *testing.T) {
	ctx := context.Background()
	m := newMockedEngine(t)
	m.open(t)

	deny := engine.VerifierFunc(func(engine.Signer, state.HolderID) bool { return false })
	store, err := recordstore.New(memory.NewDB(), 1)
	require.NoError(t, err)
	eng, err := engine.New(engine.Options{
		Store: store, Tokens: m.tokens, Funds: m.funds, Metadata: m.meta,
		Verifier: deny, Params: state.DefaultParams(),
	})
	require.NoError(t, err)

	err = eng.Initialize(ctx, engine.Signer{ID: mockAdmin}, engine.TokenMetadata{Name: "Skwizz"})
	assert.Equal(t, engine.TecNO_PERMISSION, engine.ResultOf(err))
}
