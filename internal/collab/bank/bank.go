// Package bank provides the collaborators the engine drives: a token
// ledger, a settlement currency with wallets and a custody account, and a
// metadata registry. All of them keep their balances in a database.DB.
package bank

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/core/keylet"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/LeJamon/goSkwizz/internal/storage/database"
	"github.com/LeJamon/goSkwizz/internal/storage/recordstore"
)

var (
	// ErrInsufficientBalance is returned when an account cannot cover a debit.
	ErrInsufficientBalance = errors.New("bank: insufficient balance")
	// ErrAlreadyRegistered is returned when metadata is registered twice.
	ErrAlreadyRegistered = errors.New("bank: metadata already registered")
)

var (
	_ engine.TokenLedger      = (*Bank)(nil)
	_ engine.Settlement       = (*Bank)(nil)
	_ engine.MetadataRegistry = (*Bank)(nil)
)

// Bank implements engine.TokenLedger, engine.Settlement and
// engine.MetadataRegistry.
type Bank struct {
	mu sync.Mutex
	db database.DB
}

// New returns a bank over db.
func New(db database.DB) *Bank {
	return &Bank{db: db}
}

// Mint creates amount tokens on to.
func (b *Bank) Mint(ctx context.Context, to state.HolderID, amount sdkmath.Uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.move(ctx, amount, keylet.Mint(), keylet.Token(to), false)
}

// Burn destroys amount tokens held by from.
func (b *Bank) Burn(ctx context.Context, from state.HolderID, amount sdkmath.Uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.move(ctx, amount, keylet.Token(from), keylet.Mint(), true)
}

// TokenBalance returns the tokens held by who.
func (b *Bank) TokenBalance(ctx context.Context, who state.HolderID) (sdkmath.Uint, error) {
	return b.read(ctx, keylet.Token(who))
}

// TotalSupply returns every token minted and not burned.
func (b *Bank) TotalSupply(ctx context.Context) (sdkmath.Uint, error) {
	return b.read(ctx, keylet.Mint())
}

// Balance returns the settlement currency in who's wallet.
func (b *Bank) Balance(ctx context.Context, who state.HolderID) (sdkmath.Uint, error) {
	return b.read(ctx, keylet.Wallet(who))
}

// Custody returns the currency held on behalf of the economy.
func (b *Bank) Custody(ctx context.Context) (sdkmath.Uint, error) {
	return b.read(ctx, keylet.Custody())
}

// TransferIn moves amount from the wallet of from into custody.
func (b *Bank) TransferIn(ctx context.Context, from state.HolderID, amount sdkmath.Uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.move(ctx, amount, keylet.Wallet(from), keylet.Custody(), true)
}

// TransferOut moves amount out of custody into the wallet of to.
func (b *Bank) TransferOut(ctx context.Context, to state.HolderID, amount sdkmath.Uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.move(ctx, amount, keylet.Custody(), keylet.Wallet(to), true)
}

// Fund credits a wallet out of thin air. Development networks use it in
// place of a faucet.
func (b *Bank) Fund(ctx context.Context, who state.HolderID, amount sdkmath.Uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	k := keylet.Wallet(who)
	bal, err := b.read(ctx, k)
	if err != nil {
		return err
	}
	return b.db.Write(ctx, k.Bytes(), []byte(bal.Add(amount).String()))
}

// move debits src and credits dst in one batch. When checked is false the
// source may not cover the amount and is only counted up: that is how the
// mint account tracks supply.
func (b *Bank) move(ctx context.Context, amount sdkmath.Uint, src, dst keylet.Keylet, checked bool) error {
	from, err := b.read(ctx, src)
	if err != nil {
		return err
	}
	to, err := b.read(ctx, dst)
	if err != nil {
		return err
	}

	var next sdkmath.Uint
	switch {
	case !checked:
		next = from.Add(amount)
	case from.LT(amount):
		return fmt.Errorf("%w: have %s, need %s", ErrInsufficientBalance, from, amount)
	default:
		next = from.Sub(amount)
	}

	// The mint account counts supply up on mint and down on burn.
	if src.Type == keylet.TypeMint {
		to = to.Add(amount)
	} else if dst.Type == keylet.TypeMint {
		to = to.Sub(amount)
	} else {
		to = to.Add(amount)
	}

	return b.db.Batch(ctx, []database.BatchOperation{
		database.Put(src.Bytes(), []byte(next.String())),
		database.Put(dst.Bytes(), []byte(to.String())),
	})
}

func (b *Bank) read(ctx context.Context, k keylet.Keylet) (sdkmath.Uint, error) {
	data, err := b.db.Read(ctx, k.Bytes())
	if errors.Is(err, database.ErrKeyNotFound) {
		return sdkmath.ZeroUint(), nil
	}
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return sdkmath.ParseUint(string(data))
}

type metadataRecord struct {
	Name     string `codec:"name"`
	Symbol   string `codec:"symbol"`
	Decimals uint8  `codec:"decimals"`
	URI      string `codec:"uri"`
}

// Register stores the token description. It can only happen once.
func (b *Bank) Register(ctx context.Context, meta engine.TokenMetadata) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	k := keylet.Metadata().Bytes()
	if _, err := b.db.Read(ctx, k); err == nil {
		return ErrAlreadyRegistered
	} else if !errors.Is(err, database.ErrKeyNotFound) {
		return err
	}

	data, err := recordstore.Marshal(&metadataRecord{
		Name:     meta.Name,
		Symbol:   meta.Symbol,
		Decimals: meta.Decimals,
		URI:      meta.URI,
	})
	if err != nil {
		return err
	}
	return b.db.Write(ctx, k, data)
}

// Metadata returns the registered token description.
func (b *Bank) Metadata(ctx context.Context) (engine.TokenMetadata, bool, error) {
	data, err := b.db.Read(ctx, keylet.Metadata().Bytes())
	if errors.Is(err, database.ErrKeyNotFound) {
		return engine.TokenMetadata{}, false, nil
	}
	if err != nil {
		return engine.TokenMetadata{}, false, err
	}
	var r metadataRecord
	if err := recordstore.Unmarshal(data, &r); err != nil {
		return engine.TokenMetadata{}, false, fmt.Errorf("decode metadata: %w", err)
	}
	return engine.TokenMetadata{Name: r.Name, Symbol: r.Symbol, Decimals: r.Decimals, URI: r.URI}, true, nil
}
