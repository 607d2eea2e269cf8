package testing

import (
	"crypto/sha512"

	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/LeJamon/goSkwizz/internal/crypto"
)

// Account is a test participant with a deterministic keypair.
type Account struct {
	// Name is a human-readable identifier for the account (used for debugging).
	Name string

	// Identity holds the keypair the account signs with.
	Identity *crypto.Identity

	// ID is the holder ID derived from the public key.
	ID state.HolderID
}

// NewAccount creates a test account with a keypair derived from the name.
// Using the same name will always produce the same account, making tests
// reproducible.
func NewAccount(name string) *Account {
	hash := sha512.Sum512([]byte(name))
	id, err := crypto.NewIdentityFromSeed(hash[:16])
	if err != nil {
		panic("failed to derive identity for account " + name + ": " + err.Error())
	}
	return &Account{
		Name:     name,
		Identity: id,
		ID:       id.HolderID(),
	}
}

// AdminAccount returns the account that initializes a TestEnv.
func AdminAccount() *Account {
	return NewAccount("admin")
}

// Signer returns a signed caller for an operation named op.
func (a *Account) Signer(op string) engine.Signer {
	return a.Identity.SignOperation(op)
}

// Ref returns a pointer to the account's ID, for use as a referrer.
func (a *Account) Ref() *state.HolderID {
	id := a.ID
	return &id
}

// String returns a string representation of the account.
func (a *Account) String() string {
	return a.Name + " (" + a.ID.String() + ")"
}
