// Package keylet computes the storage keys of every record the node keeps.
package keylet

import (
	"encoding/binary"

	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/LeJamon/goSkwizz/internal/crypto"
)

// Type tags a key with the kind of record it addresses. It is the first
// byte of the stored key so records of one type sort together.
type Type byte

const (
	TypeEconomy  Type = 'E'
	TypeHolder   Type = 'H'
	TypeWallet   Type = 'W'
	TypeToken    Type = 'T'
	TypeMint     Type = 'S'
	TypeCustody  Type = 'C'
	TypeMetadata Type = 'M'
)

// Space identifiers mixed into the hash.
const (
	spaceEconomy  uint16 = 'e'
	spaceHolder   uint16 = 'h'
	spaceWallet   uint16 = 'w'
	spaceToken    uint16 = 't'
	spaceMint     uint16 = 's'
	spaceCustody  uint16 = 'c'
	spaceMetadata uint16 = 'm'
)

// Keylet is an addressable record location.
type Keylet struct {
	Type Type
	Key  [32]byte
}

// Bytes returns the stored form of the key: the type byte then the hash.
func (k Keylet) Bytes() []byte {
	b := make([]byte, 0, 33)
	b = append(b, byte(k.Type))
	return append(b, k.Key[:]...)
}

// Range returns the [start, end) bounds covering every key of type t.
func Range(t Type) (start, end []byte) {
	return []byte{byte(t)}, []byte{byte(t) + 1}
}

func indexHash(space uint16, data ...[]byte) [32]byte {
	spaceBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(spaceBytes, space)

	inputs := make([][]byte, 0, len(data)+1)
	inputs = append(inputs, spaceBytes)
	inputs = append(inputs, data...)

	return crypto.Sha512Half(inputs...)
}

// Economy returns the keylet of the economy singleton.
func Economy() Keylet {
	return Keylet{Type: TypeEconomy, Key: indexHash(spaceEconomy)}
}

// Holder returns the keylet of a holder record.
func Holder(id state.HolderID) Keylet {
	return Keylet{Type: TypeHolder, Key: indexHash(spaceHolder, id[:])}
}

// Wallet returns the keylet of an identity's settlement currency wallet.
func Wallet(id state.HolderID) Keylet {
	return Keylet{Type: TypeWallet, Key: indexHash(spaceWallet, id[:])}
}

// Token returns the keylet of an identity's token account.
func Token(id state.HolderID) Keylet {
	return Keylet{Type: TypeToken, Key: indexHash(spaceToken, id[:])}
}

// Mint returns the keylet of the token ledger's total supply.
func Mint() Keylet {
	return Keylet{Type: TypeMint, Key: indexHash(spaceMint)}
}

// Custody returns the keylet of the custody balance.
func Custody() Keylet {
	return Keylet{Type: TypeCustody, Key: indexHash(spaceCustody)}
}

// Metadata returns the keylet of the registered token metadata.
func Metadata() Keylet {
	return Keylet{Type: TypeMetadata, Key: indexHash(spaceMetadata)}
}
