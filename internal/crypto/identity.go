package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

var (
	// ErrInvalidPrivateKey is returned when the private key is invalid
	ErrInvalidPrivateKey = errors.New("invalid private key")
	// ErrInvalidPublicKey is returned when the public key is invalid
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrInvalidSeed is returned when a seed is too short
	ErrInvalidSeed = errors.New("seed must be at least 16 bytes")
)

// Identity is a participant's secp256k1 keypair.
type Identity struct {
	privateKey *btcec.PrivateKey
	publicKey  *btcec.PublicKey
}

// NewIdentity creates a new random identity.
func NewIdentity() (*Identity, error) {
	privateKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	return newIdentity(privateKey), nil
}

// NewIdentityFromSeed derives an identity from the SHA-512 half of seed.
func NewIdentityFromSeed(seed []byte) (*Identity, error) {
	if len(seed) < 16 {
		return nil, ErrInvalidSeed
	}
	hash := Sha512Half(seed)
	defer SecureErase(hash[:])

	privateKey, _ := btcec.PrivKeyFromBytes(hash[:])
	return newIdentity(privateKey), nil
}

// NewIdentityFromPrivateKey parses a hex-encoded 32-byte private key.
func NewIdentityFromPrivateKey(privKeyHex string) (*Identity, error) {
	if len(privKeyHex) != 64 {
		return nil, ErrInvalidPrivateKey
	}
	privKeyBytes, err := hex.DecodeString(privKeyHex)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	defer SecureErase(privKeyBytes)

	privateKey, _ := btcec.PrivKeyFromBytes(privKeyBytes)
	if privateKey == nil || privateKey.Key.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	return newIdentity(privateKey), nil
}

func newIdentity(privateKey *btcec.PrivateKey) *Identity {
	return &Identity{
		privateKey: privateKey,
		publicKey:  privateKey.PubKey(),
	}
}

// HolderID returns the identity's holder record key.
func (i *Identity) HolderID() state.HolderID {
	return CalcHolderID(i.PublicKey())
}

// PublicKey returns the compressed public key bytes.
func (i *Identity) PublicKey() []byte {
	return i.publicKey.SerializeCompressed()
}

// PublicKeyHex returns the compressed public key as a hex string.
func (i *Identity) PublicKeyHex() string {
	return hex.EncodeToString(i.PublicKey())
}

// PrivateKeyHex returns the private key as a hex string.
func (i *Identity) PrivateKeyHex() string {
	return hex.EncodeToString(i.privateKey.Serialize())
}

// Sign returns the DER signature of the SHA-512 half of message.
func (i *Identity) Sign(message []byte) []byte {
	hash := Sha512Half(message)
	return ecdsa.Sign(i.privateKey, hash[:]).Serialize()
}

// Verify checks a DER signature made by Sign.
func Verify(publicKey, message, signature []byte) bool {
	sig, err := ParseSignature(signature)
	if err != nil {
		return false
	}
	pub, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return false
	}
	hash := Sha512Half(message)
	return sig.Verify(hash[:], pub)
}
